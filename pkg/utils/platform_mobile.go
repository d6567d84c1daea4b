//go:build mobile

package utils

const mobileBuild = true
