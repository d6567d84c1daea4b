// Package assets 嵌入游戏的全部资源（图片、音效、资源清单、物理参数与关卡）
//
// 桌面端和移动端入口都通过 embedded.Init(assets.FS) 注册，
// 路径相对于本目录，如 "images/carrot.png"、"data/levels/1-1.yaml"。
package assets

import "embed"

// FS 嵌入的资源文件系统
//
//go:embed config data images sounds
var FS embed.FS
