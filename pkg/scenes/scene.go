// Package scenes 实现加载场景与关卡场景
package scenes

import (
	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/game"
)

// WindowWidth/WindowHeight 逻辑屏幕尺寸
const (
	WindowWidth  = config.GameWindowWidth
	WindowHeight = config.GameWindowHeight
)

// Services 场景共享的服务
//
// 由 app 包在启动时创建一次，所有场景共用。
// Audio/Settings/Saves/Physics 均可为 nil，场景会降级处理。
type Services struct {
	Resources *game.ResourceManager
	Scenes    *game.SceneManager
	Audio     game.SoundPlayer
	Settings  *game.SettingsManager
	Saves     *game.SaveManager
	Physics   *config.PhysicsConfig

	// IsMobile 运行在移动端（或通过环境变量模拟）
	IsMobile bool
}

// showTouchControls 是否显示虚拟按键
func (s *Services) showTouchControls() bool {
	if s.Settings == nil {
		return s.IsMobile
	}
	return s.Settings.ShowTouchControls(s.IsMobile)
}
