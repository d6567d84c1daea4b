package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (loading screen, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the wall-clock time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
type Saveable interface {
	// SaveOnExit 在游戏关闭时保存状态
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
