package systems

import (
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/utils"
)

// CameraFollowSpeed 摄像机追赶目标的速度系数（每秒）
const CameraFollowSpeed = 8.0

// CameraSystem 水平跟随玩家的摄像机
//
// 目标位置使玩家碰撞盒居中，并限制在 [0, worldWidth-screenWidth] 内；
// 结果写入 GameState.CameraX，渲染时 屏幕X = 世界X - CameraX。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	worldWidth    float64
	screenWidth   float64
}

// NewCameraSystem 创建摄像机系统
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState, worldWidth, screenWidth float64) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		gameState:     gs,
		worldWidth:    worldWidth,
		screenWidth:   screenWidth,
	}
}

// Target 返回摄像机目标X
func (cs *CameraSystem) Target() float64 {
	maxX := cs.worldWidth - cs.screenWidth
	if maxX < 0 {
		maxX = 0
	}
	box, ok := PlayerHitbox(cs.entityManager)
	if !ok {
		return utils.Clamp(cs.gameState.CameraX, 0, maxX)
	}
	return utils.Clamp(box.CenterX()-cs.screenWidth/2, 0, maxX)
}

// Update 平滑移动到目标位置
func (cs *CameraSystem) Update(dt float64) {
	target := cs.Target()
	t := dt * CameraFollowSpeed
	if t >= 1 {
		cs.gameState.CameraX = target
		return
	}
	cs.gameState.CameraX = utils.Lerp(cs.gameState.CameraX, target, t)
}

// SnapToTarget 立即跳到目标位置（关卡开始时使用）
func (cs *CameraSystem) SnapToTarget() {
	cs.gameState.CameraX = cs.Target()
}
