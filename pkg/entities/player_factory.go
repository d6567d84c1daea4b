package entities

import (
	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
)

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: EntityManager 实例
//   - rm: ResourceManager 实例，用于获取玩家 spritesheet
//   - cfg: 关卡中的玩家配置（出生点、尺寸、碰撞盒）
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, rm *game.ResourceManager, cfg config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.Spawn.X, Y: cfg.Spawn.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})

	// 碰撞盒比精灵窄，偏移相对精灵左上角
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:   cfg.Hitbox.Width,
		Height:  cfg.Hitbox.Height,
		OffsetX: cfg.Hitbox.X,
		OffsetY: cfg.Hitbox.Y,
	})

	ecs.AddComponent(em, id, &components.PlayerComponent{Row: components.PlayerRowIdle})
	ecs.AddComponent(em, id, newSprite(rm, game.ImagePlayer, int(cfg.Width), int(cfg.Height), cfg.Width, cfg.Height))
	ecs.AddComponent(em, id, &components.AnimationComponent{
		TotalFrames:   frameCount(rm, game.ImagePlayer, config.PlayerFrames),
		FrameDuration: config.PlayerFrameDuration,
	})

	return id
}
