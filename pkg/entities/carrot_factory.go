package entities

import (
	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
)

// NewCarrotEntity 创建一根胡萝卜（16x16，4帧循环动画，每帧0.2秒）
func NewCarrotEntity(em *ecs.EntityManager, rm *game.ResourceManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  config.CarrotSize,
		Height: config.CarrotSize,
	})
	ecs.AddComponent(em, id, &components.CollectibleComponent{Kind: components.CollectibleCarrot})
	ecs.AddComponent(em, id, newSprite(rm, game.ImageCarrot, int(config.CarrotSize), int(config.CarrotSize), config.CarrotSize, config.CarrotSize))
	ecs.AddComponent(em, id, &components.AnimationComponent{
		TotalFrames:   frameCount(rm, game.ImageCarrot, config.CarrotFrames),
		FrameDuration: config.CarrotFrameDuration,
	})

	return id
}
