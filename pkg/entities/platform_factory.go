package entities

import (
	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/utils"
)

// PlatformTileSize 平台贴图尺寸（像素）
const PlatformTileSize = 16.0

// NewPlatformEntity 创建实心平台
func NewPlatformEntity(em *ecs.EntityManager, rm *game.ResourceManager, bounds utils.Rect) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: bounds.X, Y: bounds.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: bounds.Width, Height: bounds.Height})
	ecs.AddComponent(em, id, &components.PlatformComponent{TileSize: PlatformTileSize})
	ecs.AddComponent(em, id, newSprite(rm, game.ImagePlatform, 0, 0, bounds.Width, bounds.Height))

	return id
}

// LevelEntities 关卡初始化后创建的实体
type LevelEntities struct {
	Player    ecs.EntityID
	Platforms []ecs.EntityID
	Carrots   []ecs.EntityID
}

// BuildLevel 按关卡配置创建平台、胡萝卜和玩家
func BuildLevel(em *ecs.EntityManager, rm *game.ResourceManager, level *config.LevelConfig) LevelEntities {
	var out LevelEntities
	for _, p := range level.Platforms {
		out.Platforms = append(out.Platforms, NewPlatformEntity(em, rm, p.Rect()))
	}
	for _, c := range level.Carrots {
		out.Carrots = append(out.Carrots, NewCarrotEntity(em, rm, c.X, c.Y))
	}
	out.Player = NewPlayerEntity(em, rm, level.Player)
	return out
}
