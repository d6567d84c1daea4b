package systems

import (
	"log"

	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/utils"
)

// CheckCollision 判断可收集物品是否与玩家碰撞盒重叠
//
// 已收集的物品永远返回 false；仅边缘接触不算碰撞。
func CheckCollision(
	collectible *components.CollectibleComponent,
	pos *components.PositionComponent,
	col *components.CollisionComponent,
	player utils.Rect,
) bool {
	if collectible.IsCollected() {
		return false
	}
	return col.Bounds(pos).Overlaps(player)
}

// CollectionSystem 检测玩家与胡萝卜的碰撞并完成收集
type CollectionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	sound         game.SoundPlayer
}

// NewCollectionSystem 创建收集系统
func NewCollectionSystem(em *ecs.EntityManager, gs *game.GameState, sound game.SoundPlayer) *CollectionSystem {
	return &CollectionSystem{
		entityManager: em,
		gameState:     gs,
		sound:         sound,
	}
}

// Update 用玩家碰撞盒测试所有未收集的物品，返回本帧收集的数量
func (s *CollectionSystem) Update() int {
	playerBox, ok := PlayerHitbox(s.entityManager)
	if !ok {
		return 0
	}

	collected := 0
	ids := ecs.GetEntitiesWith3[
		*components.CollectibleComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)
	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		if !CheckCollision(c, pos, col, playerBox) || !c.Collect() {
			continue
		}
		collected++
		if c.Kind == components.CollectibleCarrot {
			s.gameState.CollectCarrot()
		}
		if s.sound != nil {
			s.sound.PlaySound(game.SoundCollect)
		}
		log.Printf("[CollectionSystem] Collected %s %d (%d/%d)", c.Kind, id,
			s.gameState.CollectedCarrots, s.gameState.TotalCarrots)
	}
	return collected
}

// PlayerHitbox 返回第一个玩家实体的世界坐标碰撞盒
func PlayerHitbox(em *ecs.EntityManager) (utils.Rect, bool) {
	ids := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](em)
	if len(ids) == 0 {
		return utils.Rect{}, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, ids[0])
	return col.Bounds(pos), true
}
