package systems

import (
	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/ecs"
)

// AnimationSystem 推进所有 spritesheet 帧动画
//
// 已收集的物品不再更新动画。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 用本帧完整的 deltaTime 推进动画（每个实体每帧最多前进一帧）
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager) {
		if c, ok := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id); ok && c.IsCollected() {
			continue
		}
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		anim.Advance(deltaTime)
	}
}
