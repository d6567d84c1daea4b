package systems

import (
	"log"
	"math"

	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/input"
	"github.com/decker502/carrothop/pkg/utils"
)

// PlayerMovementSystem 玩家移动、跳跃、重力与平台碰撞
//
// 物理按不超过 MaxPhysicsStep 的等长子步积分，单帧最多模拟
// MaxPhysicsTimePerFrame 秒，避免卡顿后的大 deltaTime 让玩家穿过平台。
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	physics       *config.PhysicsConfig
	worldWidth    float64
	sound         game.SoundPlayer
}

// NewPlayerMovementSystem 创建玩家移动系统
//
// 参数:
//   - em: 实体管理器
//   - physics: 物理参数，nil 时使用默认值
//   - worldWidth: 世界宽度，玩家碰撞盒被限制在 [0, worldWidth] 内
//   - sound: 跳跃音效播放器，可为 nil
func NewPlayerMovementSystem(em *ecs.EntityManager, physics *config.PhysicsConfig, worldWidth float64, sound game.SoundPlayer) *PlayerMovementSystem {
	if physics == nil {
		physics = config.DefaultPhysicsConfig()
	}
	return &PlayerMovementSystem{
		entityManager: em,
		physics:       physics,
		worldWidth:    worldWidth,
		sound:         sound,
	}
}

// Update 按输入快照更新所有玩家实体
func (s *PlayerMovementSystem) Update(deltaTime float64, snap input.Snapshot) {
	players := ecs.GetEntitiesWith4[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.CollisionComponent,
	](s.entityManager)
	if len(players) == 0 {
		return
	}

	platforms := s.platformBounds()
	steps, step := subSteps(deltaTime)

	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		dir := snap.Horizontal()
		vel.VX = dir * s.physics.MoveSpeed
		if dir < 0 {
			player.FacingLeft = true
		} else if dir > 0 {
			player.FacingLeft = false
		}

		// 跳跃请求只在本帧有效，空中按下不会缓存到落地
		if snap.Jump && player.OnGround {
			vel.VY = -s.physics.JumpSpeed
			player.OnGround = false
			if s.sound != nil {
				s.sound.PlaySound(game.SoundJump)
			}
		}

		for i := 0; i < steps; i++ {
			s.integrate(player, pos, vel, col, platforms, step)
		}

		s.updateAnimationRow(id, player, vel)
	}
}

// subSteps 把一帧的时间切分为等长子步
func subSteps(deltaTime float64) (int, float64) {
	if deltaTime <= 0 {
		return 0, 0
	}
	if deltaTime > config.MaxPhysicsTimePerFrame {
		deltaTime = config.MaxPhysicsTimePerFrame
	}
	// 减去一个极小量，避免 (1/60)/(1/120) 这类浮点误差多切出一步
	n := int(math.Ceil(deltaTime/config.MaxPhysicsStep - 1e-9))
	if n < 1 {
		n = 1
	}
	return n, deltaTime / float64(n)
}

func (s *PlayerMovementSystem) integrate(
	player *components.PlayerComponent,
	pos *components.PositionComponent,
	vel *components.VelocityComponent,
	col *components.CollisionComponent,
	platforms []utils.Rect,
	dt float64,
) {
	vel.VY += s.physics.Gravity * dt
	if vel.VY > s.physics.MaxFallSpeed {
		vel.VY = s.physics.MaxFallSpeed
	}

	// 先水平后垂直，分轴解决穿透
	pos.X += vel.VX * dt
	for _, p := range platforms {
		box := col.Bounds(pos)
		if !box.Overlaps(p) {
			continue
		}
		if vel.VX > 0 {
			pos.X = p.X - col.OffsetX - col.Width
		} else if vel.VX < 0 {
			pos.X = p.Right() - col.OffsetX
		}
	}

	box := col.Bounds(pos)
	if box.X < 0 {
		pos.X = -col.OffsetX
	} else if s.worldWidth > 0 && box.Right() > s.worldWidth {
		pos.X = s.worldWidth - col.OffsetX - col.Width
	}

	pos.Y += vel.VY * dt
	player.OnGround = false
	for _, p := range platforms {
		box := col.Bounds(pos)
		if !box.Overlaps(p) {
			continue
		}
		if vel.VY > 0 {
			pos.Y = p.Y - col.OffsetY - col.Height
			vel.VY = 0
			player.OnGround = true
		} else if vel.VY < 0 {
			pos.Y = p.Bottom() - col.OffsetY
			vel.VY = 0
		}
	}
}

func (s *PlayerMovementSystem) updateAnimationRow(id ecs.EntityID, player *components.PlayerComponent, vel *components.VelocityComponent) {
	row := components.PlayerRowIdle
	switch {
	case !player.OnGround:
		row = components.PlayerRowJump
	case vel.VX != 0:
		row = components.PlayerRowRun
	}

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Row = int(row)
		sprite.FlipX = player.FacingLeft
	}
	if row != player.Row {
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
			anim.Reset()
		}
		log.Printf("[PlayerMovementSystem] Player %d animation row %d -> %d", id, player.Row, row)
		player.Row = row
	}
}

func (s *PlayerMovementSystem) platformBounds() []utils.Rect {
	ids := ecs.GetEntitiesWith3[
		*components.PlatformComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	bounds := make([]utils.Rect, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		bounds = append(bounds, col.Bounds(pos))
	}
	return bounds
}
