package systems

import (
	"image"

	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSound) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// drawCall 记录一次 DrawImage 调用
type drawCall struct {
	src image.Rectangle
	tx  float64
	ty  float64
}

// recordingCanvas 记录绘制调用，不做像素读取
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	tx, ty := op.GeoM.Apply(0, 0)
	c.calls = append(c.calls, drawCall{src: img.Bounds(), tx: tx, ty: ty})
}

// fakeSource 可控加载状态的图片
type fakeSource struct {
	img   *ebiten.Image
	ready bool
}

func (s *fakeSource) Ready() bool { return s.ready }

func (s *fakeSource) Image() *ebiten.Image {
	if !s.ready {
		return nil
	}
	return s.img
}

// snapshotOf 构造按下指定按键的输入快照（跳跃/兑换请求随按下边沿产生）
func snapshotOf(actions ...input.Action) input.Snapshot {
	st := input.NewState()
	for _, a := range actions {
		st.KeyDown(a)
	}
	return st.Snapshot()
}

func addPlatform(em *ecs.EntityManager, x, y, w, h float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: w, Height: h})
	ecs.AddComponent(em, id, &components.PlatformComponent{TileSize: 16})
	return id
}

// addPlayer 玩家精灵 16x24，碰撞盒 (3,4,10,20)
func addPlayer(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: 10, Height: 20, OffsetX: 3, OffsetY: 4})
	ecs.AddComponent(em, id, &components.PlayerComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{FrameWidth: 16, FrameHeight: 24, Width: 16, Height: 24})
	ecs.AddComponent(em, id, &components.AnimationComponent{TotalFrames: 4, FrameDuration: 0.12})
	return id
}

func addCarrot(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: 16, Height: 16})
	ecs.AddComponent(em, id, &components.CollectibleComponent{Kind: components.CollectibleCarrot})
	ecs.AddComponent(em, id, &components.AnimationComponent{TotalFrames: 4, FrameDuration: 0.2})
	return id
}
