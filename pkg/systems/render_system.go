package systems

import (
	"image"
	"math"

	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas 渲染目标，*ebiten.Image 满足此接口
type Canvas interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

var _ Canvas = (*ebiten.Image)(nil)

// RenderSystem 绘制游戏世界实体
//
// 绘制顺序：平台 → 可收集物品 → 玩家。
// 图片尚未加载完成（或加载失败）的实体本帧直接跳过。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Draw 绘制所有世界实体
func (s *RenderSystem) Draw(canvas Canvas) {
	cameraX := s.gameState.CameraX

	for _, id := range ecs.GetEntitiesWith3[*components.PlatformComponent, *components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		platform, _ := ecs.GetComponent[*components.PlatformComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		DrawTiled(canvas, sprite, platform.TileSize, pos, cameraX)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.CollectibleComponent, *components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		c, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
		if c.IsCollected() {
			continue
		}
		s.drawEntity(canvas, id, cameraX)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		s.drawEntity(canvas, id, cameraX)
	}
}

func (s *RenderSystem) drawEntity(canvas Canvas, id ecs.EntityID, cameraX float64) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	DrawSprite(canvas, sprite, anim, pos, cameraX)
}

// DrawSprite 把精灵当前帧绘制到画布
//
// 源区域为 (frame*FrameWidth, Row*FrameHeight, FrameWidth, FrameHeight)，
// 缩放到 Width x Height 后平移到 (pos.X-cameraX, pos.Y)。
// anim 可为 nil（始终绘制第0帧）。返回是否实际绘制。
func DrawSprite(canvas Canvas, sprite *components.SpriteComponent, anim *components.AnimationComponent, pos *components.PositionComponent, cameraX float64) bool {
	if sprite.Hidden || sprite.Source == nil || !sprite.Source.Ready() {
		return false
	}
	img := sprite.Source.Image()
	if img == nil {
		return false
	}

	frame := 0
	if anim != nil {
		frame = anim.CurrentFrame
	}
	src := frameRect(img.Bounds(), sprite.FrameWidth, sprite.FrameHeight, frame, sprite.Row)
	if src.Empty() {
		return false
	}
	fw, fh := float64(src.Dx()), float64(src.Dy())

	w, h := sprite.Width, sprite.Height
	if w == 0 {
		w = fw
	}
	if h == 0 {
		h = fh
	}

	op := &ebiten.DrawImageOptions{}
	if sprite.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(fw, 0)
	}
	op.GeoM.Scale(w/fw, h/fh)
	op.GeoM.Translate(math.Round(pos.X-cameraX), math.Round(pos.Y))
	canvas.DrawImage(img.SubImage(src).(*ebiten.Image), op)
	return true
}

// frameRect 计算 spritesheet 中某一帧的源区域
// frameWidth/frameHeight 为 0 时使用整张图片
func frameRect(bounds image.Rectangle, frameWidth, frameHeight, frame, row int) image.Rectangle {
	if frameWidth <= 0 || frameHeight <= 0 {
		return bounds
	}
	x := bounds.Min.X + frame*frameWidth
	y := bounds.Min.Y + row*frameHeight
	return image.Rect(x, y, x+frameWidth, y+frameHeight).Intersect(bounds)
}

// DrawTiled 用贴图平铺填满精灵的 Width x Height 区域（用于平台）
//
// 每块贴图绘制为 tileSize x tileSize，右侧和底部不足一块时裁剪源图。
// 返回绘制的贴图块数。
func DrawTiled(canvas Canvas, sprite *components.SpriteComponent, tileSize float64, pos *components.PositionComponent, cameraX float64) int {
	if sprite.Hidden || sprite.Source == nil || !sprite.Source.Ready() || tileSize <= 0 {
		return 0
	}
	img := sprite.Source.Image()
	if img == nil {
		return 0
	}
	b := img.Bounds()
	scaleX := tileSize / float64(b.Dx())
	scaleY := tileSize / float64(b.Dy())

	drawn := 0
	for ty := 0.0; ty < sprite.Height; ty += tileSize {
		th := math.Min(tileSize, sprite.Height-ty)
		for tx := 0.0; tx < sprite.Width; tx += tileSize {
			tw := math.Min(tileSize, sprite.Width-tx)
			src := image.Rect(b.Min.X, b.Min.Y,
				b.Min.X+int(math.Ceil(tw/scaleX)), b.Min.Y+int(math.Ceil(th/scaleY))).Intersect(b)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX, scaleY)
			op.GeoM.Translate(math.Round(pos.X+tx-cameraX), math.Round(pos.Y+ty))
			canvas.DrawImage(img.SubImage(src).(*ebiten.Image), op)
			drawn++
		}
	}
	return drawn
}
