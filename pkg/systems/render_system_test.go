package systems

import (
	"errors"
	"image"
	"testing"

	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestDrawSpriteUsesCurrentFrame(t *testing.T) {
	canvas := &recordingCanvas{}
	sprite := &components.SpriteComponent{
		Source:      &fakeSource{img: ebiten.NewImage(64, 16), ready: true},
		FrameWidth:  16,
		FrameHeight: 16,
		Width:       16,
		Height:      16,
	}
	anim := &components.AnimationComponent{TotalFrames: 4, CurrentFrame: 2}
	pos := &components.PositionComponent{X: 300, Y: 120}

	if !DrawSprite(canvas, sprite, anim, pos, 100) {
		t.Fatal("ready sprite should draw")
	}
	if len(canvas.calls) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(canvas.calls))
	}
	call := canvas.calls[0]
	if call.src != image.Rect(32, 0, 48, 16) {
		t.Errorf("expected source rect of frame 2, got %v", call.src)
	}
	if call.tx != 200 || call.ty != 120 {
		t.Errorf("expected screen position (200,120), got (%f,%f)", call.tx, call.ty)
	}
}

func TestDrawSpriteSkipsNotReady(t *testing.T) {
	canvas := &recordingCanvas{}
	sprite := &components.SpriteComponent{
		Source:      &fakeSource{img: ebiten.NewImage(64, 16)},
		FrameWidth:  16,
		FrameHeight: 16,
	}
	if DrawSprite(canvas, sprite, nil, &components.PositionComponent{}, 0) {
		t.Error("sprite with an unloaded image must not draw")
	}

	failed := &components.SpriteComponent{Source: game.NewFailedImageAsset("x.png", errors.New("decode failed"))}
	if DrawSprite(canvas, failed, nil, &components.PositionComponent{}, 0) {
		t.Error("sprite with a failed image must not draw")
	}
	if len(canvas.calls) != 0 {
		t.Errorf("expected no draw calls, got %d", len(canvas.calls))
	}
}

func TestDrawSpriteRowAndFlip(t *testing.T) {
	canvas := &recordingCanvas{}
	sprite := &components.SpriteComponent{
		Source:      &fakeSource{img: ebiten.NewImage(64, 72), ready: true},
		FrameWidth:  16,
		FrameHeight: 24,
		Row:         1,
		FlipX:       true,
	}
	DrawSprite(canvas, sprite, &components.AnimationComponent{CurrentFrame: 3}, &components.PositionComponent{X: 10, Y: 20}, 0)

	call := canvas.calls[0]
	if call.src != image.Rect(48, 24, 64, 48) {
		t.Errorf("expected frame 3 of row 1, got %v", call.src)
	}
	// 水平翻转后左上角仍落在 (10,20)：原点映射到帧宽处
	if call.tx != 26 || call.ty != 20 {
		t.Errorf("expected flipped origin at (26,20), got (%f,%f)", call.tx, call.ty)
	}
}

func TestDrawTiled(t *testing.T) {
	canvas := &recordingCanvas{}
	sprite := &components.SpriteComponent{
		Source: &fakeSource{img: ebiten.NewImage(16, 16), ready: true},
		Width:  40,
		Height: 16,
	}
	n := DrawTiled(canvas, sprite, 16, &components.PositionComponent{X: 0, Y: 100}, 0)
	if n != 3 {
		t.Fatalf("expected 3 tiles for a 40px platform, got %d", n)
	}
	if last := canvas.calls[2]; last.src.Dx() != 8 || last.tx != 32 {
		t.Errorf("last tile should be cropped to 8px at x=32, got width %d at %f", last.src.Dx(), last.tx)
	}
}

func TestRenderSystemSkipsCollected(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState("t-1", 2, 10)
	src := &fakeSource{img: ebiten.NewImage(64, 16), ready: true}

	for _, x := range []float64{10, 50} {
		id := addCarrot(em, x, 10)
		ecs.AddComponent(em, id, &components.SpriteComponent{Source: src, FrameWidth: 16, FrameHeight: 16, Width: 16, Height: 16})
	}
	first := ecs.GetEntitiesWith1[*components.CollectibleComponent](em)[0]
	c, _ := ecs.GetComponent[*components.CollectibleComponent](em, first)
	c.Collect()

	canvas := &recordingCanvas{}
	NewRenderSystem(em, gs).Draw(canvas)
	if len(canvas.calls) != 1 {
		t.Fatalf("expected only the active carrot to draw, got %d calls", len(canvas.calls))
	}
	if canvas.calls[0].tx != 50 {
		t.Errorf("expected the carrot at x=50, got %f", canvas.calls[0].tx)
	}
}
