package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/input"
	"github.com/decker502/carrothop/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// debugCharWidth ebitenutil 调试字体的字符宽度（像素）
	debugCharWidth = 6

	// resultIntroDuration 结果界面入场动画时长（秒）
	resultIntroDuration = 0.5
	// resultIntroOffset 结果文字从上方滑入的距离（像素）
	resultIntroOffset = 60.0
)

var (
	skyColor         = color.RGBA{R: 120, G: 190, B: 235, A: 255}
	hudPanelColor    = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	wonOverlayColor  = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	lostOverlayColor = color.RGBA{R: 100, G: 0, B: 0, A: 170}
	touchIdleColor   = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	touchHeldColor   = color.RGBA{R: 255, G: 200, B: 80, A: 140}
	hitboxColor      = color.RGBA{R: 255, G: 0, B: 0, A: 200}
)

// Draw 绘制关卡：背景 → 平台 → 胡萝卜 → 玩家 → HUD → 结果 → 虚拟按键
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.renderSystem.Draw(screen)
	s.drawHitboxes(screen)
	s.drawHUD(screen)
	s.drawResultOverlay(screen)
	s.drawTouchControls(screen)
}

// drawBackground 背景按摄像机一半的速度滚动（视差），水平平铺
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	screen.Fill(skyColor)

	img := s.background.Image()
	if img == nil {
		return
	}
	b := img.Bounds()
	scale := float64(WindowHeight) / float64(b.Dy())
	w := float64(b.Dx()) * scale

	offset := -math.Mod(s.gameState.CameraX*0.5, w)
	for x := offset; x < WindowWidth; x += w {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(math.Round(x), 0)
		screen.DrawImage(img, op)
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	gs := s.gameState
	vector.DrawFilledRect(screen, 4, 4, 236, 52, hudPanelColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %s  %s", gs.LevelID, s.level.Name), 10, 6)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Carrots %d/%d  Held %d", gs.CollectedCarrots, gs.TotalCarrots, gs.HeldCarrots), 10, 22)

	coinsX := 10
	if icon := s.coinIcon.Image(); icon != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(12/float64(icon.Bounds().Dx()), 12/float64(icon.Bounds().Dy()))
		op.GeoM.Translate(10, 40)
		screen.DrawImage(icon, op)
		coinsX = 26
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Coins %d/%d", gs.Coins, gs.TargetCoins()), coinsX, 38)

	timer := formatSeconds(gs.Elapsed)
	if remaining := s.levelSystem.RemainingTime(); remaining >= 0 {
		timer = formatSeconds(remaining) + " left"
	}
	ebitenutil.DebugPrintAt(screen, timer, WindowWidth-10-len(timer)*debugCharWidth, 6)

	if s.services.Saves != nil {
		bank := fmt.Sprintf("Bank %d", s.services.Saves.GetBankedCoins())
		ebitenutil.DebugPrintAt(screen, bank, WindowWidth-10-len(bank)*debugCharWidth, 22)
	}
}

func (s *GameScene) drawResultOverlay(screen *ebiten.Image) {
	gs := s.gameState
	var title, detail, hint string
	overlay := wonOverlayColor

	switch gs.Phase {
	case game.PhaseWon:
		title = "LEVEL CLEAR!"
		detail = fmt.Sprintf("%d coins in %s", gs.Coins, formatSeconds(gs.Elapsed))
		if s.newBest {
			detail += "  NEW BEST!"
		}
		hint = "Press UP or X to play again"
		if s.level.NextLevel != "" {
			hint = "Press UP or X for the next level"
		}
	case game.PhaseLost:
		overlay = lostOverlayColor
		title = "YOU FELL!"
		if gs.LoseReason == game.LoseTimeout {
			title = "TIME'S UP!"
		}
		detail = fmt.Sprintf("Carrots %d/%d  Coins %d", gs.CollectedCarrots, gs.TotalCarrots, gs.Coins)
		hint = "Press UP or X to retry"
	default:
		return
	}

	fade, slide := resultIntro(s.resultTime)
	vector.DrawFilledRect(screen, 0, 0, WindowWidth, WindowHeight, scaleAlpha(overlay, fade), false)
	y := WindowHeight/2 - 28 - int(math.Round(resultIntroOffset*(1-slide)))
	for _, line := range []string{title, detail, hint} {
		ebitenutil.DebugPrintAt(screen, line, (WindowWidth-len(line)*debugCharWidth)/2, y)
		y += 20
	}
}

// resultIntro 返回结果界面入场动画的遮罩透明度与文字滑入进度
func resultIntro(elapsed float64) (fade, slide float64) {
	p := elapsed / resultIntroDuration
	return utils.EaseOutCubic(p), utils.EaseOutBack(p)
}

// scaleAlpha 按比例缩放预乘颜色
func scaleAlpha(c color.RGBA, k float64) color.RGBA {
	k = utils.Clamp(k, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

func (s *GameScene) drawTouchControls(screen *ebiten.Image) {
	if s.touch == nil {
		return
	}
	for _, b := range s.touch.Buttons() {
		clr := touchIdleColor
		if s.touch.IsHeld(b.Action) {
			clr = touchHeldColor
		}
		r := b.Bounds
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2, color.White, false)

		label := b.Label
		if b.Action == input.ActionAction {
			label = "$"
		}
		ebitenutil.DebugPrintAt(screen, label,
			int(r.CenterX())-len(label)*debugCharWidth/2, int(r.Y+r.Height/2)-8)
	}
}

// drawHitboxes 调试用：F3 切换显示碰撞盒
func (s *GameScene) drawHitboxes(screen *ebiten.Image) {
	if !s.debugHitboxes {
		return
	}
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.CollisionComponent, *components.PositionComponent](em) {
		if c, ok := ecs.GetComponent[*components.CollectibleComponent](em, id); ok && c.IsCollected() {
			continue
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		r := col.Bounds(pos)
		vector.StrokeRect(screen, float32(r.X-s.gameState.CameraX), float32(r.Y), float32(r.Width), float32(r.Height), 1, hitboxColor, false)
	}
}

// formatSeconds 格式化为 m:ss.s
func formatSeconds(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	m := int(sec) / 60
	return fmt.Sprintf("%d:%04.1f", m, sec-float64(m*60))
}
