package entities

import (
	"github.com/decker502/carrothop/pkg/components"
	"github.com/decker502/carrothop/pkg/game"
)

// newSprite 从资源清单创建精灵组件
// 清单中没有帧尺寸时使用 defaultFrameW/defaultFrameH
func newSprite(rm *game.ResourceManager, resourceID string, defaultFrameW, defaultFrameH int, width, height float64) *components.SpriteComponent {
	frameW, frameH := defaultFrameW, defaultFrameH
	if def, ok := rm.ImageDef(resourceID); ok && def.FrameWidth > 0 && def.FrameHeight > 0 {
		frameW, frameH = def.FrameWidth, def.FrameHeight
	}
	return &components.SpriteComponent{
		Source:      rm.Image(resourceID),
		FrameWidth:  frameW,
		FrameHeight: frameH,
		Width:       width,
		Height:      height,
	}
}

// frameCount 返回清单中声明的帧数，未声明时返回 fallback
func frameCount(rm *game.ResourceManager, resourceID string, fallback int) int {
	if def, ok := rm.ImageDef(resourceID); ok && def.Frames > 0 {
		return def.Frames
	}
	return fallback
}
