package components

import "github.com/hajimehoshi/ebiten/v2"

// ImageSource 可异步加载的图片
// Ready 返回 false 时 Image 返回 nil
type ImageSource interface {
	Ready() bool
	Image() *ebiten.Image
}

// SpriteComponent 基于 spritesheet 的精灵
//
// 源图片按 FrameWidth x FrameHeight 切分为网格：
// 列由 AnimationComponent.CurrentFrame 决定，行由 Row 决定。
// 绘制时源区域缩放到 Width x Height 的目标矩形。
type SpriteComponent struct {
	Source      ImageSource
	FrameWidth  int
	FrameHeight int
	Row         int

	Width  float64 // 目标宽度（像素）
	Height float64 // 目标高度（像素）
	FlipX  bool    // 水平翻转（角色朝左）
	Hidden bool
}
