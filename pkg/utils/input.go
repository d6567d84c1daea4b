package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppendPointerPositions 追加当前所有活动指针的位置
//
// 包含所有触点；桌面端按住鼠标左键时光标位置也算作一个触点，
// 方便在没有触摸屏的机器上调试虚拟按键。
func AppendPointerPositions(dst []image.Point) []image.Point {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, image.Pt(x, y))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, image.Pt(x, y))
	}
	return dst
}
