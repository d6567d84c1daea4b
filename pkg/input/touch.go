package input

import (
	"image"

	"github.com/decker502/carrothop/pkg/utils"
)

// TouchButton 触摸覆盖层上的一个虚拟按键
type TouchButton struct {
	Action Action
	Label  string
	Bounds utils.Rect // 屏幕坐标
}

// DefaultTouchLayout 返回默认的虚拟按键布局
// 左下角为左右方向键，右下角为兑换键和跳跃键
func DefaultTouchLayout(screenWidth, screenHeight float64) []TouchButton {
	const size = 56.0
	const margin = 12.0
	y := screenHeight - size - margin
	return []TouchButton{
		{Action: ActionLeft, Label: "<", Bounds: utils.NewRect(margin, y, size, size)},
		{Action: ActionRight, Label: ">", Bounds: utils.NewRect(margin*2+size, y, size, size)},
		{Action: ActionAction, Label: "X", Bounds: utils.NewRect(screenWidth-(margin+size)*2, y, size, size)},
		{Action: ActionUp, Label: "^", Bounds: utils.NewRect(screenWidth-margin-size, y, size, size)},
	}
}

// TouchDevice 触摸覆盖层
//
// 每帧把落在虚拟按键内的触点转换成 Press(SourceTouch)，触点离开或抬起时投递 Release。
type TouchDevice struct {
	buttons []TouchButton
	held    map[Action]bool
	touches func() []image.Point
}

// NewTouchDevice 使用 ebiten 触摸轮询创建触摸设备
func NewTouchDevice(buttons []TouchButton) *TouchDevice {
	return newTouchDevice(buttons, func() []image.Point {
		return utils.AppendPointerPositions(nil)
	})
}

func newTouchDevice(buttons []TouchButton, touches func() []image.Point) *TouchDevice {
	return &TouchDevice{
		buttons: buttons,
		held:    make(map[Action]bool),
		touches: touches,
	}
}

// Buttons 返回按键布局
func (d *TouchDevice) Buttons() []TouchButton {
	return d.buttons
}

// IsHeld 返回虚拟按键当前是否被触摸（用于绘制按下效果）
func (d *TouchDevice) IsHeld(a Action) bool {
	return d.held[a]
}

// Poll 轮询触点
func (d *TouchDevice) Poll(state *State) {
	points := d.touches()

	down := make(map[Action]bool, len(d.buttons))
	for _, b := range d.buttons {
		for _, p := range points {
			if b.Bounds.Contains(float64(p.X), float64(p.Y)) {
				down[b.Action] = true
				break
			}
		}
	}

	for _, b := range d.buttons {
		switch {
		case down[b.Action]:
			state.Press(SourceTouch, b.Action)
		case d.held[b.Action]:
			state.Release(SourceTouch, b.Action)
		}
	}
	d.held = down
}
