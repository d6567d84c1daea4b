package input

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Device 输入设备，每帧轮询一次并把事件写入 State
type Device interface {
	Poll(state *State)
}

// DefaultKeyBindings 默认键位
var DefaultKeyBindings = map[ebiten.Key]Action{
	ebiten.KeyArrowUp:    ActionUp,
	ebiten.KeyW:          ActionUp,
	ebiten.KeySpace:      ActionUp,
	ebiten.KeyArrowLeft:  ActionLeft,
	ebiten.KeyA:          ActionLeft,
	ebiten.KeyArrowRight: ActionRight,
	ebiten.KeyD:          ActionRight,
	ebiten.KeyX:          ActionAction,
}

// KeyboardDevice 物理键盘
//
// 按住的键每帧都会投递一次 Press（等同浏览器的按键重复），
// 由 State 负责边沿检测；释放时投递一次 Release。
// 同时跟踪窗口焦点：重新获得焦点时投递 VisibilityChange(true)。
type KeyboardDevice struct {
	bindings   map[ebiten.Key]Action
	held       map[Action]bool
	suppressed map[Action]bool // 焦点恢复时仍按住的键，需先释放才会再次生效
	focused    bool

	isKeyPressed func(ebiten.Key) bool
	isFocused    func() bool
}

// NewKeyboardDevice 使用 ebiten 轮询创建键盘设备
// bindings 为 nil 时使用 DefaultKeyBindings
func NewKeyboardDevice(bindings map[ebiten.Key]Action) *KeyboardDevice {
	return newKeyboardDevice(bindings, ebiten.IsKeyPressed, ebiten.IsFocused)
}

func newKeyboardDevice(bindings map[ebiten.Key]Action, isKeyPressed func(ebiten.Key) bool, isFocused func() bool) *KeyboardDevice {
	if bindings == nil {
		bindings = DefaultKeyBindings
	}
	return &KeyboardDevice{
		bindings:     bindings,
		held:         make(map[Action]bool),
		suppressed:   make(map[Action]bool),
		focused:      true,
		isKeyPressed: isKeyPressed,
		isFocused:    isFocused,
	}
}

// Poll 轮询键盘与焦点
func (k *KeyboardDevice) Poll(state *State) {
	focused := k.isFocused()
	regained := focused && !k.focused
	if focused != k.focused {
		k.focused = focused
		state.VisibilityChange(focused)
	}
	if !focused {
		return
	}

	down := make(map[Action]bool, len(k.bindings))
	for key, action := range k.bindings {
		if k.isKeyPressed(key) {
			down[action] = true
		}
	}

	if regained {
		log.Printf("[InputSystem] 窗口重新获得焦点，清空按键状态")
		k.held = make(map[Action]bool)
		k.suppressed = make(map[Action]bool, len(down))
		for action := range down {
			k.suppressed[action] = true
		}
	}

	for action := range k.suppressed {
		if !down[action] {
			delete(k.suppressed, action)
		}
	}
	for action := range k.suppressed {
		delete(down, action)
	}

	for _, action := range AllActions() {
		switch {
		case down[action]:
			state.Press(SourceKeyboard, action)
		case k.held[action]:
			state.Release(SourceKeyboard, action)
		}
	}
	k.held = down
}
