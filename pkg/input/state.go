// Package input 管理玩家的逻辑按键状态
//
// 键盘和触摸两类输入设备都写入同一个 State；模拟逻辑每帧开始时
// 通过 Snapshot() 取一次只读快照，整帧只读这个快照。
package input

import "sync"

// Action 逻辑按键
type Action int

const (
	// ActionUp 跳跃（边沿触发）
	ActionUp Action = iota
	// ActionLeft 向左移动（电平触发）
	ActionLeft
	// ActionRight 向右移动（电平触发）
	ActionRight
	// ActionAction 把手里的胡萝卜兑换成金币（边沿触发）
	ActionAction

	actionCount
)

var actionNames = [actionCount]string{"up", "left", "right", "action"}

// String 返回逻辑按键名
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction 按名字解析逻辑按键（"up"/"left"/"right"/"action"）
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// AllActions 返回全部逻辑按键
func AllActions() []Action {
	return []Action{ActionUp, ActionLeft, ActionRight, ActionAction}
}

// Source 投递按键事件的输入设备（位掩码）
type Source uint8

const (
	// SourceKeyboard 物理键盘
	SourceKeyboard Source = 1 << iota
	// SourceTouch 触摸覆盖层
	SourceTouch
)

// State 逻辑按键状态
//
// 只有输入设备写入，模拟逻辑只通过 Snapshot 读取。
// 每个逻辑按键记录哪些设备正按着它：任一设备按住即视为按下，
// 全部设备都松开才视为释放。
// 读写由 RWMutex 保护，设备可以在任意 goroutine 中投递事件。
type State struct {
	mu            sync.RWMutex
	heldBy        [actionCount]Source
	jumpQueued    bool
	convertQueued bool
}

// NewState 创建空的按键状态
func NewState() *State {
	return &State{}
}

// KeyDown 处理键盘的按下事件，等同 Press(SourceKeyboard, a)
func (s *State) KeyDown(a Action) {
	s.Press(SourceKeyboard, a)
}

// KeyUp 处理键盘的释放事件，等同 Release(SourceKeyboard, a)
func (s *State) KeyUp(a Action) {
	s.Release(SourceKeyboard, a)
}

// Press 处理 src 的按下事件
//
// 只有按键从"无设备按住"变为按下时才触发跳跃或兑换；
// 同一设备的重复按下（如系统按键重复）或另一设备的叠加按下都不会重复触发。
func (s *State) Press(src Source, a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	wasPressed := s.heldBy[a] != 0
	s.heldBy[a] |= src
	if wasPressed {
		return
	}

	switch a {
	case ActionUp:
		s.jumpQueued = true
	case ActionAction:
		s.convertQueued = true
	}
}

// Release 处理 src 的释放事件；其他设备仍按住时按键保持按下
func (s *State) Release(src Source, a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	s.mu.Lock()
	s.heldBy[a] &^= src
	s.mu.Unlock()
}

// VisibilityChange 处理页面/窗口可见性变化
//
// 重新可见时清空所有按键和未消费的一次性请求，
// 隐藏期间丢失的释放事件不会导致按键"卡住"。
func (s *State) VisibilityChange(visible bool) {
	if !visible {
		return
	}
	s.Reset()
}

// Reset 清空所有按键状态
func (s *State) Reset() {
	s.mu.Lock()
	s.heldBy = [actionCount]Source{}
	s.jumpQueued = false
	s.convertQueued = false
	s.mu.Unlock()
}

// IsPressed 返回按键当前是否按下
func (s *State) IsPressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heldBy[a] != 0
}

// Snapshot 取一帧的输入快照，并消费排队中的跳跃/兑换请求
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pressed [actionCount]bool
	for a, src := range s.heldBy {
		pressed[a] = src != 0
	}
	snap := Snapshot{
		pressed: pressed,
		Jump:    s.jumpQueued,
		Convert: s.convertQueued,
	}
	s.jumpQueued = false
	s.convertQueued = false
	return snap
}

// Snapshot 某一帧开始时的输入状态（值类型，不可变）
type Snapshot struct {
	pressed [actionCount]bool

	// Jump 本帧需要执行一次跳跃
	Jump bool
	// Convert 本帧需要执行一次兑换
	Convert bool
}

// Pressed 返回快照中按键是否按下
func (s Snapshot) Pressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.pressed[a]
}

// Horizontal 返回水平方向输入：-1 左，1 右，0 无或同时按下
func (s Snapshot) Horizontal() float64 {
	dir := 0.0
	if s.pressed[ActionLeft] {
		dir--
	}
	if s.pressed[ActionRight] {
		dir++
	}
	return dir
}
