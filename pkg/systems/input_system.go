package systems

import (
	"github.com/decker502/carrothop/pkg/input"
)

// InputSystem 轮询输入设备并生成每帧的输入快照
//
// 键盘和触摸覆盖层写入同一个 input.State；
// Update 在每帧开始时调用一次，之后整帧只读取返回的快照。
type InputSystem struct {
	state    *input.State
	devices  []input.Device
	snapshot input.Snapshot
}

// NewInputSystem 创建输入系统
func NewInputSystem(state *input.State, devices ...input.Device) *InputSystem {
	if state == nil {
		state = input.NewState()
	}
	return &InputSystem{
		state:   state,
		devices: devices,
	}
}

// AddDevice 注册输入设备
func (s *InputSystem) AddDevice(d input.Device) {
	s.devices = append(s.devices, d)
}

// State 返回共享的按键状态
func (s *InputSystem) State() *input.State {
	return s.state
}

// Update 轮询所有设备并取本帧快照
func (s *InputSystem) Update() input.Snapshot {
	for _, d := range s.devices {
		d.Poll(s.state)
	}
	s.snapshot = s.state.Snapshot()
	return s.snapshot
}

// Snapshot 返回最近一次 Update 取得的快照
func (s *InputSystem) Snapshot() input.Snapshot {
	return s.snapshot
}
