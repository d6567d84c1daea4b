package input

import (
	"sync"
	"testing"
)

func TestActionNames(t *testing.T) {
	for _, a := range AllActions() {
		parsed, ok := ParseAction(a.String())
		if !ok || parsed != a {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", a.String(), parsed, ok, a)
		}
	}
	if _, ok := ParseAction("jump"); ok {
		t.Error("unknown action name should not parse")
	}
}

// TestJumpIsEdgeTriggered 按住跳跃键时重复的按下事件只触发一次跳跃
func TestJumpIsEdgeTriggered(t *testing.T) {
	s := NewState()

	s.KeyDown(ActionUp)
	s.KeyDown(ActionUp)
	s.KeyDown(ActionUp)

	snap := s.Snapshot()
	if !snap.Jump {
		t.Fatal("first press should queue a jump")
	}
	if !snap.Pressed(ActionUp) {
		t.Error("up should read pressed while held")
	}

	// 继续按住，不应再次跳跃
	s.KeyDown(ActionUp)
	if s.Snapshot().Jump {
		t.Error("holding the key must not queue another jump")
	}

	// 释放后再按，才会再次跳跃
	s.KeyUp(ActionUp)
	s.KeyDown(ActionUp)
	if !s.Snapshot().Jump {
		t.Error("a new press after release should queue a jump")
	}
}

func TestConvertIsEdgeTriggered(t *testing.T) {
	s := NewState()

	s.KeyDown(ActionAction)
	s.KeyDown(ActionAction)
	first := s.Snapshot()
	second := s.Snapshot()

	if !first.Convert {
		t.Error("first action press should queue a convert")
	}
	if second.Convert {
		t.Error("convert request should be consumed by the first snapshot")
	}
	if !second.Pressed(ActionAction) {
		t.Error("action flag should stay pressed until key up")
	}
}

// TestMovementIsLevelTriggered 左右移动读取的是持续按下状态
func TestMovementIsLevelTriggered(t *testing.T) {
	s := NewState()
	s.KeyDown(ActionLeft)

	for i := 0; i < 3; i++ {
		snap := s.Snapshot()
		if !snap.Pressed(ActionLeft) {
			t.Fatalf("frame %d: left should stay pressed", i)
		}
		if snap.Horizontal() != -1 {
			t.Errorf("frame %d: expected horizontal -1, got %v", i, snap.Horizontal())
		}
	}

	s.KeyDown(ActionRight)
	if h := s.Snapshot().Horizontal(); h != 0 {
		t.Errorf("left+right should cancel out, got %v", h)
	}

	s.KeyUp(ActionLeft)
	if h := s.Snapshot().Horizontal(); h != 1 {
		t.Errorf("expected horizontal 1, got %v", h)
	}
}

// TestVisibilityResetsFlags 页面重新可见时清空全部按键
func TestVisibilityResetsFlags(t *testing.T) {
	s := NewState()
	s.KeyDown(ActionLeft)
	s.KeyDown(ActionRight)
	s.KeyDown(ActionUp)

	// 隐藏不影响状态
	s.VisibilityChange(false)
	if !s.IsPressed(ActionLeft) {
		t.Error("hiding the page should not clear flags")
	}

	s.VisibilityChange(true)
	snap := s.Snapshot()
	for _, a := range AllActions() {
		if snap.Pressed(a) {
			t.Errorf("%s should read false after becoming visible", a)
		}
	}
	if snap.Jump || snap.Convert {
		t.Error("queued one-shot requests should be discarded on visibility reset")
	}
}

// TestSnapshotIsStable 快照是值拷贝，之后的事件不影响已取的快照
func TestSnapshotIsStable(t *testing.T) {
	s := NewState()
	s.KeyDown(ActionRight)
	snap := s.Snapshot()

	s.KeyUp(ActionRight)
	s.KeyDown(ActionLeft)

	if !snap.Pressed(ActionRight) || snap.Pressed(ActionLeft) {
		t.Error("snapshot must not observe events delivered after it was taken")
	}
}

func TestInvalidActionIgnored(t *testing.T) {
	s := NewState()
	s.KeyDown(Action(99))
	s.KeyUp(Action(-1))
	if s.IsPressed(Action(99)) {
		t.Error("invalid action should never read pressed")
	}
}

// TestConcurrentWriters 设备可以在其他 goroutine 写入（配合 -race 运行）
func TestConcurrentWriters(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.KeyDown(ActionLeft)
				s.KeyUp(ActionLeft)
			}
		}()
	}
	for j := 0; j < 100; j++ {
		_ = s.Snapshot()
	}
	wg.Wait()

	if s.IsPressed(ActionLeft) {
		t.Error("every writer released the key, it should read false")
	}
}

func TestReleaseFromOneSourceKeepsOther(t *testing.T) {
	s := NewState()
	s.Press(SourceKeyboard, ActionUp)
	s.Press(SourceTouch, ActionUp)
	if !s.Snapshot().Jump {
		t.Fatal("first press should queue a jump")
	}

	s.Release(SourceTouch, ActionUp)
	if !s.IsPressed(ActionUp) {
		t.Error("up should stay pressed while the keyboard holds it")
	}
	s.Press(SourceKeyboard, ActionUp)
	if s.Snapshot().Jump {
		t.Error("keyboard repeat after a touch release must not queue another jump")
	}

	s.Release(SourceKeyboard, ActionUp)
	if s.IsPressed(ActionUp) {
		t.Error("up should be released once every source lets go")
	}
	s.Press(SourceTouch, ActionUp)
	if !s.Snapshot().Jump {
		t.Error("a fresh press after a full release should queue a jump")
	}
}
