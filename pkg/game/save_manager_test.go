package game

import (
	"testing"
	"time"
)

func TestSaveManagerRecordWin(t *testing.T) {
	storage := newMemStorage()
	sm := NewSaveManager(storage)

	if sm.GetHighestLevel() != "" {
		t.Errorf("fresh save should have no highest level, got %q", sm.GetHighestLevel())
	}

	newBest, err := sm.RecordWin("1-1", 30, 42.5, "1-2")
	if err != nil {
		t.Fatalf("RecordWin failed: %v", err)
	}
	if !newBest {
		t.Error("first win should be a new best")
	}
	if sm.GetHighestLevel() != "1-2" {
		t.Errorf("expected highest level 1-2, got %q", sm.GetHighestLevel())
	}
	if !sm.IsUnlocked("1-1") || !sm.IsUnlocked("1-2") {
		t.Error("both the won level and the next level should be unlocked")
	}

	// 更慢的通关不刷新最佳时间，但金币照常累加
	newBest, _ = sm.RecordWin("1-1", 30, 50, "1-2")
	if newBest {
		t.Error("slower run should not be a new best")
	}
	if best, _ := sm.GetBestTime("1-1"); best != 42.5 {
		t.Errorf("expected best 42.5, got %f", best)
	}
	if sm.GetBankedCoins() != 60 {
		t.Errorf("expected 60 banked coins, got %d", sm.GetBankedCoins())
	}
	if storage.saves != 2 {
		t.Errorf("expected 2 saves, got %d", storage.saves)
	}
}

// TestSaveManagerReplayDoesNotRegress 重玩早期关卡不会让最高关卡倒退
func TestSaveManagerReplayDoesNotRegress(t *testing.T) {
	sm := NewSaveManager(newMemStorage())
	sm.RecordWin("1-1", 10, 10, "1-2")
	sm.RecordWin("1-2", 10, 10, "1-3")
	sm.RecordWin("1-1", 10, 9, "1-2")

	if sm.GetHighestLevel() != "1-3" {
		t.Errorf("expected highest level to stay 1-3, got %q", sm.GetHighestLevel())
	}
}

func TestSaveManagerLastLevel(t *testing.T) {
	sm := NewSaveManager(newMemStorage())
	sm.RecordWin("1-1", 10, 10, "")
	if sm.GetHighestLevel() != "1-1" {
		t.Errorf("winning the last level should record it, got %q", sm.GetHighestLevel())
	}
}

func TestSaveManagerPersists(t *testing.T) {
	storage := newMemStorage()
	sm := NewSaveManager(storage)
	fixed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return fixed }
	sm.RecordWin("1-1", 40, 12.5, "1-2")

	loaded := NewSaveManager(storage)
	if loaded.GetBankedCoins() != 40 {
		t.Errorf("expected 40 coins after reload, got %d", loaded.GetBankedCoins())
	}
	if best, ok := loaded.GetBestTime("1-1"); !ok || best != 12.5 {
		t.Errorf("expected best time 12.5, got %f (ok=%v)", best, ok)
	}
	if !loaded.data.UpdatedAt.Equal(fixed) {
		t.Errorf("expected UpdatedAt %v, got %v", fixed, loaded.data.UpdatedAt)
	}
}

func TestSaveManagerNilStorage(t *testing.T) {
	sm := NewSaveManager(nil)
	if _, err := sm.RecordWin("1-1", 10, 5, "1-2"); err != nil {
		t.Errorf("degraded mode should not error: %v", err)
	}
	if sm.GetBankedCoins() != 10 {
		t.Errorf("expected in-memory coins 10, got %d", sm.GetBankedCoins())
	}
}
