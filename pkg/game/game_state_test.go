package game

import "testing"

func TestConvertCarrots(t *testing.T) {
	gs := NewGameState("1-1", 3, 10)

	if got := gs.ConvertCarrots(); got != 0 {
		t.Errorf("converting with no carrots should gain 0, got %d", got)
	}

	gs.CollectCarrot()
	gs.CollectCarrot()
	if gs.HeldCarrots != 2 || gs.CollectedCarrots != 2 {
		t.Fatalf("expected 2 held/collected, got %d/%d", gs.HeldCarrots, gs.CollectedCarrots)
	}

	if got := gs.ConvertCarrots(); got != 20 {
		t.Errorf("expected 20 coins, got %d", got)
	}
	if gs.HeldCarrots != 0 {
		t.Errorf("held carrots should be reset, got %d", gs.HeldCarrots)
	}
	if gs.CollectedCarrots != 2 {
		t.Errorf("collected count must not change on convert, got %d", gs.CollectedCarrots)
	}
	if gs.AllCollected() {
		t.Error("2 of 3 carrots is not all collected")
	}

	gs.CollectCarrot()
	gs.ConvertCarrots()
	if gs.Coins != gs.TargetCoins() {
		t.Errorf("expected coins %d to reach target %d", gs.Coins, gs.TargetCoins())
	}
}

func TestPhaseTransitionsAreFinal(t *testing.T) {
	gs := NewGameState("1-1", 1, 10)
	if !gs.IsPlaying() {
		t.Fatal("new state should be playing")
	}

	gs.Lose(LoseFell)
	gs.Win()
	if gs.Phase != PhaseLost || gs.LoseReason != LoseFell {
		t.Errorf("expected lost/fell, got %s/%d", gs.Phase, gs.LoseReason)
	}

	gs2 := NewGameState("1-1", 1, 10)
	gs2.Win()
	gs2.Lose(LoseTimeout)
	if gs2.Phase != PhaseWon {
		t.Errorf("expected won, got %s", gs2.Phase)
	}
}
