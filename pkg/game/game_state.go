package game

// Phase 关卡阶段
type Phase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying Phase = iota
	// PhaseWon 通关
	PhaseWon
	// PhaseLost 失败（掉落或超时）
	PhaseLost
)

// String 返回阶段名
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// LoseReason 失败原因
type LoseReason int

const (
	LoseNone LoseReason = iota
	LoseFell
	LoseTimeout
)

// GameState 单个关卡的运行时状态
//
// 由 GameScene 创建并在关卡重开时重建；系统通过指针共享同一个实例。
type GameState struct {
	LevelID string

	HeldCarrots      int // 手里尚未兑换的胡萝卜
	CollectedCarrots int // 本关已收集的胡萝卜总数
	TotalCarrots     int // 本关胡萝卜总数
	Coins            int // 本关兑换得到的金币

	CoinsPerCarrot int
	Elapsed        float64 // 本关已用时间（秒）

	CameraX float64 // 摄像机X位置（世界坐标）

	Phase      Phase
	LoseReason LoseReason
}

// NewGameState 创建关卡状态
func NewGameState(levelID string, totalCarrots, coinsPerCarrot int) *GameState {
	return &GameState{
		LevelID:        levelID,
		TotalCarrots:   totalCarrots,
		CoinsPerCarrot: coinsPerCarrot,
		Phase:          PhasePlaying,
	}
}

// CollectCarrot 记录收集到一根胡萝卜
func (gs *GameState) CollectCarrot() {
	gs.HeldCarrots++
	gs.CollectedCarrots++
}

// ConvertCarrots 把手里的胡萝卜全部兑换为金币
// 返回获得的金币数；手里没有胡萝卜时返回 0
func (gs *GameState) ConvertCarrots() int {
	if gs.HeldCarrots == 0 {
		return 0
	}
	gained := gs.HeldCarrots * gs.CoinsPerCarrot
	gs.Coins += gained
	gs.HeldCarrots = 0
	return gained
}

// AllCollected 是否已收集全部胡萝卜
func (gs *GameState) AllCollected() bool {
	return gs.CollectedCarrots >= gs.TotalCarrots
}

// TargetCoins 通关所需金币
func (gs *GameState) TargetCoins() int {
	return gs.TotalCarrots * gs.CoinsPerCarrot
}

// IsPlaying 是否处于进行中
func (gs *GameState) IsPlaying() bool {
	return gs.Phase == PhasePlaying
}

// Win 进入通关阶段
func (gs *GameState) Win() {
	if gs.Phase == PhasePlaying {
		gs.Phase = PhaseWon
	}
}

// Lose 进入失败阶段
func (gs *GameState) Lose(reason LoseReason) {
	if gs.Phase == PhasePlaying {
		gs.Phase = PhaseLost
		gs.LoseReason = reason
	}
}
