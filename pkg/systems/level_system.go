package systems

import (
	"log"

	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/input"
)

// LevelSystem 关卡流程
//
// 职责：
//   - 累计关卡用时
//   - 处理兑换请求（手里的胡萝卜 → 金币）
//   - 判定胜利：全部胡萝卜已收集且已兑换
//   - 判定失败：掉出 KillY，或超过时限
type LevelSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	level         *config.LevelConfig
	sound         game.SoundPlayer
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(em *ecs.EntityManager, gs *game.GameState, level *config.LevelConfig, sound game.SoundPlayer) *LevelSystem {
	return &LevelSystem{
		entityManager: em,
		gameState:     gs,
		level:         level,
		sound:         sound,
	}
}

// Update 在收集之后调用；胜负已定时不再做任何事
func (s *LevelSystem) Update(deltaTime float64, snap input.Snapshot) {
	gs := s.gameState
	if !gs.IsPlaying() {
		return
	}
	gs.Elapsed += deltaTime

	if snap.Convert {
		if gained := gs.ConvertCarrots(); gained > 0 {
			log.Printf("[LevelSystem] Converted carrots into %d coins (total %d/%d)", gained, gs.Coins, gs.TargetCoins())
			if s.sound != nil {
				s.sound.PlaySound(game.SoundCoin)
			}
		}
	}

	if gs.AllCollected() && gs.HeldCarrots == 0 {
		gs.Win()
		log.Printf("[LevelSystem] Level %s won in %.2fs with %d coins", gs.LevelID, gs.Elapsed, gs.Coins)
		return
	}

	if box, ok := PlayerHitbox(s.entityManager); ok && box.Y > s.level.KillY {
		gs.Lose(game.LoseFell)
		log.Printf("[LevelSystem] Level %s lost: player fell (y=%.1f)", gs.LevelID, box.Y)
		return
	}

	if s.level.TimeLimit > 0 && gs.Elapsed >= s.level.TimeLimit {
		gs.Lose(game.LoseTimeout)
		log.Printf("[LevelSystem] Level %s lost: time limit %.0fs reached", gs.LevelID, s.level.TimeLimit)
	}
}

// RemainingTime 返回剩余时间；不限时返回 -1
func (s *LevelSystem) RemainingTime() float64 {
	if s.level.TimeLimit <= 0 {
		return -1
	}
	remaining := s.level.TimeLimit - s.gameState.Elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
