package game

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/yaml.v3"
)

// SaveData 玩家进度
//
// 保存内容：
//   - 最高解锁关卡与已解锁关卡集合
//   - 累计存入的金币
//   - 每关最佳通关时间
type SaveData struct {
	HighestLevel   string             `yaml:"highestLevel"`   // 最近解锁的关卡ID，如 "1-2"
	UnlockedLevels []string           `yaml:"unlockedLevels"` // 所有已解锁关卡
	BankedCoins    int                `yaml:"bankedCoins"`    // 累计金币
	BestTimes      map[string]float64 `yaml:"bestTimes"`      // 关卡ID -> 最佳用时（秒）
	UpdatedAt      time.Time          `yaml:"updatedAt"`
}

func newSaveData() *SaveData {
	return &SaveData{BestTimes: make(map[string]float64)}
}

// unlock 解锁关卡，返回是否为新解锁
func (d *SaveData) unlock(levelID string) bool {
	for _, id := range d.UnlockedLevels {
		if id == levelID {
			return false
		}
	}
	d.UnlockedLevels = append(d.UnlockedLevels, levelID)
	return true
}

// SaveManager 进度管理器
//
// 数据以 YAML 序列化后写入 Storage（gdata：桌面端为应用数据目录，浏览器为 localStorage）。
// Storage 为 nil 时进度只保存在内存中。
type SaveManager struct {
	storage Storage
	data    *SaveData
	now     func() time.Time
}

const (
	saveObject   = "progress"
	saveProperty = "default"
)

// NewSaveManager 创建进度管理器并尝试加载已有进度
func NewSaveManager(storage Storage) *SaveManager {
	sm := &SaveManager{
		storage: storage,
		data:    newSaveData(),
		now:     time.Now,
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: %v (starting fresh)", err)
	}
	return sm
}

// Load 从存储加载进度
func (sm *SaveManager) Load() error {
	if sm.storage == nil || !sm.storage.ObjectPropExists(saveObject, saveProperty) {
		sm.data = newSaveData()
		return nil
	}

	raw, err := sm.storage.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		sm.data = newSaveData()
		return fmt.Errorf("failed to load save data: %w", err)
	}

	data := newSaveData()
	if err := yaml.Unmarshal(raw, data); err != nil {
		sm.data = newSaveData()
		return fmt.Errorf("failed to parse save data: %w", err)
	}
	if data.BestTimes == nil {
		data.BestTimes = make(map[string]float64)
	}
	sm.data = data
	log.Printf("[SaveManager] Progress loaded: highest=%s coins=%d", data.HighestLevel, data.BankedCoins)
	return nil
}

// Save 写入存储；storage 为 nil 时直接返回 nil
func (sm *SaveManager) Save() error {
	if sm.storage == nil {
		return nil
	}
	sm.data.UpdatedAt = sm.now()

	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %w", err)
	}
	if err := sm.storage.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to write save data: %w", err)
	}
	return nil
}

// RecordWin 记录一次通关：存入金币、更新最佳时间、解锁下一关，并立即保存
//
// 返回本次是否刷新了最佳时间。
func (sm *SaveManager) RecordWin(levelID string, coins int, elapsed float64, nextLevel string) (bool, error) {
	sm.data.BankedCoins += coins

	newBest := false
	if best, ok := sm.data.BestTimes[levelID]; !ok || elapsed < best {
		sm.data.BestTimes[levelID] = elapsed
		newBest = true
	}

	// 重玩旧关卡不会让最高关卡倒退
	sm.data.unlock(levelID)
	if nextLevel != "" && sm.data.unlock(nextLevel) {
		sm.data.HighestLevel = nextLevel
	} else if sm.data.HighestLevel == "" {
		sm.data.HighestLevel = levelID
	}

	log.Printf("[SaveManager] Level %s won: +%d coins (total %d), time %.2fs (best=%v)",
		levelID, coins, sm.data.BankedCoins, elapsed, newBest)
	return newBest, sm.Save()
}

// GetHighestLevel 返回最高解锁关卡，没有进度时返回空字符串
func (sm *SaveManager) GetHighestLevel() string {
	return sm.data.HighestLevel
}

// IsUnlocked 返回关卡是否已解锁
func (sm *SaveManager) IsUnlocked(levelID string) bool {
	for _, id := range sm.data.UnlockedLevels {
		if id == levelID {
			return true
		}
	}
	return false
}

// GetBankedCoins 返回累计金币
func (sm *SaveManager) GetBankedCoins() int {
	return sm.data.BankedCoins
}

// GetBestTime 返回关卡最佳时间
func (sm *SaveManager) GetBestTime(levelID string) (float64, bool) {
	t, ok := sm.data.BestTimes[levelID]
	return t, ok
}
