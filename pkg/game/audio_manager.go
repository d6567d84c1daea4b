package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundPlayer 播放一次性音效
// 系统只依赖此接口，测试中可替换为记录调用的假实现
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 从 SettingsManager 读取音效开关与音量
//
// 所有方法都可以在 nil 接收者上调用（无音频环境下直接忽略）。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	loadSound       func(soundID string) (*audio.Player, error)
	failed          map[string]bool // 加载失败的音效，不再重试
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		loadSound:       rm.LoadSoundEffect,
		failed:          make(map[string]bool),
	}
}

// PlaySound 播放音效（单次播放）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}
	if am.failed[soundID] {
		return false
	}

	player, err := am.loadSound(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.failed[soundID] = true
		return false
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
