package game

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// TouchControlsMode 虚拟按键显示模式
type TouchControlsMode string

const (
	// TouchControlsAuto 移动端显示，桌面端隐藏
	TouchControlsAuto TouchControlsMode = "auto"
	// TouchControlsOn 始终显示
	TouchControlsOn TouchControlsMode = "on"
	// TouchControlsOff 始终隐藏
	TouchControlsOff TouchControlsMode = "off"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	SoundVolume   float64           `yaml:"soundVolume"`   // 音效音量 0.0 ~ 1.0
	SoundEnabled  bool              `yaml:"soundEnabled"`  // 音效开关
	TouchControls TouchControlsMode `yaml:"touchControls"` // 虚拟按键显示模式
	Fullscreen    bool              `yaml:"fullscreen"`    // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:   0.8,
		SoundEnabled:  true,
		TouchControls: TouchControlsAuto,
		Fullscreen:    false,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	storage  Storage       // 可为 nil（降级模式）
	settings *GameSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - storage: 持久化后端，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，会记录日志并使用默认设置。
func NewSettingsManager(storage Storage) *SettingsManager {
	sm := &SettingsManager{
		storage:  storage,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从存储加载设置
//
// storage 为 nil 或没有保存过设置时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.storage == nil || !sm.storage.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.storage.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	switch loaded.TouchControls {
	case TouchControlsAuto, TouchControlsOn, TouchControlsOff:
	default:
		loaded.TouchControls = TouchControlsAuto
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置
//
// storage 为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.storage == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.storage.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量（限制在 0.0 ~ 1.0）
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetTouchControls 设置虚拟按键显示模式
func (sm *SettingsManager) SetTouchControls(mode TouchControlsMode) {
	sm.settings.TouchControls = mode
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ShowTouchControls 根据设置与平台决定是否显示虚拟按键
func (sm *SettingsManager) ShowTouchControls(isMobile bool) bool {
	switch sm.settings.TouchControls {
	case TouchControlsOn:
		return true
	case TouchControlsOff:
		return false
	default:
		return isMobile
	}
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
