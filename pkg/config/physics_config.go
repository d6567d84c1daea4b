package config

import (
	"fmt"

	"github.com/decker502/carrothop/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PhysicsConfig 玩家物理参数
//
// 配置文件位置: data/physics.yaml
type PhysicsConfig struct {
	// Gravity 重力加速度（像素/秒²）
	Gravity float64 `yaml:"gravity"`

	// MoveSpeed 水平移动速度（像素/秒）
	MoveSpeed float64 `yaml:"moveSpeed"`

	// JumpSpeed 起跳初速度（像素/秒，向上为正）
	JumpSpeed float64 `yaml:"jumpSpeed"`

	// MaxFallSpeed 最大下落速度（像素/秒）
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

// DefaultPhysicsConfig 返回默认物理参数
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Gravity:      900,
		MoveSpeed:    140,
		JumpSpeed:    330,
		MaxFallSpeed: 480,
	}
}

// ParsePhysicsConfig 解析 YAML 格式的物理配置
// 未填写的字段使用默认值
func ParsePhysicsConfig(data []byte) (*PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config: %w", err)
	}
	return cfg, nil
}

// LoadPhysicsConfig 从嵌入资源加载物理配置
func LoadPhysicsConfig(path string) (*PhysicsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read physics config: %w", err)
	}
	return ParsePhysicsConfig(data)
}

// Validate 验证配置有效性
func (c *PhysicsConfig) Validate() error {
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %.1f", c.Gravity)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("moveSpeed must be positive, got %.1f", c.MoveSpeed)
	}
	if c.JumpSpeed <= 0 {
		return fmt.Errorf("jumpSpeed must be positive, got %.1f", c.JumpSpeed)
	}
	if c.MaxFallSpeed <= 0 {
		return fmt.Errorf("maxFallSpeed must be positive, got %.1f", c.MaxFallSpeed)
	}
	return nil
}
