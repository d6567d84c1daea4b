package config

import (
	"fmt"
	"path"

	"github.com/decker502/carrothop/pkg/embedded"
	"github.com/decker502/carrothop/pkg/utils"
	"gopkg.in/yaml.v3"
)

// LevelsDir 关卡文件目录
const LevelsDir = "data/levels"

// DefaultCoinsPerCarrot 每根胡萝卜兑换的金币数
const DefaultCoinsPerCarrot = 10

// Point 世界坐标点
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig YAML 中的矩形
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect 转换为 utils.Rect
func (r RectConfig) Rect() utils.Rect {
	return utils.NewRect(r.X, r.Y, r.Width, r.Height)
}

// PlayerConfig 玩家出生点与尺寸
type PlayerConfig struct {
	Spawn Point `yaml:"spawn"`

	// Width/Height 精灵的绘制尺寸
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Hitbox 相对精灵左上角的碰撞盒
	Hitbox RectConfig `yaml:"hitbox"`
}

// LevelConfig 关卡配置
//
// 配置文件位置: data/levels/<id>.yaml
type LevelConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// 世界尺寸（像素），摄像机在此范围内跟随玩家
	WorldWidth  float64 `yaml:"worldWidth"`
	WorldHeight float64 `yaml:"worldHeight"`

	// KillY 玩家碰撞盒顶部低于此Y坐标时判定掉落失败；0 表示使用 WorldHeight
	KillY float64 `yaml:"killY"`

	// TimeLimit 关卡时限（秒），0 表示不限时
	TimeLimit float64 `yaml:"timeLimit"`

	// CoinsPerCarrot 每根胡萝卜兑换的金币数，0 表示使用默认值
	CoinsPerCarrot int `yaml:"coinsPerCarrot"`

	// NextLevel 通关后进入的关卡ID，空表示最后一关
	NextLevel string `yaml:"nextLevel"`

	Player    PlayerConfig `yaml:"player"`
	Platforms []RectConfig `yaml:"platforms"`
	Carrots   []Point      `yaml:"carrots"`
}

// LevelPath 返回关卡文件路径
func LevelPath(levelID string) string {
	return path.Join(LevelsDir, levelID+".yaml")
}

// ParseLevelConfig 解析 YAML 格式的关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config %q: %w", cfg.ID, err)
	}
	return &cfg, nil
}

// LoadLevelConfig 从嵌入资源加载关卡配置
func LoadLevelConfig(levelID string) (*LevelConfig, error) {
	data, err := embedded.ReadFile(LevelPath(levelID))
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", levelID, err)
	}
	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, err
	}
	if cfg.ID != levelID {
		return nil, fmt.Errorf("level file %s declares id %q", LevelPath(levelID), cfg.ID)
	}
	return cfg, nil
}

func (c *LevelConfig) applyDefaults() {
	if c.KillY == 0 {
		c.KillY = c.WorldHeight
	}
	if c.CoinsPerCarrot == 0 {
		c.CoinsPerCarrot = DefaultCoinsPerCarrot
	}
	if c.Player.Width == 0 {
		c.Player.Width = 16
	}
	if c.Player.Height == 0 {
		c.Player.Height = 24
	}
	if c.Player.Hitbox.Width == 0 || c.Player.Hitbox.Height == 0 {
		c.Player.Hitbox = RectConfig{X: 3, Y: 4, Width: c.Player.Width - 6, Height: c.Player.Height - 4}
	}
}

// Validate 验证配置有效性
//
// 检查：
//   - 关卡ID与世界尺寸
//   - 至少一个平台，平台尺寸为正
//   - 胡萝卜与出生点都在世界范围内
//   - 碰撞盒尺寸为正
func (c *LevelConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("level id is empty")
	}
	if c.WorldWidth < GameWindowWidth || c.WorldHeight <= 0 {
		return fmt.Errorf("world size %.0fx%.0f is smaller than the screen width %d",
			c.WorldWidth, c.WorldHeight, GameWindowWidth)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("timeLimit must not be negative, got %.1f", c.TimeLimit)
	}
	if c.CoinsPerCarrot < 0 {
		return fmt.Errorf("coinsPerCarrot must not be negative, got %d", c.CoinsPerCarrot)
	}
	if len(c.Platforms) == 0 {
		return fmt.Errorf("level has no platforms")
	}
	for i, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d has non-positive size %.0fx%.0f", i, p.Width, p.Height)
		}
	}
	if len(c.Carrots) == 0 {
		return fmt.Errorf("level has no carrots")
	}
	world := utils.NewRect(0, 0, c.WorldWidth, c.WorldHeight)
	for i, carrot := range c.Carrots {
		bounds := utils.NewRect(carrot.X, carrot.Y, CarrotSize, CarrotSize)
		if !c.inside(world, bounds) {
			return fmt.Errorf("carrot %d at (%.0f, %.0f) is outside the world", i, carrot.X, carrot.Y)
		}
	}
	if c.Player.Hitbox.Width <= 0 || c.Player.Hitbox.Height <= 0 {
		return fmt.Errorf("player hitbox has non-positive size")
	}
	spawn := utils.NewRect(c.Player.Spawn.X, c.Player.Spawn.Y, c.Player.Width, c.Player.Height)
	if !c.inside(world, spawn) {
		return fmt.Errorf("player spawn (%.0f, %.0f) is outside the world", c.Player.Spawn.X, c.Player.Spawn.Y)
	}
	return nil
}

func (c *LevelConfig) inside(world, r utils.Rect) bool {
	return r.X >= world.X && r.Y >= world.Y && r.Right() <= world.Right() && r.Bottom() <= world.Bottom()
}
