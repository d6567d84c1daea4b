package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/carrothop/pkg/embedded"
)

const validLevelYAML = `
id: "1-1"
name: Meadow
worldWidth: 960
worldHeight: 360
timeLimit: 90
nextLevel: "1-2"
player:
  spawn: {x: 32, y: 280}
platforms:
  - {x: 0, y: 320, width: 960, height: 40}
  - {x: 200, y: 250, width: 96, height: 16}
carrots:
  - {x: 100, y: 300}
  - {x: 240, y: 230}
`

func TestParseLevelConfig(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte(validLevelYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ID != "1-1" || cfg.Name != "Meadow" {
		t.Errorf("unexpected id/name: %q %q", cfg.ID, cfg.Name)
	}
	if len(cfg.Platforms) != 2 {
		t.Errorf("expected 2 platforms, got %d", len(cfg.Platforms))
	}
	if len(cfg.Carrots) != 2 {
		t.Errorf("expected 2 carrots, got %d", len(cfg.Carrots))
	}
	if cfg.TimeLimit != 90 {
		t.Errorf("expected time limit 90, got %f", cfg.TimeLimit)
	}

	// 默认值
	if cfg.KillY != 360 {
		t.Errorf("expected killY to default to world height, got %f", cfg.KillY)
	}
	if cfg.CoinsPerCarrot != DefaultCoinsPerCarrot {
		t.Errorf("expected default coins per carrot, got %d", cfg.CoinsPerCarrot)
	}
	if cfg.Player.Width != 16 || cfg.Player.Height != 24 {
		t.Errorf("expected default player size 16x24, got %.0fx%.0f", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Player.Hitbox.Width != 10 || cfg.Player.Hitbox.Height != 20 {
		t.Errorf("unexpected default hitbox %+v", cfg.Player.Hitbox)
	}
}

func TestLevelConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{
			name: "missing id",
			yamlContent: `
worldWidth: 960
worldHeight: 360
platforms: [{x: 0, y: 320, width: 960, height: 40}]
carrots: [{x: 10, y: 10}]
`,
			errContains: "level id is empty",
		},
		{
			name: "world narrower than screen",
			yamlContent: `
id: small
worldWidth: 320
worldHeight: 360
platforms: [{x: 0, y: 320, width: 320, height: 40}]
carrots: [{x: 10, y: 10}]
`,
			errContains: "smaller than the screen",
		},
		{
			name: "no platforms",
			yamlContent: `
id: empty
worldWidth: 960
worldHeight: 360
carrots: [{x: 10, y: 10}]
`,
			errContains: "no platforms",
		},
		{
			name: "no carrots",
			yamlContent: `
id: bare
worldWidth: 960
worldHeight: 360
platforms: [{x: 0, y: 320, width: 960, height: 40}]
`,
			errContains: "no carrots",
		},
		{
			name: "carrot outside world",
			yamlContent: `
id: far
worldWidth: 960
worldHeight: 360
platforms: [{x: 0, y: 320, width: 960, height: 40}]
carrots: [{x: 955, y: 10}]
`,
			errContains: "carrot 0",
		},
		{
			name: "negative platform size",
			yamlContent: `
id: neg
worldWidth: 960
worldHeight: 360
platforms: [{x: 0, y: 320, width: -5, height: 40}]
carrots: [{x: 10, y: 10}]
`,
			errContains: "platform 0",
		},
		{
			name: "spawn outside world",
			yamlContent: `
id: spawn
worldWidth: 960
worldHeight: 360
player:
  spawn: {x: -40, y: 10}
platforms: [{x: 0, y: 320, width: 960, height: 40}]
carrots: [{x: 10, y: 10}]
`,
			errContains: "player spawn",
		},
		{
			name:        "malformed yaml",
			yamlContent: "id: [unterminated",
			errContains: "failed to parse level config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestLoadLevelConfigFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/levels/1-1.yaml":   {Data: []byte(validLevelYAML)},
		"data/levels/wrong.yaml": {Data: []byte(validLevelYAML)},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadLevelConfig("1-1")
	if err != nil {
		t.Fatalf("LoadLevelConfig failed: %v", err)
	}
	if cfg.NextLevel != "1-2" {
		t.Errorf("expected next level 1-2, got %q", cfg.NextLevel)
	}

	if _, err := LoadLevelConfig("wrong"); err == nil {
		t.Error("expected error when file id does not match requested id")
	}
	if _, err := LoadLevelConfig("9-9"); err == nil {
		t.Error("expected error for missing level file")
	}
}

func TestLevelPath(t *testing.T) {
	if got := LevelPath("2-3"); got != "data/levels/2-3.yaml" {
		t.Errorf("LevelPath = %q", got)
	}
}
