package config

import (
	"strings"
	"testing"
)

func TestParsePhysicsConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *PhysicsConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
gravity: 1000
moveSpeed: 150
jumpSpeed: 360
maxFallSpeed: 500
`,
			validate: func(t *testing.T, cfg *PhysicsConfig) {
				if cfg.Gravity != 1000 {
					t.Errorf("expected gravity 1000, got %f", cfg.Gravity)
				}
				if cfg.JumpSpeed != 360 {
					t.Errorf("expected jumpSpeed 360, got %f", cfg.JumpSpeed)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "gravity: 1200\n",
			validate: func(t *testing.T, cfg *PhysicsConfig) {
				def := DefaultPhysicsConfig()
				if cfg.Gravity != 1200 {
					t.Errorf("expected gravity 1200, got %f", cfg.Gravity)
				}
				if cfg.MoveSpeed != def.MoveSpeed {
					t.Errorf("expected default moveSpeed %f, got %f", def.MoveSpeed, cfg.MoveSpeed)
				}
			},
		},
		{
			name:        "negative gravity",
			yamlContent: "gravity: -10\n",
			wantErr:     true,
			errContains: "gravity must be positive",
		},
		{
			name:        "zero jump speed",
			yamlContent: "jumpSpeed: 0\n",
			wantErr:     true,
			errContains: "jumpSpeed must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParsePhysicsConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}
