package game

import (
	"strings"
	"testing"
)

const testManifest = `
version: "1.0"
base_path: assets
groups:
  init:
    images:
      - id: IMAGE_CARROT
        path: images/carrot.png
        frameWidth: 16
        frameHeight: 16
        frames: 4
    sounds:
      - id: SOUND_COIN
        path: sounds/coin.wav
`

func TestParseResourceConfig(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte(testManifest))
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}
	group, ok := cfg.Groups["init"]
	if !ok {
		t.Fatal("init group missing")
	}
	if len(group.Images) != 1 || group.Images[0].Frames != 4 {
		t.Errorf("unexpected images: %+v", group.Images)
	}
	if got := cfg.fullPath("images/carrot.png"); got != "assets/images/carrot.png" {
		t.Errorf("fullPath = %q", got)
	}
}

func TestParseResourceConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed",
			yaml:    "groups: [",
			wantErr: "failed to parse",
		},
		{
			name: "empty path",
			yaml: `
groups:
  init:
    images:
      - id: IMAGE_CARROT
`,
			wantErr: "empty id or path",
		},
		{
			name: "duplicate id",
			yaml: `
groups:
  a:
    images:
      - {id: IMAGE_CARROT, path: a.png}
  b:
    sounds:
      - {id: IMAGE_CARROT, path: b.wav}
`,
			wantErr: "duplicate resource id",
		},
		{
			name: "negative frames",
			yaml: `
groups:
  init:
    images:
      - {id: IMAGE_CARROT, path: a.png, frames: -1}
`,
			wantErr: "negative frame geometry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResourceConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
