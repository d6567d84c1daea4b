package assets

import (
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/game"
)

func TestLevelsAreValid(t *testing.T) {
	files, err := fs.Glob(FS, config.LevelsDir+"/*.yaml")
	if err != nil || len(files) == 0 {
		t.Fatalf("no level files found: %v", err)
	}

	ids := make(map[string]*config.LevelConfig)
	for _, f := range files {
		data, err := fs.ReadFile(FS, f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		level, err := config.ParseLevelConfig(data)
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if want := strings.TrimSuffix(path.Base(f), ".yaml"); level.ID != want {
			t.Errorf("%s declares id %q", f, level.ID)
		}
		ids[level.ID] = level
	}

	if _, ok := ids[config.DefaultLevelID]; !ok {
		t.Errorf("default level %s missing", config.DefaultLevelID)
	}
	for id, level := range ids {
		if level.NextLevel != "" && ids[level.NextLevel] == nil {
			t.Errorf("level %s points to missing next level %s", id, level.NextLevel)
		}
	}
}

func TestResourceManifestFilesExist(t *testing.T) {
	data, err := fs.ReadFile(FS, config.ResourceConfigPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	manifest, err := game.ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}

	required := map[string]bool{
		game.ImagePlayer: false, game.ImageCarrot: false, game.ImagePlatform: false,
		game.ImageBackground: false, game.ImageCoin: false,
		game.SoundCollect: false, game.SoundCoin: false, game.SoundJump: false,
	}
	check := func(id, p string) {
		if _, err := fs.Stat(FS, path.Join(manifest.BasePath, p)); err != nil {
			t.Errorf("%s: %v", id, err)
		}
		if _, ok := required[id]; ok {
			required[id] = true
		}
	}
	for _, group := range manifest.Groups {
		for _, img := range group.Images {
			check(img.ID, img.Path)
		}
		for _, snd := range group.Sounds {
			check(snd.ID, snd.Path)
		}
	}
	for id, found := range required {
		if !found {
			t.Errorf("resource %s is not declared in the manifest", id)
		}
	}
}

func TestPhysicsConfigIsValid(t *testing.T) {
	data, err := fs.ReadFile(FS, config.PhysicsConfigPath)
	if err != nil {
		t.Fatalf("read physics: %v", err)
	}
	if _, err := config.ParsePhysicsConfig(data); err != nil {
		t.Errorf("physics config: %v", err)
	}
}
