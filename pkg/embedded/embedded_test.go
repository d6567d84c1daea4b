package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestReadBeforeInit(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("expected uninitialized package")
	}
	if _, err := ReadFile("data/physics.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/physics.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFileNormalizesPath(t *testing.T) {
	Init(fstest.MapFS{
		"data/levels/1-1.yaml": {Data: []byte("id: 1-1")},
		"data/levels/1-2.yaml": {Data: []byte("id: 1-2")},
		"images/carrot.png":    {Data: []byte{0x89}},
	})
	t.Cleanup(func() { Init(nil) })

	for _, path := range []string{"data/levels/1-1.yaml", "./data/levels/1-1.yaml", "/data/levels/1-1.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Errorf("ReadFile(%q) failed: %v", path, err)
			continue
		}
		if string(data) != "id: 1-1" {
			t.Errorf("ReadFile(%q) = %q", path, data)
		}
	}

	if !Exists("images/carrot.png") {
		t.Error("expected images/carrot.png to exist")
	}
	if Exists("images/missing.png") {
		t.Error("missing file should not exist")
	}

	matches, err := Glob("data/levels/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 level files, got %v", matches)
	}
}

func TestReadFileMissing(t *testing.T) {
	Init(fstest.MapFS{})
	t.Cleanup(func() { Init(nil) })

	if _, err := ReadFile("data/nope.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
