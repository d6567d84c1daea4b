package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPackageFromCmdline(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{"package only", "com.bugsbuzzy.carrothop\x00", "com.bugsbuzzy.carrothop", false},
		{"with args", "com.example.app\x00--flag\x00", "com.example.app", false},
		{"trailing newline", "com.example.app\n", "com.example.app", false},
		{"empty", "", "", true},
		{"only nul", "\x00\x00", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := packageFromCmdline([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnsureWritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "app", "saves")
	if err := ensureWritableDir(dir); err != nil {
		t.Fatalf("ensureWritableDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".write_test")); !os.IsNotExist(err) {
		t.Errorf("probe file left behind: %v", err)
	}
	// 已存在的目录再次调用也应成功
	if err := ensureWritableDir(dir); err != nil {
		t.Errorf("second call: %v", err)
	}
}

func TestEnsureStorageDirDesktop(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Errorf("EnsureStorageDir: %v", err)
	}
}
