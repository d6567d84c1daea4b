package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// packageFromCmdline 从 /proc/self/cmdline 内容中取出进程名（Android 上即包名）
func packageFromCmdline(data []byte) (string, error) {
	name, _, _ := strings.Cut(string(data), "\x00")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty process name in cmdline")
	}
	return name, nil
}

// ensureWritableDir 创建目录并写入一个探测文件确认可写
func ensureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}
