//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 /data/data/{package}/saves
//
// gdata 在 Android 上不会自己创建子目录，目录不存在时首次保存会失败。
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to read process cmdline: %w", err)
	}
	pkg, err := packageFromCmdline(cmdline)
	if err != nil {
		return err
	}
	return ensureWritableDir(filepath.Join("/data/data", pkg, "saves"))
}
