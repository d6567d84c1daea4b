// Package embedded 提供嵌入资源的统一访问接口
//
// 资源（图片、音效、配置、关卡）由根目录的 assets 包通过 //go:embed 嵌入，
// 桌面端和移动端入口在启动时调用 Init() 注册。
// 本包让其他包无需依赖 assets 包即可按路径读取资源。
//
// 路径一律使用正斜杠，相对于资源根目录，如 "images/carrot.png"、"data/levels/1-1.yaml"。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotInitialized 在 Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	mu     sync.RWMutex
	rootFS fs.FS
)

// Init 注册资源文件系统
// 必须在任何资源加载之前调用；可重复调用（测试中替换为 fstest.MapFS）
func Init(fsys fs.FS) {
	mu.Lock()
	rootFS = fsys
	mu.Unlock()
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return rootFS != nil
}

// FS 返回已注册的文件系统
func FS() (fs.FS, error) {
	mu.RLock()
	defer mu.RUnlock()
	if rootFS == nil {
		return nil, ErrNotInitialized
	}
	return rootFS, nil
}

// normalize 标准化路径：正斜杠、去掉 "./" 和开头的 "/"
func normalize(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return strings.TrimPrefix(path, "/")
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	fsys, err := FS()
	if err != nil {
		return nil, err
	}
	return fsys.Open(normalize(path))
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, err := FS()
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, normalize(path))
	if err != nil {
		return nil, fmt.Errorf("read embedded file %s: %w", path, err)
	}
	return data, nil
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	fsys, err := FS()
	if err != nil {
		return false
	}
	_, err = fs.Stat(fsys, normalize(path))
	return err == nil
}

// Glob 匹配资源文件
func Glob(pattern string) ([]string, error) {
	fsys, err := FS()
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, normalize(pattern))
}
