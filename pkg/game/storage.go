package game

import (
	"log"

	"github.com/decker502/carrothop/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 使用的应用名（决定桌面端存储目录和浏览器 localStorage 前缀）
const AppName = "bugsbuzzy_carrothop"

// Storage 键值持久化后端
// *gdata.Manager 满足此接口；测试中使用内存实现
type Storage interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

var _ Storage = (*gdata.Manager)(nil)

// OpenStorage 打开 gdata 存储
//
// 打开失败时返回 nil（降级模式：设置与进度只保存在内存中）。
func OpenStorage(appName string) Storage {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: failed to prepare storage directory: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable, progress will not persist: %v", err)
		return nil
	}
	log.Printf("[Storage] gdata opened (app=%s)", appName)
	return manager
}
