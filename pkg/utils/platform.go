package utils

import (
	"os"
	"strings"
)

// MobileEmulateEnv 设为 1/true 时桌面端也按移动端处理（显示虚拟按键，方便调试触摸布局）
const MobileEmulateEnv = "CARROT_MOBILE_EMULATE"

// IsMobile 是否按移动端运行：gomobile 构建，或设置了 MobileEmulateEnv
func IsMobile() bool {
	if mobileBuild {
		return true
	}
	switch strings.ToLower(os.Getenv(MobileEmulateEnv)) {
	case "1", "true":
		return true
	}
	return false
}
