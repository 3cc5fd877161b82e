//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端布局运行，便于本地调试触摸操作
const MobileEmulateEnv = "INVADERS_MOBILE_EMULATE"

// IsMobile 是否按移动端运行
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
