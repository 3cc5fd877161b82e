//go:build mobile

package utils

// MobileEmulateEnv 移动端构建中不读取，保留以与桌面端保持一致
const MobileEmulateEnv = "INVADERS_MOBILE_EMULATE"

// IsMobile 移动端构建始终为 true
func IsMobile() bool {
	return true
}
