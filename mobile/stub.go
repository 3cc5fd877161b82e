//go:build !mobile

// Package mobile 在桌面构建中只导出占位符；
// 真正的入口只在 -tags mobile 时编译，供 ebitenmobile bind 使用。
package mobile

// Dummy 让桌面构建也能引用本包
func Dummy() {}
