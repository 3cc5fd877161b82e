package components

import "image/color"

// SpriteComponent 存储实体的视觉表现
// 本游戏使用纯色矩形绘制，Alpha 控制可见透明度 (0.0 ~ 1.0)
type SpriteComponent struct {
	Color  color.RGBA
	Width  float64
	Height float64
	Alpha  float64
	Hidden bool
}
