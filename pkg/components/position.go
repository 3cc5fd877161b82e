package components

// PositionComponent 实体在逻辑屏幕中的位置（像素，中心点）
type PositionComponent struct {
	X float64
	Y float64
}

