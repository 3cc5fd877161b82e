package config

// 布局与时钟配置常量
// 所有坐标使用逻辑屏幕坐标（左上角为原点，Y轴向下）

const (
	// TicksPerSecond 固定模拟步长频率（与 Ebitengine 默认 TPS 一致）
	TicksPerSecond = 60

	// FixedDeltaTime 每个 tick 的时间步长（秒）
	FixedDeltaTime = 1.0 / TicksPerSecond

	// BoundaryThickness 不可见边界触发区域的厚度（像素）
	BoundaryThickness = 20.0

	// HUDHeight 顶部分数/生命显示区域高度（像素）
	HUDHeight = 32.0

	// LifeIconSize 生命图标边长（像素）
	LifeIconSize = 14.0

	// LifeIconSpacing 生命图标间距（像素）
	LifeIconSpacing = 6.0

	// ButtonWidth 面板按钮宽度（像素）
	ButtonWidth = 180.0

	// ButtonHeight 面板按钮高度（像素）
	ButtonHeight = 36.0

	// ButtonSpacing 面板按钮纵向间距（像素）
	ButtonSpacing = 12.0
)
