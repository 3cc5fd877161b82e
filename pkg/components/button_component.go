package components

// UIState UI 元素（如按钮）的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停
	UIHovered
	// UIClicked 正在按下
	UIClicked
	// UIDisabled 禁用
	UIDisabled
)

// ButtonComponent 按钮组件（ECS 架构）
// 纯数据组件：文字、尺寸、状态、回调
//
// PositionComponent 为按钮左上角坐标。
// Group 用于按面板整体显示/隐藏（如 "pause"、"gameover"）。
type ButtonComponent struct {
	Text    string
	Width   float64
	Height  float64
	Group   string
	Visible bool
	Enabled bool
	State   UIState
	OnClick func()
}
