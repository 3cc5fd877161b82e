// Package utils 提供输入与平台相关的工具函数
package utils

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	pauseKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}
)

// Input 统一处理键盘、鼠标和触摸输入
//
// 同时实现玩家移动所需的水平轴/指针接口和按钮系统所需的指针接口。
// 每帧开始时必须先调用 Update 记录触摸位置，触摸释放时才能拿到正确坐标。
type Input struct {
	// 保存最后一次触摸位置（用于触摸释放时获取位置）
	lastTouchX, lastTouchY int
	touchIDs               []ebiten.TouchID
}

// NewInput 创建输入状态
func NewInput() *Input {
	return &Input{}
}

// Update 更新本帧的触摸列表和最后触摸位置
func (in *Input) Update() {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		in.lastTouchX, in.lastTouchY = ebiten.TouchPosition(in.touchIDs[0])
	}
}

// HorizontalAxis 键盘水平轴：左 -1，右 +1，同时按下或都不按为 0
func (in *Input) HorizontalAxis() float64 {
	return axisFromKeys(anyKeyPressed(leftKeys), anyKeyPressed(rightKeys))
}

// PointerX 返回按下中的指针X坐标
// HUD 区域内的按下用于点击暂停按钮，不参与移动
func (in *Input) PointerX() (float64, bool) {
	pressed, x, y := in.pointerState()
	if !pressed || float64(y) < config.HUDHeight {
		return 0, false
	}
	return float64(x), true
}

// CursorPosition 当前指针位置（触摸优先）
func (in *Input) CursorPosition() (float64, float64) {
	_, x, y := in.pointerState()
	return float64(x), float64(y)
}

// PointerPressed 是否有指针按下（鼠标左键或触摸）
func (in *Input) PointerPressed() bool {
	pressed, _, _ := in.pointerState()
	return pressed
}

// PointerJustReleased 是否刚刚释放指针（触摸或鼠标）
func (in *Input) PointerJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// PausePressed 本帧是否按下暂停键（Esc 或 P）
func (in *Input) PausePressed() bool {
	for _, k := range pauseKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// DebugTogglePressed 本帧是否按下调试开关（F3）
func (in *Input) DebugTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// pointerState 返回指针是否按下及其位置
// 有活动触摸时使用触摸位置；触摸刚释放时返回最后一次触摸位置
func (in *Input) pointerState() (pressed bool, x, y int) {
	if len(in.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(in.touchIDs[0])
		return true, x, y
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return false, in.lastTouchX, in.lastTouchY
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// axisFromKeys 将左右按键状态转换为水平轴
func axisFromKeys(left, right bool) float64 {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}
