package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// PointerInput 指针（鼠标或触摸）输入来源
type PointerInput interface {
	// CursorPosition 当前指针位置（逻辑屏幕坐标）
	CursorPosition() (x, y float64)
	// PointerPressed 指针是否处于按下状态
	PointerPressed() bool
	// PointerJustReleased 指针是否在本 tick 释放
	PointerJustReleased() bool
}

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测悬停（更新按钮状态为 UIHovered）
//   - 检测释放（触发 OnClick 回调）
//   - 隐藏或禁用的按钮不响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerInput
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, pointer PointerInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 更新按钮交互状态
// 回调在遍历结束后执行，回调内切换场景或显示/隐藏面板不会影响本次遍历
func (s *ButtonSystem) Update(deltaTime float64) {
	if s.pointer == nil {
		return
	}
	mouseX, mouseY := s.pointer.CursorPosition()
	mousePressed := s.pointer.PointerPressed()
	mouseReleased := s.pointer.PointerJustReleased()

	var clicked func()
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Visible {
			button.State = components.UINormal
			continue
		}
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !s.isMouseInButton(mouseX, mouseY, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case mousePressed:
			button.State = components.UIClicked
		case mouseReleased:
			// 同一次释放只触发一个按钮
			if clicked == nil {
				clicked = button.OnClick
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	if clicked != nil {
		clicked()
	}
}

// SetGroupVisible 显示或隐藏一组按钮
func (s *ButtonSystem) SetGroupVisible(group string, visible bool) {
	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.Group == group {
			button.Visible = visible
		}
	}
}

// isMouseInButton 检测指针是否在按钮范围内
func (s *ButtonSystem) isMouseInButton(mouseX, mouseY, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return mouseX >= buttonX &&
		mouseX <= buttonX+buttonWidth &&
		mouseY >= buttonY &&
		mouseY <= buttonY+buttonHeight
}
