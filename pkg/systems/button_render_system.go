package systems

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonNormalColor   = color.RGBA{R: 40, G: 48, B: 72, A: 230}
	buttonHoverColor    = color.RGBA{R: 64, G: 80, B: 120, A: 240}
	buttonPressedColor  = color.RGBA{R: 28, G: 34, B: 52, A: 240}
	buttonDisabledColor = color.RGBA{R: 60, G: 60, B: 60, A: 200}
	buttonBorderColor   = color.RGBA{R: 180, G: 200, B: 255, A: 255}
	buttonTextColor     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// ButtonRenderSystem 按钮渲染系统
// 按状态选择底色绘制矩形按钮，文字居中并带阴影
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	font          text.Face
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, font text.Face) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		font:          font,
	}
}

// Draw 渲染所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || !button.Visible {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)
	vector.DrawFilledRect(screen, x, y, w, h, buttonFillColor(button.State), false)
	vector.StrokeRect(screen, x, y, w, h, 1.5, buttonBorderColor, false)

	s.drawButtonText(screen, button, pos.X, pos.Y)
}

func buttonFillColor(state components.UIState) color.RGBA {
	switch state {
	case components.UIHovered:
		return buttonHoverColor
	case components.UIClicked:
		return buttonPressedColor
	case components.UIDisabled:
		return buttonDisabledColor
	default:
		return buttonNormalColor
	}
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || s.font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+1, centerY+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, button.Text, s.font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(buttonTextColor)
	text.Draw(screen, button.Text, s.font, op)
}
