package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/invaders/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hudTextColor      = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	hudLifeColor      = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	hudLifeEmptyColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	hudDividerColor   = color.RGBA{R: 90, G: 90, B: 110, A: 255}
)

// HUDRenderSystem 顶部分数/生命显示
//
// 实现 game.ScoreDisplay 和 game.LivesDisplay：
// 数值由 GameState 在变化时推送，绘制时不反向查询。
type HUDRenderSystem struct {
	font        text.Face
	screenWidth float64

	score     int
	lives     int
	maxLives  int
	levelText string
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(font text.Face, screenWidth float64, levelText string) *HUDRenderSystem {
	return &HUDRenderSystem{
		font:        font,
		screenWidth: screenWidth,
		levelText:   levelText,
	}
}

// UpdateScore 接收最新分数
func (h *HUDRenderSystem) UpdateScore(score int) {
	h.score = score
}

// UpdateLives 接收最新生命数
func (h *HUDRenderSystem) UpdateLives(current, max int) {
	h.lives = current
	h.maxLives = max
}

// Score 返回最近一次推送的分数
func (h *HUDRenderSystem) Score() int {
	return h.score
}

// Lives 返回最近一次推送的生命数
func (h *HUDRenderSystem) Lives() (current, max int) {
	return h.lives, h.maxLives
}

// Draw 绘制分数、关卡名与生命图标
func (h *HUDRenderSystem) Draw(screen *ebiten.Image, scoreLabel string) {
	if h.font != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(8, config.HUDHeight/2)
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, fmt.Sprintf("%s %d", scoreLabel, h.score), h.font, op)

		if h.levelText != "" {
			levelOp := &text.DrawOptions{}
			levelOp.LayoutOptions.PrimaryAlign = text.AlignCenter
			levelOp.LayoutOptions.SecondaryAlign = text.AlignCenter
			levelOp.GeoM.Translate(h.screenWidth/2, config.HUDHeight/2)
			levelOp.ColorScale.ScaleWithColor(hudTextColor)
			text.Draw(screen, h.levelText, h.font, levelOp)
		}
	}

	// 生命图标从右向左排列，已失去的生命显示为灰色
	size := float32(config.LifeIconSize)
	y := float32(config.HUDHeight/2) - size/2
	for i := 0; i < h.maxLives; i++ {
		x := float32(h.screenWidth) - float32(i+1)*(size+float32(config.LifeIconSpacing))
		clr := hudLifeEmptyColor
		if h.maxLives-1-i < h.lives {
			clr = hudLifeColor
		}
		vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	}

	vector.StrokeLine(screen, 0, float32(config.HUDHeight), float32(h.screenWidth), float32(config.HUDHeight), 1, hudDividerColor, false)
}
