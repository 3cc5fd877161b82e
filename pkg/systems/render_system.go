package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugColliderColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// RenderSystem 管理游戏世界实体的渲染
//
// 所有实体以 SpriteComponent 描述的纯色矩形绘制（中心对齐），
// Alpha 控制透明度（护盾随生命值变淡）。
// 渲染顺序（从底到顶）：护盾 → 敌人 → 玩家 → 子弹。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	debug         bool // 是否绘制碰撞盒
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// SetDebug 开关碰撞盒调试绘制
func (s *RenderSystem) SetDebug(enabled bool) {
	s.debug = enabled
}

// Debug 是否处于碰撞盒调试模式
func (s *RenderSystem) Debug() bool {
	return s.debug
}

// Draw 绘制所有拥有位置和精灵组件的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.SortedDrawables() {
		s.drawEntity(screen, id)
	}
	if s.debug {
		s.drawColliders(screen)
	}
}

// SortedDrawables 返回按渲染层级排序的可绘制实体
func (s *RenderSystem) SortedDrawables() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.layerOf(ids[i]) < s.layerOf(ids[j])
	})
	return ids
}

func (s *RenderSystem) layerOf(id ecs.EntityID) int {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return 0
	}
	switch col.Kind {
	case components.ColliderShield:
		return 1
	case components.ColliderEnemy:
		return 2
	case components.ColliderPlayer:
		return 3
	case components.ColliderProjectile:
		return 4
	default:
		return 0
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite.Hidden || sprite.Alpha <= 0 {
		return
	}

	x := float32(pos.X - sprite.Width/2)
	y := float32(pos.Y - sprite.Height/2)
	vector.DrawFilledRect(screen, x, y, float32(sprite.Width), float32(sprite.Height), SpriteColor(sprite), false)
}

// SpriteColor 返回应用透明度后的颜色
func SpriteColor(sprite *components.SpriteComponent) color.NRGBA {
	alpha := sprite.Alpha
	if alpha > 1 {
		alpha = 1
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.NRGBA{
		R: sprite.Color.R,
		G: sprite.Color.G,
		B: sprite.Color.B,
		A: uint8(float64(sprite.Color.A) * alpha),
	}
}

func (s *RenderSystem) drawColliders(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		left, top, right, bottom := col.Bounds(pos)
		vector.StrokeRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), 1, debugColliderColor, false)
	}
}
