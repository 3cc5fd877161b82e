package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

var shieldColor = color.RGBA{R: 70, G: 160, B: 255, A: 255}

// NewShieldEntities 创建沿屏幕水平方向均匀分布的护盾
func NewShieldEntities(em *ecs.EntityManager, cfg *config.GameplayConfig) []ecs.EntityID {
	sc := cfg.Shield
	width := float64(cfg.Window.Width)
	y := float64(cfg.Window.Height) - sc.OffsetY

	ids := make([]ecs.EntityID, 0, sc.Count)
	for i := 0; i < sc.Count; i++ {
		x := width * float64(i+1) / float64(sc.Count+1)
		ids = append(ids, NewShieldEntity(em, x, y, sc.Width, sc.Height, sc.MaxHealth))
	}
	return ids
}

// NewShieldEntity 创建单个护盾
// 护盾的透明度随剩余生命值降低
func NewShieldEntity(em *ecs.EntityManager, x, y, w, h float64, maxHealth int) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ShieldComponent{})
	ecs.AddComponent(em, entityID, components.NewHealthComponent(maxHealth))
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Kind:   components.ColliderShield,
		Width:  w,
		Height: h,
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Color:  shieldColor,
		Width:  w,
		Height: h,
		Alpha:  1,
	})

	return entityID
}
