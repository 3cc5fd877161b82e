package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

var (
	playerProjectileColor = color.RGBA{R: 250, G: 250, B: 210, A: 255}
	enemyProjectileColor  = color.RGBA{R: 255, G: 90, B: 90, A: 255}
)

// NewProjectileEntity 创建子弹实体
// 子弹从发射点沿给定方向匀速飞行，生命周期结束或首次有效命中时销毁
//
// 参数:
//   - em: 实体管理器
//   - x, y: 发射点坐标
//   - dirX, dirY: 飞行方向（单位向量，Y 轴向下）
//   - owner: 发射方阵营
//   - target: 可伤害的阵营
//   - tmpl: 子弹模板（速度、伤害、尺寸、生命周期）
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
func NewProjectileEntity(
	em *ecs.EntityManager,
	x, y float64,
	dirX, dirY float64,
	owner, target components.Side,
	tmpl components.ProjectileSpec,
) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		DirX:   dirX,
		DirY:   dirY,
		Speed:  tmpl.Speed,
		Damage: tmpl.Damage,
		Owner:  owner,
		Target: target,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Kind:   components.ColliderProjectile,
		Width:  tmpl.Width,
		Height: tmpl.Height,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: tmpl.Lifetime,
	})

	clr := enemyProjectileColor
	if owner == components.SidePlayer {
		clr = playerProjectileColor
	}
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Color:  clr,
		Width:  tmpl.Width,
		Height: tmpl.Height,
		Alpha:  1,
	})

	return entityID
}
