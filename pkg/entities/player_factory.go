package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

var playerColor = color.RGBA{R: 80, G: 220, B: 120, A: 255}

// NewPlayerEntity 创建玩家飞船
// 玩家位于屏幕底部中央，生命值与当前生命数一致
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - lives: 当前生命数（跨关卡保留）
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, lives int) ecs.EntityID {
	pc := cfg.Player
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: float64(cfg.Window.Width) / 2,
		Y: float64(cfg.Window.Height) - pc.OffsetY,
	})
	ecs.AddComponent(em, entityID, components.NewPlayerComponent(pc.Speed))

	health := components.NewHealthComponent(pc.MaxLives)
	if lives >= 0 && lives < health.MaxHealth {
		health.CurrentHealth = lives
	}
	ecs.AddComponent(em, entityID, health)

	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Kind:   components.ColliderPlayer,
		Width:  pc.Width,
		Height: pc.Height,
	})
	ecs.AddComponent(em, entityID, newShooterComponent(pc.Shooter, 0, -1, -(pc.Height/2+pc.Shooter.Projectile.Height/2+1), components.SideEnemy))
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Color:  playerColor,
		Width:  pc.Width,
		Height: pc.Height,
		Alpha:  1,
	})

	return entityID
}

// newShooterComponent 由配置创建射击组件
// 发射点位于实体正上方或正下方
func newShooterComponent(sc config.ShooterConfig, dirX, dirY, fireOffsetY float64, target components.Side) *components.ShooterComponent {
	return &components.ShooterComponent{
		MinInterval:      sc.MinInterval,
		MaxInterval:      sc.MaxInterval,
		ShootImmediately: sc.ShootImmediately,
		DirX:             dirX,
		DirY:             dirY,
		FireOffsetY:      fireOffsetY,
		Target:           target,
		Projectile: components.ProjectileSpec{
			Speed:    sc.Projectile.Speed,
			Lifetime: sc.Projectile.Lifetime,
			Damage:   sc.Projectile.Damage,
			Width:    sc.Projectile.Width,
			Height:   sc.Projectile.Height,
		},
	}
}
