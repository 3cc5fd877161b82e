package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// 每行敌人的颜色，行数超出时循环使用
var enemyRowColors = []color.RGBA{
	{R: 230, G: 80, B: 200, A: 255},
	{R: 90, G: 200, B: 250, A: 255},
	{R: 250, G: 210, B: 80, A: 255},
	{R: 250, G: 130, B: 60, A: 255},
	{R: 170, G: 120, B: 250, A: 255},
}

// NewFormationEntity 创建敌人编队及其全部成员
//
// 编队原点位于屏幕水平中央、第一行中心处；成员按行列网格排布，
// 成员位置 = 原点 + 本地偏移，由 FormationSystem 每 tick 重新锚定。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - level: 当前关卡（行列数、速度倍率、敌人生命值）
//
// 返回:
//   - ecs.EntityID: 编队实体ID
func NewFormationEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, level *config.LevelConfig) ecs.EntityID {
	fc := cfg.Formation
	formationID := em.CreateEntity()

	origin := &components.PositionComponent{
		X: float64(cfg.Window.Width) / 2,
		Y: fc.OriginY,
	}
	formation := components.NewFormationComponent(cfg.FormationSpeed(level), fc.DropDistance, fc.CooldownFrames)
	ecs.AddComponent(em, formationID, origin)
	ecs.AddComponent(em, formationID, formation)

	rows, cols := 1, 1
	if level != nil {
		rows, cols = level.Rows, level.Cols
	}
	health := cfg.EnemyHealth(level)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			offsetX := (float64(c) - float64(cols-1)/2) * fc.SpacingX
			offsetY := float64(r) * fc.SpacingY
			enemyID := newEnemyEntity(em, cfg, health, enemyRowColors[r%len(enemyRowColors)],
				formationID, origin.X+offsetX, origin.Y+offsetY, offsetX, offsetY)
			formation.Members[enemyID] = struct{}{}
		}
	}

	return formationID
}

func newEnemyEntity(
	em *ecs.EntityManager,
	cfg *config.GameplayConfig,
	health int,
	clr color.RGBA,
	formationID ecs.EntityID,
	x, y, offsetX, offsetY float64,
) ecs.EntityID {
	ec := cfg.Enemy
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{ScoreValue: ec.ScoreValue})
	ecs.AddComponent(em, entityID, components.NewHealthComponent(health))
	ecs.AddComponent(em, entityID, &components.FormationMemberComponent{
		FormationID: formationID,
		OffsetX:     offsetX,
		OffsetY:     offsetY,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Kind:   components.ColliderEnemy,
		Width:  ec.Width,
		Height: ec.Height,
	})
	ecs.AddComponent(em, entityID, newShooterComponent(ec.Shooter, 0, 1, ec.Height/2+ec.Shooter.Projectile.Height/2+1, components.SidePlayer))
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Color:  clr,
		Width:  ec.Width,
		Height: ec.Height,
		Alpha:  1,
	})

	return entityID
}
