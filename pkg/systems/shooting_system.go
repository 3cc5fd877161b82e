package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// ShootingSystem 自动射击
//
// 场景时钟超过 NextFireTime 时开火，下一次间隔在 [MinInterval, MaxInterval) 内随机。
// 玩家一方在射线方向上最先遇到的是护盾时不开火，下一 tick 再试。
type ShootingSystem struct {
	entityManager *ecs.EntityManager
	audioManager  *game.AudioManager
	rng           *rand.Rand
	now           float64
}

// NewShootingSystem 创建射击系统
//
// 参数：
//   - em: 实体管理器
//   - am: 音频管理器，可为 nil
//   - rng: 随机数来源（测试中传入固定种子）
func NewShootingSystem(em *ecs.EntityManager, am *game.AudioManager, rng *rand.Rand) *ShootingSystem {
	return &ShootingSystem{
		entityManager: em,
		audioManager:  am,
		rng:           rng,
	}
}

// Update 推进时钟并处理所有射击组件
func (s *ShootingSystem) Update(deltaTime float64) {
	shooters := ecs.GetEntitiesWith2[*components.ShooterComponent, *components.PositionComponent](s.entityManager)

	// 首次出现的射击组件以当前时钟初始化
	for _, id := range shooters {
		shooter, _ := ecs.GetComponent[*components.ShooterComponent](s.entityManager, id)
		if shooter.Initialized {
			continue
		}
		shooter.Initialized = true
		if shooter.ShootImmediately {
			shooter.NextFireTime = s.now
		} else {
			shooter.NextFireTime = s.now + s.randomInterval(shooter)
		}
	}

	s.now += deltaTime

	for _, id := range shooters {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		shooter, _ := ecs.GetComponent[*components.ShooterComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if s.now <= shooter.NextFireTime {
			continue
		}

		fireX := pos.X + shooter.FireOffsetX
		fireY := pos.Y + shooter.FireOffsetY
		if shooter.Target == components.SideEnemy && s.IsShieldBlocking(id, fireX, fireY, shooter.DirX, shooter.DirY) {
			continue
		}

		s.fire(shooter, fireX, fireY)
		shooter.NextFireTime = s.now + s.randomInterval(shooter)
	}
}

func (s *ShootingSystem) fire(shooter *components.ShooterComponent, x, y float64) ecs.EntityID {
	id := entities.NewProjectileEntity(s.entityManager, x, y, shooter.DirX, shooter.DirY,
		shooter.Target.Opponent(), shooter.Target, shooter.Projectile)

	if shooter.Target == components.SideEnemy {
		s.audioManager.PlaySound(game.SoundPlayerShoot)
	} else {
		s.audioManager.PlaySound(game.SoundEnemyShoot)
	}
	return id
}

func (s *ShootingSystem) randomInterval(shooter *components.ShooterComponent) float64 {
	span := shooter.MaxInterval - shooter.MinInterval
	if span <= 0 || s.rng == nil {
		return shooter.MinInterval
	}
	return shooter.MinInterval + s.rng.Float64()*span
}

// IsShieldBlocking 从发射点沿射击方向的射线最先碰到的是否为护盾
// 子弹和射击者自身不参与检测
func (s *ShootingSystem) IsShieldBlocking(shooterID ecs.EntityID, x, y, dirX, dirY float64) bool {
	if dirX == 0 && dirY == 0 {
		return false
	}

	nearest := math.Inf(1)
	nearestKind := components.ColliderProjectile
	colliders := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range colliders {
		if id == shooterID || s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if col.Kind == components.ColliderProjectile {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		left, top, right, bottom := col.Bounds(pos)
		if dist, hit := rayIntersectsAABB(x, y, dirX, dirY, left, top, right, bottom); hit && dist < nearest {
			nearest = dist
			nearestKind = col.Kind
		}
	}
	return nearestKind == components.ColliderShield
}

// rayIntersectsAABB 射线与轴对齐矩形求交（slab 法）
// 返回沿射线的进入距离（以方向向量长度为单位）
func rayIntersectsAABB(ox, oy, dx, dy, left, top, right, bottom float64) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)

	slab := func(o, d, lo, hi float64) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		return tMin <= tMax
	}

	if !slab(ox, dx, left, right) || !slab(oy, dy, top, bottom) {
		return 0, false
	}
	return tMin, true
}
