package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// LifetimeSystem 到期销毁
// 飞出屏幕却没碰到边界的子弹最终由这里回收
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 累加存在时间，到期的实体标记销毁
//
// 返回：
//   - int: 本次到期的实体数
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		lifetime.CurrentLifetime += deltaTime
		if lifetime.Remaining() > 0 {
			continue
		}

		lifetime.IsExpired = true
		// 到期的子弹不再参与本 tick 的命中结算
		if projectile, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id); ok {
			projectile.Spent = true
		}
		s.entityManager.DestroyEntity(id)
		expired++
	}
	return expired
}
