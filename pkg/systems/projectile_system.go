package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// 命中优先级：数值越小越优先
const (
	hitPriorityBoundary = iota
	hitPriorityTarget
	hitPriorityShield
	hitPriorityNone
)

type projectileHit struct {
	other    ecs.EntityID
	kind     components.ColliderKind
	priority int
}

// ProjectileSystem 子弹移动与命中处理
//
// 碰撞系统在一个 tick 内分发的所有接触先被缓存，随后由 ResolveHits 统一处理：
// 每颗子弹只取优先级最高的一次接触（边界 > 目标阵营 > 护盾，护盾仅对敌方子弹有效），
// 命中后子弹立即标记为 Spent 并销毁，之后的接触全部忽略。
type ProjectileSystem struct {
	entityManager *ecs.EntityManager

	// damageTable 目标碰撞体类型 -> 伤害函数
	damageTable map[components.ColliderKind]DamageFunc
	pending     map[ecs.EntityID][]projectileHit
	order       []ecs.EntityID

	// halted 返回 true 后本 tick 剩余的命中全部丢弃
	halted func() bool
}

// NewProjectileSystem 创建子弹系统
//
// 参数：
//   - em: 实体管理器
//   - damageTable: 目标碰撞体类型到伤害函数的映射
func NewProjectileSystem(em *ecs.EntityManager, damageTable map[components.ColliderKind]DamageFunc) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		damageTable:   damageTable,
		pending:       make(map[ecs.EntityID][]projectileHit),
	}
}

// NewDamageTable 由伤害系统构建子弹使用的伤害表
func NewDamageTable(ds *DamageSystem) map[components.ColliderKind]DamageFunc {
	return map[components.ColliderKind]DamageFunc{
		components.ColliderPlayer: ds.Handler(components.ColliderPlayer),
		components.ColliderEnemy:  ds.Handler(components.ColliderEnemy),
		components.ColliderShield: ds.Handler(components.ColliderShield),
	}
}

// SetHaltCondition 设置停止结算的条件（游戏结束后不再加分、不再扣血）
func (s *ProjectileSystem) SetHaltCondition(halted func() bool) {
	s.halted = halted
}

// Update 按方向和速度移动所有子弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		projectile, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if projectile.Spent {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X += projectile.DirX * projectile.Speed * deltaTime
		pos.Y += projectile.DirY * projectile.Speed * deltaTime
	}
}

// HandleContact 子弹进入触发区域，缓存到 ResolveHits 处理
func (s *ProjectileSystem) HandleContact(projectileID, other ecs.EntityID, otherKind components.ColliderKind) {
	projectile, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, projectileID)
	if !ok || projectile.Spent {
		return
	}
	priority := hitPriority(projectile, otherKind)
	if priority == hitPriorityNone {
		return
	}
	if _, seen := s.pending[projectileID]; !seen {
		s.order = append(s.order, projectileID)
	}
	s.pending[projectileID] = append(s.pending[projectileID], projectileHit{
		other:    other,
		kind:     otherKind,
		priority: priority,
	})
}

// ResolveHits 处理本 tick 缓存的所有接触
func (s *ProjectileSystem) ResolveHits() {
	for _, projectileID := range s.order {
		if s.halted != nil && s.halted() {
			log.Printf("[ProjectileSystem] Halted, dropping remaining hits this tick")
			break
		}
		hits := s.pending[projectileID]
		projectile, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, projectileID)
		if !ok || projectile.Spent {
			continue
		}

		hit, found := s.selectHit(hits)
		if !found {
			continue
		}

		projectile.Spent = true
		s.entityManager.DestroyEntity(projectileID)

		if hit.kind == components.ColliderBoundary {
			continue
		}
		damage := s.damageTable[hit.kind]
		if damage == nil {
			log.Printf("[ProjectileSystem] Warning: no damage handler for %s", hit.kind)
			continue
		}
		damage(hit.other, projectile.Damage)
	}

	clear(s.pending)
	s.order = s.order[:0]
}

// selectHit 选出优先级最高且目标仍然存活的接触
// 同优先级按到达顺序取第一个
func (s *ProjectileSystem) selectHit(hits []projectileHit) (projectileHit, bool) {
	best := projectileHit{priority: hitPriorityNone}
	for _, h := range hits {
		if h.priority >= best.priority {
			continue
		}
		// 目标已在本 tick 被其他子弹消灭，子弹继续飞行
		if h.kind != components.ColliderBoundary && s.entityManager.IsMarkedForDestroy(h.other) {
			continue
		}
		best = h
	}
	return best, best.priority != hitPriorityNone
}

// hitPriority 计算接触的优先级
func hitPriority(p *components.ProjectileComponent, kind components.ColliderKind) int {
	switch {
	case kind == components.ColliderBoundary:
		return hitPriorityBoundary
	case kind == p.Target.ColliderKind():
		return hitPriorityTarget
	case kind == components.ColliderShield && p.Owner == components.SideEnemy:
		return hitPriorityShield
	default:
		return hitPriorityNone
	}
}
