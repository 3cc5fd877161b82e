package systems

import (
	"slices"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// ContactHandler 触发事件回调
//
// 参数：
//   - self: 注册回调的碰撞体类型所对应的实体
//   - other: 另一方实体
//   - otherKind: 另一方的碰撞体类型
type ContactHandler func(self, other ecs.EntityID, otherKind components.ColliderKind)

type contactPair struct {
	a, b ecs.EntityID // a < b
}

// CollisionSystem 触发区域检测
//
// 每个 tick 计算所有碰撞盒（中心对齐，AABB）的重叠关系，
// 与上一 tick 的接触集合比较，产生进入/离开事件并按碰撞体类型分发。
// 事件顺序由实体ID决定，同一输入总是产生同一顺序。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	contacts      map[contactPair]struct{}
	enterHandlers map[components.ColliderKind][]ContactHandler
	exitHandlers  map[components.ColliderKind][]ContactHandler
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		contacts:      make(map[contactPair]struct{}),
		enterHandlers: make(map[components.ColliderKind][]ContactHandler),
		exitHandlers:  make(map[components.ColliderKind][]ContactHandler),
	}
}

// OnEnter 注册进入事件回调，kind 一方作为 self 传入
func (s *CollisionSystem) OnEnter(kind components.ColliderKind, handler ContactHandler) {
	s.enterHandlers[kind] = append(s.enterHandlers[kind], handler)
}

// OnExit 注册离开事件回调
func (s *CollisionSystem) OnExit(kind components.ColliderKind, handler ContactHandler) {
	s.exitHandlers[kind] = append(s.exitHandlers[kind], handler)
}

// Update 检测重叠并分发进入/离开事件
func (s *CollisionSystem) Update(deltaTime float64) {
	type collider struct {
		id  ecs.EntityID
		pos *components.PositionComponent
		col *components.CollisionComponent
	}

	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	colliders := make([]collider, 0, len(entities))
	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		colliders = append(colliders, collider{id: id, pos: pos, col: col})
	}

	current := make(map[contactPair]struct{})
	var entered []contactPair
	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			a, b := colliders[i], colliders[j]
			// 边界之间互不触发
			if a.col.Kind == components.ColliderBoundary && b.col.Kind == components.ColliderBoundary {
				continue
			}
			if !checkAABBCollision(a.pos, a.col, b.pos, b.col) {
				continue
			}
			pair := makePair(a.id, b.id)
			current[pair] = struct{}{}
			if _, existed := s.contacts[pair]; !existed {
				entered = append(entered, pair)
			}
		}
	}

	var exited []contactPair
	for pair := range s.contacts {
		if _, still := current[pair]; !still {
			exited = append(exited, pair)
		}
	}
	slices.SortFunc(exited, comparePairs)

	s.contacts = current

	for _, pair := range exited {
		// 已销毁的实体不再接收离开事件
		if !s.entityManager.Exists(pair.a) || !s.entityManager.Exists(pair.b) {
			continue
		}
		s.dispatch(s.exitHandlers, pair)
	}
	for _, pair := range entered {
		// 前面的回调可能已经销毁了其中一方
		if s.entityManager.IsMarkedForDestroy(pair.a) || s.entityManager.IsMarkedForDestroy(pair.b) {
			continue
		}
		s.dispatch(s.enterHandlers, pair)
	}
}

func (s *CollisionSystem) dispatch(handlers map[components.ColliderKind][]ContactHandler, pair contactPair) {
	colA, okA := ecs.GetComponent[*components.CollisionComponent](s.entityManager, pair.a)
	colB, okB := ecs.GetComponent[*components.CollisionComponent](s.entityManager, pair.b)
	if !okA || !okB {
		return
	}
	for _, h := range handlers[colA.Kind] {
		h(pair.a, pair.b, colB.Kind)
	}
	for _, h := range handlers[colB.Kind] {
		h(pair.b, pair.a, colA.Kind)
	}
}

// checkAABBCollision 检查两个碰撞盒（中心对齐）是否重叠
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, top1, right1, bottom1 := col1.Bounds(pos1)
	left2, top2, right2, bottom2 := col2.Bounds(pos2)

	// 任一轴上没有重叠则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

func makePair(a, b ecs.EntityID) contactPair {
	if a > b {
		a, b = b, a
	}
	return contactPair{a: a, b: b}
}

func comparePairs(x, y contactPair) int {
	if x.a != y.a {
		if x.a < y.a {
			return -1
		}
		return 1
	}
	if x.b < y.b {
		return -1
	}
	if x.b > y.b {
		return 1
	}
	return 0
}
