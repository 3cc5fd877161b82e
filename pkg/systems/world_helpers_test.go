package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// mockFlowSignals 记录流程信号次数
type mockFlowSignals struct {
	gameOverCalls      int
	levelCompleteCalls int
}

func (m *mockFlowSignals) GameOver() bool {
	m.gameOverCalls++
	return m.gameOverCalls == 1
}

func (m *mockFlowSignals) LevelCompleted() bool {
	m.levelCompleteCalls++
	return m.levelCompleteCalls == 1
}

// addCollider 创建只带位置和碰撞盒的实体
func addCollider(em *ecs.EntityManager, kind components.ColliderKind, x, y, w, h float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Kind: kind, Width: w, Height: h})
	return id
}

// addTestFormation 创建原点在 (x, y) 的单行编队，成员间距 40，生命值 health
func addTestFormation(em *ecs.EntityManager, x, y float64, members, health int) (ecs.EntityID, []ecs.EntityID) {
	formationID := em.CreateEntity()
	formation := components.NewFormationComponent(40, 16, 5)
	ecs.AddComponent(em, formationID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, formationID, formation)

	ids := make([]ecs.EntityID, 0, members)
	for i := 0; i < members; i++ {
		offsetX := float64(i) * 40
		id := addCollider(em, components.ColliderEnemy, x+offsetX, y, 20, 20)
		ecs.AddComponent(em, id, &components.EnemyComponent{ScoreValue: 100})
		ecs.AddComponent(em, id, components.NewHealthComponent(health))
		ecs.AddComponent(em, id, &components.FormationMemberComponent{
			FormationID: formationID,
			OffsetX:     offsetX,
		})
		formation.Members[id] = struct{}{}
		ids = append(ids, id)
	}
	return formationID, ids
}

// addTestPlayer 创建玩家实体
func addTestPlayer(em *ecs.EntityManager, x, y float64, lives int) ecs.EntityID {
	id := addCollider(em, components.ColliderPlayer, x, y, 36, 18)
	ecs.AddComponent(em, id, components.NewPlayerComponent(100))
	ecs.AddComponent(em, id, components.NewHealthComponent(lives))
	return id
}

// addTestShield 创建带精灵的护盾
func addTestShield(em *ecs.EntityManager, x, y float64, health int) ecs.EntityID {
	id := addCollider(em, components.ColliderShield, x, y, 56, 24)
	ecs.AddComponent(em, id, &components.ShieldComponent{})
	ecs.AddComponent(em, id, components.NewHealthComponent(health))
	ecs.AddComponent(em, id, &components.SpriteComponent{Width: 56, Height: 24, Alpha: 1})
	return id
}

// addTestBoundary 创建边界
func addTestBoundary(em *ecs.EntityManager, edge components.BoundaryEdge, x, y, w, h float64) ecs.EntityID {
	id := addCollider(em, components.ColliderBoundary, x, y, w, h)
	ecs.AddComponent(em, id, &components.BoundaryComponent{Edge: edge})
	return id
}

type contactRecord struct {
	self, other ecs.EntityID
	otherKind   components.ColliderKind
}

type contactRecorder struct {
	records []contactRecord
}

func (r *contactRecorder) handle(self, other ecs.EntityID, otherKind components.ColliderKind) {
	r.records = append(r.records, contactRecord{self: self, other: other, otherKind: otherKind})
}
