package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

type damageCall struct {
	target ecs.EntityID
	amount int
}

// recordingDamageTable 返回只记录调用的伤害表
func recordingDamageTable(calls *[]damageCall) map[components.ColliderKind]DamageFunc {
	record := func(target ecs.EntityID, amount int) bool {
		*calls = append(*calls, damageCall{target: target, amount: amount})
		return false
	}
	return map[components.ColliderKind]DamageFunc{
		components.ColliderPlayer: record,
		components.ColliderEnemy:  record,
		components.ColliderShield: record,
	}
}

var testProjectileSpec = components.ProjectileSpec{Speed: 100, Lifetime: 5, Damage: 1, Width: 4, Height: 10}

func TestProjectileUpdateMoves(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewProjectileSystem(em, nil)
	id := entities.NewProjectileEntity(em, 100, 500, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)

	ps.Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 100 || pos.Y != 450 {
		t.Errorf("Expected projectile at (100, 450), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestProjectileTargetBeatsShield(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []damageCall
	ps := NewProjectileSystem(em, recordingDamageTable(&calls))

	id := entities.NewProjectileEntity(em, 100, 500, 0, 1, components.SideEnemy, components.SidePlayer, testProjectileSpec)
	shield := addTestShield(em, 100, 500, 3)
	player := addTestPlayer(em, 100, 500, 3)

	ps.HandleContact(id, shield, components.ColliderShield)
	ps.HandleContact(id, player, components.ColliderPlayer)
	ps.ResolveHits()

	if len(calls) != 1 || calls[0].target != player {
		t.Fatalf("Expected a single hit on the player, got %+v", calls)
	}
	projectile, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if !projectile.Spent {
		t.Error("Projectile should be spent after a hit")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Projectile should be destroyed after a hit")
	}
}

func TestProjectileBoundaryBeatsTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []damageCall
	ps := NewProjectileSystem(em, recordingDamageTable(&calls))

	id := entities.NewProjectileEntity(em, 100, 0, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)
	_, members := addTestFormation(em, 100, 0, 1, 1)
	top := addTestBoundary(em, components.EdgeTop, 240, -10, 520, 20)

	ps.HandleContact(id, members[0], components.ColliderEnemy)
	ps.HandleContact(id, top, components.ColliderBoundary)
	ps.ResolveHits()

	if len(calls) != 0 {
		t.Errorf("Boundary hit should not damage anything, got %+v", calls)
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Projectile should be destroyed at the boundary")
	}
}

func TestPlayerProjectilePassesThroughShield(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []damageCall
	ps := NewProjectileSystem(em, recordingDamageTable(&calls))

	id := entities.NewProjectileEntity(em, 100, 500, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)
	shield := addTestShield(em, 100, 500, 3)

	ps.HandleContact(id, shield, components.ColliderShield)
	ps.ResolveHits()

	if len(calls) != 0 {
		t.Errorf("Player projectile should ignore shields, got %+v", calls)
	}
	projectile, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if projectile.Spent || em.IsMarkedForDestroy(id) {
		t.Error("Projectile should keep flying through the shield")
	}
}

func TestProjectileIgnoresOwnSide(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []damageCall
	ps := NewProjectileSystem(em, recordingDamageTable(&calls))

	id := entities.NewProjectileEntity(em, 100, 100, 0, 1, components.SideEnemy, components.SidePlayer, testProjectileSpec)
	_, members := addTestFormation(em, 100, 100, 1, 1)

	ps.HandleContact(id, members[0], components.ColliderEnemy)
	ps.HandleContact(id, id, components.ColliderProjectile)
	ps.ResolveHits()

	if len(calls) != 0 {
		t.Errorf("Enemy projectile should not hit enemies, got %+v", calls)
	}
}

func TestProjectileHitsOnlyOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []damageCall
	ps := NewProjectileSystem(em, recordingDamageTable(&calls))

	id := entities.NewProjectileEntity(em, 100, 50, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)
	_, members := addTestFormation(em, 100, 50, 2, 1)

	ps.HandleContact(id, members[0], components.ColliderEnemy)
	ps.HandleContact(id, members[1], components.ColliderEnemy)
	ps.ResolveHits()

	// 已消耗的子弹之后的接触全部忽略
	ps.HandleContact(id, members[1], components.ColliderEnemy)
	ps.ResolveHits()

	if len(calls) != 1 || calls[0].target != members[0] {
		t.Errorf("Expected exactly one hit on the first enemy, got %+v", calls)
	}
}

func TestProjectileSkipsTargetDestroyedThisTick(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []damageCall
	ps := NewProjectileSystem(em, recordingDamageTable(&calls))

	id := entities.NewProjectileEntity(em, 100, 50, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)
	_, members := addTestFormation(em, 100, 50, 2, 1)
	em.DestroyEntity(members[0])

	ps.HandleContact(id, members[0], components.ColliderEnemy)
	ps.HandleContact(id, members[1], components.ColliderEnemy)
	ps.ResolveHits()

	if len(calls) != 1 || calls[0].target != members[1] {
		t.Errorf("Expected the hit to land on the surviving enemy, got %+v", calls)
	}
}

func TestProjectileKillsEnemyThroughCollision(t *testing.T) {
	em := ecs.NewEntityManager()
	flow := &mockFlowSignals{}
	gs := game.NewGameState(nil, 3)
	fs := NewFormationSystem(em, flow)
	ds := NewDamageSystem(em, gs, fs, nil)
	ps := NewProjectileSystem(em, NewDamageTable(ds))
	cs := NewCollisionSystem(em)
	cs.OnEnter(components.ColliderProjectile, ps.HandleContact)

	addTestFormation(em, 100, 50, 1, 1)
	id := entities.NewProjectileEntity(em, 100, 55, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)

	cs.Update(0)
	ps.ResolveHits()
	em.RemoveMarkedEntities()

	if gs.Score() != 100 {
		t.Errorf("Expected score 100, got %d", gs.Score())
	}
	if flow.levelCompleteCalls != 1 {
		t.Errorf("Expected level complete once, got %d", flow.levelCompleteCalls)
	}
	if em.Exists(id) {
		t.Error("Projectile should be removed after the hit")
	}
}

func TestProjectileHaltDropsRemainingHits(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []damageCall
	ps := NewProjectileSystem(em, recordingDamageTable(&calls))
	halted := false
	ps.SetHaltCondition(func() bool { return halted })

	first := entities.NewProjectileEntity(em, 100, 50, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)
	second := entities.NewProjectileEntity(em, 140, 50, 0, -1, components.SidePlayer, components.SideEnemy, testProjectileSpec)
	_, members := addTestFormation(em, 100, 50, 2, 1)

	table := recordingDamageTable(&calls)
	ps.damageTable[components.ColliderEnemy] = func(target ecs.EntityID, amount int) bool {
		// 第一次命中后流程进入终态
		halted = true
		return table[components.ColliderEnemy](target, amount)
	}

	ps.HandleContact(first, members[0], components.ColliderEnemy)
	ps.HandleContact(second, members[1], components.ColliderEnemy)
	ps.ResolveHits()

	if len(calls) != 1 || calls[0].target != members[0] {
		t.Errorf("Expected only the first hit to resolve, got %+v", calls)
	}
	if em.IsMarkedForDestroy(second) {
		t.Error("Unresolved projectile should not be consumed")
	}

	// 缓存已清空，下一 tick 不会重放
	halted = false
	ps.ResolveHits()
	if len(calls) != 1 {
		t.Errorf("Dropped hits should not be replayed, got %+v", calls)
	}
}
