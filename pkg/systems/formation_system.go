package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// FlowSignals 关卡流程信号接收方
// 由 game.SceneFlow 实现；两个方法都是幂等的
type FlowSignals interface {
	GameOver() bool
	LevelCompleted() bool
}

// FormationSystem 敌人编队移动
//
// 每个 tick 先移动编队，再递减边界冷却。
// 同一冷却窗口内的多次边界碰撞只生效一次（由冷却计数保证，不做事件去重）。
type FormationSystem struct {
	entityManager *ecs.EntityManager
	flow          FlowSignals
}

// NewFormationSystem 创建编队系统
//
// 参数：
//   - em: 实体管理器
//   - flow: 关卡流程信号接收方，可为 nil
func NewFormationSystem(em *ecs.EntityManager, flow FlowSignals) *FormationSystem {
	return &FormationSystem{
		entityManager: em,
		flow:          flow,
	}
}

// Update 移动所有编队并递减冷却
func (s *FormationSystem) Update(deltaTime float64) {
	formations := ecs.GetEntitiesWith2[*components.FormationComponent, *components.PositionComponent](s.entityManager)
	for _, id := range formations {
		formation, _ := ecs.GetComponent[*components.FormationComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.X += formation.Speed * deltaTime * formation.Direction()
		s.anchorMembers(formation, pos)

		if formation.Cooldown > 0 {
			formation.Cooldown--
		}
	}
}

// OnBoundaryHit 编队成员碰到左右边界
//
// 仅当冷却为 0 时生效：反向、整体下移、重置冷却。
//
// 返回：
//   - bool: 本次碰撞是否生效
func (s *FormationSystem) OnBoundaryHit(formationID ecs.EntityID) bool {
	formation, ok := ecs.GetComponent[*components.FormationComponent](s.entityManager, formationID)
	if !ok {
		log.Printf("[FormationSystem] Warning: entity %d has no formation", formationID)
		return false
	}
	if formation.Cooldown != 0 {
		return false
	}

	formation.MovingRight = !formation.MovingRight
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, formationID); ok {
		pos.Y += formation.DropDistance
		s.anchorMembers(formation, pos)
	}
	formation.Cooldown = formation.CooldownFrames
	return true
}

// RemoveMember 将敌人移出编队，被移出的敌人随即销毁
func (s *FormationSystem) RemoveMember(formationID, enemyID ecs.EntityID) {
	if formation, ok := ecs.GetComponent[*components.FormationComponent](s.entityManager, formationID); ok {
		delete(formation.Members, enemyID)
	}
	s.entityManager.DestroyEntity(enemyID)
}

// CheckEmpty 检查编队是否已无成员
// 首次变为空时向流程发出关卡完成信号，之后不再重复发送
func (s *FormationSystem) CheckEmpty(formationID ecs.EntityID) bool {
	formation, ok := ecs.GetComponent[*components.FormationComponent](s.entityManager, formationID)
	if !ok {
		return false
	}
	if len(formation.Members) > 0 {
		return false
	}
	if !formation.Completed {
		formation.Completed = true
		log.Printf("[FormationSystem] Formation %d cleared", formationID)
		if s.flow != nil {
			s.flow.LevelCompleted()
		}
	}
	return true
}

// MemberCount 返回编队当前成员数
func (s *FormationSystem) MemberCount(formationID ecs.EntityID) int {
	formation, ok := ecs.GetComponent[*components.FormationComponent](s.entityManager, formationID)
	if !ok {
		return 0
	}
	return len(formation.Members)
}

// HandleEnemyContact 敌人进入触发区域
// 左右边界使编队反向；底部边界表示编队已抵达地面，游戏结束
func (s *FormationSystem) HandleEnemyContact(enemy, other ecs.EntityID, otherKind components.ColliderKind) {
	if otherKind != components.ColliderBoundary {
		return
	}
	boundary, ok := ecs.GetComponent[*components.BoundaryComponent](s.entityManager, other)
	if !ok {
		return
	}
	member, ok := ecs.GetComponent[*components.FormationMemberComponent](s.entityManager, enemy)
	if !ok {
		log.Printf("[FormationSystem] Warning: enemy %d is not in a formation", enemy)
		return
	}

	switch {
	case boundary.Edge.IsSide():
		s.OnBoundaryHit(member.FormationID)
	case boundary.Edge == components.EdgeBottom:
		log.Printf("[FormationSystem] Enemy %d reached the ground", enemy)
		if s.flow != nil {
			s.flow.GameOver()
		}
	}
}

// anchorMembers 成员位置 = 编队原点 + 本地偏移
func (s *FormationSystem) anchorMembers(formation *components.FormationComponent, origin *components.PositionComponent) {
	for memberID := range formation.Members {
		member, ok := ecs.GetComponent[*components.FormationMemberComponent](s.entityManager, memberID)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, memberID)
		if !ok {
			continue
		}
		pos.X = origin.X + member.OffsetX
		pos.Y = origin.Y + member.OffsetY
	}
}
