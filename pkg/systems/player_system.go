package systems

import (
	"log"
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// InputProvider 玩家输入来源，每个 tick 轮询一次
type InputProvider interface {
	// HorizontalAxis 键盘水平轴 (-1 ~ 1)，无输入时为 0
	HorizontalAxis() float64
	// PointerX 按下的指针/触摸点X坐标，没有按下时 ok 为 false
	PointerX() (x float64, ok bool)
}

// PlayerSystem 玩家移动与接触处理
//
// 键盘轴优先；没有键盘输入时，按下点在玩家右侧为 +1，左侧为 -1。
// 接触边界时禁止朝该边界方向移动，离开后恢复。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	input         InputProvider
	flow          FlowSignals
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, input InputProvider, flow FlowSignals) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		input:         input,
		flow:          flow,
	}
}

// Update 读取输入并移动玩家
func (s *PlayerSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		axis := s.readAxis(pos.X)
		if (axis > 0 && player.CanMoveRight) || (axis < 0 && player.CanMoveLeft) {
			pos.X += axis * player.Speed * deltaTime
		}
	}
}

func (s *PlayerSystem) readAxis(playerX float64) float64 {
	axis := s.input.HorizontalAxis()
	if axis != 0 {
		return math.Max(-1, math.Min(1, axis))
	}
	x, ok := s.input.PointerX()
	if !ok {
		return 0
	}
	switch {
	case x > playerX:
		return 1
	case x < playerX:
		return -1
	default:
		return 0
	}
}

// HandleContactEnter 玩家进入触发区域
// 碰到敌人立即游戏结束；碰到边界时禁止朝边界方向移动
func (s *PlayerSystem) HandleContactEnter(playerID, other ecs.EntityID, otherKind components.ColliderKind) {
	switch otherKind {
	case components.ColliderEnemy:
		log.Printf("[PlayerSystem] Player %d touched enemy %d", playerID, other)
		if s.flow != nil {
			s.flow.GameOver()
		}
	case components.ColliderBoundary:
		s.setBoundaryBlock(playerID, other, false)
	}
}

// HandleContactExit 玩家离开边界，恢复该方向的移动
func (s *PlayerSystem) HandleContactExit(playerID, other ecs.EntityID, otherKind components.ColliderKind) {
	if otherKind == components.ColliderBoundary {
		s.setBoundaryBlock(playerID, other, true)
	}
}

// setBoundaryBlock 根据边界上离玩家最近的点在左侧还是右侧，设置对应方向的移动许可
func (s *PlayerSystem) setBoundaryBlock(playerID, boundaryID ecs.EntityID, allowed bool) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	closestX, ok := s.closestPointX(boundaryID, playerPos.X)
	if !ok {
		return
	}

	switch {
	case closestX > playerPos.X:
		player.CanMoveRight = allowed
	case closestX < playerPos.X:
		player.CanMoveLeft = allowed
	}
}

// closestPointX 返回碰撞盒上距给定X最近的点的X坐标
func (s *PlayerSystem) closestPointX(id ecs.EntityID, x float64) (float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}
	left, _, right, _ := col.Bounds(pos)
	return math.Max(left, math.Min(right, x)), true
}
