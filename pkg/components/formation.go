package components

import "github.com/decker502/invaders/pkg/ecs"

// FormationComponent 敌人编队
//
// 编队独占其成员：成员从编队移除即被销毁。
// Cooldown 每个模拟 tick 递减一次直至 0，仅当 Cooldown 为 0 时边界碰撞才会反向。
type FormationComponent struct {
	MovingRight    bool    // 当前是否向右移动
	Cooldown       int     // 边界碰撞冷却剩余 tick 数
	CooldownFrames int     // 每次反向后重置的冷却 tick 数
	Speed          float64 // 水平移动速度（像素/秒）
	DropDistance   float64 // 每次反向时整体下移的距离（像素）

	Members   map[ecs.EntityID]struct{} // 编队成员
	Completed bool                      // 是否已发出关卡完成信号（只发一次）
}

// NewFormationComponent 创建初始向右移动的空编队
// cooldownFrames 至少为 1，保证同一 tick 内的多次边界碰撞只反向一次
func NewFormationComponent(speed, dropDistance float64, cooldownFrames int) *FormationComponent {
	return &FormationComponent{
		MovingRight:    true,
		CooldownFrames: max(cooldownFrames, 1),
		Speed:          speed,
		DropDistance:   dropDistance,
		Members:        make(map[ecs.EntityID]struct{}),
	}
}

// Direction 返回水平方向系数 (+1 向右, -1 向左)
func (f *FormationComponent) Direction() float64 {
	if f.MovingRight {
		return 1
	}
	return -1
}

// FormationMemberComponent 编队成员
// 成员位置 = 编队原点 + 本地偏移
type FormationMemberComponent struct {
	FormationID ecs.EntityID
	OffsetX     float64
	OffsetY     float64
}
