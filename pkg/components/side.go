package components

// Side 阵营
// 用于区分子弹的发射方和可攻击目标（替代字符串标签比较）
type Side int

const (
	// SidePlayer 玩家阵营
	SidePlayer Side = iota
	// SideEnemy 敌人阵营
	SideEnemy
)

// Opponent 返回对立阵营
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// ColliderKind 返回该阵营实体对应的碰撞体类型
func (s Side) ColliderKind() ColliderKind {
	if s == SidePlayer {
		return ColliderPlayer
	}
	return ColliderEnemy
}

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// ColliderKind 碰撞体类型
// 碰撞系统根据类型分发触发事件
type ColliderKind int

const (
	// ColliderBoundary 场地边界（不可见触发区域）
	ColliderBoundary ColliderKind = iota
	// ColliderPlayer 玩家飞船
	ColliderPlayer
	// ColliderEnemy 编队中的敌人
	ColliderEnemy
	// ColliderShield 护盾掩体
	ColliderShield
	// ColliderProjectile 子弹
	ColliderProjectile
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderBoundary:
		return "Boundary"
	case ColliderPlayer:
		return "Player"
	case ColliderEnemy:
		return "Enemy"
	case ColliderShield:
		return "Shield"
	case ColliderProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}
