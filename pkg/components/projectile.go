package components

// ProjectileComponent 子弹数据
// 单一具体类型，由 Target 决定可以伤害的阵营
type ProjectileComponent struct {
	DirX   float64 // 飞行方向X（单位向量）
	DirY   float64 // 飞行方向Y（单位向量，负值向上）
	Speed  float64 // 飞行速度（像素/秒）
	Damage int     // 命中伤害
	Owner  Side    // 发射方
	Target Side    // 可伤害的阵营
	Spent  bool    // 是否已命中（首次有效碰撞后置位，之后的碰撞全部忽略）
}

// ProjectileSpec 子弹模板，由射击组件携带
type ProjectileSpec struct {
	Speed    float64
	Lifetime float64
	Damage   int
	Width    float64
	Height   float64
}
