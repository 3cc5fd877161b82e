package components

// ShooterComponent 射击能力
// 下一次开火时间在 [MinInterval, MaxInterval) 内随机
type ShooterComponent struct {
	MinInterval      float64 // 最短开火间隔（秒）
	MaxInterval      float64 // 最长开火间隔（秒）
	ShootImmediately bool    // 首发是否立即开火（否则延迟一个随机间隔）

	DirX        float64 // 射击方向X
	DirY        float64 // 射击方向Y
	FireOffsetX float64 // 发射点相对实体位置的X偏移
	FireOffsetY float64 // 发射点相对实体位置的Y偏移

	Target     Side           // 子弹可伤害的阵营
	Projectile ProjectileSpec // 子弹模板

	NextFireTime float64 // 下一次允许开火的时间（秒，场景时钟）
	Initialized  bool    // NextFireTime 是否已初始化
}
