package components

// PlayerComponent 玩家飞船
// CanMoveLeft/CanMoveRight 由边界触发事件维护：接触边界时禁止朝该方向移动
type PlayerComponent struct {
	Speed        float64 // 水平移动速度（像素/秒）
	CanMoveLeft  bool
	CanMoveRight bool
}

// NewPlayerComponent 创建可以双向移动的玩家组件
func NewPlayerComponent(speed float64) *PlayerComponent {
	return &PlayerComponent{
		Speed:        speed,
		CanMoveLeft:  true,
		CanMoveRight: true,
	}
}
