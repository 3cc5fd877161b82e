package components

// HealthComponent 存储实体的生命值信息
// 玩家、敌人、护盾共用同一形状
//
// 不变式：0 <= CurrentHealth <= MaxHealth；Dead 一旦为 true 不再变化
type HealthComponent struct {
	CurrentHealth int  // 当前生命值
	MaxHealth     int  // 最大生命值
	Dead          bool // 是否已死亡（防止重复触发死亡效果）
}

// NewHealthComponent 创建满血的生命值组件
func NewHealthComponent(maxHealth int) *HealthComponent {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return &HealthComponent{
		CurrentHealth: maxHealth,
		MaxHealth:     maxHealth,
	}
}

// Apply 扣除生命值
//
// 参数：
//   - amount: 伤害值，负值视为 0
//
// 返回：
//   - bool: 本次伤害是否导致死亡；对同一组件最多返回一次 true
func (h *HealthComponent) Apply(amount int) bool {
	if h.Dead {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	if h.CurrentHealth == 0 {
		h.Dead = true
		return true
	}
	return false
}

// Ratio 返回剩余生命比例 (0.0 ~ 1.0)
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
