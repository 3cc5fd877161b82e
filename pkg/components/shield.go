package components

// ShieldComponent 护盾掩体标记
// 护盾的生命值在 HealthComponent 中，可见透明度在 SpriteComponent.Alpha 中
type ShieldComponent struct{}
