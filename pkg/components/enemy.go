package components

// EnemyComponent 敌人数据
type EnemyComponent struct {
	ScoreValue int // 被消灭时奖励的分数
}
