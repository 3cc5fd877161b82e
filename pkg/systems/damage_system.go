package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

// DamageFunc 对目标实体造成伤害
// 返回本次伤害是否导致死亡
type DamageFunc func(target ecs.EntityID, amount int) bool

// DamageSystem 生命值扣减与死亡效果
//
// 玩家、敌人、护盾共用 HealthComponent，死亡效果按碰撞体类型查表：
//   - 敌人：加分、移出编队（销毁）、检查编队是否为空
//   - 玩家：每次受伤扣除生命，生命值与 GameState 的生命数保持一致
//   - 护盾：存活时透明度 = 当前/最大生命值，归零时销毁
type DamageSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	formation     *FormationSystem
	audioManager  *game.AudioManager

	handlers map[components.ColliderKind]DamageFunc
}

// NewDamageSystem 创建伤害系统
//
// 参数：
//   - em: 实体管理器
//   - gs: 分数/生命状态
//   - formation: 编队系统（敌人死亡时移出编队）
//   - am: 音频管理器，可为 nil
func NewDamageSystem(em *ecs.EntityManager, gs *game.GameState, formation *FormationSystem, am *game.AudioManager) *DamageSystem {
	s := &DamageSystem{
		entityManager: em,
		gameState:     gs,
		formation:     formation,
		audioManager:  am,
	}
	s.handlers = map[components.ColliderKind]DamageFunc{
		components.ColliderEnemy:  s.DamageEnemy,
		components.ColliderPlayer: s.DamagePlayer,
		components.ColliderShield: s.DamageShield,
	}
	return s
}

// Handler 返回指定碰撞体类型的伤害函数，没有时返回 nil
func (s *DamageSystem) Handler(kind components.ColliderKind) DamageFunc {
	return s.handlers[kind]
}

// TakeDamage 按目标的碰撞体类型分发伤害
func (s *DamageSystem) TakeDamage(target ecs.EntityID, amount int) bool {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, target)
	if !ok {
		log.Printf("[DamageSystem] Warning: entity %d has no collider, ignoring damage", target)
		return false
	}
	handler := s.handlers[col.Kind]
	if handler == nil {
		return false
	}
	return handler(target, amount)
}

// DamageEnemy 敌人受伤，死亡时加分并移出编队
func (s *DamageSystem) DamageEnemy(target ecs.EntityID, amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, target)
	if !ok {
		log.Printf("[DamageSystem] Warning: enemy %d has no health", target)
		return false
	}
	if !health.Apply(amount) {
		return false
	}

	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, target); ok && s.gameState != nil {
		s.gameState.IncreaseScore(enemy.ScoreValue)
	}
	s.audioManager.PlaySound(game.SoundExplosion)

	member, ok := ecs.GetComponent[*components.FormationMemberComponent](s.entityManager, target)
	if !ok || s.formation == nil {
		s.entityManager.DestroyEntity(target)
		return true
	}
	s.formation.RemoveMember(member.FormationID, target)
	s.formation.CheckEmpty(member.FormationID)
	return true
}

// DamagePlayer 玩家受伤
// 玩家实体不会被移除；生命归零时由 GameState 触发游戏结束
func (s *DamageSystem) DamagePlayer(target ecs.EntityID, amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, target)
	if !ok {
		log.Printf("[DamageSystem] Warning: player %d has no health", target)
		return false
	}
	if health.Dead {
		return false
	}

	s.audioManager.PlaySound(game.SoundPlayerHit)
	if s.gameState == nil {
		return health.Apply(amount)
	}

	s.gameState.UpdateLives(-amount)
	health.CurrentHealth = s.gameState.Lives()
	if health.CurrentHealth == 0 {
		health.Dead = true
		return true
	}
	return false
}

// DamageShield 护盾受伤，存活时按剩余比例降低透明度，归零时销毁
func (s *DamageSystem) DamageShield(target ecs.EntityID, amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, target)
	if !ok {
		log.Printf("[DamageSystem] Warning: shield %d has no health", target)
		return false
	}

	s.audioManager.PlaySound(game.SoundShieldHit)
	if health.Apply(amount) {
		s.entityManager.DestroyEntity(target)
		return true
	}
	if health.Dead {
		return false
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, target)
	if !ok {
		log.Printf("[DamageSystem] Warning: shield %d has no sprite, skipping opacity update", target)
		return false
	}
	sprite.Alpha = health.Ratio()
	return false
}
