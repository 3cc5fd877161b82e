package game

import "log"

// ScoreDisplay 分数显示协作者
// 每次分数变化时被推送最新值
type ScoreDisplay interface {
	UpdateScore(score int)
}

// LivesDisplay 生命显示协作者
// 每次生命变化时被推送当前值与上限
type LivesDisplay interface {
	UpdateLives(current, max int)
}

// GameState 存储分数与生命
//
// 程序启动时显式创建一次，以引用方式传给各场景和系统，
// 不使用全局单例。新游戏开始或重新开始时调用 ResetForNewGame。
type GameState struct {
	score    int
	lives    int
	maxLives int

	scoreStore   *ScoreStore
	scoreDisplay ScoreDisplay
	livesDisplay LivesDisplay

	onGameOver        func()
	gameOverTriggered bool // 本局是否已触发游戏结束（保证只触发一次）
}

// NewGameState 创建分数/生命状态
//
// 参数：
//   - store: 分数持久化存储，可为 nil（不持久化）
//   - maxLives: 最大生命数，小于 1 时按 1 处理
func NewGameState(store *ScoreStore, maxLives int) *GameState {
	if maxLives < 1 {
		maxLives = 1
	}
	return &GameState{
		lives:      maxLives,
		maxLives:   maxLives,
		scoreStore: store,
	}
}

// SetScoreDisplay 设置分数显示协作者，并立即推送当前分数
func (gs *GameState) SetScoreDisplay(d ScoreDisplay) {
	gs.scoreDisplay = d
	gs.pushScore()
}

// SetLivesDisplay 设置生命显示协作者，并立即推送当前生命
func (gs *GameState) SetLivesDisplay(d LivesDisplay) {
	gs.livesDisplay = d
	gs.pushLives()
}

// SetGameOverHandler 设置生命归零时的回调
func (gs *GameState) SetGameOverHandler(handler func()) {
	gs.onGameOver = handler
}

// Score 返回当前分数
func (gs *GameState) Score() int {
	return gs.score
}

// Lives 返回当前生命数
func (gs *GameState) Lives() int {
	return gs.lives
}

// MaxLives 返回最大生命数
func (gs *GameState) MaxLives() int {
	return gs.maxLives
}

// IncreaseScore 增加分数并推送给显示协作者
func (gs *GameState) IncreaseScore(amount int) {
	gs.score += amount
	if gs.score < 0 {
		gs.score = 0
	}
	gs.pushScore()
}

// UpdateLives 调整生命数
//
// 结果限制在 [0, MaxLives] 范围内。生命归零时触发游戏结束回调，
// 同一局内最多触发一次。
func (gs *GameState) UpdateLives(delta int) {
	gs.lives += delta
	if gs.lives < 0 {
		gs.lives = 0
	}
	if gs.lives > gs.maxLives {
		gs.lives = gs.maxLives
	}
	gs.pushLives()

	if gs.lives == 0 && !gs.gameOverTriggered {
		gs.gameOverTriggered = true
		log.Printf("[GameState] Lives depleted, triggering game over")
		if gs.onGameOver != nil {
			gs.onGameOver()
		}
	}
}

// ResetForNewGame 恢复满生命并重新允许触发游戏结束
func (gs *GameState) ResetForNewGame() {
	gs.lives = gs.maxLives
	gs.gameOverTriggered = false
	gs.pushLives()
}

// ResetScore 分数清零并保存
func (gs *GameState) ResetScore() {
	gs.score = 0
	gs.pushScore()
	if err := gs.SaveScore(); err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}
}

// SaveScore 持久化当前分数
func (gs *GameState) SaveScore() error {
	if gs.scoreStore == nil {
		return nil
	}
	return gs.scoreStore.Save(gs.score)
}

// LoadScore 从持久化存储读取分数，键不存在时为 0
func (gs *GameState) LoadScore() error {
	if gs.scoreStore == nil {
		return nil
	}
	score, err := gs.scoreStore.Load()
	if err != nil {
		return err
	}
	gs.score = score
	gs.pushScore()
	return nil
}

// DeleteScore 删除持久化的分数（内存中的当前分数不变）
func (gs *GameState) DeleteScore() error {
	if gs.scoreStore == nil {
		return nil
	}
	return gs.scoreStore.Delete()
}

func (gs *GameState) pushScore() {
	if gs.scoreDisplay == nil {
		log.Printf("[GameState] No score display attached, skipping update (score=%d)", gs.score)
		return
	}
	gs.scoreDisplay.UpdateScore(gs.score)
}

func (gs *GameState) pushLives() {
	if gs.livesDisplay == nil {
		log.Printf("[GameState] No lives display attached, skipping update (lives=%d/%d)", gs.lives, gs.maxLives)
		return
	}
	gs.livesDisplay.UpdateLives(gs.lives, gs.maxLives)
}
