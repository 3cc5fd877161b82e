package game

import "log"

// FlowState 场景流程状态
type FlowState int

const (
	// FlowPlaying 游戏进行中（初始状态）
	FlowPlaying FlowState = iota
	// FlowPaused 暂停
	FlowPaused
	// FlowGameOver 游戏结束（本场景终态）
	FlowGameOver
	// FlowLevelComplete 关卡完成（本场景终态）
	FlowLevelComplete
)

func (s FlowState) String() string {
	switch s {
	case FlowPlaying:
		return "Playing"
	case FlowPaused:
		return "Paused"
	case FlowGameOver:
		return "GameOver"
	case FlowLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// SceneLoader 场景加载器
// 由 SceneManager 实现
type SceneLoader interface {
	// LoadLevel 加载指定编号的关卡（从 1 开始）
	LoadLevel(index int)
	// LoadMainMenu 返回主菜单
	LoadMainMenu()
}

// SceneFlow 关卡场景的流程控制
//
// 状态转换：
//   - Playing <-> Paused（Pause/Resume）
//   - Playing/Paused -> GameOver | LevelComplete（终态，冻结模拟时钟）
//   - 终态只能通过 Restart/ContinueToNextLevel/QuitToMainMenu 离开（重新加载场景）
type SceneFlow struct {
	state      FlowState
	timeScale  float64
	levelIndex int

	gameState *GameState
	loader    SceneLoader
	listener  func(FlowState)
}

// NewSceneFlow 创建处于 Playing 状态的流程控制
//
// 参数：
//   - gs: 分数/生命状态
//   - loader: 场景加载器，可为 nil（仅切换状态，不加载场景）
//   - levelIndex: 当前关卡编号
func NewSceneFlow(gs *GameState, loader SceneLoader, levelIndex int) *SceneFlow {
	return &SceneFlow{
		state:      FlowPlaying,
		timeScale:  1,
		levelIndex: levelIndex,
		gameState:  gs,
		loader:     loader,
	}
}

// SetStateListener 设置状态变化回调（用于显示/隐藏面板、播放音效）
func (f *SceneFlow) SetStateListener(listener func(FlowState)) {
	f.listener = listener
}

// State 返回当前状态
func (f *SceneFlow) State() FlowState {
	return f.state
}

// TimeScale 返回模拟时钟倍率（冻结时为 0）
func (f *SceneFlow) TimeScale() float64 {
	return f.timeScale
}

// IsTerminal 是否处于终态
func (f *SceneFlow) IsTerminal() bool {
	return f.state == FlowGameOver || f.state == FlowLevelComplete
}

// LevelIndex 返回当前关卡编号
func (f *SceneFlow) LevelIndex() int {
	return f.levelIndex
}

// Pause 暂停游戏，仅在 Playing 状态下有效
func (f *SceneFlow) Pause() bool {
	if f.state != FlowPlaying {
		return false
	}
	f.setState(FlowPaused, 0)
	return true
}

// Resume 恢复游戏，仅在 Paused 状态下有效
func (f *SceneFlow) Resume() bool {
	if f.state != FlowPaused {
		return false
	}
	f.setState(FlowPlaying, 1)
	return true
}

// TogglePause 在 Playing 和 Paused 之间切换
func (f *SceneFlow) TogglePause() bool {
	if f.state == FlowPaused {
		return f.Resume()
	}
	return f.Pause()
}

// GameOver 进入游戏结束状态：冻结时钟、分数清零
//
// 同一 tick 内先完成关卡、后失去最后一条生命时，游戏结束覆盖关卡完成；
// 已处于 GameOver 时无操作
func (f *SceneFlow) GameOver() bool {
	if f.state == FlowGameOver {
		return false
	}
	f.setState(FlowGameOver, 0)
	if f.gameState != nil {
		f.gameState.ResetScore()
	}
	return true
}

// LevelCompleted 进入关卡完成状态：冻结时钟
// 已处于终态时无操作
func (f *SceneFlow) LevelCompleted() bool {
	if f.IsTerminal() {
		return false
	}
	f.setState(FlowLevelComplete, 0)
	return true
}

// Restart 分数清零、恢复满生命，重新加载当前关卡
func (f *SceneFlow) Restart() {
	if f.gameState != nil {
		f.gameState.ResetScore()
		f.gameState.ResetForNewGame()
	}
	f.timeScale = 1
	log.Printf("[SceneFlow] Restarting level %d", f.levelIndex)
	if f.loader != nil {
		f.loader.LoadLevel(f.levelIndex)
	}
}

// QuitToMainMenu 分数清零，返回主菜单
func (f *SceneFlow) QuitToMainMenu() {
	if f.gameState != nil {
		f.gameState.ResetScore()
	}
	f.timeScale = 1
	log.Printf("[SceneFlow] Quitting to main menu")
	if f.loader != nil {
		f.loader.LoadMainMenu()
	}
}

// ContinueToNextLevel 保存分数，加载下一关
// 生命已耗尽时改为进入游戏结束，不带着 0 条生命进入下一关
func (f *SceneFlow) ContinueToNextLevel() {
	if f.gameState != nil && f.gameState.Lives() == 0 {
		log.Printf("[SceneFlow] No lives left, refusing to continue")
		f.GameOver()
		return
	}
	if f.gameState != nil {
		if err := f.gameState.SaveScore(); err != nil {
			log.Printf("[SceneFlow] Warning: %v", err)
		}
	}
	f.timeScale = 1
	log.Printf("[SceneFlow] Continuing to level %d", f.levelIndex+1)
	if f.loader != nil {
		f.loader.LoadLevel(f.levelIndex + 1)
	}
}

func (f *SceneFlow) setState(state FlowState, timeScale float64) {
	log.Printf("[SceneFlow] %s -> %s", f.state, state)
	f.state = state
	f.timeScale = timeScale
	if f.listener != nil {
		f.listener(state)
	}
}
