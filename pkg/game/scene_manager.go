package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// LevelFactory 关卡场景工厂函数
// 用于创建指定编号的关卡场景，避免 game 与 scenes 包循环依赖
type LevelFactory func(levelIndex int) Scene

// MenuFactory 主菜单场景工厂函数
type MenuFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 关卡编号从 1 开始，0 表示主菜单。
type SceneManager struct {
	currentScene Scene
	currentLevel int

	levelFactory LevelFactory
	menuFactory  MenuFactory
	levelCount   int

	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadMainMenu to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetLevelFactory 设置关卡工厂和关卡总数
func (sm *SceneManager) SetLevelFactory(factory LevelFactory, levelCount int) {
	sm.levelFactory = factory
	sm.levelCount = levelCount
}

// SetMenuFactory 设置主菜单工厂
func (sm *SceneManager) SetMenuFactory(factory MenuFactory) {
	sm.menuFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 返回当前关卡编号（主菜单为 0）
func (sm *SceneManager) CurrentLevel() int {
	return sm.currentLevel
}

// LevelCount 返回关卡总数
func (sm *SceneManager) LevelCount() int {
	return sm.levelCount
}

// LoadLevel 加载指定编号的关卡场景
//
// 超出最后一关时回到第 1 关（分数由 GameState 保留）。
func (sm *SceneManager) LoadLevel(levelIndex int) {
	if sm.levelFactory == nil {
		log.Printf("[SceneManager] Error: level factory not set")
		return
	}
	if levelIndex < 1 || (sm.levelCount > 0 && levelIndex > sm.levelCount) {
		log.Printf("[SceneManager] Level %d out of range (1..%d), wrapping to level 1", levelIndex, sm.levelCount)
		levelIndex = 1
	}

	log.Printf("[SceneManager] Loading level %d", levelIndex)
	newScene := sm.levelFactory(levelIndex)
	if newScene == nil {
		log.Printf("[SceneManager] Error: failed to create level scene %d", levelIndex)
		return
	}
	sm.currentLevel = levelIndex
	sm.SwitchTo(newScene)
}

// LoadMainMenu 切换到主菜单
func (sm *SceneManager) LoadMainMenu() {
	if sm.menuFactory == nil {
		log.Printf("[SceneManager] Error: menu factory not set")
		return
	}
	log.Printf("[SceneManager] Loading main menu")
	newScene := sm.menuFactory()
	if newScene == nil {
		log.Printf("[SceneManager] Error: failed to create main menu scene")
		return
	}
	sm.currentLevel = 0
	sm.SwitchTo(newScene)
}

// RequestQuit 请求退出程序，由主循环在下一帧处理
func (sm *SceneManager) RequestQuit() {
	log.Printf("[SceneManager] Quit requested")
	sm.quitRequested = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
