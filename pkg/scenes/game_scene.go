package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay button groups. Only the group matching the current flow state is visible.
const (
	groupHUD      = "hud"
	groupPause    = "pause"
	groupGameOver = "gameover"
	groupComplete = "complete"
)

const (
	pauseButtonWidth  = 36.0
	pauseButtonHeight = 22.0
)

var (
	gameBackgroundColor = color.RGBA{R: 5, G: 5, B: 18, A: 255}
	overlayColor        = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	overlayTitleColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// GameScene is one playable level: the player, a formation of enemies,
// shields and the four boundaries, plus the HUD and overlay panels.
//
// Simulation systems run on the scaled delta time (SceneFlow.TimeScale), so
// pausing or ending the level freezes the world while buttons stay live.
type GameScene struct {
	services   *Services
	levelIndex int
	level      *config.LevelConfig

	entityManager *ecs.EntityManager
	flow          *game.SceneFlow

	playerSystem     *systems.PlayerSystem
	formationSystem  *systems.FormationSystem
	shootingSystem   *systems.ShootingSystem
	projectileSystem *systems.ProjectileSystem
	lifetimeSystem   *systems.LifetimeSystem
	collisionSystem  *systems.CollisionSystem
	damageSystem     *systems.DamageSystem

	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	renderSystem       *systems.RenderSystem
	hud                *systems.HUDRenderSystem

	playerID    ecs.EntityID
	formationID ecs.EntityID
	finalScore  int
}

// NewGameScene creates the scene for the given level (1-based).
// Unknown levels fall back to level 1.
//
// Parameters:
//   - svc: shared services.
//   - levelIndex: level number, 1..LevelCount.
//
// Returns:
//   - A pointer to the newly created GameScene.
func NewGameScene(svc *Services, levelIndex int) *GameScene {
	level, ok := svc.Config.Level(levelIndex)
	if !ok {
		log.Printf("[GameScene] Warning: level %d not found, falling back to level 1", levelIndex)
		levelIndex = 1
		level, _ = svc.Config.Level(1)
	}

	s := &GameScene{
		services:      svc,
		levelIndex:    levelIndex,
		level:         level,
		entityManager: ecs.NewEntityManager(),
	}

	s.initFlow()
	s.initSystems()
	s.initEntities()
	s.initCollisionHandlers()
	s.initButtons()

	levelName := ""
	if level != nil {
		levelName = level.Name
	}
	log.Printf("[GameScene] Level %d (%s) ready: %d enemies, score=%d, lives=%d",
		levelIndex, levelName, s.formationSystem.MemberCount(s.formationID), svc.State.Score(), svc.State.Lives())
	return s
}

func (s *GameScene) initFlow() {
	gs := s.services.State
	s.flow = game.NewSceneFlow(gs, s.services.Scenes, s.levelIndex)
	s.flow.SetStateListener(s.onFlowStateChanged)
	gs.SetGameOverHandler(func() { s.flow.GameOver() })

	width, _ := s.services.screenSize()
	levelName := ""
	if s.level != nil {
		levelName = fmt.Sprintf("%s %d  %s", s.services.Strings.Get(game.StrLevel), s.levelIndex, s.level.Name)
	}
	s.hud = systems.NewHUDRenderSystem(s.services.Font, width, levelName)
	gs.SetScoreDisplay(s.hud)
	gs.SetLivesDisplay(s.hud)

	if err := gs.LoadScore(); err != nil {
		log.Printf("[GameScene] Warning: failed to load score: %v", err)
	}
}

func (s *GameScene) initSystems() {
	em := s.entityManager
	svc := s.services

	rng := svc.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(s.levelIndex)))
	}

	s.formationSystem = systems.NewFormationSystem(em, s.flow)
	s.damageSystem = systems.NewDamageSystem(em, svc.State, s.formationSystem, svc.Audio)
	s.projectileSystem = systems.NewProjectileSystem(em, systems.NewDamageTable(s.damageSystem))
	// 关卡完成后同一 tick 内的命中仍要结算，最后一条生命被击中时游戏结束优先
	s.projectileSystem.SetHaltCondition(func() bool { return s.flow.State() == game.FlowGameOver })
	input, pointer := svc.inputs()
	s.playerSystem = systems.NewPlayerSystem(em, input, s.flow)
	s.shootingSystem = systems.NewShootingSystem(em, svc.Audio, rng)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.collisionSystem = systems.NewCollisionSystem(em)

	s.buttonSystem = systems.NewButtonSystem(em, pointer)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(em, svc.Font)
	s.renderSystem = systems.NewRenderSystem(em)
}

func (s *GameScene) initEntities() {
	em := s.entityManager
	cfg := s.services.Config
	width, height := s.services.screenSize()

	entities.NewBoundaryEntities(em, width, height)
	entities.NewShieldEntities(em, cfg)
	s.formationID = entities.NewFormationEntity(em, cfg, s.level)
	s.playerID = entities.NewPlayerEntity(em, cfg, s.services.State.Lives())
}

func (s *GameScene) initCollisionHandlers() {
	cs := s.collisionSystem
	cs.OnEnter(components.ColliderEnemy, s.formationSystem.HandleEnemyContact)
	cs.OnEnter(components.ColliderPlayer, s.playerSystem.HandleContactEnter)
	cs.OnExit(components.ColliderPlayer, s.playerSystem.HandleContactExit)
	cs.OnEnter(components.ColliderProjectile, s.projectileSystem.HandleContact)
}

func (s *GameScene) initButtons() {
	em := s.entityManager
	str := s.services.Strings
	width, height := s.services.screenSize()
	top := height / 2

	entities.NewButtonColumn(em, width/2, top, groupPause, false,
		[]string{str.Get(game.StrResume), str.Get(game.StrRestart), str.Get(game.StrMainMenu)},
		[]func(){s.onResumeClicked, s.onRestartClicked, s.onMainMenuClicked})
	entities.NewButtonColumn(em, width/2, top, groupGameOver, false,
		[]string{str.Get(game.StrRestart), str.Get(game.StrMainMenu)},
		[]func(){s.onRestartClicked, s.onMainMenuClicked})
	entities.NewButtonColumn(em, width/2, top, groupComplete, false,
		[]string{str.Get(game.StrContinue), str.Get(game.StrMainMenu)},
		[]func(){s.onContinueClicked, s.onMainMenuClicked})

	// 暂停按钮位于生命图标左侧（触摸设备没有 Esc 键）
	livesWidth := float64(s.services.State.MaxLives()) * (config.LifeIconSize + config.LifeIconSpacing)
	pauseX := width - livesWidth - 8 - pauseButtonWidth
	pauseY := (config.HUDHeight - pauseButtonHeight) / 2
	pauseID := entities.NewButtonEntity(em, pauseX, pauseY, "II", groupHUD, true, s.onPauseClicked)
	if button, ok := ecs.GetComponent[*components.ButtonComponent](em, pauseID); ok {
		button.Width = pauseButtonWidth
		button.Height = pauseButtonHeight
	}
}

// Flow returns the scene's flow controller.
func (s *GameScene) Flow() *game.SceneFlow {
	return s.flow
}

// LevelIndex returns the level number this scene plays.
func (s *GameScene) LevelIndex() int {
	return s.levelIndex
}

// RemainingEnemies returns how many formation members are still alive.
func (s *GameScene) RemainingEnemies() int {
	return s.formationSystem.MemberCount(s.formationID)
}

// Update advances the level by one tick.
func (s *GameScene) Update(deltaTime float64) {
	input := s.services.Input
	if input != nil {
		if input.PausePressed() {
			s.flow.TogglePause()
		}
		if input.DebugTogglePressed() {
			s.renderSystem.SetDebug(!s.renderSystem.Debug())
		}
	}

	s.buttonSystem.Update(deltaTime)
	// 按钮回调可能已经切换到新场景
	if s.services.Scenes != nil && s.services.Scenes.GetCurrentScene() != s {
		return
	}

	s.Step(deltaTime * s.flow.TimeScale())
}

// Step runs the simulation systems for one tick of scaled time.
// A zero delta (paused or finished level) is a no-op.
func (s *GameScene) Step(scaledDelta float64) {
	if scaledDelta <= 0 {
		return
	}

	s.playerSystem.Update(scaledDelta)
	s.formationSystem.Update(scaledDelta)
	s.shootingSystem.Update(scaledDelta)
	s.projectileSystem.Update(scaledDelta)
	s.lifetimeSystem.Update(scaledDelta)
	s.collisionSystem.Update(scaledDelta)
	s.projectileSystem.ResolveHits()

	s.entityManager.RemoveMarkedEntities()
}

// Draw renders the world, the HUD and the active overlay.
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(gameBackgroundColor)
	s.renderSystem.Draw(screen)
	s.hud.Draw(screen, s.services.Strings.Get(game.StrScore))

	if title := s.overlayTitle(); title != "" {
		width, height := s.services.screenSize()
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlayColor, false)
		drawCenteredText(screen, s.services.Font, title, width/2, height/3, overlayTitleColor)
		if s.flow.State() == game.FlowGameOver {
			line := fmt.Sprintf("%s %d", s.services.Strings.Get(game.StrScore), s.finalScore)
			drawCenteredText(screen, s.services.Font, line, width/2, height/3+24, overlayTitleColor)
		}
	}

	s.buttonRenderSystem.Draw(screen)
}

// SaveOnExit persists the current score when the window is closed mid-run.
func (s *GameScene) SaveOnExit() bool {
	if s.flow.State() == game.FlowGameOver {
		return true
	}
	if err := s.services.State.SaveScore(); err != nil {
		log.Printf("[GameScene] Warning: failed to save score on exit: %v", err)
		return false
	}
	return true
}

func (s *GameScene) overlayTitle() string {
	switch s.flow.State() {
	case game.FlowPaused:
		return s.services.Strings.Get(game.StrPaused)
	case game.FlowGameOver:
		return s.services.Strings.Get(game.StrGameOver)
	case game.FlowLevelComplete:
		return s.services.Strings.Get(game.StrLevelComplete)
	default:
		return ""
	}
}

// onFlowStateChanged shows the panel for the new state and plays its jingle.
func (s *GameScene) onFlowStateChanged(state game.FlowState) {
	s.buttonSystem.SetGroupVisible(groupHUD, state == game.FlowPlaying)
	s.buttonSystem.SetGroupVisible(groupPause, state == game.FlowPaused)
	s.buttonSystem.SetGroupVisible(groupGameOver, state == game.FlowGameOver)
	s.buttonSystem.SetGroupVisible(groupComplete, state == game.FlowLevelComplete)

	switch state {
	case game.FlowGameOver:
		// 分数在监听回调之后清零
		s.finalScore = s.services.State.Score()
		s.services.Audio.PlaySound(game.SoundGameOver)
	case game.FlowLevelComplete:
		s.services.Audio.PlaySound(game.SoundLevelComplete)
	}
}

func (s *GameScene) onPauseClicked() {
	s.flow.Pause()
}

func (s *GameScene) onResumeClicked() {
	s.services.Audio.PlaySound(game.SoundButtonClick)
	s.flow.Resume()
}

func (s *GameScene) onRestartClicked() {
	s.services.Audio.PlaySound(game.SoundButtonClick)
	s.flow.Restart()
}

func (s *GameScene) onMainMenuClicked() {
	s.services.Audio.PlaySound(game.SoundButtonClick)
	s.flow.QuitToMainMenu()
}

func (s *GameScene) onContinueClicked() {
	s.services.Audio.PlaySound(game.SoundButtonClick)
	s.flow.ContinueToNextLevel()
}
