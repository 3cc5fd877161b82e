package scenes

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

func TestNewGameSceneBuildsLevel(t *testing.T) {
	svc := newTestServices(t)
	scene := NewGameScene(svc, 1)

	level, _ := svc.Config.Level(1)
	if got := scene.formationSystem.MemberCount(scene.formationID); got != level.Rows*level.Cols {
		t.Errorf("Expected %d enemies, got %d", level.Rows*level.Cols, got)
	}
	shields := ecs.GetEntitiesWith1[*components.ShieldComponent](scene.entityManager)
	if len(shields) != svc.Config.Shield.Count {
		t.Errorf("Expected %d shields, got %d", svc.Config.Shield.Count, len(shields))
	}
	boundaries := ecs.GetEntitiesWith1[*components.BoundaryComponent](scene.entityManager)
	if len(boundaries) != 4 {
		t.Errorf("Expected 4 boundaries, got %d", len(boundaries))
	}
	if !scene.entityManager.Exists(scene.playerID) {
		t.Error("Expected player entity")
	}
	if scene.Flow().State() != game.FlowPlaying {
		t.Errorf("Expected Playing, got %s", scene.Flow().State())
	}
}

func TestNewGameSceneUnknownLevelFallsBack(t *testing.T) {
	svc := newTestServices(t)
	scene := NewGameScene(svc, 99)

	if scene.LevelIndex() != 1 {
		t.Errorf("Expected fallback to level 1, got %d", scene.LevelIndex())
	}
}

func TestGameSceneFormationReachesBoundary(t *testing.T) {
	svc := newTestServices(t)
	scene := NewGameScene(svc, 1)
	origin, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.formationID)

	for i := 0; i < 5*60; i++ {
		scene.Step(1.0 / 60)
	}

	if origin.Y <= svc.Config.Formation.OriginY {
		t.Errorf("Expected formation to drop after reaching a side, Y=%f", origin.Y)
	}
}

func TestGameScenePauseFreezesWorld(t *testing.T) {
	svc := newTestServices(t)
	scene := NewGameScene(svc, 1)
	svc.Scenes.SwitchTo(scene)
	origin, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.formationID)

	scene.Flow().Pause()
	before := origin.X
	for i := 0; i < 30; i++ {
		scene.Update(1.0 / 60)
	}
	if origin.X != before {
		t.Errorf("Formation moved while paused: %f -> %f", before, origin.X)
	}

	scene.Flow().Resume()
	scene.Update(1.0 / 60)
	if origin.X == before {
		t.Error("Formation should move after resume")
	}
}

func TestGameSceneLevelCompleteWhenFormationCleared(t *testing.T) {
	svc := newTestServices(t)
	scene := NewGameScene(svc, 1)

	formation, _ := ecs.GetComponent[*components.FormationComponent](scene.entityManager, scene.formationID)
	members := make([]ecs.EntityID, 0, len(formation.Members))
	for id := range formation.Members {
		members = append(members, id)
	}
	for _, id := range members {
		scene.damageSystem.DamageEnemy(id, svc.Config.EnemyHealth(scene.level))
	}

	if scene.Flow().State() != game.FlowLevelComplete {
		t.Fatalf("Expected LevelComplete, got %s", scene.Flow().State())
	}
	if want := len(members) * svc.Config.Enemy.ScoreValue; svc.State.Score() != want {
		t.Errorf("Expected score %d, got %d", want, svc.State.Score())
	}
	if scene.Flow().TimeScale() != 0 {
		t.Error("Completed level should freeze the clock")
	}
	if scene.overlayTitle() != svc.Strings.Get(game.StrLevelComplete) {
		t.Errorf("Unexpected overlay title %q", scene.overlayTitle())
	}
}

func TestGameSceneGameOverWhenLivesDepleted(t *testing.T) {
	svc := newTestServices(t)
	scene := NewGameScene(svc, 1)
	svc.State.IncreaseScore(500)

	for i := 0; i < svc.Config.Player.MaxLives; i++ {
		scene.damageSystem.DamagePlayer(scene.playerID, 1)
	}

	if scene.Flow().State() != game.FlowGameOver {
		t.Fatalf("Expected GameOver, got %s", scene.Flow().State())
	}
	if scene.finalScore != 500 {
		t.Errorf("Expected final score 500 to be kept for the panel, got %d", scene.finalScore)
	}
	if svc.State.Score() != 0 {
		t.Errorf("Expected score reset after game over, got %d", svc.State.Score())
	}
}

func TestGameSceneContinueLoadsNextLevel(t *testing.T) {
	svc := newTestServices(t)
	svc.Scenes.LoadLevel(1)
	scene := svc.Scenes.GetCurrentScene().(*GameScene)

	scene.Flow().LevelCompleted()
	scene.onContinueClicked()

	next, ok := svc.Scenes.GetCurrentScene().(*GameScene)
	if !ok {
		t.Fatal("Expected a game scene after continue")
	}
	if next.LevelIndex() != 2 {
		t.Errorf("Expected level 2, got %d", next.LevelIndex())
	}
}

func TestGameSceneRestartRestoresLives(t *testing.T) {
	svc := newTestServices(t)
	svc.Scenes.LoadLevel(2)
	scene := svc.Scenes.GetCurrentScene().(*GameScene)

	for i := 0; i < svc.Config.Player.MaxLives; i++ {
		scene.damageSystem.DamagePlayer(scene.playerID, 1)
	}
	scene.onRestartClicked()

	restarted := svc.Scenes.GetCurrentScene().(*GameScene)
	if restarted == scene || restarted.LevelIndex() != 2 {
		t.Errorf("Expected a fresh level 2 scene, got level %d", restarted.LevelIndex())
	}
	if svc.State.Lives() != svc.Config.Player.MaxLives {
		t.Errorf("Expected full lives after restart, got %d", svc.State.Lives())
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](restarted.entityManager, restarted.playerID)
	if health.CurrentHealth != svc.Config.Player.MaxLives {
		t.Errorf("Expected player health %d, got %d", svc.Config.Player.MaxLives, health.CurrentHealth)
	}
}

func TestGameSceneMainMenu(t *testing.T) {
	svc := newTestServices(t)
	svc.Scenes.LoadLevel(1)
	scene := svc.Scenes.GetCurrentScene().(*GameScene)

	scene.onMainMenuClicked()

	if _, ok := svc.Scenes.GetCurrentScene().(*MainMenuScene); !ok {
		t.Error("Expected main menu scene")
	}
	if svc.Scenes.CurrentLevel() != 0 {
		t.Errorf("Expected current level 0 on main menu, got %d", svc.Scenes.CurrentLevel())
	}
}

func TestGameSceneSaveOnExit(t *testing.T) {
	svc := newTestServices(t)
	store := game.NewScoreStore(nil)
	svc.State = game.NewGameState(store, 3)
	scene := NewGameScene(svc, 1)

	svc.State.IncreaseScore(300)
	if !scene.SaveOnExit() {
		t.Fatal("SaveOnExit should succeed")
	}
	if saved, _ := store.Load(); saved != 300 {
		t.Errorf("Expected saved score 300, got %d", saved)
	}
}

// killAllButOneEnemy 消灭除一个以外的全部敌人，返回剩下的那个
func killAllButOneEnemy(t *testing.T, scene *GameScene) ecs.EntityID {
	t.Helper()
	formation, _ := ecs.GetComponent[*components.FormationComponent](scene.entityManager, scene.formationID)
	members := make([]ecs.EntityID, 0, len(formation.Members))
	for id := range formation.Members {
		members = append(members, id)
	}
	for _, id := range members[1:] {
		scene.damageSystem.DamageEnemy(id, scene.services.Config.EnemyHealth(scene.level))
	}
	if scene.RemainingEnemies() != 1 {
		t.Fatalf("Expected 1 enemy left, got %d", scene.RemainingEnemies())
	}
	return members[0]
}

// queueShots 在同一 tick 内依次缓存玩家子弹击中敌人、敌人子弹击中玩家
func queueShots(scene *GameScene, lastEnemy ecs.EntityID, playerShotFirst bool) {
	em := scene.entityManager
	spec := components.ProjectileSpec{Speed: 100, Lifetime: 5, Damage: scene.services.Config.EnemyHealth(scene.level), Width: 4, Height: 10}
	playerShot := entities.NewProjectileEntity(em, 100, 100, 0, -1, components.SidePlayer, components.SideEnemy, spec)
	spec.Damage = 1
	enemyShot := entities.NewProjectileEntity(em, 100, 500, 0, 1, components.SideEnemy, components.SidePlayer, spec)

	if playerShotFirst {
		scene.projectileSystem.HandleContact(playerShot, lastEnemy, components.ColliderEnemy)
		scene.projectileSystem.HandleContact(enemyShot, scene.playerID, components.ColliderPlayer)
	} else {
		scene.projectileSystem.HandleContact(enemyShot, scene.playerID, components.ColliderPlayer)
		scene.projectileSystem.HandleContact(playerShot, lastEnemy, components.ColliderEnemy)
	}
	scene.projectileSystem.ResolveHits()
}

func TestGameSceneLastLifeAfterLastEnemySameTick(t *testing.T) {
	svc := newTestServices(t)
	svc.Scenes.LoadLevel(1)
	scene := svc.Scenes.GetCurrentScene().(*GameScene)
	svc.State.UpdateLives(1 - svc.Config.Player.MaxLives)

	lastEnemy := killAllButOneEnemy(t, scene)
	scoreBefore := svc.State.Score()
	queueShots(scene, lastEnemy, true)

	if scene.Flow().State() != game.FlowGameOver {
		t.Fatalf("Expected game over to win over level complete, got %s", scene.Flow().State())
	}
	if svc.State.Lives() != 0 {
		t.Errorf("Expected 0 lives, got %d", svc.State.Lives())
	}
	if want := scoreBefore + svc.Config.Enemy.ScoreValue; scene.finalScore != want {
		t.Errorf("Expected final score %d, got %d", want, scene.finalScore)
	}
	if svc.State.Score() != 0 {
		t.Errorf("Expected score reset after game over, got %d", svc.State.Score())
	}

	// 生命为 0 时不能带入下一关
	scene.onContinueClicked()
	if svc.Scenes.GetCurrentScene() != scene {
		t.Error("Continue with no lives should not load another level")
	}
}

func TestGameSceneEnemyKillAfterGameOverSameTick(t *testing.T) {
	svc := newTestServices(t)
	scene := NewGameScene(svc, 1)
	svc.State.UpdateLives(1 - svc.Config.Player.MaxLives)

	lastEnemy := killAllButOneEnemy(t, scene)
	queueShots(scene, lastEnemy, false)

	if scene.Flow().State() != game.FlowGameOver {
		t.Fatalf("Expected GameOver, got %s", scene.Flow().State())
	}
	if svc.State.Score() != 0 {
		t.Errorf("Hits after game over should not score, got %d", svc.State.Score())
	}
	if !scene.entityManager.Exists(lastEnemy) || scene.RemainingEnemies() != 1 {
		t.Error("Last enemy should survive once the game is over")
	}
}
