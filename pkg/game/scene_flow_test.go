package game

import "testing"

type mockLoader struct {
	levels    []int
	menuLoads int
}

func (l *mockLoader) LoadLevel(index int) { l.levels = append(l.levels, index) }
func (l *mockLoader) LoadMainMenu()       { l.menuLoads++ }

// TestSceneFlowInitialState 新建流程处于 Playing，时钟正常
func TestSceneFlowInitialState(t *testing.T) {
	f := NewSceneFlow(nil, nil, 1)
	if f.State() != FlowPlaying {
		t.Errorf("State() = %v, want Playing", f.State())
	}
	if f.TimeScale() != 1 {
		t.Errorf("TimeScale() = %v, want 1", f.TimeScale())
	}
	if f.IsTerminal() {
		t.Error("new flow should not be terminal")
	}
}

// TestSceneFlowPauseResume 测试暂停与恢复
func TestSceneFlowPauseResume(t *testing.T) {
	f := NewSceneFlow(nil, nil, 1)
	var seen []FlowState
	f.SetStateListener(func(s FlowState) { seen = append(seen, s) })

	if !f.Pause() {
		t.Fatal("Pause() from Playing should succeed")
	}
	if f.State() != FlowPaused || f.TimeScale() != 0 {
		t.Errorf("after Pause: state=%v scale=%v", f.State(), f.TimeScale())
	}
	if f.Pause() {
		t.Error("Pause() while paused should be a no-op")
	}
	if !f.TogglePause() {
		t.Fatal("TogglePause() from Paused should resume")
	}
	if f.State() != FlowPlaying || f.TimeScale() != 1 {
		t.Errorf("after resume: state=%v scale=%v", f.State(), f.TimeScale())
	}
	if f.Resume() {
		t.Error("Resume() while playing should be a no-op")
	}
	if len(seen) != 2 || seen[0] != FlowPaused || seen[1] != FlowPlaying {
		t.Errorf("listener saw %v, want [Paused Playing]", seen)
	}
}

// TestSceneFlowGameOver 游戏结束冻结时钟、清零分数，且为终态
func TestSceneFlowGameOver(t *testing.T) {
	gs := NewGameState(NewScoreStore(nil), 3)
	gs.IncreaseScore(400)
	f := NewSceneFlow(gs, nil, 2)

	calls := 0
	f.SetStateListener(func(FlowState) { calls++ })

	if !f.GameOver() {
		t.Fatal("GameOver() should succeed from Playing")
	}
	if f.State() != FlowGameOver || f.TimeScale() != 0 {
		t.Errorf("state=%v scale=%v, want GameOver/0", f.State(), f.TimeScale())
	}
	if gs.Score() != 0 {
		t.Errorf("score after game over = %d, want 0", gs.Score())
	}
	if f.GameOver() || f.LevelCompleted() || f.Pause() {
		t.Error("terminal state should ignore further transitions")
	}
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

// TestSceneFlowGameOverWhilePaused 暂停中也可以进入游戏结束
func TestSceneFlowGameOverWhilePaused(t *testing.T) {
	f := NewSceneFlow(nil, nil, 1)
	f.Pause()
	if !f.GameOver() {
		t.Fatal("GameOver() from Paused should succeed")
	}
	if f.Resume() {
		t.Error("Resume() from GameOver should be a no-op")
	}
}

// TestSceneFlowLevelCompleted 关卡完成保持分数
func TestSceneFlowLevelCompleted(t *testing.T) {
	gs := NewGameState(NewScoreStore(nil), 3)
	gs.IncreaseScore(900)
	f := NewSceneFlow(gs, nil, 1)

	if !f.LevelCompleted() {
		t.Fatal("LevelCompleted() should succeed")
	}
	if f.State() != FlowLevelComplete || f.TimeScale() != 0 {
		t.Errorf("state=%v scale=%v", f.State(), f.TimeScale())
	}
	if gs.Score() != 900 {
		t.Errorf("score = %d, want 900", gs.Score())
	}
	if f.LevelCompleted() || f.Pause() {
		t.Error("LevelComplete should ignore repeated completion and pause")
	}
}

// TestSceneFlowGameOverOverridesLevelComplete 同一 tick 内关卡完成后失去最后一条生命，游戏结束优先
func TestSceneFlowGameOverOverridesLevelComplete(t *testing.T) {
	gs := NewGameState(NewScoreStore(nil), 1)
	f := NewSceneFlow(gs, nil, 1)
	gs.SetGameOverHandler(func() { f.GameOver() })
	gs.IncreaseScore(300)

	var seen []FlowState
	f.SetStateListener(func(s FlowState) { seen = append(seen, s) })

	f.LevelCompleted()
	gs.UpdateLives(-1)

	if f.State() != FlowGameOver {
		t.Fatalf("State() = %v, want GameOver", f.State())
	}
	if gs.Score() != 0 {
		t.Errorf("score = %d, want 0 after game over", gs.Score())
	}
	if len(seen) != 2 || seen[0] != FlowLevelComplete || seen[1] != FlowGameOver {
		t.Errorf("listener saw %v, want [LevelComplete GameOver]", seen)
	}
	if f.LevelCompleted() {
		t.Error("LevelCompleted() after GameOver() should be a no-op")
	}
}

// TestSceneFlowContinueWithoutLives 生命为 0 时不能进入下一关
func TestSceneFlowContinueWithoutLives(t *testing.T) {
	gs := NewGameState(NewScoreStore(nil), 2)
	loader := &mockLoader{}
	f := NewSceneFlow(gs, loader, 1)

	f.LevelCompleted()
	// 不经过游戏结束回调直接耗尽生命
	gs.UpdateLives(-2)
	f.ContinueToNextLevel()

	if len(loader.levels) != 0 {
		t.Errorf("loaded levels = %v, want none", loader.levels)
	}
	if f.State() != FlowGameOver {
		t.Errorf("State() = %v, want GameOver", f.State())
	}
}

// TestSceneFlowNavigation 测试重新开始、下一关与返回主菜单
func TestSceneFlowNavigation(t *testing.T) {
	store := NewScoreStore(nil)
	gs := NewGameState(store, 3)
	loader := &mockLoader{}

	gs.IncreaseScore(250)
	f := NewSceneFlow(gs, loader, 2)
	f.LevelCompleted()
	f.ContinueToNextLevel()

	if len(loader.levels) != 1 || loader.levels[0] != 3 {
		t.Errorf("loaded levels = %v, want [3]", loader.levels)
	}
	if saved, _ := store.Load(); saved != 250 {
		t.Errorf("saved score = %d, want 250", saved)
	}
	if f.TimeScale() != 1 {
		t.Errorf("TimeScale() after continue = %v, want 1", f.TimeScale())
	}

	gs.UpdateLives(-3)
	f.Restart()
	if gs.Lives() != 3 {
		t.Errorf("lives after restart = %d, want 3", gs.Lives())
	}
	if loader.levels[len(loader.levels)-1] != 2 {
		t.Errorf("Restart() loaded level %d, want 2", loader.levels[len(loader.levels)-1])
	}
	if gs.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", gs.Score())
	}

	gs.IncreaseScore(10)
	f.QuitToMainMenu()
	if loader.menuLoads != 1 {
		t.Errorf("menu loads = %d, want 1", loader.menuLoads)
	}
	if gs.Score() != 0 {
		t.Errorf("score after quit = %d, want 0", gs.Score())
	}
}

// TestFlowStateString 测试状态名称
func TestFlowStateString(t *testing.T) {
	tests := map[FlowState]string{
		FlowPlaying:       "Playing",
		FlowPaused:        "Paused",
		FlowGameOver:      "GameOver",
		FlowLevelComplete: "LevelComplete",
		FlowState(99):     "Unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
