package scenes

import (
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

// newTestServices 使用仓库内的配置和文本构建场景依赖（无输入、无音频、无字体）
func newTestServices(t *testing.T) *Services {
	t.Helper()

	data, err := os.ReadFile("../../data/gameplay.yaml")
	if err != nil {
		t.Fatalf("read gameplay config: %v", err)
	}
	cfg, err := config.ParseGameplayConfig(data)
	if err != nil {
		t.Fatalf("parse gameplay config: %v", err)
	}

	f, err := os.Open("../../data/strings.txt")
	if err != nil {
		t.Fatalf("open strings: %v", err)
	}
	defer f.Close()
	strs, err := game.ParseUIStrings(f)
	if err != nil {
		t.Fatalf("parse strings: %v", err)
	}

	svc := &Services{
		Config:  cfg,
		State:   game.NewGameState(game.NewScoreStore(nil), cfg.Player.MaxLives),
		Scenes:  game.NewSceneManager(),
		Strings: strs,
		Rand:    rand.New(rand.NewSource(7)),
	}
	svc.Scenes.SetLevelFactory(func(level int) game.Scene {
		return NewGameScene(svc, level)
	}, cfg.LevelCount())
	svc.Scenes.SetMenuFactory(func() game.Scene {
		return NewMainMenuScene(svc)
	})
	return svc
}
