package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
)

var (
	configPath  = flag.String("config", "data/gameplay.yaml", "玩法配置文件路径")
	stringsPath = flag.String("strings", "data/strings.txt", "界面文本文件路径")
	level       = flag.Int("level", 1, "模拟的关卡（从 1 开始）")
	seconds     = flag.Float64("seconds", 60, "最长模拟时间（秒）")
	seed        = flag.Int64("seed", 1, "随机数种子")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

// 无窗口运行一个关卡，玩家静止不动（只会自动射击），
// 输出关卡结束时的状态，用于调整编队速度和敌人火力。
func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	svc, err := newServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	scene := scenes.NewGameScene(svc, *level)
	svc.Scenes.SwitchTo(scene)

	maxTicks := int(*seconds * config.TicksPerSecond)
	ticks := 0
	for ; ticks < maxTicks && !scene.Flow().IsTerminal(); ticks++ {
		scene.Step(config.FixedDeltaTime)
	}

	fmt.Printf("level:     %d\n", scene.LevelIndex())
	fmt.Printf("time:      %.2fs (%d ticks)\n", float64(ticks)*config.FixedDeltaTime, ticks)
	fmt.Printf("state:     %s\n", scene.Flow().State())
	fmt.Printf("score:     %d\n", svc.State.Score())
	fmt.Printf("lives:     %d/%d\n", svc.State.Lives(), svc.State.MaxLives())
	fmt.Printf("enemies:   %d remaining\n", scene.RemainingEnemies())
}

func newServices() (*scenes.Services, error) {
	data, err := os.ReadFile(*configPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", *configPath, err)
	}
	cfg, err := config.ParseGameplayConfig(data)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(*stringsPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", *stringsPath, err)
	}
	defer f.Close()
	uiStrings, err := game.ParseUIStrings(f)
	if err != nil {
		return nil, err
	}

	return &scenes.Services{
		Config:  cfg,
		State:   game.NewGameState(game.NewScoreStore(nil), cfg.Player.MaxLives),
		Scenes:  game.NewSceneManager(),
		Strings: uiStrings,
		Rand:    rand.New(rand.NewSource(*seed)),
	}, nil
}
