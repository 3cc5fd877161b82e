// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 直接进入的关卡（从 1 开始），0 表示显示主菜单
	Level int
	// Seed 随机数种子（敌人开火间隔），0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	services                 *scenes.Services
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := config.LoadGameplayConfig(config.GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("gameplay config: %w", err)
	}
	uiStrings, err := game.LoadUIStrings(game.UIStringsPath)
	if err != nil {
		return nil, fmt.Errorf("ui strings: %w", err)
	}
	log.Printf("[App] Loaded %d levels, %d UI strings", gameplay.LevelCount(), uiStrings.Len())

	// 存储打开失败时进入降级模式（仅内存）
	storage := game.OpenStorage(game.DefaultAppName)
	settingsManager := game.NewSettingsManager(storage)

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	gameState := game.NewGameState(game.NewScoreStore(storage), gameplay.Player.MaxLives)
	sceneManager := game.NewSceneManager()

	services := &scenes.Services{
		Config:   gameplay,
		State:    gameState,
		Scenes:   sceneManager,
		Audio:    audioManager,
		Settings: settingsManager,
		Strings:  uiStrings,
		Input:    utils.NewInput(),
		Font:     scenes.DefaultFontFace(),
		Rand:     rand.New(rand.NewSource(seedFor(cfg.Seed))),
	}

	sceneManager.SetLevelFactory(func(levelIndex int) game.Scene {
		return scenes.NewGameScene(services, levelIndex)
	}, gameplay.LevelCount())
	sceneManager.SetMenuFactory(func() game.Scene {
		return scenes.NewMainMenuScene(services)
	})

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 根据配置决定启动场景
	if cfg.Level > 0 {
		log.Printf("[App] Starting directly at level %d", cfg.Level)
		gameState.ResetScore()
		sceneManager.LoadLevel(cfg.Level)
	} else {
		sceneManager.LoadMainMenu()
	}

	return &App{
		sceneManager: sceneManager,
		services:     services,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.sceneManager.QuitRequested() || ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.services.Input.Update()
	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
	} else {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	if sm := a.services.Settings; sm != nil {
		sm.SetFullscreen(fullscreen)
		if err := sm.Save(); err != nil {
			log.Printf("[App] Warning: failed to save fullscreen setting: %v", err)
		}
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	// 像素风格画面使用最近邻缩放
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := a.services.Config.Window
	return w.Width, w.Height
}

// WindowTitle 返回配置中的窗口标题
func (a *App) WindowTitle() string {
	return a.services.Config.Window.Title
}

// SaveOnExit 让当前场景保存状态（如果支持）
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: current scene failed to save on exit")
		}
	}
}


// seedFor 返回随机数种子，0 表示使用当前时间
func seedFor(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
