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
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/embedded"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/scenes"
	"github.com/decker502/plinko/pkg/systems"
	"github.com/decker502/plinko/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "plinko"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// GameConfig 调参配置，为 nil 时读取嵌入的 data/plinko.yaml
	GameConfig *config.GameConfig
	// Seed 第一回合的随机种子，为 0 时使用当前时间
	Seed int64
	// Mute 禁用音频设备
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	clock                    *FrameClock
	width, height            int // 逻辑屏幕尺寸（与场地一致）
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 桌面端调用此函数前应先调用 embedded.Init()；未初始化时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := resolveGameConfig(cfg.GameConfig)
	if err != nil {
		return nil, err
	}

	// 打开跨平台存储，失败时降级为仅内存
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	} else if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings and scores will not persist)", err)
	} else {
		gdataManager = m
	}

	settingsManager := game.NewSettingsManager(gdataManager)
	highScoreManager := game.NewHighScoreManager(gdataManager)

	var audioContext *audio.Context
	if !cfg.Mute {
		audioContext = audio.NewContext(game.SoundSampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	renderSystem, err := systems.NewRenderSystem()
	if err != nil {
		return nil, fmt.Errorf("渲染系统初始化失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sceneManager := game.NewSceneManager()
	deps := &scenes.Deps{
		Config:   gameConfig,
		Scenes:   sceneManager,
		Settings: settingsManager,
		Audio:    audioManager,
		Scores:   highScoreManager,
		Renderer: renderSystem,
		Input:    systems.NewInputSystem(),
		Seed:     scenes.RandomSeeds(seed),
	}
	sceneManager.SetRoundFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(deps, deps.Seed())
	})

	if err := sceneManager.StartRound(); err != nil {
		return nil, fmt.Errorf("回合初始化失败: %w", err)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Started with seed %d, best score %d", seed, highScoreManager.Best().Score)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		clock:           NewFrameClock(nil, config.MaxFrameSeconds),
		width:           int(gameConfig.Field.Width),
		height:          int(gameConfig.Field.Height),
		verbose:         cfg.Verbose,
	}, nil
}

// resolveGameConfig 返回显式传入的配置，或读取嵌入的配置文件
func resolveGameConfig(cfg *config.GameConfig) (*config.GameConfig, error) {
	if cfg != nil {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("游戏配置无效: %w", err)
		}
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[App] Embedded data not initialized, using built-in defaults")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile("data/plinko.yaml")
	if err != nil {
		return nil, fmt.Errorf("游戏配置读取失败: %w", err)
	}
	parsed, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	return parsed, nil
}

// Update 更新游戏逻辑
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// Esc 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.FinishRound()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	}

	a.sceneManager.Update(a.clock.Tick())
	return nil
}

// FinishRound 在退出前记录当前回合
func (a *App) FinishRound() {
	if finisher, ok := a.sceneManager.GetCurrentScene().(game.RoundFinisher); ok {
		finisher.FinishRound()
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即场地尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// WindowSize 返回建议的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
