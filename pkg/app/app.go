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

	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/embedded"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/scenes"
	"github.com/decker502/relicrun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartScene 启动场景键名（如 "level2"），为空则进入主菜单
	StartScene string
	// AppName 设置文件的存储名
	AppName string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scheduler    *game.Scheduler
	sceneManager *game.SceneManager
	coordinator  *game.Coordinator
	audioManager *game.AudioManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化资源文件系统。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneData, err := embedded.ReadFile("data/scenes.yaml")
	if err != nil {
		return nil, fmt.Errorf("场景表加载失败: %w", err)
	}
	sceneTable, err := config.ParseSceneTable(sceneData, "data/scenes.yaml")
	if err != nil {
		return nil, err
	}
	dataFS, err := embedded.Sub("data")
	if err != nil {
		return nil, fmt.Errorf("数据目录不可用: %w", err)
	}

	// 初始化音频上下文和资源管理器
	audioContext := audio.NewContext(config.AudioSampleRate)
	assetsFS, err := embedded.Sub("assets")
	if err != nil {
		log.Printf("[App] Warning: assets unavailable, audio disabled: %v", err)
		assetsFS = nil
	}
	resourceManager := game.NewResourceManager(assetsFS, audioContext)
	resourceData, err := embedded.ReadFile("data/resources.yaml")
	if err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceConfig(resourceData, "data/resources.yaml"); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 设置存储不可用时降级为内存设置
	var settingsManager *game.SettingsManager
	if storage, err := utils.OpenStorage(cfg.AppName); err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		settingsManager, _ = game.NewSettingsManager(nil)
	} else {
		settingsManager, _ = game.NewSettingsManager(storage)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.Preload(game.CueCollect, game.CueDoor)
	log.Printf("[App] AudioManager initialized")

	scheduler := game.NewScheduler()
	registry := game.NewRegistry()
	coordinator, _ := registry.Provide(game.CoordinatorConfig{
		TransitionDelay: config.TransitionDelay,
		Scenes:          sceneTable,
		Scheduler:       scheduler,
	})

	ctx := &scenes.Context{
		Coordinator: coordinator,
		Scenes:      sceneTable,
		Data:        dataFS,
		Input:       utils.NewKeyboardInput(utils.DefaultKeyBindings()),
		Audio:       audioManager,
		Music:       audioManager,
		Settings:    settingsManager,
	}
	sceneManager := game.NewSceneManager(sceneTable, scenes.NewFactory(ctx))
	ctx.Loader = sceneManager

	coordinator.SetSceneLoader(sceneManager)
	coordinator.SetAudioGateway(audioManager)
	coordinator.SetPointerCapture(cursorCapture{})
	coordinator.SetQuitHandler(sceneManager.RequestQuit)
	sceneManager.SetSwitchHook(coordinator.PlaySceneMusic)

	startScene := config.SceneMainMenu
	if cfg.StartScene != "" {
		startScene, err = config.ParseSceneID(cfg.StartScene)
		if err != nil {
			return nil, fmt.Errorf("启动场景无效: %w", err)
		}
	}
	log.Printf("[App] Starting scene: %s", startScene)
	if err := sceneManager.Start(startScene); err != nil {
		return nil, err
	}

	return &App{
		scheduler:    scheduler,
		sceneManager: sceneManager,
		coordinator:  coordinator,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 调度器和场景都使用真实时间，关卡场景自行按 TimeScale 缩放
	deltaTime := config.FixedDeltaTime
	a.scheduler.Update(deltaTime)
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.QuitRequested() {
		log.Printf("[App] Quit")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
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

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetCoordinator 返回游戏状态协调器
func (a *App) GetCoordinator() *game.Coordinator {
	return a.coordinator
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// cursorCapture 通过 ebiten 光标模式实现指针捕获
// 移动端没有光标，调用直接忽略
type cursorCapture struct{}

func (cursorCapture) SetCaptured(captured bool) {
	if utils.IsMobile() {
		return
	}
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
