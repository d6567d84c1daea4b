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

	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/embedded"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/scenes"
	"github.com/decker502/carrothop/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SampleRate 音频采样率
const SampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡（如 "1-2"），为空则从存档加载或默认 1-1
	Level string
	// SkipLoadingScene 跳过加载场景，直接进入游戏（用于 --level 参数）
	SkipLoadingScene bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	clock        *FrameClock
	verbose      bool

	isFocused func() bool
	focused   bool // 上一帧窗口是否有焦点

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

	audioContext := audio.NewContext(SampleRate)
	storage := game.OpenStorage(game.AppName)
	return newApp(cfg, audioContext, storage)
}

func newApp(cfg Config, audioContext *audio.Context, storage game.Storage) (*App, error) {
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(config.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	physics, err := config.LoadPhysicsConfig(config.PhysicsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("物理配置加载失败: %w", err)
	}
	log.Printf("[Config] Physics: gravity=%.0f move=%.0f jump=%.0f", physics.Gravity, physics.MoveSpeed, physics.JumpSpeed)

	settingsManager := game.NewSettingsManager(storage)
	saveManager := game.NewSaveManager(storage)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	services := &scenes.Services{
		Resources: resourceManager,
		Scenes:    sceneManager,
		Audio:     audioManager,
		Settings:  settingsManager,
		Saves:     saveManager,
		Physics:   physics,
		IsMobile:  utils.IsMobile(),
	}
	sceneManager.SetSceneFactory(func(levelID string) (game.Scene, error) {
		level, err := config.LoadLevelConfig(levelID)
		if err != nil {
			return nil, err
		}
		return scenes.NewGameScene(services, level), nil
	})

	levelToLoad := chooseStartLevel(cfg.Level, saveManager.GetHighestLevel(), func(id string) bool {
		return embedded.Exists(config.LevelPath(id))
	})
	log.Printf("[App] Starting level: %s", levelToLoad)

	if cfg.SkipLoadingScene {
		log.Printf("[App] SkipLoadingScene enabled, images will pop in as they load")
		resourceManager.LoadImagesAsync()
		if !sceneManager.LoadLevel(levelToLoad) {
			return nil, fmt.Errorf("关卡 %s 加载失败", levelToLoad)
		}
	} else {
		sceneManager.SwitchTo(scenes.NewLoadingScene(resourceManager, sceneManager, levelToLoad))
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settingsManager,
		clock:        NewFrameClock(nil),
		verbose:      cfg.Verbose,
		isFocused:    ebiten.IsFocused,
		focused:      true,
	}, nil
}

// chooseStartLevel 决定启动关卡：命令行参数 > 存档中的最高关卡 > 默认关卡
// 指定的关卡文件不存在时（拼错的 --level 或已被移除的存档关卡）依次回退
func chooseStartLevel(requested, highest string, exists func(string) bool) string {
	if requested != "" {
		if exists(requested) {
			return requested
		}
		log.Printf("[App] Warning: level %s not found, ignoring --level", requested)
	}
	if highest != "" && exists(highest) {
		log.Printf("[App] Loading from save: highest level = %s", highest)
		return highest
	}
	log.Printf("[App] No usable save, starting new game at level %s", config.DefaultLevelID)
	return config.DefaultLevelID
}

// Update 更新游戏逻辑
// 每个 tick 调用一次；deltaTime 使用真实经过的时间
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth*2, config.GameWindowHeight*2)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := !a.settings.GetSettings().SoundEnabled
		a.settings.SetSoundEnabled(enabled)
		log.Printf("[App] Sound enabled: %v", enabled)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	a.sceneManager.Update(a.frameDelta())
	return nil
}

// frameDelta 返回本帧的 deltaTime
//
// 失去焦点时 ebiten 不再调用 Update，重新获得焦点后的第一帧
// 不计入离开期间的时间，否则关卡计时会一次跳过整段离开时间。
func (a *App) frameDelta() float64 {
	focused := a.isFocused()
	if focused && !a.focused {
		log.Printf("[App] Window focus regained, frame clock reset")
		a.clock.Reset()
	}
	a.focused = focused
	return a.clock.Tick()
}

func (a *App) toggleFullscreen() {
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
	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 像素风画面使用最近邻缩放，全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
