package scenes

import (
	"log"

	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/ecs"
	"github.com/decker502/carrothop/pkg/entities"
	"github.com/decker502/carrothop/pkg/game"
	"github.com/decker502/carrothop/pkg/input"
	"github.com/decker502/carrothop/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene 一个关卡的游戏场景
//
// 每帧顺序：
//  1. 轮询输入设备并取输入快照
//  2. 玩家移动（子步物理）
//  3. 胡萝卜动画
//  4. 玩家与胡萝卜碰撞、收集
//  5. 兑换请求与胜负判定
//  6. 摄像机跟随
//
// 胜负已定后只处理"继续"输入：通关进入下一关，失败重开本关。
type GameScene struct {
	services *Services
	level    *config.LevelConfig

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	levelEntities entities.LevelEntities

	inputSystem      *systems.InputSystem
	movementSystem   *systems.PlayerMovementSystem
	animationSystem  *systems.AnimationSystem
	collectionSystem *systems.CollectionSystem
	levelSystem      *systems.LevelSystem
	cameraSystem     *systems.CameraSystem
	renderSystem     *systems.RenderSystem

	touch      *input.TouchDevice // 为 nil 时不显示虚拟按键
	background *game.ImageAsset
	coinIcon   *game.ImageAsset

	resultHandled bool    // 通关/失败的结果已处理（存档只写一次）
	resultTime    float64 // 结果界面已显示的时间（秒），用于入场动画
	newBest       bool
	debugHitboxes bool
}

// NewGameScene 创建关卡场景，使用键盘（以及按设置显示的触摸覆盖层）作为输入
func NewGameScene(services *Services, level *config.LevelConfig) *GameScene {
	devices := []input.Device{input.NewKeyboardDevice(nil)}
	var touch *input.TouchDevice
	if services.showTouchControls() {
		touch = input.NewTouchDevice(input.DefaultTouchLayout(WindowWidth, WindowHeight))
		devices = append(devices, touch)
	}
	return newGameScene(services, level, devices, touch)
}

func newGameScene(services *Services, level *config.LevelConfig, devices []input.Device, touch *input.TouchDevice) *GameScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(level.ID, len(level.Carrots), level.CoinsPerCarrot)
	rm := services.Resources

	s := &GameScene{
		services:      services,
		level:         level,
		entityManager: em,
		gameState:     gs,
		touch:         touch,
		background:    rm.Image(game.ImageBackground),
		coinIcon:      rm.Image(game.ImageCoin),
	}

	s.levelEntities = entities.BuildLevel(em, rm, level)

	s.inputSystem = systems.NewInputSystem(input.NewState(), devices...)
	s.movementSystem = systems.NewPlayerMovementSystem(em, services.Physics, level.WorldWidth, services.Audio)
	s.animationSystem = systems.NewAnimationSystem(em)
	s.collectionSystem = systems.NewCollectionSystem(em, gs, services.Audio)
	s.levelSystem = systems.NewLevelSystem(em, gs, level, services.Audio)
	s.cameraSystem = systems.NewCameraSystem(em, gs, level.WorldWidth, WindowWidth)
	s.renderSystem = systems.NewRenderSystem(em, gs)
	s.cameraSystem.SnapToTarget()

	log.Printf("[GameScene] Level %s (%s) ready: %d platforms, %d carrots, touch=%v",
		level.ID, level.Name, len(level.Platforms), len(level.Carrots), touch != nil)
	return s
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debugHitboxes = !s.debugHitboxes
	}

	snap := s.inputSystem.Update()

	if !s.gameState.IsPlaying() {
		s.resultTime += deltaTime
		s.handleContinue(snap)
		return
	}

	s.movementSystem.Update(deltaTime, snap)
	s.animationSystem.Update(deltaTime)
	s.collectionSystem.Update()
	s.levelSystem.Update(deltaTime, snap)
	s.cameraSystem.Update(deltaTime)

	if !s.gameState.IsPlaying() {
		s.handleResult()
	}
}

// handleResult 关卡结束时调用一次：通关则存入金币、刷新最佳时间并解锁下一关
func (s *GameScene) handleResult() {
	if s.resultHandled {
		return
	}
	s.resultHandled = true

	gs := s.gameState
	if gs.Phase != game.PhaseWon || s.services.Saves == nil {
		log.Printf("[GameScene] Level %s ended: %s", gs.LevelID, gs.Phase)
		return
	}

	newBest, err := s.services.Saves.RecordWin(gs.LevelID, gs.Coins, gs.Elapsed, s.level.NextLevel)
	if err != nil {
		log.Printf("[GameScene] Warning: failed to save progress: %v", err)
	}
	s.newBest = newBest
}

// handleContinue 结果界面按跳跃或兑换键：通关进入下一关，否则重开本关
func (s *GameScene) handleContinue(snap input.Snapshot) {
	if !snap.Jump && !snap.Convert {
		return
	}
	target := s.level.ID
	if s.gameState.Phase == game.PhaseWon && s.level.NextLevel != "" {
		target = s.level.NextLevel
	}
	if s.services.Scenes == nil || !s.services.Scenes.LoadLevel(target) {
		log.Printf("[GameScene] Failed to load level %s", target)
	}
}

// SaveOnExit 窗口关闭时保存设置
// 进度在通关时已经立即写入，这里只补写设置
func (s *GameScene) SaveOnExit() bool {
	if s.services.Settings == nil {
		return true
	}
	if err := s.services.Settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// GameState 返回关卡运行时状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// Level 返回关卡配置
func (s *GameScene) Level() *config.LevelConfig {
	return s.level
}
