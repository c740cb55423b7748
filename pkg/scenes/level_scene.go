package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/entities"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/modules"
	"github.com/decker502/relicrun/pkg/systems"
	"github.com/decker502/relicrun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	levelBackgroundColor = color.RGBA{R: 34, G: 38, B: 30, A: 255}
	bannerColor          = color.RGBA{A: 170}
)

// LevelScene 可游玩的关卡场景
//
// 每帧的处理顺序固定：
//  1. 暂停键切换暂停
//  2. gameDt = deltaTime * TimeScale，暂停时为 0，此时世界系统全部跳过
//  3. 移动 → 门 → 触发检测 → 收集 → 危险区域 → 生命周期
//  4. Coordinator.OnFrameAdvance(gameDt)
//
// 收集在计时之前处理，所以同一帧内收集到最后一个目标和时间耗尽时判定为胜利。
type LevelScene struct {
	ctx   *Context
	entry config.SceneEntry
	level *config.LevelConfig

	entityManager *ecs.EntityManager
	entities      *entities.LevelEntities

	movementSystem *systems.MovementSystem
	doorSystem     *systems.DoorSystem
	triggerSystem  *systems.TriggerSystem
	pickupSystem   *systems.PickupSystem
	hazardSystem   *systems.HazardSystem
	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *systems.RenderSystem

	hud       *modules.HUDModule
	pauseMenu *modules.PauseMenuModule
}

// NewLevelScene 加载关卡配置、生成实体并进入关卡
func NewLevelScene(ctx *Context, entry config.SceneEntry) (*LevelScene, error) {
	if !entry.IsLevel() {
		return nil, fmt.Errorf("scene %s is not a level", entry.ID)
	}
	if ctx.Data == nil {
		return nil, fmt.Errorf("load level %s: data: %w", entry.ID, game.ErrMissingCollaborator)
	}

	level, err := config.LoadLevelConfig(ctx.Data, entry.Level)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", entry.ID, err)
	}

	em := ecs.NewEntityManager()
	built, err := entities.BuildLevel(em, level)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", entry.ID, err)
	}

	scene := &LevelScene{
		ctx:           ctx,
		entry:         entry,
		level:         level,
		entityManager: em,
		entities:      built,
	}

	// 接口字段只在协作者存在时赋值，避免出现非 nil 的空指针接口
	var (
		gateway   game.AudioGateway
		fallback  game.PositionalPlayer
		reporter  systems.ObjectiveReporter
		restarter systems.LevelRestarter
		hudSource modules.HUDSource
	)
	if ctx.Audio != nil {
		gateway = ctx.Audio
		fallback = ctx.Audio
	}
	if ctx.Coordinator != nil {
		reporter = ctx.Coordinator
		restarter = ctx.Coordinator
		hudSource = ctx.Coordinator
	}

	scene.movementSystem = systems.NewMovementSystem(em, ctx.Input)
	scene.doorSystem = systems.NewDoorSystem(em, ctx.Input, gateway)
	scene.triggerSystem = systems.NewTriggerSystem(em)
	scene.pickupSystem = systems.NewPickupSystem(em, reporter, gateway, fallback)
	scene.hazardSystem = systems.NewHazardSystem(em, restarter)
	scene.lifetimeSystem = systems.NewLifetimeSystem(em)
	scene.renderSystem = systems.NewRenderSystem(em)

	scene.hud = modules.NewHUDModule(hudSource)
	scene.pauseMenu = modules.NewDefaultPauseMenuModule(modules.PauseMenuCallbacks{
		OnContinue: scene.togglePause,
		OnMainMenu: func() {
			if ctx.Coordinator == nil {
				return
			}
			if err := ctx.Coordinator.PauseToMainMenu(); err != nil {
				log.Printf("[LevelScene] Error: %v", err)
			}
		},
		OnQuit: func() {
			if ctx.Coordinator != nil {
				ctx.Coordinator.QuitGame()
			}
		},
	})

	if ctx.Coordinator != nil {
		ctx.Coordinator.SetOverlay(scene.pauseMenu)
		ctx.Coordinator.EnterLevel(level)
	}
	scene.hud.Update()

	log.Printf("[LevelScene] Loaded %s (%s): %d doors, %d pickups, %d hazards",
		entry.ID, level.Name, len(built.Doors), len(built.Pickups), len(built.Hazards))
	return scene, nil
}

// Update 推进一帧
func (s *LevelScene) Update(deltaTime float64) {
	c := s.ctx.Coordinator

	if s.ctx.Input != nil && s.ctx.Input.PausePressed() {
		s.togglePause()
	}
	s.pauseMenu.Update()

	gameDt := deltaTime
	if c != nil {
		gameDt = deltaTime * c.TimeScale()
	}

	if gameDt > 0 {
		s.movementSystem.Update(gameDt)
		s.doorSystem.Update(gameDt)
		s.triggerSystem.Update(gameDt)
		s.pickupSystem.Update(gameDt)
		s.hazardSystem.Update(gameDt)
		s.lifetimeSystem.Update(gameDt)
	}
	if c != nil {
		c.OnFrameAdvance(gameDt)
	}

	s.entityManager.RemoveMarkedEntities()

	if s.ctx.Audio != nil {
		if pos, ok := s.PlayerPosition(); ok {
			s.ctx.Audio.SetListenerPosition(pos)
		}
	}
	s.hud.Update()
}

func (s *LevelScene) togglePause() {
	if s.ctx.Coordinator == nil {
		return
	}
	if err := s.ctx.Coordinator.TogglePause(); err != nil {
		log.Printf("[LevelScene] Pause ignored: %v", err)
	}
}

// Draw 绘制世界、HUD、结算横幅和暂停菜单
func (s *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(levelBackgroundColor)
	s.renderSystem.Draw(screen)
	s.hud.Draw(screen)

	if banner := s.bannerText(); banner != "" {
		drawBanner(screen, banner)
	}
	s.pauseMenu.Draw(screen)
}

func (s *LevelScene) bannerText() string {
	if s.ctx.Coordinator == nil {
		return ""
	}
	switch s.ctx.Coordinator.State() {
	case game.StateCompleted:
		return "All relics collected!"
	case game.StateFailed:
		return "Time's up!"
	}
	return ""
}

// drawBanner 在屏幕中央绘制横幅
func drawBanner(screen *ebiten.Image, message string) {
	y := float32(config.GameWindowHeight)/2 - 24
	vector.DrawFilledRect(screen, 0, y, config.GameWindowWidth, 48, bannerColor, false)
	modules.DrawCenteredLabel(screen, message, config.GameWindowWidth/2, config.GameWindowHeight/2, color.White)
}

// OnExit 场景被替换时释放实体
func (s *LevelScene) OnExit() {
	for _, id := range s.entityManager.GetEntitiesWith() {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	log.Printf("[LevelScene] Exit %s", s.entry.ID)
}

// Level 返回关卡配置
func (s *LevelScene) Level() *config.LevelConfig {
	return s.level
}

// EntityManager 返回关卡的实体管理器
func (s *LevelScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Entities 返回关卡生成的实体
func (s *LevelScene) Entities() *entities.LevelEntities {
	return s.entities
}

// PauseMenu 返回暂停菜单
func (s *LevelScene) PauseMenu() *modules.PauseMenuModule {
	return s.pauseMenu
}

// HUD 返回 HUD 模块
func (s *LevelScene) HUD() *modules.HUDModule {
	return s.hud
}

// PlayerPosition 返回玩家当前位置
func (s *LevelScene) PlayerPosition() (pos utils.Vec3, ok bool) {
	p, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.entities.Player)
	if !ok {
		return utils.Vec3{}, false
	}
	return p.Position, true
}
