package game

import (
	"fmt"
	"log"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据场景表条目创建场景实例，避免 game 包依赖 scenes 包
type SceneFactory func(entry config.SceneEntry) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// Load requests are deferred: they are recorded during a frame and applied at the
// start of the next Update, so the frame that requested a switch always completes
// against the scene that was active when it began.
type SceneManager struct {
	scenes       *config.SceneTable
	sceneFactory SceneFactory

	currentScene Scene
	currentID    config.SceneID
	hasCurrent   bool

	pending    *config.SceneID
	quitFlag   bool
	switchHook func(id config.SceneID)
}

// NewSceneManager creates a SceneManager backed by the given scene table.
// The manager starts with no active scene; use Start to set the initial scene.
func NewSceneManager(scenes *config.SceneTable, factory SceneFactory) *SceneManager {
	return &SceneManager{
		scenes:       scenes,
		sceneFactory: factory,
	}
}

// SetSwitchHook 注册场景切换完成后的回调（用于日志、音乐等）
func (sm *SceneManager) SetSwitchHook(hook func(id config.SceneID)) {
	sm.switchHook = hook
}

// Start 立即切换到初始场景
func (sm *SceneManager) Start(id config.SceneID) error {
	return sm.switchTo(id)
}

// Load 请求加载指定场景，在下一次 Update 开始时生效
// 同一帧内多次请求时以最后一次为准
func (sm *SceneManager) Load(id config.SceneID) error {
	if _, ok := sm.scenes.Get(id); !ok {
		return fmt.Errorf("load scene %s: %w", id, ErrResourceNotFound)
	}
	target := id
	sm.pending = &target
	log.Printf("[SceneManager] Scene load requested: %s", id)
	return nil
}

// LoadByRelativeIndex 按构建顺序加载相对当前场景偏移 offset 的场景
func (sm *SceneManager) LoadByRelativeIndex(offset int) error {
	entry, ok := sm.scenes.Get(sm.currentID)
	if !ok {
		return fmt.Errorf("load relative scene: current scene %s: %w", sm.currentID, ErrResourceNotFound)
	}
	target, ok := sm.scenes.ByIndex(entry.Index + offset)
	if !ok {
		return fmt.Errorf("load relative scene: index %d: %w", entry.Index+offset, ErrResourceNotFound)
	}
	return sm.Load(target.ID)
}

// CurrentScene 返回当前场景ID
func (sm *SceneManager) CurrentScene() config.SceneID {
	return sm.currentID
}

// CurrentSceneName 返回当前场景的配置名称
func (sm *SceneManager) CurrentSceneName() string {
	entry, ok := sm.scenes.Get(sm.currentID)
	if !ok {
		return ""
	}
	return entry.Name
}

// Reload 重新加载当前场景（重新创建场景实例）
func (sm *SceneManager) Reload() error {
	if !sm.hasCurrent {
		return fmt.Errorf("reload scene: no active scene: %w", ErrResourceNotFound)
	}
	return sm.Load(sm.currentID)
}

// HasPendingLoad 是否有等待生效的加载请求
func (sm *SceneManager) HasPendingLoad() bool {
	return sm.pending != nil
}

// RequestQuit 请求退出游戏，由 App 在下一帧检查
func (sm *SceneManager) RequestQuit() {
	sm.quitFlag = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitFlag
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update applies any pending scene switch, then updates the active scene.
// deltaTime is the wall-clock time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pending != nil {
		target := *sm.pending
		sm.pending = nil
		if err := sm.switchTo(target); err != nil {
			log.Printf("[SceneManager] Error: %v", err)
		}
	}

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func (sm *SceneManager) switchTo(id config.SceneID) error {
	entry, ok := sm.scenes.Get(id)
	if !ok {
		return fmt.Errorf("switch to scene %s: %w", id, ErrResourceNotFound)
	}
	if sm.sceneFactory == nil {
		return fmt.Errorf("switch to scene %s: scene factory: %w", id, ErrMissingCollaborator)
	}

	// 先更新当前场景ID，场景构造时可以通过 CurrentScene 查询自己
	previousID, hadCurrent := sm.currentID, sm.hasCurrent
	sm.currentID, sm.hasCurrent = id, true

	scene, err := sm.sceneFactory(entry)
	if err != nil {
		sm.currentID, sm.hasCurrent = previousID, hadCurrent
		return fmt.Errorf("create scene %s: %w", entry.Name, err)
	}

	if exitable, ok := sm.currentScene.(Exitable); ok {
		exitable.OnExit()
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched to scene: %s (%s)", entry.Name, id)

	if sm.switchHook != nil {
		sm.switchHook(id)
	}
	return nil
}
