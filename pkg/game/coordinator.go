package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/relicrun/pkg/config"
)

// State 关卡状态
type State int

const (
	// StateRunning 关卡进行中：计时器递减，可收集目标
	StateRunning State = iota
	// StatePaused 暂停：计时冻结，收集被忽略
	StatePaused
	// StateCompleted 已通关，等待切换到下一场景
	StateCompleted
	// StateFailed 时间耗尽，等待返回主菜单
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CoordinatorConfig 协调器初始配置
type CoordinatorConfig struct {
	ObjectivesRequired int     // 过关所需目标数
	TimeLimit          float64 // 时间限制（秒）
	TransitionDelay    float64 // 胜负后切换场景前的延迟（秒）

	Scenes    *config.SceneTable // 场景流转表，为 nil 时一律回到主菜单
	Scheduler *Scheduler         // 延迟任务调度器，为 nil 时自动创建
}

// Coordinator 游戏状态协调器
//
// 持有目标计数、倒计时、暂停状态，负责胜负判定和场景切换。
// 整个进程只有一个实例，通过 Registry 获取，并在生成世界物体时注入。
// 所有方法只在游戏主循环（单 goroutine）中调用，不需要加锁。
type Coordinator struct {
	objectivesCollected int
	objectivesRequired  int
	timeRemaining       float64
	timeLimit           float64
	state               State
	timeScale           float64 // 游戏时间缩放，只取 0 或 1

	transitionDelay float64
	scenes          *config.SceneTable
	scheduler       *Scheduler
	pending         *ScheduledTask // 尚未触发的场景切换

	loader  SceneLoader
	audio   AudioGateway
	overlay Overlay
	pointer PointerCapture
	quit    func()
}

// NewCoordinator 创建协调器
// 一般不直接调用，而是通过 Registry.Provide 获取唯一实例
func NewCoordinator(cfg CoordinatorConfig) *Coordinator {
	if cfg.ObjectivesRequired <= 0 {
		cfg.ObjectivesRequired = config.DefaultObjectivesRequired
	}
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = config.DefaultTimeLimit
	}
	if cfg.TransitionDelay < 0 {
		cfg.TransitionDelay = 0
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewScheduler()
	}

	c := &Coordinator{
		objectivesRequired: cfg.ObjectivesRequired,
		timeLimit:          cfg.TimeLimit,
		transitionDelay:    cfg.TransitionDelay,
		scenes:             cfg.Scenes,
		scheduler:          cfg.Scheduler,
	}
	c.resetValues()
	return c
}

// SetSceneLoader 注册场景加载器
func (c *Coordinator) SetSceneLoader(loader SceneLoader) {
	c.loader = loader
}

// SetAudioGateway 注册音频网关，传 nil 表示无音频
func (c *Coordinator) SetAudioGateway(gateway AudioGateway) {
	c.audio = gateway
}

// SetOverlay 注册暂停界面，传 nil 表示注销（此后无法暂停）
func (c *Coordinator) SetOverlay(overlay Overlay) {
	c.overlay = overlay
}

// SetPointerCapture 注册指针捕获控制
func (c *Coordinator) SetPointerCapture(pointer PointerCapture) {
	c.pointer = pointer
}

// SetQuitHandler 注册退出游戏回调
func (c *Coordinator) SetQuitHandler(quit func()) {
	c.quit = quit
}

// OnFrameAdvance 每帧推进计时器
//
// 只在 StateRunning 下生效。剩余时间降到 0 及以下时进入 StateFailed，
// 并在延迟后切换到当前场景的失败目标（默认主菜单）。
// 同一帧内的收集事件必须在此之前处理，保证通关优先于超时。
func (c *Coordinator) OnFrameAdvance(deltaTime float64) {
	if c.state != StateRunning || deltaTime <= 0 {
		return
	}

	c.timeRemaining -= deltaTime
	if c.timeRemaining > 0 {
		return
	}

	c.timeRemaining = 0
	c.state = StateFailed
	log.Printf("[Coordinator] Time is up (%d/%d collected)", c.objectivesCollected, c.objectivesRequired)
	c.scheduleTransition(c.nextScene(false))
}

// ReportObjectiveCollected 报告一个目标已被收集
//
// 非 StateRunning 状态下静默忽略。计数达到目标数时进入 StateCompleted，
// 并在延迟后切换到当前场景的胜利目标场景。
func (c *Coordinator) ReportObjectiveCollected() {
	if c.state != StateRunning {
		return
	}

	c.objectivesCollected++
	log.Printf("[Coordinator] Objective collected: %s", c.ObjectiveProgress())

	if c.objectivesCollected < c.objectivesRequired {
		return
	}

	c.state = StateCompleted
	log.Printf("[Coordinator] Level complete with %.1fs remaining", c.timeRemaining)
	c.scheduleTransition(c.nextScene(true))
}

// TogglePause 在 StateRunning 与 StatePaused 之间切换
//
// 未注册暂停界面时记录警告并返回 ErrInvalidTransition，状态不变。
// 关卡已结束（Completed/Failed）时同样拒绝切换，避免在切换延迟期间进入暂停。
func (c *Coordinator) TogglePause() error {
	if c.overlay == nil {
		log.Printf("[Coordinator] Warning: no pause overlay registered, ignoring pause toggle")
		return fmt.Errorf("toggle pause: no overlay registered: %w", ErrInvalidTransition)
	}

	switch c.state {
	case StateRunning:
		c.state = StatePaused
		c.timeScale = 0
		c.overlay.Show()
		c.setPointerCaptured(false)
		log.Printf("[Coordinator] Paused")
	case StatePaused:
		c.overlay.Hide()
		c.setPointerCaptured(true)
		c.timeScale = 1
		c.state = StateRunning
		log.Printf("[Coordinator] Resumed")
	default:
		log.Printf("[Coordinator] Warning: cannot toggle pause in state %s", c.state)
		return fmt.Errorf("toggle pause in state %s: %w", c.state, ErrInvalidTransition)
	}
	return nil
}

// ResetForNewLevel 重置为关卡初始状态
// 在每次进入关卡（包括重试）和"再玩一次"时调用，会取消尚未触发的场景切换
func (c *Coordinator) ResetForNewLevel() {
	c.cancelPending()
	if c.state == StatePaused && c.overlay != nil {
		c.overlay.Hide()
	}
	c.resetValues()
}

func (c *Coordinator) resetValues() {
	c.state = StateRunning
	c.objectivesCollected = 0
	c.timeRemaining = c.timeLimit
	c.timeScale = 1
}

// EnterLevel 进入关卡：应用关卡配置、重置状态并捕获指针
func (c *Coordinator) EnterLevel(level *config.LevelConfig) {
	if level != nil {
		if level.ObjectivesRequired > 0 {
			c.objectivesRequired = level.ObjectivesRequired
		}
		if level.TimeLimit > 0 {
			c.timeLimit = level.TimeLimit
		}
	}
	c.ResetForNewLevel()
	c.setPointerCaptured(true)
	log.Printf("[Coordinator] Entered level: need %d objectives in %.0fs", c.objectivesRequired, c.timeLimit)
}

// RestartLevel 完整重新加载当前关卡，分数和时间都不保留
func (c *Coordinator) RestartLevel() error {
	c.ResetForNewLevel()
	if c.loader == nil {
		return fmt.Errorf("restart level: scene loader: %w", ErrMissingCollaborator)
	}
	if err := c.loader.Reload(); err != nil {
		return fmt.Errorf("restart level: %w", err)
	}
	log.Printf("[Coordinator] Restarting %s", c.loader.CurrentScene())
	return nil
}

// StartGame 从主菜单进入第一关
func (c *Coordinator) StartGame() error {
	return c.loadFirstLevel("start game")
}

// PlayAgain 从胜利画面回到第一关重新开始
func (c *Coordinator) PlayAgain() error {
	return c.loadFirstLevel("play again")
}

func (c *Coordinator) loadFirstLevel(op string) error {
	c.ResetForNewLevel()
	if c.loader == nil {
		return fmt.Errorf("%s: scene loader: %w", op, ErrMissingCollaborator)
	}
	return c.loader.Load(c.firstLevel())
}

// EnterMenu 进入非关卡场景（主菜单、胜利画面）：恢复时间流速并释放指针
func (c *Coordinator) EnterMenu() {
	c.timeScale = 1
	c.setPointerCaptured(false)
}

// PauseToMainMenu 从暂停菜单返回主菜单
func (c *Coordinator) PauseToMainMenu() error {
	c.cancelPending()
	if c.state == StatePaused {
		if c.overlay != nil {
			c.overlay.Hide()
		}
		c.state = StateRunning
	}
	c.timeScale = 1
	c.setPointerCaptured(false)
	if c.loader == nil {
		return fmt.Errorf("return to main menu: scene loader: %w", ErrMissingCollaborator)
	}
	return c.loader.Load(config.SceneMainMenu)
}

// QuitGame 请求退出进程
func (c *Coordinator) QuitGame() {
	log.Printf("[Coordinator] Quit requested")
	if c.quit != nil {
		c.quit()
	}
}

// PlaySceneMusic 播放场景对应的背景音乐
// 属于装饰性调用：场景未配置音乐或没有音频网关时直接跳过
func (c *Coordinator) PlaySceneMusic(id config.SceneID) {
	if c.audio == nil || c.scenes == nil {
		return
	}
	entry, ok := c.scenes.Get(id)
	if !ok || entry.Music == "" {
		return
	}
	cue, err := ParseCue(entry.Music)
	if err != nil {
		log.Printf("[Coordinator] Warning: scene %s: %v", id, err)
		return
	}
	c.audio.PlayCue(cue)
}

// FormattedTimeRemaining 以 "MM:SS" 格式返回剩余时间（向下取整，不为负）
func (c *Coordinator) FormattedTimeRemaining() string {
	return FormatTime(c.timeRemaining)
}

// FormatTime 将秒数格式化为 "MM:SS"
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ObjectiveProgress 以 "collected/required" 格式返回收集进度
func (c *Coordinator) ObjectiveProgress() string {
	return fmt.Sprintf("%d/%d", c.objectivesCollected, c.objectivesRequired)
}

// State 返回当前状态
func (c *Coordinator) State() State {
	return c.state
}

// Running 关卡是否仍在进行（包括暂停）
func (c *Coordinator) Running() bool {
	return c.state == StateRunning || c.state == StatePaused
}

// Paused 是否处于暂停
func (c *Coordinator) Paused() bool {
	return c.state == StatePaused
}

// TimeScale 返回游戏时间缩放（0 或 1）
func (c *Coordinator) TimeScale() float64 {
	return c.timeScale
}

// ObjectivesCollected 返回已收集数量
func (c *Coordinator) ObjectivesCollected() int {
	return c.objectivesCollected
}

// ObjectivesRequired 返回过关所需数量
func (c *Coordinator) ObjectivesRequired() int {
	return c.objectivesRequired
}

// TimeRemaining 返回剩余时间（秒）
func (c *Coordinator) TimeRemaining() float64 {
	return c.timeRemaining
}

// TimeLimit 返回当前关卡时间限制（秒）
func (c *Coordinator) TimeLimit() float64 {
	return c.timeLimit
}

// HasPendingTransition 是否有尚未触发的场景切换
func (c *Coordinator) HasPendingTransition() bool {
	return c.pending.Pending()
}

// nextScene 查表得到当前场景胜利/失败后的目标场景
func (c *Coordinator) nextScene(won bool) config.SceneID {
	if c.scenes == nil || c.loader == nil {
		return config.SceneMainMenu
	}
	entry, ok := c.scenes.Get(c.loader.CurrentScene())
	if !ok {
		return config.SceneMainMenu
	}
	if won {
		return entry.NextOnWin()
	}
	return entry.NextOnFail()
}

func (c *Coordinator) firstLevel() config.SceneID {
	if c.scenes != nil {
		if levels := c.scenes.Levels(); len(levels) > 0 {
			return levels[0].ID
		}
	}
	return config.SceneLevel1
}

// scheduleTransition 在延迟后加载目标场景
// 延迟以真实时间计算，不受暂停影响；ResetForNewLevel 和 PauseToMainMenu 会取消它
func (c *Coordinator) scheduleTransition(target config.SceneID) {
	c.cancelPending()
	if c.loader == nil {
		log.Printf("[Coordinator] Error: cannot schedule transition to %s: scene loader: %v", target, ErrMissingCollaborator)
		return
	}

	log.Printf("[Coordinator] Transition to %s in %.1fs", target, c.transitionDelay)
	c.pending = c.scheduler.After(c.transitionDelay, func() {
		c.pending = nil
		if err := c.loader.Load(target); err != nil {
			log.Printf("[Coordinator] Error: transition to %s failed: %v", target, err)
		}
	})
}

func (c *Coordinator) cancelPending() {
	if c.pending.Cancel() {
		log.Printf("[Coordinator] Cancelled pending scene transition")
	}
	c.pending = nil
}

func (c *Coordinator) setPointerCaptured(captured bool) {
	if c.pointer != nil {
		c.pointer.SetCaptured(captured)
	}
}
