package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/relicrun/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OptionsStore 持久化选项（通常是 game.SettingsManager）
type OptionsStore interface {
	GetSettings() *game.GameSettings
	SetSelectedLevel(index, levelCount int) error
}

// MusicSwitch 音乐开关（通常是 game.AudioManager）
type MusicSwitch interface {
	SetMusicEnabled(enabled bool)
	MusicEnabled() bool
}

// OptionsPanelModule 主菜单的选项面板
//
// 提供音乐开关和关卡选择两个选项。
// 关卡选择只写入设置文件（selectedLevel），开始游戏时不会读取它。
type OptionsPanelModule struct {
	visible bool
	buttons *ButtonList

	store  OptionsStore
	music  MusicSwitch
	levels []string // 可选关卡的显示名称

	selectedLevel int
	onClose       func()

	windowWidth  int
	windowHeight int
}

// NewOptionsPanelModule 创建选项面板
//
// 参数:
//   - store: 设置存储，为 nil 时关卡选择只保存在内存中
//   - music: 音乐开关，为 nil 时音乐按钮无效
//   - levels: 关卡显示名称列表
//   - windowWidth, windowHeight: 游戏窗口尺寸
//   - onClose: 关闭面板回调（可选）
func NewOptionsPanelModule(store OptionsStore, music MusicSwitch, levels []string, windowWidth, windowHeight int, onClose func()) *OptionsPanelModule {
	m := &OptionsPanelModule{
		store:        store,
		music:        music,
		levels:       levels,
		onClose:      onClose,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
	if store != nil {
		if settings := store.GetSettings(); settings != nil {
			m.selectedLevel = settings.SelectedLevel
		}
	}
	if m.selectedLevel >= len(levels) {
		m.selectedLevel = 0
	}

	centerX := float64(windowWidth) / 2
	topY := float64(windowHeight)/2 - ButtonHeight
	m.buttons = NewButtonList(centerX, topY,
		&Button{OnClick: m.ToggleMusic},
		&Button{OnClick: func() {
			if err := m.CycleLevel(); err != nil {
				log.Printf("[OptionsPanelModule] Error: %v", err)
			}
		}},
		&Button{Label: "OK", OnClick: m.Hide},
	)
	m.refreshLabels()
	return m
}

// Show 显示选项面板
func (m *OptionsPanelModule) Show() {
	m.visible = true
	m.refreshLabels()
}

// Hide 隐藏选项面板
func (m *OptionsPanelModule) Hide() {
	if !m.visible {
		return
	}
	m.visible = false
	invoke(m.onClose)
}

// IsVisible 选项面板是否可见
func (m *OptionsPanelModule) IsVisible() bool {
	return m.visible
}

// Buttons 返回面板按钮（音乐、关卡、确定）
func (m *OptionsPanelModule) Buttons() *ButtonList {
	return m.buttons
}

// ToggleMusic 切换背景音乐开关
// 关闭时音乐音量为 0，开启时恢复默认音量
func (m *OptionsPanelModule) ToggleMusic() {
	if m.music == nil {
		log.Printf("[OptionsPanelModule] Warning: no music switch registered")
		return
	}
	m.music.SetMusicEnabled(!m.music.MusicEnabled())
	m.refreshLabels()
}

// SelectLevel 选择关卡并持久化
func (m *OptionsPanelModule) SelectLevel(index int) error {
	if index < 0 || index >= len(m.levels) {
		return fmt.Errorf("select level %d: out of range [0, %d)", index, len(m.levels))
	}
	if m.store != nil {
		if err := m.store.SetSelectedLevel(index, len(m.levels)); err != nil {
			return fmt.Errorf("select level %d: %w", index, err)
		}
	}
	m.selectedLevel = index
	m.refreshLabels()
	return nil
}

// CycleLevel 选择下一个关卡，末尾回到第一个
func (m *OptionsPanelModule) CycleLevel() error {
	if len(m.levels) == 0 {
		return nil
	}
	return m.SelectLevel((m.selectedLevel + 1) % len(m.levels))
}

// SelectedLevel 当前选中的关卡索引
func (m *OptionsPanelModule) SelectedLevel() int {
	return m.selectedLevel
}

func (m *OptionsPanelModule) refreshLabels() {
	music := "Music: Off"
	if m.music != nil && m.music.MusicEnabled() {
		music = "Music: On"
	}
	level := "Level: -"
	if m.selectedLevel < len(m.levels) {
		level = "Level: " + m.levels[m.selectedLevel]
	}
	m.buttons.Buttons[0].Label = music
	m.buttons.Buttons[1].Label = level
}

// Update 可见时处理按钮输入，ESC 关闭面板
func (m *OptionsPanelModule) Update() {
	if !m.visible {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.Hide()
		return
	}
	m.buttons.UpdateInput()
}

// Draw 可见时绘制面板
func (m *OptionsPanelModule) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), pauseOverlayColor, false)
	DrawCenteredLabel(screen, "OPTIONS", float64(m.windowWidth)/2, m.buttons.Buttons[0].Y-30, color.White)
	m.buttons.Draw(screen)
}
