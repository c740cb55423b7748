package modules

import (
	"image/color"
	"log"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 暂停遮罩颜色
var pauseOverlayColor = color.RGBA{A: 150}

// PauseMenuModule 暂停菜单模块
//
// 实现 game.Overlay：显示/隐藏由 Coordinator 在暂停切换时调用，
// 模块本身不修改暂停状态，按钮只触发外部回调。
type PauseMenuModule struct {
	visible bool
	buttons *ButtonList

	// 回调函数（由外部场景提供）
	onContinue func()
	onMainMenu func()
	onQuit     func()

	windowWidth  int
	windowHeight int
}

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnContinue func() // "继续"按钮回调
	OnMainMenu func() // "返回主菜单"按钮回调
	OnQuit     func() // "退出游戏"按钮回调
}

// NewPauseMenuModule 创建一个新的暂停菜单模块，初始为隐藏状态
func NewPauseMenuModule(windowWidth, windowHeight int, callbacks PauseMenuCallbacks) *PauseMenuModule {
	m := &PauseMenuModule{
		onContinue:   callbacks.OnContinue,
		onMainMenu:   callbacks.OnMainMenu,
		onQuit:       callbacks.OnQuit,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}

	centerX := float64(windowWidth) / 2
	topY := float64(windowHeight)/2 - ButtonHeight - ButtonSpacing
	m.buttons = NewButtonList(centerX, topY,
		&Button{Label: "Continue", OnClick: func() { invoke(m.onContinue) }},
		&Button{Label: "Main Menu", OnClick: func() { invoke(m.onMainMenu) }},
		&Button{Label: "Quit", OnClick: func() { invoke(m.onQuit) }},
	)
	return m
}

// NewDefaultPauseMenuModule 使用游戏窗口尺寸创建暂停菜单
func NewDefaultPauseMenuModule(callbacks PauseMenuCallbacks) *PauseMenuModule {
	return NewPauseMenuModule(config.GameWindowWidth, config.GameWindowHeight, callbacks)
}

// Show 显示暂停菜单
func (m *PauseMenuModule) Show() {
	m.visible = true
	m.buttons.Selected = 0
	log.Printf("[PauseMenuModule] Pause menu shown")
}

// Hide 隐藏暂停菜单
func (m *PauseMenuModule) Hide() {
	m.visible = false
	log.Printf("[PauseMenuModule] Pause menu hidden")
}

// IsActive 暂停菜单是否可见
func (m *PauseMenuModule) IsActive() bool {
	return m.visible
}

// Buttons 返回菜单按钮（继续、返回主菜单、退出）
func (m *PauseMenuModule) Buttons() *ButtonList {
	return m.buttons
}

// Update 可见时处理按钮输入
func (m *PauseMenuModule) Update() {
	if !m.visible {
		return
	}
	m.buttons.UpdateInput()
}

// Draw 可见时绘制遮罩、标题和按钮
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), pauseOverlayColor, false)
	DrawCenteredLabel(screen, "PAUSED", float64(m.windowWidth)/2, m.buttons.Buttons[0].Y-30, color.White)
	m.buttons.Draw(screen)
}

func invoke(fn func()) {
	if fn != nil {
		fn()
	}
}
