package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
)

var victoryBackgroundColor = color.RGBA{R: 20, G: 40, B: 30, A: 255}

// VictoryScene 通关画面：显示收集数量，可以再玩一次或返回主菜单
type VictoryScene struct {
	ctx       *Context
	buttons   *modules.ButtonList
	collected int
}

// NewVictoryScene 创建通关画面
// 收集数量取自上一关结束时协调器中的值
func NewVictoryScene(ctx *Context) *VictoryScene {
	scene := &VictoryScene{ctx: ctx}
	if ctx.Coordinator != nil {
		scene.collected = ctx.Coordinator.ObjectivesCollected()
		ctx.Coordinator.SetOverlay(nil)
		ctx.Coordinator.EnterMenu()
	}

	scene.buttons = modules.NewButtonList(config.GameWindowWidth/2, config.GameWindowHeight/2,
		&modules.Button{Label: "Play Again", OnClick: scene.PlayAgain},
		&modules.Button{Label: "Main Menu", OnClick: scene.MainMenu},
	)
	log.Printf("[VictoryScene] Collected %d relics", scene.collected)
	return scene
}

// Message 通关提示文本
func (v *VictoryScene) Message() string {
	return fmt.Sprintf("You escaped with %d relics!", v.collected)
}

// PlayAgain 从第一关重新开始
func (v *VictoryScene) PlayAgain() {
	if v.ctx.Coordinator == nil {
		return
	}
	if err := v.ctx.Coordinator.PlayAgain(); err != nil {
		log.Printf("[VictoryScene] Error: %v", err)
	}
}

// MainMenu 返回主菜单
func (v *VictoryScene) MainMenu() {
	if v.ctx.Loader == nil {
		log.Printf("[VictoryScene] Warning: no scene loader")
		return
	}
	if err := v.ctx.Loader.Load(config.SceneMainMenu); err != nil {
		log.Printf("[VictoryScene] Error: %v", err)
	}
}

// Buttons 返回画面按钮（再玩一次、主菜单）
func (v *VictoryScene) Buttons() *modules.ButtonList {
	return v.buttons
}

// Update 处理按钮输入
func (v *VictoryScene) Update(deltaTime float64) {
	v.buttons.UpdateInput()
}

// Draw 绘制通关画面
func (v *VictoryScene) Draw(screen *ebiten.Image) {
	screen.Fill(victoryBackgroundColor)
	modules.DrawCenteredLabel(screen, "VICTORY", config.GameWindowWidth/2, config.GameWindowHeight/2-80, color.White)
	modules.DrawCenteredLabel(screen, v.Message(), config.GameWindowWidth/2, config.GameWindowHeight/2-50,
		color.RGBA{R: 255, G: 210, B: 60, A: 255})
	v.buttons.Draw(screen)
}
