package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
)

var menuBackgroundColor = color.RGBA{R: 24, G: 28, B: 40, A: 255}

// MainMenuScene represents the main menu screen of the game.
// It offers play, options and quit; options opens a panel on top of the menu.
type MainMenuScene struct {
	ctx     *Context
	buttons *modules.ButtonList
	options *modules.OptionsPanelModule
}

// NewMainMenuScene creates the main menu and releases the pointer.
func NewMainMenuScene(ctx *Context) *MainMenuScene {
	scene := &MainMenuScene{ctx: ctx}

	if ctx.Coordinator != nil {
		// 菜单中不允许暂停
		ctx.Coordinator.SetOverlay(nil)
		ctx.Coordinator.EnterMenu()
	}

	var levelNames []string
	if ctx.Scenes != nil {
		for _, entry := range ctx.Scenes.Levels() {
			levelNames = append(levelNames, entry.Name)
		}
	}
	scene.options = modules.NewOptionsPanelModule(ctx.Settings, ctx.Music, levelNames,
		config.GameWindowWidth, config.GameWindowHeight, nil)

	scene.buttons = modules.NewButtonList(config.GameWindowWidth/2, config.GameWindowHeight/2-40,
		&modules.Button{Label: "Play", OnClick: scene.Play},
		&modules.Button{Label: "Options", OnClick: scene.options.Show},
		&modules.Button{Label: "Quit", OnClick: scene.Quit},
	)

	log.Printf("[MainMenuScene] Initialized")
	return scene
}

// Play 开始第一关
func (m *MainMenuScene) Play() {
	if m.ctx.Coordinator == nil {
		log.Printf("[MainMenuScene] Warning: no coordinator, cannot start game")
		return
	}
	if err := m.ctx.Coordinator.StartGame(); err != nil {
		log.Printf("[MainMenuScene] Error: %v", err)
	}
}

// Quit 退出游戏
func (m *MainMenuScene) Quit() {
	if m.ctx.Coordinator != nil {
		m.ctx.Coordinator.QuitGame()
	}
}

// Options 返回选项面板
func (m *MainMenuScene) Options() *modules.OptionsPanelModule {
	return m.options
}

// Buttons 返回菜单按钮（开始、选项、退出）
func (m *MainMenuScene) Buttons() *modules.ButtonList {
	return m.buttons
}

// Update 选项面板打开时只处理面板输入
func (m *MainMenuScene) Update(deltaTime float64) {
	if m.options.IsVisible() {
		m.options.Update()
		return
	}
	m.buttons.UpdateInput()
}

// Draw renders the main menu.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackgroundColor)
	modules.DrawCenteredLabel(screen, "RELIC RUN", config.GameWindowWidth/2, config.GameWindowHeight/2-110, color.White)
	modules.DrawCenteredLabel(screen, "Collect the relics before time runs out",
		config.GameWindowWidth/2, config.GameWindowHeight/2-85, color.RGBA{R: 180, G: 180, B: 200, A: 255})
	m.buttons.Draw(screen)
	m.options.Draw(screen)
}
