package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., main menu, level, victory screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the wall-clock time elapsed since the last update in seconds;
	// scenes that run gameplay scale it by the coordinator's time scale themselves.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exitable 是一个可选接口，场景被替换前会调用 OnExit
//
// 实现此接口的场景可以在这里释放本场景持有的实体和资源
type Exitable interface {
	OnExit()
}
