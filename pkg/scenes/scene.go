package scenes

import (
	"fmt"
	"io/fs"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/modules"
	"github.com/decker502/relicrun/pkg/utils"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// LevelAudio 关卡场景使用的音频能力（通常是 game.AudioManager）
type LevelAudio interface {
	game.AudioGateway
	game.PositionalPlayer
	SetListenerPosition(position utils.Vec3)
}

// Context 场景共享的依赖
//
// 接口类型的字段为 nil 表示对应功能不可用，场景会跳过相关调用。
type Context struct {
	Coordinator *game.Coordinator
	Loader      game.SceneLoader
	Scenes      *config.SceneTable

	// Data 数据文件系统，根目录下为 scenes.yaml、levels/ 等
	Data fs.FS

	Input    game.InputSource
	Audio    LevelAudio
	Music    modules.MusicSwitch
	Settings modules.OptionsStore
}

// NewFactory 返回按场景表条目创建场景的工厂函数
func NewFactory(ctx *Context) game.SceneFactory {
	return func(entry config.SceneEntry) (game.Scene, error) {
		switch {
		case entry.IsLevel():
			return NewLevelScene(ctx, entry)
		case entry.ID == config.SceneMainMenu:
			return NewMainMenuScene(ctx), nil
		case entry.ID == config.SceneVictory:
			return NewVictoryScene(ctx), nil
		}
		return nil, fmt.Errorf("no scene for %s: %w", entry.ID, game.ErrResourceNotFound)
	}
}
