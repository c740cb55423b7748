package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/relicrun/pkg/app"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	envConfig, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	// 命令行参数优先于环境变量
	verbose := flag.Bool("verbose", envConfig.Verbose, "启用详细日志输出")
	scene := flag.String("scene", envConfig.StartScene, "启动场景（mainMenu, level1, level2, victory）")
	assetsDir := flag.String("assets", envConfig.AssetsDir, "音频资源目录")
	flag.Parse()

	// 数据文件嵌入在二进制中，音频资源从磁盘读取
	embedded.Init(os.DirFS(*assetsDir), dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		StartScene: *scene,
		AppName:    envConfig.AppName,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Relic Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
