// validate_levels 校验场景表、关卡配置和音频资源配置
//
// 用法：
//
//	go run ./cmd/validate_levels --data data --assets assets
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/game"
)

var (
	dataDir   = flag.String("data", "data", "数据目录")
	assetsDir = flag.String("assets", "", "资源目录，为空时跳过音频文件存在性检查")
)

func main() {
	flag.Parse()
	data := os.DirFS(*dataDir)
	failures := 0

	tableData, err := fs.ReadFile(data, "scenes.yaml")
	if err != nil {
		fmt.Printf("❌ 读取场景表失败: %v\n", err)
		os.Exit(1)
	}
	table, err := config.ParseSceneTable(tableData, "scenes.yaml")
	if err != nil {
		fmt.Printf("❌ 场景表无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 场景表包含 %d 个场景\n", table.Len())

	cues := []game.Cue{game.CueCollect, game.CueDoor}
	for i := 0; i < table.Len(); i++ {
		entry, _ := table.ByIndex(i)
		if entry.Music != "" {
			cue, err := game.ParseCue(entry.Music)
			if err != nil {
				fmt.Printf("❌ %s: %v\n", entry.ID, err)
				failures++
			} else {
				cues = append(cues, cue)
			}
		}
		if !entry.IsLevel() {
			continue
		}
		level, err := config.LoadLevelConfig(data, entry.Level)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", entry.ID, err)
			failures++
			continue
		}
		fmt.Printf("✅ %s (%s): %d 门, %d 收集物 (需要 %d), %d 陷阱, 限时 %s\n",
			entry.ID, level.Name, len(level.Doors), len(level.Pickups), level.ObjectivesRequired,
			len(level.Hazards), game.FormatTime(level.TimeLimit))
	}

	resData, err := fs.ReadFile(data, "resources.yaml")
	if err != nil {
		fmt.Printf("❌ 读取资源配置失败: %v\n", err)
		os.Exit(1)
	}
	resources, err := game.ParseResourceConfig(resData, "resources.yaml")
	if err != nil {
		fmt.Printf("❌ 资源配置无效: %v\n", err)
		os.Exit(1)
	}

	for _, cue := range cues {
		if _, ok := resources.CueResource(cue); !ok {
			fmt.Printf("❌ 音频提示 %q 未映射到资源\n", cue)
			failures++
		}
	}

	if *assetsDir != "" {
		assets := os.DirFS(*assetsDir)
		for name, group := range resources.Groups {
			for _, res := range append(group.Music, group.Sounds...) {
				p := path.Join(resources.BasePath, res.Path)
				if path.Ext(p) == "" {
					p += ".ogg"
				}
				if _, err := fs.Stat(assets, p); err != nil {
					fmt.Printf("❌ %s/%s: 缺少文件 %s\n", name, res.ID, p)
					failures++
				}
			}
		}
	}

	if failures > 0 {
		fmt.Printf("❌ 共 %d 处问题\n", failures)
		os.Exit(1)
	}
	fmt.Println("✅ 全部配置有效")
}
