// verify_gameplay 无窗口运行关卡，由自动驾驶输入依次收集全部目标
//
// 用法：
//
//	go run ./cmd/verify_gameplay --scene level1 --data data
//
// 每次场景切换、收集和重开都会打印出来，最后输出到达的场景。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/scenes"
	"github.com/decker502/relicrun/pkg/utils"
)

var (
	dataDir  = flag.String("data", "data", "数据目录（包含 scenes.yaml 和 levels/）")
	scene    = flag.String("scene", "level1", "起始关卡")
	seconds  = flag.Float64("seconds", 600, "最长模拟时间（秒）")
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	interact = flag.Bool("doors", true, "经过门时按交互键")
)

// autopilot 朝最近的剩余收集物直线移动
type autopilot struct {
	level   *scenes.LevelScene
	toggled map[ecs.EntityID]bool
	press   bool
	dx, dz  float64
}

func (a *autopilot) InteractPressed() bool        { return a.press }
func (a *autopilot) PausePressed() bool           { return false }
func (a *autopilot) Movement() (float64, float64) { return a.dx, a.dz }

// steer 根据当前关卡计算本帧输入
func (a *autopilot) steer(level *scenes.LevelScene) {
	if level != a.level {
		a.level = level
		a.toggled = make(map[ecs.EntityID]bool)
	}
	a.press, a.dx, a.dz = false, 0, 0
	if level == nil {
		return
	}

	em := level.EntityManager()
	player, ok := level.PlayerPosition()
	if !ok {
		return
	}

	if *interact {
		for _, door := range level.Entities().Doors {
			if a.toggled[door] {
				continue
			}
			pos, ok := ecs.GetComponent[*components.PositionComponent](em, door)
			if ok && pos.Position.Sub(player).Length() <= config.DefaultDoorOpenDistance {
				a.toggled[door] = true
				a.press = true
				break
			}
		}
	}

	target, found := nearestPickup(em, level.Entities().Pickups, player)
	if !found {
		return
	}
	a.dx = target.X - player.X
	a.dz = target.Z - player.Z
}

func nearestPickup(em *ecs.EntityManager, pickups []ecs.EntityID, from utils.Vec3) (utils.Vec3, bool) {
	best := math.Inf(1)
	var target utils.Vec3
	for _, id := range pickups {
		if !em.IsAlive(id) || em.IsMarkedForDestroy(id) {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if d := pos.Position.Sub(from).Length(); d < best {
			best = d
			target = pos.Position
		}
	}
	return target, !math.IsInf(best, 1)
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	data := os.DirFS(*dataDir)
	tableData, err := os.ReadFile(*dataDir + "/scenes.yaml")
	if err != nil {
		fmt.Printf("❌ 读取场景表失败: %v\n", err)
		os.Exit(1)
	}
	table, err := config.ParseSceneTable(tableData, "scenes.yaml")
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	start, err := config.ParseSceneID(*scene)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	scheduler := game.NewScheduler()
	pilot := &autopilot{}
	coordinator := game.NewCoordinator(game.CoordinatorConfig{
		TransitionDelay: config.TransitionDelay,
		Scenes:          table,
		Scheduler:       scheduler,
	})
	ctx := &scenes.Context{
		Coordinator: coordinator,
		Scenes:      table,
		Data:        data,
		Input:       pilot,
	}
	manager := game.NewSceneManager(table, scenes.NewFactory(ctx))
	ctx.Loader = manager
	coordinator.SetSceneLoader(manager)

	elapsed := 0.0
	restarts := 0
	manager.SetSwitchHook(func(id config.SceneID) {
		fmt.Printf("[%7.2fs] 进入场景 %s\n", elapsed, id)
	})
	if err := manager.Start(start); err != nil {
		fmt.Printf("❌ 启动场景失败: %v\n", err)
		os.Exit(1)
	}

	dt := config.FixedDeltaTime
	collected := 0
	for elapsed < *seconds && !manager.QuitRequested() {
		current := manager.CurrentScene()
		if current == config.SceneVictory || (current == config.SceneMainMenu && elapsed > 0) {
			break
		}

		level, _ := manager.GetCurrentScene().(*scenes.LevelScene)
		pilot.steer(level)

		before := coordinator.ObjectivesCollected()
		scheduler.Update(dt)
		manager.Update(dt)
		elapsed += dt

		if n := coordinator.ObjectivesCollected(); n > before {
			collected++
			fmt.Printf("[%7.2fs] 收集 %s，剩余时间 %s\n", elapsed, coordinator.ObjectiveProgress(), coordinator.FormattedTimeRemaining())
		} else if n < before && manager.CurrentScene() == current {
			restarts++
			fmt.Printf("[%7.2fs] 踩中陷阱，关卡重开\n", elapsed)
		}
	}

	fmt.Println()
	fmt.Printf("最终场景: %s\n", manager.CurrentScene())
	fmt.Printf("累计收集: %d，重开次数: %d，用时 %.2fs\n", collected, restarts, elapsed)
	if manager.CurrentScene() != config.SceneVictory {
		fmt.Println("❌ 未到达胜利场景")
		os.Exit(1)
	}
	fmt.Println("✅ 全部关卡通过")
}
