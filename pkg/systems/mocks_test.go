package systems

import (
	"errors"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/entities"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/utils"
)

// mockInput 可编程的输入源
type mockInput struct {
	interact bool
	pause    bool
	dx, dz   float64
}

func (m *mockInput) InteractPressed() bool { return m.interact }
func (m *mockInput) PausePressed() bool    { return m.pause }
func (m *mockInput) Movement() (float64, float64) {
	return m.dx, m.dz
}

// mockAudio 记录播放的音频提示
type mockAudio struct {
	cues []game.Cue
}

func (m *mockAudio) PlayCue(cue game.Cue)                          { m.cues = append(m.cues, cue) }
func (m *mockAudio) SetVolume(channel game.Channel, level float64) {}

func (m *mockAudio) count(cue game.Cue) int {
	n := 0
	for _, c := range m.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// mockPositional 记录原地播放的音效
type mockPositional struct {
	sounds    []string
	positions []utils.Vec3
}

func (m *mockPositional) PlayAt(soundID string, position utils.Vec3) {
	m.sounds = append(m.sounds, soundID)
	m.positions = append(m.positions, position)
}

// mockReporter 统计上报次数
type mockReporter struct {
	reports int
}

func (m *mockReporter) ReportObjectiveCollected() { m.reports++ }

// mockRestarter 统计重载次数
type mockRestarter struct {
	running  bool
	restarts int
	err      error
}

func (m *mockRestarter) RestartLevel() error {
	m.restarts++
	return m.err
}

func (m *mockRestarter) Running() bool { return m.running }

var errRestart = errors.New("reload failed")

// spawnPlayer 在指定位置生成玩家
func spawnPlayer(em *ecs.EntityManager, pos utils.Vec3) ecs.EntityID {
	id, err := entities.NewPlayerEntity(em, config.PlayerConfig{Spawn: pos, Speed: 5})
	if err != nil {
		panic(err)
	}
	return id
}

// movePlayer 直接设置玩家位置
func movePlayer(em *ecs.EntityManager, id ecs.EntityID, pos utils.Vec3) {
	p, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	p.Position = pos
}

func playerPosition(em *ecs.EntityManager, id ecs.EntityID) utils.Vec3 {
	p, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return p.Position
}
