package game

import (
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/utils"
)

// mockLoader 记录加载请求的场景加载器
type mockLoader struct {
	current config.SceneID
	loads   []config.SceneID
	reloads int
}

func (m *mockLoader) Load(id config.SceneID) error {
	m.loads = append(m.loads, id)
	m.current = id
	return nil
}

func (m *mockLoader) LoadByRelativeIndex(offset int) error {
	return m.Load(m.current + config.SceneID(offset))
}

func (m *mockLoader) CurrentScene() config.SceneID {
	return m.current
}

func (m *mockLoader) Reload() error {
	m.reloads++
	return nil
}

func (m *mockLoader) lastLoad() (config.SceneID, bool) {
	if len(m.loads) == 0 {
		return 0, false
	}
	return m.loads[len(m.loads)-1], true
}

// mockAudio 记录播放的音频提示
type mockAudio struct {
	cues    []Cue
	volumes map[Channel]float64
	placed  []string
}

func (m *mockAudio) PlayCue(cue Cue) {
	m.cues = append(m.cues, cue)
}

func (m *mockAudio) SetVolume(channel Channel, level float64) {
	if m.volumes == nil {
		m.volumes = make(map[Channel]float64)
	}
	m.volumes[channel] = level
}

func (m *mockAudio) PlayAt(soundID string, position utils.Vec3) {
	m.placed = append(m.placed, soundID)
}

// mockOverlay 记录暂停界面的显示状态
type mockOverlay struct {
	visible bool
	shows   int
	hides   int
}

func (m *mockOverlay) Show() {
	m.visible = true
	m.shows++
}

func (m *mockOverlay) Hide() {
	m.visible = false
	m.hides++
}

// mockPointer 记录指针捕获状态
type mockPointer struct {
	captured bool
}

func (m *mockPointer) SetCaptured(captured bool) {
	m.captured = captured
}

// testSceneTable 构建与 data/scenes.yaml 相同流转关系的场景表
func testSceneTable() *config.SceneTable {
	level2, victory := config.SceneLevel2, config.SceneVictory
	table, err := config.NewSceneTable([]config.SceneEntry{
		{ID: config.SceneMainMenu, Music: "menu"},
		{ID: config.SceneLevel1, Level: "levels/level1.yaml", Music: "level1", OnWin: &level2},
		{ID: config.SceneLevel2, Level: "levels/level2.yaml", Music: "level2", OnWin: &victory},
		{ID: config.SceneVictory},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// coordinatorFixture 带全部协作者的协调器
type coordinatorFixture struct {
	coordinator *Coordinator
	scheduler   *Scheduler
	loader      *mockLoader
	audio       *mockAudio
	overlay     *mockOverlay
	pointer     *mockPointer
}

func newCoordinatorFixture(required int, timeLimit float64) *coordinatorFixture {
	f := &coordinatorFixture{
		scheduler: NewScheduler(),
		loader:    &mockLoader{current: config.SceneLevel1},
		audio:     &mockAudio{},
		overlay:   &mockOverlay{},
		pointer:   &mockPointer{},
	}
	f.coordinator = NewCoordinator(CoordinatorConfig{
		ObjectivesRequired: required,
		TimeLimit:          timeLimit,
		TransitionDelay:    config.TransitionDelay,
		Scenes:             testSceneTable(),
		Scheduler:          f.scheduler,
	})
	f.coordinator.SetSceneLoader(f.loader)
	f.coordinator.SetAudioGateway(f.audio)
	f.coordinator.SetOverlay(f.overlay)
	f.coordinator.SetPointerCapture(f.pointer)
	return f
}

// advance 以固定步长推进真实时间
func (f *coordinatorFixture) advance(seconds float64) {
	const step = 0.05
	for elapsed := 0.0; elapsed < seconds-1e-9; elapsed += step {
		f.scheduler.Update(step)
	}
}
