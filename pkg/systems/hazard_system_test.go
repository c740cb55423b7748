package systems

import (
	"testing"

	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/entities"
	"github.com/decker502/relicrun/pkg/utils"
)

func newHazardFixture(t *testing.T, restarter LevelRestarter) (*ecs.EntityManager, ecs.EntityID, *TriggerSystem, *HazardSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	player := spawnPlayer(em, utils.Vec3{X: -10})
	for _, x := range []float64{0, 1} {
		if _, err := entities.NewHazardEntity(em, config.HazardConfig{
			Position: utils.Vec3{X: x},
			Size:     utils.Vec3{X: 1, Y: 0.5, Z: 1},
		}); err != nil {
			t.Fatalf("NewHazardEntity() error: %v", err)
		}
	}
	return em, player, NewTriggerSystem(em), NewHazardSystem(em, restarter)
}

// TestHazardSystemRestartsOnEnter 测试进入危险区域时重载关卡，每帧最多一次
func TestHazardSystemRestartsOnEnter(t *testing.T) {
	restarter := &mockRestarter{running: true}
	em, player, triggers, hazards := newHazardFixture(t, restarter)

	triggers.Update(0.1)
	hazards.Update(0.1)
	if restarter.restarts != 0 {
		t.Fatalf("Expected no restart outside hazards, got %d", restarter.restarts)
	}

	// 同时进入两个危险区域
	movePlayer(em, player, utils.Vec3{X: 0.5})
	triggers.Update(0.1)
	hazards.Update(0.1)
	if restarter.restarts != 1 {
		t.Errorf("Expected exactly 1 restart, got %d", restarter.restarts)
	}

	triggers.Update(0.1)
	hazards.Update(0.1)
	if restarter.restarts != 1 {
		t.Errorf("Expected no restart while staying inside, got %d", restarter.restarts)
	}
}

// TestHazardSystemIgnoredAfterLevelEnds 测试关卡结束后不再重载
func TestHazardSystemIgnoredAfterLevelEnds(t *testing.T) {
	restarter := &mockRestarter{running: false}
	em, player, triggers, hazards := newHazardFixture(t, restarter)

	movePlayer(em, player, utils.Vec3{})
	triggers.Update(0.1)
	hazards.Update(0.1)

	if restarter.restarts != 0 {
		t.Errorf("Expected no restart after level ended, got %d", restarter.restarts)
	}
}

// TestHazardSystemRestartError 测试重载失败只记录日志
func TestHazardSystemRestartError(t *testing.T) {
	restarter := &mockRestarter{running: true, err: errRestart}
	em, player, triggers, hazards := newHazardFixture(t, restarter)

	movePlayer(em, player, utils.Vec3{})
	triggers.Update(0.1)
	hazards.Update(0.1)

	if restarter.restarts != 1 {
		t.Errorf("Expected restart attempted once, got %d", restarter.restarts)
	}
}

// TestHazardSystemNilRestarter 测试没有重载者时不会崩溃
func TestHazardSystemNilRestarter(t *testing.T) {
	em, player, triggers, hazards := newHazardFixture(t, nil)

	movePlayer(em, player, utils.Vec3{})
	triggers.Update(0.1)
	hazards.Update(0.1)
}
