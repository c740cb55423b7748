package systems

import (
	"errors"
	"testing"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/entities"
	"github.com/decker502/relicrun/pkg/game"
	"github.com/decker502/relicrun/pkg/utils"
)

func spawnPickup(t *testing.T, em *ecs.EntityManager, cfg config.PickupConfig) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPickupEntity(em, cfg)
	if err != nil {
		t.Fatalf("NewPickupEntity() error: %v", err)
	}
	return id
}

// TestPickupSystemCollectOnEnter 测试玩家进入收集物时拾取
func TestPickupSystemCollectOnEnter(t *testing.T) {
	em := ecs.NewEntityManager()
	player := spawnPlayer(em, utils.Vec3{X: -5})
	pickup := spawnPickup(t, em, config.PickupConfig{Position: utils.Vec3{}, RotationSpeed: 50})

	reporter := &mockReporter{}
	audio := &mockAudio{}
	triggers := NewTriggerSystem(em)
	pickups := NewPickupSystem(em, reporter, audio, nil)

	triggers.Update(0.1)
	pickups.Update(0.1)
	if reporter.reports != 0 {
		t.Fatalf("Expected no report before entering, got %d", reporter.reports)
	}

	movePlayer(em, player, utils.Vec3{})
	triggers.Update(0.1)
	pickups.Update(0.1)

	if reporter.reports != 1 {
		t.Errorf("Expected 1 report, got %d", reporter.reports)
	}
	if audio.count(game.CueCollect) != 1 {
		t.Errorf("Expected collect cue once, got %d", audio.count(game.CueCollect))
	}
	if !em.IsMarkedForDestroy(pickup) {
		t.Error("Expected pickup marked for destruction")
	}

	effects := ecs.GetEntitiesWith1[*components.EffectComponent](em)
	if len(effects) != 1 {
		t.Errorf("Expected 1 collect effect, got %d", len(effects))
	}

	// 同一帧内再次处理也不会重复上报
	triggers.Update(0.1)
	pickups.Update(0.1)
	em.RemoveMarkedEntities()
	triggers.Update(0.1)
	pickups.Update(0.1)
	if reporter.reports != 1 {
		t.Errorf("Expected pickup reported at most once, got %d", reporter.reports)
	}
}

// TestPickupSystemCollectIdempotent 测试重复拾取同一收集物只上报一次
func TestPickupSystemCollectIdempotent(t *testing.T) {
	em := ecs.NewEntityManager()
	pickup := spawnPickup(t, em, config.PickupConfig{})
	reporter := &mockReporter{}
	sys := NewPickupSystem(em, reporter, &mockAudio{}, nil)

	if err := sys.Collect(pickup); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if err := sys.Collect(pickup); err != nil {
		t.Fatalf("second Collect() error: %v", err)
	}
	if reporter.reports != 1 {
		t.Errorf("Expected 1 report, got %d", reporter.reports)
	}
}

// TestPickupSystemMissingReporter 测试没有接收者时返回错误且收集物保留
func TestPickupSystemMissingReporter(t *testing.T) {
	em := ecs.NewEntityManager()
	pickup := spawnPickup(t, em, config.PickupConfig{})
	sys := NewPickupSystem(em, nil, &mockAudio{}, nil)

	err := sys.Collect(pickup)
	if !errors.Is(err, game.ErrMissingCollaborator) {
		t.Fatalf("Expected ErrMissingCollaborator, got %v", err)
	}

	comp, _ := ecs.GetComponent[*components.PickupComponent](em, pickup)
	if comp.Collected {
		t.Error("Expected pickup to remain uncollected")
	}
	if em.IsMarkedForDestroy(pickup) {
		t.Error("Expected pickup to remain in the scene")
	}
}

// TestPickupSystemCollectNonPickup 测试拾取非收集物实体返回错误
func TestPickupSystemCollectNonPickup(t *testing.T) {
	em := ecs.NewEntityManager()
	player := spawnPlayer(em, utils.Vec3{})
	sys := NewPickupSystem(em, &mockReporter{}, nil, nil)

	if err := sys.Collect(player); !errors.Is(err, game.ErrResourceNotFound) {
		t.Errorf("Expected ErrResourceNotFound, got %v", err)
	}
}

// TestPickupSystemFallbackSound 测试没有音频网关时原地播放收集物自带的音效
func TestPickupSystemFallbackSound(t *testing.T) {
	em := ecs.NewEntityManager()
	pos := utils.Vec3{X: 3, Y: 1, Z: -2}
	pickup := spawnPickup(t, em, config.PickupConfig{Position: pos, FallbackSound: "SOUND_COLLECT"})
	fallback := &mockPositional{}
	sys := NewPickupSystem(em, &mockReporter{}, nil, fallback)

	if err := sys.Collect(pickup); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(fallback.sounds) != 1 || fallback.sounds[0] != "SOUND_COLLECT" {
		t.Fatalf("Expected fallback sound played once, got %v", fallback.sounds)
	}
	if fallback.positions[0] != pos {
		t.Errorf("Expected sound at pickup position %+v, got %+v", pos, fallback.positions[0])
	}
}

// TestPickupSystemGatewayPreferredOverFallback 测试有音频网关时不使用本地音效
func TestPickupSystemGatewayPreferredOverFallback(t *testing.T) {
	em := ecs.NewEntityManager()
	pickup := spawnPickup(t, em, config.PickupConfig{FallbackSound: "SOUND_COLLECT"})
	fallback := &mockPositional{}
	audio := &mockAudio{}
	sys := NewPickupSystem(em, &mockReporter{}, audio, fallback)

	if err := sys.Collect(pickup); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(fallback.sounds) != 0 {
		t.Errorf("Expected no fallback sound, got %v", fallback.sounds)
	}
	if audio.count(game.CueCollect) != 1 {
		t.Errorf("Expected collect cue, got %v", audio.cues)
	}
}

// TestPickupSystemRotation 测试收集物按速度旋转并保持在 [0, 360)
func TestPickupSystemRotation(t *testing.T) {
	em := ecs.NewEntityManager()
	pickup := spawnPickup(t, em, config.PickupConfig{RotationSpeed: 100})
	sys := NewPickupSystem(em, &mockReporter{}, nil, nil)

	sys.Update(0.5)
	rotation, _ := ecs.GetComponent[*components.RotationComponent](em, pickup)
	if rotation.Yaw != 50 {
		t.Errorf("Expected yaw 50, got %v", rotation.Yaw)
	}

	sys.Update(3.5)
	if rotation.Yaw < 0 || rotation.Yaw >= 360 {
		t.Errorf("Expected yaw wrapped into [0, 360), got %v", rotation.Yaw)
	}
	if rotation.Yaw != 40 {
		t.Errorf("Expected yaw 40 after wrap, got %v", rotation.Yaw)
	}
}
