package systems

import (
	"testing"

	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/config"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/entities"
	"github.com/decker502/relicrun/pkg/utils"
)

// TestLifetimeSystemExpiresEffect 测试特效到期后被删除
func TestLifetimeSystemExpiresEffect(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := entities.NewCollectEffect(em, utils.Vec3{X: 1})
	if err != nil {
		t.Fatalf("NewCollectEffect() error: %v", err)
	}

	sys := NewLifetimeSystem(em)
	sys.Update(config.EffectLifetime / 2)
	em.RemoveMarkedEntities()

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok {
		t.Fatal("Expected effect alive at half lifetime")
	}
	if lifetime.Progress() != 0.5 {
		t.Errorf("Expected progress 0.5, got %v", lifetime.Progress())
	}

	sys.Update(config.EffectLifetime / 2)
	em.RemoveMarkedEntities()

	if em.IsAlive(id) {
		t.Error("Expected effect removed after lifetime")
	}
}

// TestLifetimeSystemIgnoresOtherEntities 测试没有生命周期组件的实体不受影响
func TestLifetimeSystemIgnoresOtherEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	player := spawnPlayer(em, utils.Vec3{})

	NewLifetimeSystem(em).Update(100)
	em.RemoveMarkedEntities()

	if !em.IsAlive(player) {
		t.Error("Expected player to survive")
	}
}
