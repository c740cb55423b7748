package systems

import (
	"github.com/decker502/relicrun/pkg/components"
	"github.com/decker502/relicrun/pkg/ecs"
	"github.com/decker502/relicrun/pkg/utils"
)

// findPlayer 返回被追踪的玩家实体及其位置
// 关卡中只有一个玩家；存在多个时取 ID 最小的一个
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PlayerComponent, utils.Vec3, bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	for _, id := range players {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		return id, player, pos.Position, true
	}
	return 0, nil, utils.Vec3{}, false
}
