package systems

import (
	"github.com/automoto/duskrunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDespawns is the single removal point of the step. Everything marked
// for despawn during the step is detached from the collision space and
// removed from the world here, so no system ever iterates over a removed
// entity mid-step.
func UpdateDespawns(e *ecs.ECS) {
	var doomed []*donburi.Entry
	components.Despawn.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})

	if len(doomed) == 0 {
		return
	}

	spaceEntry, hasSpace := components.Space.First(e.World)
	for _, entry := range doomed {
		if hasSpace && entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry).Object
			if obj != nil && obj.Space != nil {
				components.Space.Get(spaceEntry).Remove(obj)
			}
		}
		e.World.Remove(entry.Entity())
	}
}
