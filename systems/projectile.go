package systems

import (
	"github.com/automoto/duskrunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every dart along its fixed direction and marks the
// ones that leave the level for despawn. Darts ignore gravity and platforms;
// only enemies and the level edge stop them.
func UpdateProjectiles(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current

	components.Dart.Each(e.World, func(entry *donburi.Entry) {
		dart := components.Dart.Get(entry)
		obj := components.Object.Get(entry).Object

		obj.X += dart.Speed * dart.Direction
		obj.Update()

		if obj.X+obj.W < 0 || obj.X > level.Width {
			markDespawn(entry)
		}
	})
}

// markDespawn flags an entity for the end-of-step sweep. Safe to call more
// than once.
func markDespawn(entry *donburi.Entry) {
	if !entry.HasComponent(components.Despawn) {
		donburi.Add(entry, components.Despawn, &components.DespawnData{})
	}
}
