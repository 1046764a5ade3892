package factory

import (
	"github.com/automoto/duskrunner/archetypes"
	"github.com/automoto/duskrunner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the shared collision space sized to the level.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	spaceEntry := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(spaceEntry, components.SpaceData{
		Space: resolv.NewSpace(width, height, 16, 16),
	})
	return spaceEntry
}

// addToSpace registers an object with the shared space when one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(obj)
}
