package factory

import (
	"github.com/automoto/duskrunner/archetypes"
	"github.com/automoto/duskrunner/components"
	"github.com/automoto/duskrunner/leveldata"
	"github.com/automoto/duskrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the full entity population of a loaded level: the
// collision space, the static platforms, the runner, every warden and crow.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	CreateSpace(ecs, int(level.Width), int(level.Height))

	levelEntry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(levelEntry, components.LevelData{Current: level})

	for _, p := range level.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.W, p.H)
	}

	CreatePlayer(ecs, level.PlayerX, level.PlayerY)

	for _, spawn := range level.Enemies {
		CreateEnemy(ecs, spawn)
	}
	for _, spawn := range level.Crows {
		CreateCrow(ecs, spawn.X, spawn.Y)
	}

	return levelEntry
}

// CreatePlatform spawns a static landing surface.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}
