package archetypes

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Commands,
		components.Object,
		components.Hitbox,
		components.Physics,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Hitbox,
		components.Physics,
		components.Animation,
		components.Health,
	)
	Dart = newArchetype(
		tags.Dart,
		components.Dart,
		components.Object,
	)
	Crow = newArchetype(
		tags.Crow,
		components.Crow,
		components.Object,
		components.Animation,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Particle = newArchetype(
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
