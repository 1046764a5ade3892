package factory

import (
	"github.com/automoto/duskrunner/archetypes"
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDart spawns a dart at the release point, flying in dir (-1 or +1).
func CreateDart(ecs *ecs.ECS, x, y, dir float64) *donburi.Entry {
	dart := archetypes.Dart.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Combat.DartWidth, cfg.Combat.DartHeight, tags.ResolvDart)
	obj.Data = dart
	components.Object.SetValue(dart, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Dart.SetValue(dart, components.DartData{
		Damage:    cfg.Combat.DartDamage,
		Speed:     cfg.Combat.DartSpeed,
		Direction: dir,
	})

	return dart
}
