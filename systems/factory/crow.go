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

// CreateCrow spawns a perched crow at its roost.
func CreateCrow(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	crow := archetypes.Crow.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Crow.Width, cfg.Crow.Height, tags.ResolvCrow)
	obj.Data = crow
	components.Object.SetValue(crow, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	half := cfg.Combat.ScareZoneSize / 2
	zone := resolv.NewObject(x-half, y-half, cfg.Combat.ScareZoneSize, cfg.Combat.ScareZoneSize, tags.ResolvScareZone)
	zone.Data = crow
	addToSpace(ecs, zone)

	components.Crow.SetValue(crow, components.CrowData{
		Phase:      components.ScareIdle,
		HomeX:      x,
		HomeY:      y,
		ZoneObject: zone,
		Alpha:      1,
	})
	components.Animation.SetValue(crow, components.AnimationData{
		Key:     "crow",
		Current: cfg.Perch,
	})

	return crow
}
