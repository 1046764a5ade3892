package factory

import (
	"log"

	"github.com/automoto/duskrunner/archetypes"
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/leveldata"
	"github.com/automoto/duskrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a warden of the spawn's type. The spawn x is the right
// patrol bound; the warden starts walking left. Unknown types fall back to
// the base Warden.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	typeConfig, ok := cfg.Enemy.Types[spawn.Type]
	if !ok {
		log.Printf("Warning: unknown warden type %q, using Warden", spawn.Type)
		typeConfig = cfg.Enemy.Types["Warden"]
	}

	patrolRange := spawn.PatrolRange
	if patrolRange <= 0 {
		patrolRange = cfg.Enemy.DefaultPatrolRange
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, typeConfig.Width, typeConfig.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:    typeConfig.Name,
		TypeConfig:  &typeConfig,
		Direction:   components.Vector{X: cfg.DirectionLeft},
		PatrolStart: spawn.X,
		PatrolRange: patrolRange,
	})
	components.Hitbox.SetValue(enemy, components.HitboxData{
		Width: typeConfig.HitboxWidth,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: typeConfig.Health,
		Max:     typeConfig.Health,
	})
	components.Animation.SetValue(enemy, components.AnimationData{
		Key:     typeConfig.SpriteKey,
		Current: cfg.Walk,
	})

	return enemy
}
