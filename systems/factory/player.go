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

// CreatePlayer spawns the runner at the given position, facing right.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	swing := resolv.NewObject(x, y, cfg.Player.MeleeRange, cfg.Player.Height, tags.ResolvSwing)
	swing.Data = player
	addToSpace(ecs, swing)

	components.Player.SetValue(player, components.PlayerData{
		Direction:   components.Vector{X: cfg.DirectionRight},
		SwingObject: swing,
		SwingHits:   map[*donburi.Entry]bool{},
	})
	components.Hitbox.SetValue(player, components.HitboxData{
		Width: cfg.Player.HitboxWidth,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Key:     "runner",
		Current: cfg.Idle,
	})

	return player
}
