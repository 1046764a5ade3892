package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/leveldata"
	"github.com/automoto/duskrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every physics body and resolves landings against
// the static level. Landing uses a swept check on the bottom edge: the
// previous bottom must sit at or above the surface top (within the snap
// tolerance) and the new bottom at or below it, so fast falls cannot tunnel
// through a platform and side entry never counts as a landing.
func UpdatePhysics(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Enemy) && components.Enemy.Get(entry).Dead {
			return
		}

		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object
		offset := groundOffsetFor(entry)

		// Gravity runs every step; the landing snap below re-zeroes it for
		// grounded bodies, so walking off an edge needs no special case.
		physics.SpeedY += physics.Gravity
		if physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}

		prevBottom := obj.Y + obj.H - offset

		obj.X += physics.SpeedX
		if entry.HasComponent(tags.Player) {
			// Enemies are patrol-bounded instead of clamped.
			if obj.X < 0 {
				obj.X = 0
			}
			if obj.X > level.Width-obj.W {
				obj.X = level.Width - obj.W
			}
		}
		obj.Y += physics.SpeedY

		wasOnGround := physics.OnGround
		physics.OnGround = false
		physics.JustLanded = false

		if physics.SpeedY >= 0 {
			newBottom := obj.Y + obj.H - offset
			hitbox := components.Hitbox.Get(entry).Rect(obj)

			if top, landed := findLanding(level, hitbox, prevBottom, newBottom); landed {
				obj.Y = top - obj.H + offset
				physics.SpeedY = 0
				physics.OnGround = true
				physics.JustLanded = !wasOnGround
			}
		}

		obj.Update()

		if physics.JustLanded && entry.HasComponent(tags.Player) {
			PlaySFX(e, cfg.SoundLand)
			spawnLandingDust(e, entry)
		}
	})
}

// findLanding returns the surface top the swept bottom edge crossed this
// step, if any. Platforms are checked in level order, the ground level last;
// platforms never vertically overlap so the first match is the right one.
func findLanding(level *leveldata.Level, hitbox components.Rect, prevBottom, newBottom float64) (float64, bool) {
	tolerance := cfg.Physics.LandingSnapTolerance

	for _, p := range level.Platforms {
		if hitbox.X+hitbox.W <= p.X || hitbox.X >= p.X+p.W {
			continue
		}
		if prevBottom <= p.Y+tolerance && newBottom >= p.Y {
			return p.Y, true
		}
	}

	if newBottom >= level.GroundLevel {
		return level.GroundLevel, true
	}
	return 0, false
}

func groundOffsetFor(entry *donburi.Entry) float64 {
	if entry.HasComponent(tags.Player) {
		return cfg.Player.GroundOffset
	}
	if entry.HasComponent(components.Enemy) {
		if tc := components.Enemy.Get(entry).TypeConfig; tc != nil {
			return tc.GroundOffset
		}
	}
	return 0
}

func spawnLandingDust(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry).Object
	x := obj.X + obj.W/2
	y := obj.Y + obj.H
	EmitBurst(e, components.ParticleDust, x, y, cfg.Combat.DustBurstCount, 0)
}
