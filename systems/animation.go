package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/systems/factory"
	"github.com/automoto/duskrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every animation by the step delta, then fires
// the frame-indexed side effects for any frame entered this step. Each
// trigger fires exactly once per frame entry regardless of how long the
// frame stays current.
func UpdateAnimations(e *ecs.ECS) {
	clock := GetOrCreateClock(e)

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		anim.Update(clock.DeltaMs)

		if entry.HasComponent(tags.Player) {
			firePlayerTriggers(e, entry, anim)
		}
	})
}

// firePlayerTriggers runs the runner's frame-entry side effects: the dart
// leaves the hand on the shoot release frame, the blade whoosh plays on the
// melee wind-up frame, and run frames kick up footstep dust.
func firePlayerTriggers(e *ecs.ECS, entry *donburi.Entry, anim *components.AnimationData) {
	if anim.FireOnce(cfg.Shoot, cfg.ShootReleaseFrame) {
		releaseDart(e, entry)
	}

	if anim.FireOnce(cfg.Melee, cfg.MeleeWhooshFrame) {
		PlaySFX(e, cfg.SoundSwing)
	}

	if anim.Current == cfg.Run {
		for frame := range cfg.RunFootstepFrames {
			if anim.FireOnce(cfg.Run, frame) {
				footstep(e, entry)
			}
		}
	}
}

func releaseDart(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry).Object

	dir := player.Direction.X
	if dir == 0 {
		dir = cfg.DirectionRight
	}
	var x float64
	if dir > 0 {
		x = obj.X + obj.W
	} else {
		x = obj.X - cfg.Combat.DartWidth
	}
	y := obj.Y + cfg.Player.DartOffsetY

	factory.CreateDart(e, x, y, dir)
	PlaySFX(e, cfg.SoundDart)
}

func footstep(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry).Object
	player := components.Player.Get(entry)

	PlaySFXVariant(e, cfg.SoundStep)
	EmitBurst(e, components.ParticleDust,
		obj.X+obj.W/2, obj.Y+obj.H, 1, -player.Direction.X)
}
