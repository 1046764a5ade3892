package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scareCrow starts the one-way scare sequence: startle, fade out, stay
// hidden for a while, fade back in at the roost. Once scared, a crow ignores
// every later disturbance.
func scareCrow(e *ecs.ECS, entry *donburi.Entry) {
	crow := components.Crow.Get(entry)
	if crow.Scared {
		return
	}
	crow.Scared = true
	crow.Phase = components.ScareFadingOut
	crow.Fade = gween.New(1, 0, float32(cfg.Crow.FadeOutMs), ease.OutQuad)
	crow.HiddenMs = 0

	components.Animation.Get(entry).ForceAnimation(cfg.Startle)

	PlaySFX(e, cfg.SoundScare)
	obj := components.Object.Get(entry).Object
	EmitCombatEvent(e, components.CombatEvent{
		Kind:   components.EventScareTrigger,
		Target: entry,
		X:      obj.X + obj.W/2,
		Y:      obj.Y + obj.H/2,
	})
}

// UpdateCrows advances each crow's scare sequence. Crows are peripheral and
// keep animating outside the playing state, matching the rest of the
// ambient layer.
func UpdateCrows(e *ecs.ECS) {
	clock := GetOrCreateClock(e)

	components.Crow.Each(e.World, func(entry *donburi.Entry) {
		crow := components.Crow.Get(entry)

		switch crow.Phase {
		case components.ScareFadingOut:
			alpha, done := crow.Fade.Update(float32(clock.DeltaMs))
			crow.Alpha = float64(alpha)
			if done {
				crow.Phase = components.ScareHidden
				crow.Alpha = 0
				crow.HiddenMs = 0
			}

		case components.ScareHidden:
			crow.HiddenMs += clock.DeltaMs
			if crow.HiddenMs >= cfg.Crow.HiddenMs {
				crow.Phase = components.ScareFadingIn
				crow.Fade = gween.New(0, 1, float32(cfg.Crow.FadeInMs), ease.InQuad)

				// Reappear at the roost.
				obj := components.Object.Get(entry).Object
				obj.X = crow.HomeX
				obj.Y = crow.HomeY
				obj.Update()
			}

		case components.ScareFadingIn:
			alpha, done := crow.Fade.Update(float32(clock.DeltaMs))
			crow.Alpha = float64(alpha)
			if done {
				crow.Phase = components.ScareReturned
				crow.Alpha = 1
				components.Animation.Get(entry).SetAnimation(cfg.Perch)
			}
		}
	})
}
