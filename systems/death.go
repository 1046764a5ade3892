package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths advances warden death sequences. The decay phase (sink and
// fade) only starts once the death animation has parked on its last frame;
// when both decay tweens finish the corpse is marked for the despawn sweep.
func UpdateDeaths(e *ecs.ECS) {
	clock := GetOrCreateClock(e)

	components.Death.Each(e.World, func(entry *donburi.Entry) {
		death := components.Death.Get(entry)
		obj := components.Object.Get(entry).Object

		switch death.Phase {
		case components.DeathAnimating:
			if !components.Animation.Get(entry).Finished {
				return
			}
			death.Phase = components.DeathDecaying
			death.CorpseY = obj.Y
			death.Fade = gween.New(1, 0, float32(cfg.Enemy.DecayDurationMs), ease.Linear)
			death.Sink = gween.New(0, float32(cfg.Enemy.DecaySinkDepth), float32(cfg.Enemy.DecayDurationMs), ease.InQuad)

		case components.DeathDecaying:
			dt := float32(clock.DeltaMs)
			alpha, done := death.Fade.Update(dt)
			sink, _ := death.Sink.Update(dt)

			death.Alpha = float64(alpha)
			obj.Y = death.CorpseY + float64(sink)
			obj.Update()

			if done {
				markDespawn(entry)
			}
		}
	})
}
