package systems

import (
	"github.com/automoto/duskrunner/components"
	"github.com/automoto/duskrunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EmitBurst spawns a particle burst and notifies the session observer hook.
// Particles are fire-and-forget visuals; nothing in the simulation ever
// reads them back.
func EmitBurst(e *ecs.ECS, kind components.ParticleKind, x, y float64, count int, dir float64) {
	session := GetOrCreateSession(e)
	if session.OnParticle != nil {
		session.OnParticle(kind, x, y, count, dir)
	}

	for i := 0; i < count; i++ {
		factory.CreateParticle(e, kind, x, y, dir)
	}
}

// UpdateParticles ages and moves burst particles, despawning the expired
// ones. Runs regardless of session state so trailing bursts settle even
// after the runner freezes.
func UpdateParticles(e *ecs.ECS) {
	clock := GetOrCreateClock(e)

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)

		p.AgeMs += clock.DeltaMs
		if p.AgeMs >= p.LifeMs {
			markDespawn(entry)
			return
		}

		p.X += p.VX
		p.Y += p.VY
		p.VY += 0.08 // light gravity so dust settles
	})
}
