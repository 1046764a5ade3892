package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/duskrunner/archetypes"
	"github.com/automoto/duskrunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	dustColor = color.RGBA{150, 140, 130, 255}
	hitColor  = color.RGBA{255, 200, 90, 255}
)

// CreateParticle spawns one burst particle at (x, y). dir biases the
// horizontal scatter; 0 scatters both ways.
func CreateParticle(ecs *ecs.ECS, kind components.ParticleKind, x, y, dir float64) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)

	data := components.ParticleData{
		X: x, Y: y,
		Size: 2 + rand.Float64()*2,
	}

	switch kind {
	case components.ParticleDust:
		data.VX = dir*0.6 + (rand.Float64()-0.5)*1.2
		data.VY = -rand.Float64() * 0.8
		data.Color = dustColor
		data.LifeMs = 250 + rand.Float64()*200
	case components.ParticleHit:
		data.VX = (rand.Float64() - 0.5) * 4
		data.VY = -rand.Float64() * 3
		data.Color = hitColor
		data.LifeMs = 300 + rand.Float64()*250
	}

	components.Particle.SetValue(particle, data)
	return particle
}
