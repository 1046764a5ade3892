package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is a single short-lived burst particle. Particles are
// peripheral: the core only spawns them, and their own aging never feeds
// back into the simulation.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA

	AgeMs  float64
	LifeMs float64
}

var Particle = donburi.NewComponentType[ParticleData]()
