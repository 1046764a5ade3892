package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DeathPhase int

const (
	// DeathAnimating: the Die animation is still playing.
	DeathAnimating DeathPhase = iota
	// DeathDecaying: the corpse sinks and fades; when the tweens finish the
	// entity is marked for despawn.
	DeathDecaying
)

// DeathData tracks a warden's death sequence. The decay sub-sequence starts
// only after the death animation parks on its final frame, decoupling
// "animation finished" from "actually removed".
type DeathData struct {
	Phase   DeathPhase
	CorpseY float64 // y captured when decay begins; Sink offsets from here

	Alpha float64
	Fade  *gween.Tween // alpha 1 -> 0 over the decay duration
	Sink  *gween.Tween // y offset 0 -> sink depth over the decay duration
}

var Death = donburi.NewComponentType[DeathData]()
