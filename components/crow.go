package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ScarePhase int

const (
	ScareIdle ScarePhase = iota
	ScareFadingOut
	ScareHidden
	ScareFadingIn
	ScareReturned
)

// CrowData is an ambient crow perched in the level. Its scare zone is a
// fixed square centered on the roost; the first melee swing or dart that
// overlaps it starts the one-way fade/hide/return sequence.
type CrowData struct {
	Scared bool // one-way; re-entrant triggers while scared are no-ops
	Phase  ScarePhase

	HomeX, HomeY float64

	// ZoneObject is the fixed scare zone in the collision space, queried for
	// swings and darts each combat step.
	ZoneObject *resolv.Object

	Alpha    float64
	Fade     *gween.Tween // active fade for the current phase
	HiddenMs float64      // accumulated time in the hidden hold
}

var Crow = donburi.NewComponentType[CrowData]()
