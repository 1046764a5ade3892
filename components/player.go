package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector

	// SwingObject is the melee hitbox in the collision space. It rides the
	// facing edge of the runner every combat step; it only counts as live
	// while the melee animation is current.
	SwingObject *resolv.Object

	// Frozen is the one-way end-of-run flag; once set, commands become
	// silent no-ops for the rest of the session.
	Frozen bool

	// Attack-lock bookkeeping. AttackOnGround records whether the current
	// swing started while grounded; only then is horizontal control
	// suppressed for the swing's duration.
	AttackOnGround bool

	// SwingHits tracks enemies already hit during the current melee swing,
	// guaranteeing at most one hit per enemy per swing regardless of how
	// many steps the swing spans. Reset when a new swing starts.
	SwingHits map[*donburi.Entry]bool
}

var Player = donburi.NewComponentType[PlayerData]()
