package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The Request* functions are the command surface for the runner. The input
// system calls them from raw keys; tests and scripted sequences call them
// directly. Every one of them is a silent no-op once the runner is frozen.

func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Player.First(e.World)
}

// RequestMove sets the held movement direction (-1, 0, +1) for the next step.
func RequestMove(e *ecs.ECS, dir float64) {
	entry, ok := playerEntry(e)
	if !ok || components.Player.Get(entry).Frozen {
		return
	}
	if dir > 0 {
		dir = cfg.DirectionRight
	} else if dir < 0 {
		dir = cfg.DirectionLeft
	}
	components.Commands.Get(entry).MoveDir = dir
}

// RequestJump queues a jump; the player system consumes it and ignores it
// unless the runner is grounded.
func RequestJump(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	if !ok || components.Player.Get(entry).Frozen {
		return
	}
	components.Commands.Get(entry).JumpQueued = true
}

// RequestMelee queues a melee swing. Re-triggering mid-swing restarts the
// swing from its first frame.
func RequestMelee(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	if !ok || components.Player.Get(entry).Frozen {
		return
	}
	components.Commands.Get(entry).MeleeQueued = true
}

// RequestShoot queues a dart throw, subject to the wall-clock cooldown.
// nowMs is the caller's timestamp; the simulation itself never reads the
// wall clock, so the cooldown gate lives entirely here. Returns whether the
// request was accepted.
func RequestShoot(e *ecs.ECS, nowMs int64) bool {
	entry, ok := playerEntry(e)
	if !ok || components.Player.Get(entry).Frozen {
		return false
	}
	commands := components.Commands.Get(entry)
	if commands.HasShot && nowMs-commands.LastShotMs < cfg.Player.ShootCooldownMs {
		return false
	}
	commands.LastShotMs = nowMs
	commands.HasShot = true
	commands.ShootQueued = true
	return true
}

// FreezeControl permanently detaches the runner from the command surface.
// Pending queued commands are discarded; there is no thaw.
func FreezeControl(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	components.Player.Get(entry).Frozen = true
	commands := components.Commands.Get(entry)
	commands.MoveDir = 0
	commands.JumpQueued = false
	commands.MeleeQueued = false
	commands.ShootQueued = false

	// The player system stops running once frozen; kill the live speed so
	// the runner does not slide on stale velocity.
	components.Physics.Get(entry).SpeedX = 0
}
