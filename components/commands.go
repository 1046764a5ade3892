package components

import "github.com/yohamta/donburi"

// CommandsData is the command surface other systems (input, UI, dialogue)
// use to drive the runner. The input system writes it from raw keys; tests
// and external callers write it through the systems.Request* functions.
// Queued one-shot commands are consumed by the player system each step.
type CommandsData struct {
	MoveDir     float64 // held direction: -1, 0, +1
	JumpQueued  bool
	MeleeQueued bool
	ShootQueued bool

	// Shot cooldown bookkeeping. LastShotMs is the wall-clock timestamp of
	// the last accepted shoot request; the wall clock is only ever read at
	// the moment a command is issued, never inside a simulation step.
	LastShotMs int64
	HasShot    bool
}

var Commands = donburi.NewComponentType[CommandsData]()
