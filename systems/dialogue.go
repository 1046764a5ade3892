package systems

import (
	"math"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDialogue returns the singleton intro-dialogue state.
func GetOrCreateDialogue(e *ecs.ECS) *components.DialogueData {
	entry, ok := components.Dialogue.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Dialogue))
	}
	return components.Dialogue.Get(entry)
}

// UpdateDialogue opens the intro dialogue the first time the runner walks
// into the trigger radius. While open, the session sits in the dialogue
// state: movement and AI are gated off, gravity and animation keep running.
func UpdateDialogue(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State != cfg.GamePlaying {
		return
	}

	dialogue := GetOrCreateDialogue(e)
	if dialogue.Seen || len(cfg.Dialogue.Lines) == 0 {
		return
	}

	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry).Object
	centerX := obj.X + obj.W/2
	if math.Abs(centerX-cfg.Dialogue.TriggerX) > cfg.Dialogue.TriggerRadius {
		return
	}

	dialogue.Seen = true
	dialogue.Active = true
	dialogue.Line = 0
	session.State = cfg.GameDialogue

	// Holding a direction into the trigger must not carry through the
	// pause; the movement systems are gated off, so clear live speeds too.
	components.Commands.Get(entry).MoveDir = 0
	components.Physics.Get(entry).SpeedX = 0
	haltEnemies(e)
}

// haltEnemies zeroes live walk speeds so gated-off AI does not leave wardens
// sliding on stale velocity.
func haltEnemies(e *ecs.ECS) {
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		components.Physics.Get(entry).SpeedX = 0
	})
}

// AdvanceDialogue moves to the next line, closing the dialogue and resuming
// play after the last one.
func AdvanceDialogue(e *ecs.ECS) {
	dialogue := GetOrCreateDialogue(e)
	if !dialogue.Active {
		return
	}

	PlaySFX(e, cfg.SoundConfirm)

	dialogue.Line++
	if dialogue.Line >= len(cfg.Dialogue.Lines) {
		dialogue.Active = false
		session := GetOrCreateSession(e)
		session.State = cfg.GamePlaying
	}
}
