package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer consumes the runner's queued commands, drives its movement
// intent and picks its animation state. Physics integration happens later in
// the step; this system only writes speeds.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	player := components.Player.Get(entry)
	commands := components.Commands.Get(entry)
	physics := components.Physics.Get(entry)
	anim := components.Animation.Get(entry)

	// One-shot commands. Melee restarts even mid-swing, resetting the
	// per-swing hit list so the new swing can hit everything again.
	if commands.MeleeQueued {
		commands.MeleeQueued = false
		anim.ForceAnimation(cfg.Melee)
		player.SwingHits = map[*donburi.Entry]bool{}
		player.AttackOnGround = physics.OnGround
	}
	if commands.ShootQueued {
		commands.ShootQueued = false
		anim.ForceAnimation(cfg.Shoot)
		player.AttackOnGround = physics.OnGround
	}
	if commands.JumpQueued {
		commands.JumpQueued = false
		if physics.OnGround {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.OnGround = false
			PlaySFX(e, cfg.SoundJump)
		}
	}

	attacking := anim.Current == cfg.Melee || anim.Current == cfg.Shoot

	// Held movement. A grounded attack locks horizontal control for the
	// swing's duration; airborne attacks keep it.
	if commands.MoveDir != 0 {
		player.Direction.X = commands.MoveDir
	}
	if attacking && player.AttackOnGround {
		physics.SpeedX = 0
	} else {
		physics.SpeedX = commands.MoveDir * cfg.Player.MoveSpeed
	}

	if !attacking {
		switch {
		case !physics.OnGround:
			anim.SetAnimation(cfg.Jump)
		case physics.SpeedX != 0:
			anim.SetAnimation(cfg.Run)
		default:
			anim.SetAnimation(cfg.Idle)
		}
	}

	checkFinish(e, entry)
}

// checkFinish freezes the runner for good once it reaches the finish marker.
func checkFinish(e *ecs.ECS, entry *donburi.Entry) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current

	obj := components.Object.Get(entry).Object
	hitbox := components.Hitbox.Get(entry).Rect(obj)
	finish := components.Rect{
		X: level.Finish.X, Y: level.Finish.Y,
		W: level.Finish.W, H: level.Finish.H,
	}
	if !hitbox.Overlaps(finish) {
		return
	}

	FreezeControl(e)
	session := GetOrCreateSession(e)
	if session.State == cfg.GamePlaying {
		session.State = cfg.GameFrozen
		haltEnemies(e)
		PlaySFX(e, cfg.SoundConfirm)
	}
}
