package systems

import (
	"time"

	cfg "github.com/automoto/duskrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

func actionHeld(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func actionJustPressed(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// UpdateInput translates raw keyboard state into runner commands. This is
// the only gameplay system that touches the wall clock, and only to stamp
// shoot requests for the cooldown gate.
func UpdateInput(e *ecs.ECS) {
	session := GetOrCreateSession(e)

	if actionJustPressed(cfg.ActionPause) && session.State == cfg.GamePlaying {
		session.Paused = !session.Paused
	}
	if session.Paused {
		return
	}

	if session.State == cfg.GameDialogue {
		if actionJustPressed(cfg.ActionConfirm) {
			AdvanceDialogue(e)
		}
		return
	}
	if session.State != cfg.GamePlaying {
		return
	}

	dir := 0.0
	if actionHeld(cfg.ActionMoveLeft) {
		dir -= 1
	}
	if actionHeld(cfg.ActionMoveRight) {
		dir += 1
	}
	RequestMove(e, dir)

	if actionJustPressed(cfg.ActionJump) {
		RequestJump(e)
	}
	if actionJustPressed(cfg.ActionMelee) {
		RequestMelee(e)
	}
	if actionJustPressed(cfg.ActionShoot) {
		RequestShoot(e, time.Now().UnixMilli())
	}
}
