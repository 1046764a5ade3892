package systems_test

import (
	"testing"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/systems"
	"github.com/yohamta/donburi/ecs"
)

func stepWithDialogue(e *ecs.ECS) {
	systems.UpdateDialogue(e)
	step(e)
}

func TestDialogueOpensOnceAndGatesPlay(t *testing.T) {
	level := testLevel()
	level.PlayerX = 140 // a short walk left of the trigger
	e := newWorld(level)

	entry := player(t, e)
	obj := components.Object.Get(entry).Object
	session := systems.GetOrCreateSession(e)
	dialogue := systems.GetOrCreateDialogue(e)

	for i := 0; i < 60 && !dialogue.Active; i++ {
		systems.RequestMove(e, -1)
		stepWithDialogue(e)
	}
	if !dialogue.Active {
		t.Fatalf("dialogue never opened at the trigger")
	}
	if session.State != cfg.GameDialogue {
		t.Fatalf("session state = %v, want dialogue", session.State)
	}

	// Movement is gated while the dialogue is open.
	xAtOpen := obj.X
	systems.RequestMove(e, -1)
	stepWithDialogue(e)
	if obj.X != xAtOpen {
		t.Errorf("runner moved during dialogue: %v -> %v", xAtOpen, obj.X)
	}

	// Advancing through every line closes it and resumes play.
	for i := 0; i < len(cfg.Dialogue.Lines); i++ {
		systems.AdvanceDialogue(e)
	}
	if dialogue.Active {
		t.Errorf("dialogue still open after the last line")
	}
	if session.State != cfg.GamePlaying {
		t.Errorf("session state after dialogue = %v, want playing", session.State)
	}

	// The trigger is once per run.
	for i := 0; i < 30; i++ {
		stepWithDialogue(e)
	}
	if dialogue.Active {
		t.Errorf("dialogue reopened at the trigger")
	}
}
