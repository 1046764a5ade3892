package components

import (
	"testing"

	cfg "github.com/automoto/duskrunner/config"
)

func TestAnimationLoopWraps(t *testing.T) {
	a := &AnimationData{Key: "runner", Current: cfg.Run}

	def, ok := a.Def()
	if !ok {
		t.Fatalf("no definition for runner run state")
	}

	// Advance exactly one full cycle.
	for i := 0; i < def.Frames; i++ {
		a.Update(def.FrameTimeMs)
	}
	if a.Frame != 0 {
		t.Errorf("expected wrap to frame 0, got %d", a.Frame)
	}
	if a.Finished {
		t.Errorf("looping animation must never finish")
	}
}

func TestAnimationAccumulatesPartialDeltas(t *testing.T) {
	a := &AnimationData{Key: "runner", Current: cfg.Run}
	def, _ := a.Def()

	// Two half-frames advance exactly one frame.
	a.Update(def.FrameTimeMs / 2)
	if a.Frame != 0 {
		t.Fatalf("half a frame time advanced the frame")
	}
	a.Update(def.FrameTimeMs / 2)
	if a.Frame != 1 {
		t.Errorf("expected frame 1 after a full frame time, got %d", a.Frame)
	}
}

func TestAnimationLargeDeltaAdvancesMultipleFrames(t *testing.T) {
	a := &AnimationData{Key: "runner", Current: cfg.Run}
	def, _ := a.Def()

	a.Update(def.FrameTimeMs * 3.5)
	if a.Frame != 3 {
		t.Errorf("expected frame 3 after 3.5 frame times, got %d", a.Frame)
	}
}

func TestAnimationNonLoopTransitionsToNext(t *testing.T) {
	a := &AnimationData{Key: "runner", Current: cfg.Idle}
	a.ForceAnimation(cfg.Melee)

	def, _ := a.Def()
	for i := 0; i < def.Frames+1; i++ {
		a.Update(def.FrameTimeMs)
	}

	if a.Current != cfg.Idle {
		t.Errorf("expected melee to hand off to idle, got %v", a.Current)
	}
	if a.Finished {
		t.Errorf("state with a next transition must not report finished")
	}
}

func TestAnimationClampsOnFinalFrame(t *testing.T) {
	a := &AnimationData{Key: "warden", Current: cfg.Walk}
	a.ForceAnimation(cfg.Die)

	def, _ := a.Def()
	for i := 0; i < def.Frames*3; i++ {
		a.Update(def.FrameTimeMs)
	}

	if a.Current != cfg.Die {
		t.Fatalf("die must park, got %v", a.Current)
	}
	if a.Frame != def.Frames-1 {
		t.Errorf("expected park on frame %d, got %d", def.Frames-1, a.Frame)
	}
	if !a.Finished {
		t.Errorf("clamped animation must report finished")
	}
}

func TestSetAnimationIsNoOpWhenCurrent(t *testing.T) {
	a := &AnimationData{Key: "runner", Current: cfg.Run}
	def, _ := a.Def()
	a.Update(def.FrameTimeMs * 2)

	a.SetAnimation(cfg.Run)
	if a.Frame != 2 {
		t.Errorf("SetAnimation to the current state reset the frame")
	}

	a.ForceAnimation(cfg.Run)
	if a.Frame != 0 {
		t.Errorf("ForceAnimation must restart from frame 0")
	}
}

func TestFireOnceFiresOncePerFrameEntry(t *testing.T) {
	a := &AnimationData{Key: "runner"}
	a.ForceAnimation(cfg.Shoot)
	def, _ := a.Def()

	// Enter the release frame.
	a.Update(def.FrameTimeMs * float64(cfg.ShootReleaseFrame))

	if !a.FireOnce(cfg.Shoot, cfg.ShootReleaseFrame) {
		t.Fatalf("first check on the release frame must fire")
	}
	if a.FireOnce(cfg.Shoot, cfg.ShootReleaseFrame) {
		t.Errorf("second check on the same frame entry must not fire")
	}

	// The frame stays current over several zero-advance checks.
	a.Update(def.FrameTimeMs / 4)
	if a.FireOnce(cfg.Shoot, cfg.ShootReleaseFrame) {
		t.Errorf("trigger refired while the frame stayed current")
	}

	// Restarting the animation rearms the trigger.
	a.ForceAnimation(cfg.Shoot)
	a.Update(def.FrameTimeMs * float64(cfg.ShootReleaseFrame))
	if !a.FireOnce(cfg.Shoot, cfg.ShootReleaseFrame) {
		t.Errorf("restart must rearm the frame trigger")
	}
}

func TestFireOnceFiresOnSpawnStateFrameZero(t *testing.T) {
	// Zero-value trigger state: no ForceAnimation, no Update. A trigger on
	// frame 0 of the state an entity spawns in must still fire.
	a := &AnimationData{Key: "runner", Current: cfg.Melee}

	if !a.FireOnce(cfg.Melee, 0) {
		t.Fatalf("frame-0 trigger of the spawn state did not fire")
	}
	if a.FireOnce(cfg.Melee, 0) {
		t.Errorf("frame-0 trigger refired on the same frame entry")
	}
}

func TestFireOnceIgnoresOtherFrames(t *testing.T) {
	a := &AnimationData{Key: "runner"}
	a.ForceAnimation(cfg.Shoot)

	if a.FireOnce(cfg.Shoot, cfg.ShootReleaseFrame) {
		t.Errorf("trigger fired before its frame was reached")
	}
	if a.FireOnce(cfg.Melee, 0) {
		t.Errorf("trigger fired for a state that is not current")
	}
}
