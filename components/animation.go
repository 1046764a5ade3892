package components

import (
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
)

// AnimationData is a per-entity animation state machine driven by accumulated
// milliseconds. The state table lives in config.CharacterAnimations, keyed by
// the entity kind's character key.
type AnimationData struct {
	Key     string // character key into config.CharacterAnimations
	Current cfg.StateID
	Frame   int
	TimerMs float64

	// Finished is set when a non-looping animation clamps on its last frame.
	Finished bool

	// seq increments on every state switch and frame advance; lastFired
	// guards frame-entry side effects so a single frame never refires while
	// it stays current across steps. lastFired stores seq+1 at fire time so
	// the zero value still fires for frame 0 of the spawn-time state.
	seq       int64
	lastFired int64
}

// Def returns the definition of the active state. ok is false when the
// character table has no entry for it.
func (a *AnimationData) Def() (cfg.AnimationDef, bool) {
	table, ok := cfg.CharacterAnimations[a.Key]
	if !ok {
		return cfg.AnimationDef{}, false
	}
	def, ok := table[a.Current]
	return def, ok
}

// SetAnimation switches to the named state, resetting frame and timer. It is
// a no-op when the state is already current; use ForceAnimation to restart.
func (a *AnimationData) SetAnimation(state cfg.StateID) {
	if a.Current == state {
		return
	}
	a.ForceAnimation(state)
}

// ForceAnimation switches to the named state even when it is already
// current, restarting from frame zero (repeated melee swings).
func (a *AnimationData) ForceAnimation(state cfg.StateID) {
	a.Current = state
	a.Frame = 0
	a.TimerMs = 0
	a.Finished = false
	a.seq++
}

// Update accumulates deltaMs against the active frame duration, advancing the
// frame each time it is crossed. Looping states wrap; non-looping states
// clamp on the last frame and, when a next-state is configured, transition
// to it.
func (a *AnimationData) Update(deltaMs float64) {
	def, ok := a.Def()
	if !ok || def.Frames <= 0 || a.Finished {
		return
	}

	a.TimerMs += deltaMs
	for a.TimerMs >= def.FrameTimeMs && def.FrameTimeMs > 0 {
		a.TimerMs -= def.FrameTimeMs

		if a.Frame < def.Frames-1 {
			a.Frame++
			a.seq++
			continue
		}

		// Past the last frame
		if def.Loop {
			a.Frame = 0
			a.seq++
			continue
		}

		if def.Next != cfg.StateNone {
			a.ForceAnimation(def.Next)
			def, ok = a.Def()
			if !ok || def.Frames <= 0 {
				return
			}
			continue
		}

		// Park on the final frame (Die)
		a.Finished = true
		a.TimerMs = 0
		return
	}
}

// FireOnce reports whether the given frame of the given state is current and
// has not yet fired a side effect. The guard is per frame-entry: it rearms
// when the frame advances or the state restarts.
func (a *AnimationData) FireOnce(state cfg.StateID, frame int) bool {
	if a.Current != state || a.Frame != frame {
		return false
	}
	if a.lastFired == a.seq+1 {
		return false
	}
	a.lastFired = a.seq + 1
	return true
}

var Animation = donburi.NewComponentType[AnimationData]()
