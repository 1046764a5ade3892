package systems

import (
	"github.com/automoto/duskrunner/archetypes"
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton session state, creating it in the
// menu state on first use.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{
			State: cfg.GamePlaying,
		})
	}
	return components.Session.Get(entry)
}

// GetOrCreateClock returns the singleton step clock.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// AdvanceClock records the delta for the step about to run. The first call
// arms the clock with a zero delta so time-based systems never see a bogus
// startup gap.
func AdvanceClock(e *ecs.ECS, deltaMs float64) {
	clock := GetOrCreateClock(e)
	if !clock.Stepped {
		clock.Stepped = true
		clock.DeltaMs = 0
		return
	}
	if deltaMs < 0 {
		deltaMs = 0
	}
	clock.DeltaMs = deltaMs
	clock.ElapsedMs += deltaMs
}

// WithPlayCheck wraps a system to skip execution when the session is paused
// or not actively playing (menu, dialogue, frozen end-of-run).
func WithPlayCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		session := GetOrCreateSession(e)
		if session.Paused || session.State != cfg.GamePlaying {
			return
		}
		system(e)
	}
}

// WithPauseCheck wraps a system to skip execution only while paused. Used
// for systems that keep running through dialogue and the frozen end-of-run
// state, like physics and animation.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSession(e).Paused {
			return
		}
		system(e)
	}
}

// GetOrCreateCamera returns the singleton camera.
func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = archetypes.Camera.Spawn(e)
	}
	return components.Camera.Get(entry)
}

// EmitCombatEvent forwards a combat event through the session hook when one
// is attached.
func EmitCombatEvent(e *ecs.ECS, event components.CombatEvent) {
	session := GetOrCreateSession(e)
	if session.OnCombatEvent != nil {
		session.OnCombatEvent(event)
	}
}
