package components

import (
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
)

// CombatEventKind discriminates the transient combat events emitted for
// UI/analytics collaborators. Events are produced and consumed within one
// step, never queued across steps.
type CombatEventKind int

const (
	EventMeleeHit CombatEventKind = iota
	EventDartHit
	EventScareTrigger
)

type CombatEvent struct {
	Kind     CombatEventKind
	Attacker *donburi.Entry
	Target   *donburi.Entry
	Damage   int
	X, Y     float64
}

// ParticleKind selects a burst flavor for the particle collaborator.
type ParticleKind int

const (
	ParticleDust ParticleKind = iota
	ParticleHit
)

// SessionData is the singleton session state plus the fire-and-forget
// boundary hooks. State gates which systems run; hooks are nil-safe and
// purely observational.
type SessionData struct {
	State  cfg.GameStateID
	Paused bool

	OnParticle    func(kind ParticleKind, x, y float64, count int, dir float64)
	OnAudioCue    func(sound cfg.SoundID, randomVariant bool)
	OnCombatEvent func(event CombatEvent)
}

var Session = donburi.NewComponentType[SessionData]()
