package config

// StateID identifies a named animation/behavior state for an entity kind.
type StateID int

const (
	StateNone StateID = iota

	// Runner states
	Idle
	Run
	Jump
	Melee
	Shoot

	// Warden states
	Walk
	Die

	// Crow states
	Perch
	Startle
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Run:       "run",
	Jump:      "jump",
	Melee:     "melee",
	Shoot:     "shoot",
	Walk:      "walk",
	Die:       "die",
	Perch:     "perch",
	Startle:   "startle",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// GameStateID is the session-level state gating which systems run each step.
// It is held by the session singleton and passed as a read-only gate, never
// queried from ambient globals.
type GameStateID int

const (
	GameMenu GameStateID = iota
	GameDialogue
	GamePlaying
	GameFrozen
)

func (g GameStateID) String() string {
	switch g {
	case GameMenu:
		return "menu"
	case GameDialogue:
		return "dialogue"
	case GamePlaying:
		return "playing"
	case GameFrozen:
		return "frozen"
	}
	return "unknown"
}
