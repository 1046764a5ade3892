package config

// AnimationDef describes one named state in an entity kind's animation table.
// FrameTimeMs is the duration of a single frame; Next is the state entered
// when a non-looping animation clamps on its last frame (StateNone = park on
// the final frame, used by Die so the decay sequence can read it).
type AnimationDef struct {
	Frames      int
	FrameTimeMs float64
	Loop        bool
	Next        StateID
}

// CharacterAnimations maps a character key (e.g., "runner") to its static
// set of animation definitions. Tables are never mutated at runtime.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"runner": {
		Idle:  {Frames: 4, FrameTimeMs: 120, Loop: true},
		Run:   {Frames: 8, FrameTimeMs: 70, Loop: true},
		Jump:  {Frames: 2, FrameTimeMs: 140, Loop: true},
		Melee: {Frames: 7, FrameTimeMs: 60, Next: Idle},
		Shoot: {Frames: 6, FrameTimeMs: 70, Next: Idle},
	},
	"warden": {
		Idle: {Frames: 4, FrameTimeMs: 160, Loop: true},
		Walk: {Frames: 6, FrameTimeMs: 100, Loop: true},
		Die:  {Frames: 5, FrameTimeMs: 80}, // clamps on last frame
	},
	"crow": {
		Perch:   {Frames: 3, FrameTimeMs: 220, Loop: true},
		Startle: {Frames: 4, FrameTimeMs: 70, Loop: true},
	},
}

// Frame-entry trigger points read by the animation system.
const (
	// Dart leaves the hand on this frame of the Shoot animation.
	ShootReleaseFrame = 1

	// The blade whoosh plays on this frame of the Melee animation.
	MeleeWhooshFrame = 2
)

// RunFootstepFrames are the Run animation frames that kick up dust and play a
// footstep variant.
var RunFootstepFrames = map[int]bool{2: true, 6: true}
