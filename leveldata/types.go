package leveldata

// Platform is an immutable landing rectangle precomputed from the TMX level.
// Platforms never vertically overlap, so the resolver's first-match-wins tie
// rule is safe.
type Platform struct {
	X, Y, W, H float64
}

// EnemySpawn places a warden of the named type. PatrolRange extends left
// from the spawn x.
type EnemySpawn struct {
	Type        string
	X, Y        float64
	PatrolRange float64
}

// CrowSpawn places an ambient crow roost.
type CrowSpawn struct {
	X, Y float64
}

// Finish is the run-ending marker zone.
type Finish struct {
	X, Y, W, H float64
}

// Level is the static level layout, computed once before play begins and
// shared read-only by all physics checks.
type Level struct {
	Width  float64 // pixels
	Height float64

	GroundLevel float64
	Platforms   []Platform

	PlayerX, PlayerY float64
	Enemies          []EnemySpawn
	Crows            []CrowSpawn
	Finish           Finish
}
