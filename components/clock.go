package components

import "github.com/yohamta/donburi"

// ClockData is the singleton step clock. The scene writes DeltaMs before each
// ECS update; every time-based system reads it from here instead of the wall
// clock, which keeps runs reproducible for identical delta sequences.
type ClockData struct {
	DeltaMs   float64
	ElapsedMs float64
	Stepped   bool // false until the first step; the first delta is treated as 0
}

var Clock = donburi.NewComponentType[ClockData]()
