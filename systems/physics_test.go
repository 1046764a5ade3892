package systems_test

import (
	"testing"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/systems"
)

const platformTop = 200.0

func restingY(top float64) float64 {
	return top - cfg.Player.Height + cfg.Player.GroundOffset
}

func TestLandingSnapsToSurfaceTop(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry).Object
	physics := components.Physics.Get(entry)

	// Drop from well above the platform.
	obj.X, obj.Y = 330, 60
	physics.SpeedY = 0
	physics.OnGround = false

	for i := 0; i < 120 && !physics.OnGround; i++ {
		step(e)
	}

	if !physics.OnGround {
		t.Fatalf("player never landed")
	}
	if obj.Y != restingY(platformTop) {
		t.Errorf("resting y = %v, want %v", obj.Y, restingY(platformTop))
	}
	if physics.SpeedY != 0 {
		t.Errorf("vertical speed after landing = %v, want 0", physics.SpeedY)
	}
}

func TestLandingIsIdempotent(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry).Object
	physics := components.Physics.Get(entry)

	obj.X, obj.Y = 330, 60
	physics.OnGround = false

	landings := 0
	for i := 0; i < 200; i++ {
		step(e)
		if physics.JustLanded {
			landings++
		}
	}

	if landings != 1 {
		t.Errorf("landing transition fired %d times, want 1", landings)
	}
	if obj.Y != restingY(platformTop) {
		t.Errorf("repeated grounded steps moved the player to y=%v", obj.Y)
	}
}

func TestFastFallDoesNotTunnel(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry).Object
	physics := components.Physics.Get(entry)

	// A single step carries the bottom edge from above the platform top to
	// far below it.
	obj.X = 330
	obj.Y = restingY(platformTop) - 20
	physics.MaxFallSpeed = 80
	physics.SpeedY = 60
	physics.OnGround = false

	step(e)

	if !physics.OnGround {
		t.Fatalf("swept landing missed a crossing of the platform top")
	}
	if obj.Y != restingY(platformTop) {
		t.Errorf("landed at y=%v, want %v", obj.Y, restingY(platformTop))
	}
}

func TestSideEntryDoesNotLand(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry).Object
	physics := components.Physics.Get(entry)

	// Start with the bottom edge already below the platform top, overlapping
	// its horizontal span. Falling from here must pass the platform by.
	obj.X = 330
	obj.Y = platformTop + 10
	physics.OnGround = false

	for i := 0; i < 200 && !physics.OnGround; i++ {
		step(e)
	}

	if !physics.OnGround {
		t.Fatalf("player never reached the ground")
	}
	if got, want := obj.Y, restingY(336); got != want {
		t.Errorf("player landed at y=%v, want ground level rest %v", got, want)
	}
}

func TestWalkingOffEdgeBecomesAirborne(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry).Object
	physics := components.Physics.Get(entry)

	// Stand on the platform, then walk right past its edge.
	obj.X = 350
	obj.Y = restingY(platformTop)
	physics.OnGround = true

	for i := 0; i < 60; i++ {
		systems.RequestMove(e, 1)
		step(e)
	}

	if obj.Y <= restingY(platformTop) {
		t.Errorf("player still at platform height after walking off the edge")
	}
}

func TestHorizontalClampAtLevelEdges(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	obj := components.Object.Get(entry).Object

	obj.X = 5
	for i := 0; i < 30; i++ {
		systems.RequestMove(e, -1)
		step(e)
	}
	if obj.X != 0 {
		t.Errorf("left clamp: x=%v, want 0", obj.X)
	}
}
