package systems_test

import (
	"testing"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
)

// Patrol walkthrough: a warden spawned at x=1200 with range 150 and speed 1
// walks to 1050 in 150 steps, flips, and is back at 1200 after 300.
func TestPatrolWalkthrough(t *testing.T) {
	e := newWorld(testLevel())

	entry := addEnemy(e, 1200, 290, 150)
	enemy := components.Enemy.Get(entry)
	enemy.TypeConfig.PatrolSpeed = 1.0
	obj := components.Object.Get(entry).Object

	steps(e, 150)
	if obj.X != 1050 {
		t.Fatalf("after 150 steps x=%v, want 1050", obj.X)
	}
	if enemy.Direction.X != cfg.DirectionLeft {
		t.Errorf("direction flipped before reaching the bound")
	}

	step(e)
	if enemy.Direction.X != cfg.DirectionRight {
		t.Errorf("direction did not flip at the left bound")
	}

	steps(e, 149)
	if obj.X != 1200 {
		t.Errorf("after 300 steps x=%v, want 1200", obj.X)
	}
}

func TestPatrolNeverLeavesBounds(t *testing.T) {
	e := newWorld(testLevel())

	entry := addEnemy(e, 1200, 290, 150)
	obj := components.Object.Get(entry).Object

	minX, maxX := obj.X, obj.X
	for i := 0; i < 600; i++ {
		step(e)
		if obj.X < minX {
			minX = obj.X
		}
		if obj.X > maxX {
			maxX = obj.X
		}
	}

	// One step of overshoot past a bound is allowed before the flip lands.
	speed := components.Enemy.Get(entry).TypeConfig.PatrolSpeed
	if minX < 1050-speed || maxX > 1200+speed {
		t.Errorf("patrol left its bounds: [%v, %v]", minX, maxX)
	}
}

func TestZeroRangeEnemyIdles(t *testing.T) {
	e := newWorld(testLevel())

	entry := addEnemy(e, 800, 290, 10)
	pinEnemy(entry)
	obj := components.Object.Get(entry).Object
	anim := components.Animation.Get(entry)

	steps(e, 60)

	if obj.X != 800 {
		t.Errorf("pinned enemy moved to x=%v", obj.X)
	}
	if anim.Current != cfg.Idle {
		t.Errorf("pinned enemy animation = %v, want idle", anim.Current)
	}
}

func TestWalkingEnemyPlaysWalk(t *testing.T) {
	e := newWorld(testLevel())

	entry := addEnemy(e, 1200, 290, 150)
	anim := components.Animation.Get(entry)

	steps(e, 10)
	if anim.Current != cfg.Walk {
		t.Errorf("patrolling enemy animation = %v, want walk", anim.Current)
	}
}
