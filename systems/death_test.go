package systems_test

import (
	"math"
	"testing"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func killedEnemy(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := newWorld(testLevel())
	entry := player(t, e)
	components.Object.Get(entry).Object.X = 100

	enemy := addEnemy(e, 135, 290, 10)
	pinEnemy(enemy)
	components.Health.Get(enemy).Current = 1

	systems.RequestMelee(e)
	steps(e, swingSteps)

	if !components.Enemy.Get(enemy).Dead {
		t.Fatalf("enemy not dead after lethal swing")
	}
	return e, enemy
}

func TestDeathPlaysOutBeforeDecay(t *testing.T) {
	e, enemy := killedEnemy(t)

	anim := components.Animation.Get(enemy)
	if anim.Current != cfg.Die {
		t.Fatalf("dead enemy animation = %v, want die", anim.Current)
	}

	death := components.Death.Get(enemy)
	if death.Phase == components.DeathDecaying && !anim.Finished {
		t.Errorf("decay started before the death animation finished")
	}

	// Die is 5 frames at 80ms; run well past the total.
	steps(e, 40)
	if death.Phase != components.DeathDecaying {
		t.Errorf("decay did not start after the death animation finished")
	}
}

func TestCorpseSinksFadesAndDespawns(t *testing.T) {
	e, enemy := killedEnemy(t)
	obj := components.Object.Get(enemy).Object

	// Run through the death animation into decay.
	death := components.Death.Get(enemy)
	for i := 0; i < 60 && death.Phase != components.DeathDecaying; i++ {
		step(e)
	}
	if death.Phase != components.DeathDecaying {
		t.Fatalf("decay never started")
	}
	startY := death.CorpseY

	// Partway through decay the corpse has sunk and faded but still exists.
	steps(e, 10)
	if !enemy.Valid() {
		t.Fatalf("corpse removed mid-decay")
	}
	if obj.Y <= startY {
		t.Errorf("corpse not sinking: y=%v start=%v", obj.Y, startY)
	}
	if death.Alpha >= 1 {
		t.Errorf("corpse not fading: alpha=%v", death.Alpha)
	}

	// Decay runs 900ms: 54 tween updates after the phase flip. The corpse
	// must survive the full duration and be gone at most one step later.
	decayTicks := int(math.Round(cfg.Enemy.DecayDurationMs / cfg.C.TickMs))
	steps(e, decayTicks-1-10)
	if !enemy.Valid() {
		t.Fatalf("corpse removed before the decay duration elapsed")
	}
	steps(e, 2)
	if enemy.Valid() {
		t.Errorf("corpse still in world one step past the decay duration")
	}
}

func TestDeadEnemyStopsPatrollingAndCannotBeHitAgain(t *testing.T) {
	e, enemy := killedEnemy(t)
	obj := components.Object.Get(enemy).Object
	xAtDeath := obj.X

	hits := 0
	session := systems.GetOrCreateSession(e)
	session.OnCombatEvent = func(event components.CombatEvent) {
		hits++
	}

	// A second swing over the corpse must not generate hits.
	systems.RequestMelee(e)
	steps(e, 20)

	if hits != 0 {
		t.Errorf("corpse registered %d hits", hits)
	}
	if obj.X != xAtDeath {
		t.Errorf("corpse moved horizontally: %v -> %v", xAtDeath, obj.X)
	}
}
