package systems_test

import (
	"testing"

	"github.com/automoto/duskrunner/components"
	"github.com/automoto/duskrunner/systems"
	"github.com/automoto/duskrunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scareByDart shoots a dart through the crow's scare zone and returns once
// the crow is scared.
func scareByDart(t *testing.T, e *ecs.ECS, crow *donburi.Entry) {
	t.Helper()

	if !systems.RequestShoot(e, 0) {
		t.Fatalf("shoot request rejected")
	}
	data := components.Crow.Get(crow)
	for i := 0; i < 60 && !data.Scared; i++ {
		step(e)
	}
	if !data.Scared {
		t.Fatalf("dart through the scare zone did not scare the crow")
	}
}

func TestDartScaresCrowAndPassesThrough(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	components.Object.Get(entry).Object.X = 100

	crow := factory.CreateCrow(e, 200, 300)
	enemy := addEnemy(e, 500, 290, 10)
	pinEnemy(enemy)

	scareByDart(t, e, crow)

	// The dart is not consumed by the zone; it flies on and hits the enemy.
	steps(e, 80)
	health := components.Health.Get(enemy)
	if health.Current == health.Max {
		t.Errorf("dart was consumed by the scare zone")
	}
}

func TestDartHitAndScareInOneStep(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	components.Object.Get(entry).Object.X = 100

	// The warden's hitbox leading edge sits exactly on the zone's leading
	// edge, so the dart reaches both in the same step. The hit spends the
	// dart but the scare still fires.
	crow := factory.CreateCrow(e, 250, 300)
	enemy := addEnemy(e, 201, 290, 10)
	pinEnemy(enemy)

	data := components.Crow.Get(crow)
	health := components.Health.Get(enemy)

	if !systems.RequestShoot(e, 0) {
		t.Fatalf("shoot request rejected")
	}
	for i := 0; i < 60 && !data.Scared && health.Current == health.Max; i++ {
		step(e)
	}

	if !data.Scared {
		t.Errorf("crow not scared")
	}
	if health.Current == health.Max {
		t.Errorf("warden not hit")
	}
	if data.Scared != (health.Current < health.Max) {
		t.Errorf("hit and scare did not land together")
	}
}

func TestDartSkimmingUnderZoneDoesNotScare(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	components.Object.Get(entry).Object.X = 100

	// Zone bottom sits at y=308 and the dart flies at y=310: close enough
	// to share collision-space cells, but never actually inside the zone.
	crow := factory.CreateCrow(e, 250, 263)
	data := components.Crow.Get(crow)

	if !systems.RequestShoot(e, 0) {
		t.Fatalf("shoot request rejected")
	}
	steps(e, 80)

	if data.Scared {
		t.Errorf("dart passing under the zone scared the crow")
	}
}

func TestCrowScareSequenceRunsToReturn(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	components.Object.Get(entry).Object.X = 100

	crow := factory.CreateCrow(e, 200, 300)
	data := components.Crow.Get(crow)

	scareByDart(t, e, crow)

	// Fade out (400ms).
	steps(e, 30)
	if data.Phase != components.ScareHidden {
		t.Fatalf("phase after fade out = %v, want hidden", data.Phase)
	}
	if data.Alpha != 0 {
		t.Errorf("hidden crow alpha = %v, want 0", data.Alpha)
	}

	// Hidden hold (2600ms).
	steps(e, 160)
	if data.Phase != components.ScareFadingIn {
		t.Fatalf("phase after hidden hold = %v, want fading in", data.Phase)
	}

	// Fade in (600ms) back at the roost.
	steps(e, 45)
	if data.Phase != components.ScareReturned {
		t.Fatalf("phase after fade in = %v, want returned", data.Phase)
	}
	if data.Alpha != 1 {
		t.Errorf("returned crow alpha = %v, want 1", data.Alpha)
	}

	obj := components.Object.Get(crow).Object
	if obj.X != data.HomeX || obj.Y != data.HomeY {
		t.Errorf("returned crow not at roost: (%v, %v)", obj.X, obj.Y)
	}
}

func TestScaredCrowIgnoresFurtherDisturbances(t *testing.T) {
	e := newWorld(testLevel())
	entry := player(t, e)
	components.Object.Get(entry).Object.X = 100

	crow := factory.CreateCrow(e, 200, 300)
	data := components.Crow.Get(crow)

	scareByDart(t, e, crow)

	scares := 0
	session := systems.GetOrCreateSession(e)
	session.OnCombatEvent = func(event components.CombatEvent) {
		if event.Kind == components.EventScareTrigger {
			scares++
		}
	}

	// A second dart through the zone while the crow is mid-sequence.
	systems.RequestShoot(e, 10_000)
	steps(e, 60)

	if scares != 0 {
		t.Errorf("scared crow re-triggered %d times", scares)
	}
	if !data.Scared {
		t.Errorf("scared flag flipped back")
	}
}
