package systems_test

import (
	"testing"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/leveldata"
	"github.com/automoto/duskrunner/systems"
	"github.com/automoto/duskrunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testLevel is a flat level with one floating platform, big enough that the
// finish marker stays out of reach unless a test walks there on purpose.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Width:       2000,
		Height:      400,
		GroundLevel: 336,
		Platforms: []leveldata.Platform{
			{X: 300, Y: 200, W: 100, H: 16},
		},
		PlayerX: 600,
		PlayerY: 288,
		Finish:  leveldata.Finish{X: 1950, Y: 236, W: 24, H: 100},
	}
}

func newWorld(level *leveldata.Level) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateSession(e)
	factory.CreateLevel(e, level)
	return e
}

// step runs one fixed tick through the gameplay pipeline in scene order,
// minus input and rendering.
func step(e *ecs.ECS) {
	systems.AdvanceClock(e, cfg.C.TickMs)
	systems.WithPlayCheck(systems.UpdatePlayer)(e)
	systems.WithPlayCheck(systems.UpdateEnemies)(e)
	systems.WithPauseCheck(systems.UpdatePhysics)(e)
	systems.WithPauseCheck(systems.UpdateAnimations)(e)
	systems.WithPlayCheck(systems.UpdateProjectiles)(e)
	systems.WithPlayCheck(systems.UpdateCombat)(e)
	systems.WithPauseCheck(systems.UpdateDeaths)(e)
	systems.WithPauseCheck(systems.UpdateCrows)(e)
	systems.WithPauseCheck(systems.UpdateParticles)(e)
	systems.WithPauseCheck(systems.UpdateDespawns)(e)
}

func steps(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		step(e)
	}
}

func player(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Player.First(e.World)
	if !ok {
		t.Fatalf("no player in world")
	}
	return entry
}

func addEnemy(e *ecs.ECS, x, y, patrolRange float64) *donburi.Entry {
	entry := factory.CreateEnemy(e, leveldata.EnemySpawn{
		Type: "Warden", X: x, Y: y, PatrolRange: patrolRange,
	})
	return entry
}

// pinEnemy stops an enemy from patrolling so combat tests have a stationary
// target.
func pinEnemy(entry *donburi.Entry) {
	components.Enemy.Get(entry).PatrolRange = 0
}

func countDarts(e *ecs.ECS) int {
	n := 0
	components.Dart.Each(e.World, func(entry *donburi.Entry) {
		n++
	})
	return n
}
