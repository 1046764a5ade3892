package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/duskrunner/assets"
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/leveldata"
	"github.com/automoto/duskrunner/systems"
	"github.com/automoto/duskrunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// How long the frozen end-of-run pose holds before the summary screen.
const freezeHoldTicks = 120

// WorldScene runs a full play session in the shipped level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	frozenTicks  int
	once         sync.Once
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	systems.AdvanceClock(ws.ecs, cfg.C.TickMs)
	ws.ecs.Update()

	session := systems.GetOrCreateSession(ws.ecs)
	if session.State == cfg.GameFrozen {
		ws.frozenTicks++
		if ws.frozenTicks >= freezeHoldTicks {
			ws.sceneChanger.ChangeScene(ws.newGameOverScene())
		}
	}
}

func (ws *WorldScene) newGameOverScene() *GameOverScene {
	clock := systems.GetOrCreateClock(ws.ecs)

	// Downed wardens eventually despawn, so count the survivors instead.
	alive := 0
	components.Enemy.Each(ws.ecs.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Dead {
			alive++
		}
	})
	spawned := len(ws.level().Enemies)

	return NewGameOverScene(ws.sceneChanger, components.GameOverData{
		ElapsedMs:     clock.ElapsedMs,
		WardensDowned: spawned - alive,
		WardensTotal:  spawned,
	})
}

func (ws *WorldScene) level() *leveldata.Level {
	entry, _ := components.Level.First(ws.ecs.World)
	return components.Level.Get(entry).Current
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from the OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	level, err := leveldata.Load(assets.LevelFS, assets.LevelPath)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Audio runs first so sounds queued last frame play promptly
	e.AddSystem(systems.UpdateAudio)

	// Input and dialogue run outside the play gate; they own the
	// transitions in and out of the playing state
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDialogue)

	// Gameplay systems, gated off outside active play
	e.AddSystem(systems.WithPlayCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPlayCheck(systems.UpdateEnemies))

	// Physics and animation keep running through dialogue and the frozen
	// pose so entities settle instead of hanging mid-air
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))

	e.AddSystem(systems.WithPlayCheck(systems.UpdateProjectiles))
	e.AddSystem(systems.WithPlayCheck(systems.UpdateCombat))

	// Sequences and cleanup run whenever not paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCrows))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateParticles))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDespawns))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDialogue)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	session := systems.GetOrCreateSession(e)
	session.State = cfg.GamePlaying

	factory.CreateLevel(e, level)

	ws.ecs = e
}
