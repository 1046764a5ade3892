package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the run summary
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	stats        components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a new game over scene carrying the run's stats
func NewGameOverScene(sc SceneChanger, stats components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, stats: stats}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from the OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.ElapsedMs = gs.stats.ElapsedMs
	gameOver.WardensDowned = gs.stats.WardensDowned
	gameOver.WardensTotal = gs.stats.WardensTotal
}
