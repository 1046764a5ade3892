package systems

import (
	"fmt"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates the end-screen system. Up/down picks an option,
// confirm activates it.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)

		numOptions := int(components.GameOverMenu) + 1
		if actionJustPressed(cfg.ActionJump) {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}
		if actionJustPressed(cfg.ActionConfirm) {
			PlaySFX(e, cfg.SoundConfirm)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createWorldScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the run summary and the option list.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())

	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.GameOver.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "RUN COMPLETE"
	titleX := int((width - float64(len(title)*16)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	bodyFont := fonts.Body.Get()
	summary := fmt.Sprintf("time %.1fs   wardens downed %d / %d",
		gameOver.ElapsedMs/1000.0, gameOver.WardensDowned, gameOver.WardensTotal)
	text.Draw(screen, summary, bodyFont, int(width/2)-120, int(cfg.GameOver.TitleY)+34, cfg.GameOver.TextColor)

	options := []string{"Run Again", "Title Menu"}
	for i, option := range options {
		label := "  " + option
		if components.GameOverOption(i) == gameOver.SelectedOption {
			label = "> " + option
		}
		y := int(cfg.GameOver.HintY) + i*22
		text.Draw(screen, label, bodyFont, int(width/2)-60, y, cfg.GameOver.TextColor)
	}
}

// GetOrCreateGameOver returns the singleton end-screen state.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}
