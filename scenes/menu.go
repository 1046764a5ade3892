package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/systems"
	"github.com/automoto/duskrunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from the OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
		},
		func() {
			os.Exit(0)
		},
		func() {
			systems.SetSFXVolume(systems.SFXVolume() - cfg.Pause.VolumeStep)
			ms.menuUI.SetVolume(systems.SFXVolume())
		},
		func() {
			systems.SetSFXVolume(systems.SFXVolume() + cfg.Pause.VolumeStep)
			ms.menuUI.SetVolume(systems.SFXVolume())
		},
	)
	ms.menuUI.SetVolume(systems.SFXVolume())
}
