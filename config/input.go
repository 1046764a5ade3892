package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionMelee
	ActionShoot
	ActionConfirm
	ActionPause

	ActionCount
)

// InputConfig maps actions to keyboard keys.
type InputConfig struct {
	Bindings map[ActionID][]ebiten.Key
}

var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]ebiten.Key{
			ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
			ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
			ActionJump:      {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
			ActionMelee:     {ebiten.KeyJ, ebiten.KeyZ},
			ActionShoot:     {ebiten.KeyK, ebiten.KeyX},
			ActionConfirm:   {ebiten.KeyEnter, ebiten.KeySpace},
			ActionPause:     {ebiten.KeyEscape},
		},
	}
}
