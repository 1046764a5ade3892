package components

import "github.com/yohamta/donburi"

type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData carries the finished run's summary onto the end screen.
type GameOverData struct {
	ElapsedMs     float64
	WardensDowned int
	WardensTotal  int

	SelectedOption GameOverOption
}

var GameOver = donburi.NewComponentType[GameOverData]()
