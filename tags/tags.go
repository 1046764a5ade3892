package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Dart     = donburi.NewTag().SetName("Dart")
	Crow     = donburi.NewTag().SetName("Crow")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for physics objects
const (
	ResolvSolid     = "solid"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvDart      = "Dart"
	ResolvCrow      = "Crow"
	ResolvSwing     = "Swing"
	ResolvScareZone = "ScareZone"
)
