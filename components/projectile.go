package components

import "github.com/yohamta/donburi"

// DartData marks a thrown dart. A dart registers at most one enemy hit
// because it is marked for deletion on the first one; scare zones do not
// consume it.
type DartData struct {
	Damage    int
	Speed     float64 // pixels per step
	Direction float64 // -1 or +1
}

var Dart = donburi.NewComponentType[DartData]()
