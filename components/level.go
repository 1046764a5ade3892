package components

import (
	"github.com/automoto/duskrunner/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData holds the loaded static level. Platforms and ground level are
// read-only after load; physics iterates Platforms in their TMX order.
type LevelData struct {
	Current *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()

// SpaceData wraps the resolv space shared by all entity objects.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
