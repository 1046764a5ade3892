package assets

import "embed"

//go:embed all:levels
var LevelFS embed.FS

// LevelPath is the TMX path of the shipped level within LevelFS.
const LevelPath = "levels/dusk1.tmx"
