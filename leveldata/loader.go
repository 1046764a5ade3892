package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS (game) or os.DirFS (tools/tests).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Width:       float64(levelMap.Width * levelMap.TileWidth),
		Height:      float64(levelMap.Height * levelMap.TileHeight),
		GroundLevel: float64(levelMap.Properties.GetInt("groundLevel")),
	}
	if level.GroundLevel <= 0 {
		return nil, fmt.Errorf("level %s: missing groundLevel property", tmxPath)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Platform{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				switch o.Name {
				case "runner":
					level.PlayerX = o.X
					level.PlayerY = o.Y
				case "warden", "heavywarden":
					typeName := "Warden"
					if o.Name == "heavywarden" {
						typeName = "HeavyWarden"
					}
					level.Enemies = append(level.Enemies, EnemySpawn{
						Type:        typeName,
						X:           o.X,
						Y:           o.Y,
						PatrolRange: float64(o.Properties.GetInt("patrolRange")),
					})
				case "crow":
					level.Crows = append(level.Crows, CrowSpawn{X: o.X, Y: o.Y})
				case "finish":
					level.Finish = Finish{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				}
			}
		}
	}

	if level.Finish.W == 0 {
		return nil, fmt.Errorf("level %s: missing finish marker", tmxPath)
	}

	return level, nil
}
