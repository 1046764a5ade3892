package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the runner, clamped to the level.
// The camera keeps following through dialogue and the frozen end-of-run
// state; only its target stops moving.
func UpdateCamera(e *ecs.ECS) {
	camera := GetOrCreateCamera(e)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current

	obj := components.Object.Get(playerEntry).Object
	targetX := obj.X + obj.W/2 - float64(cfg.C.Width)/2
	targetY := obj.Y + obj.H/2 - float64(cfg.C.Height)/2

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing

	camera.Position.X = clamp(camera.Position.X, 0, level.Width-float64(cfg.C.Width))
	camera.Position.Y = clamp(camera.Position.Y, 0, level.Height-float64(cfg.C.Height))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
