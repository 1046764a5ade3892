package systems

import (
	"image/color"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hitboxColor = color.RGBA{0, 255, 0, 90}

// DrawDebug outlines combat hitboxes when enabled from the command line.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	camera := GetOrCreateCamera(e)
	camX, camY := camera.Position.X, camera.Position.Y

	components.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		rect := components.Hitbox.Get(entry).Rect(obj)
		vector.StrokeRect(screen,
			float32(rect.X-camX), float32(rect.Y-camY),
			float32(rect.W), float32(rect.H), 1, hitboxColor, false)
	})
}
