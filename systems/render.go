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

// The game renders entirely with flat shapes; entity rectangles stand in
// for sprites, tinted per kind and faded per entity alpha.

// fade scales a color's channels by alpha (premultiplied).
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func drawRect(screen *ebiten.Image, camX, camY, x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(x-camX), float32(y-camY),
		float32(w), float32(h), c, false)
}

// DrawWorld renders the level and every entity, offset by the camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	camera := GetOrCreateCamera(e)
	camX, camY := camera.Position.X, camera.Position.Y

	drawSky(screen)

	// Static level
	drawRect(screen, camX, camY, 0, level.GroundLevel,
		level.Width, level.Height-level.GroundLevel, cfg.World.GroundColor)
	for _, p := range level.Platforms {
		drawRect(screen, camX, camY, p.X, p.Y, p.W, p.H, cfg.World.PlatformColor)
	}
	f := level.Finish
	drawRect(screen, camX, camY, f.X, f.Y, f.W, f.H, cfg.World.FinishColor)

	drawCrows(e, screen, camX, camY)
	drawEnemies(e, screen, camX, camY)
	drawDarts(e, screen, camX, camY)
	drawPlayer(e, screen, camX, camY)
	drawParticles(e, screen, camX, camY)
}

func drawSky(screen *ebiten.Image) {
	// Coarse vertical gradient in a handful of bands.
	const bands = 8
	h := float64(cfg.C.Height) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := color.RGBA{
			R: lerpChannel(cfg.World.SkyTop.R, cfg.World.SkyBottom.R, t),
			G: lerpChannel(cfg.World.SkyTop.G, cfg.World.SkyBottom.G, t),
			B: lerpChannel(cfg.World.SkyTop.B, cfg.World.SkyBottom.B, t),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(float64(i)*h),
			float32(cfg.C.Width), float32(h+1), c, false)
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry).Object
	anim := components.Animation.Get(entry)

	drawRect(screen, camX, camY, obj.X, obj.Y, obj.W, obj.H, cfg.World.PlayerColor)

	// Facing marker near head height.
	eyeX := obj.X + obj.W*0.55
	if player.Direction.X < 0 {
		eyeX = obj.X + obj.W*0.25
	}
	drawRect(screen, camX, camY, eyeX, obj.Y+8, 6, 4, color.RGBA{12, 20, 24, 255})

	// Visible swing arc while the melee animation plays.
	if anim.Current == cfg.Melee {
		if swing, ok := meleeSwingRect(entry); ok {
			drawRect(screen, camX, camY, swing.X, swing.Y, swing.W, swing.H,
				fade(cfg.World.PlayerColor, 0.25))
		}
	}
}

func drawEnemies(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry).Object

		alpha := 1.0
		if entry.HasComponent(components.Death) {
			alpha = components.Death.Get(entry).Alpha
		}
		drawRect(screen, camX, camY, obj.X, obj.Y, obj.W, obj.H,
			fade(enemy.TypeConfig.Tint, alpha))

		if !enemy.Dead {
			health := components.Health.Get(entry)
			ratio := float64(health.Current) / float64(health.Max)
			drawRect(screen, camX, camY, obj.X, obj.Y-6, obj.W, 3, color.RGBA{40, 40, 40, 255})
			drawRect(screen, camX, camY, obj.X, obj.Y-6, obj.W*ratio, 3, cfg.Red)
		}
	})
}

func drawDarts(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	components.Dart.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		drawRect(screen, camX, camY, obj.X, obj.Y, obj.W, obj.H, cfg.World.DartColor)
	})
}

func drawCrows(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	components.Crow.Each(e.World, func(entry *donburi.Entry) {
		crow := components.Crow.Get(entry)
		if crow.Alpha <= 0 {
			return
		}
		obj := components.Object.Get(entry).Object
		drawRect(screen, camX, camY, obj.X, obj.Y, obj.W, obj.H,
			fade(cfg.World.CrowColor, crow.Alpha))
	})
}

func drawParticles(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		alpha := 1.0 - p.AgeMs/p.LifeMs
		drawRect(screen, camX, camY, p.X, p.Y, p.Size, p.Size, fade(p.Color, alpha))
	})
}
