package systems

import (
	"fmt"

	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the warden counter and the run timer in the top-left
// corner, plus the end-of-run banner once the runner freezes.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	clock := GetOrCreateClock(e)

	alive := 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Dead {
			alive++
		}
	})

	margin := int(cfg.HUD.Margin)
	face := fonts.Body.Get()
	text.Draw(screen, fmt.Sprintf("Wardens: %d", alive), face, margin, margin+14, cfg.HUD.TextColor)

	seconds := clock.ElapsedMs / 1000.0
	text.Draw(screen, fmt.Sprintf("%.1fs", seconds), face, margin, margin+32, cfg.HUD.TextColor)

	if session.State == cfg.GameFrozen {
		title := fonts.Title.Get()
		text.Draw(screen, "RUN COMPLETE", title,
			cfg.C.Width/2-110, cfg.C.Height/2-20, cfg.BrightOrange)
	}
}

// DrawDialogue renders the intro dialogue box while it is open.
func DrawDialogue(e *ecs.ECS, screen *ebiten.Image) {
	dialogue := GetOrCreateDialogue(e)
	if !dialogue.Active || dialogue.Line >= len(cfg.Dialogue.Lines) {
		return
	}

	boxH := 70.0
	boxY := float64(cfg.C.Height) - boxH - 16
	vector.DrawFilledRect(screen, 16, float32(boxY),
		float32(cfg.C.Width-32), float32(boxH), cfg.BlackOverlay, false)

	face := fonts.Body.Get()
	text.Draw(screen, cfg.Dialogue.Lines[dialogue.Line], face, 32, int(boxY)+28, cfg.White)
	text.Draw(screen, "[enter]", fonts.Small.Get(), cfg.C.Width-80, int(boxY+boxH)-12, cfg.White)
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if !session.Paused {
		return
	}

	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), cfg.Pause.OverlayColor, false)
	text.Draw(screen, "PAUSED", fonts.Title.Get(),
		cfg.C.Width/2-60, cfg.C.Height/2, cfg.Pause.TextColor)
}
