package components

import (
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
)

// SFXRequest is one queued sound effect. Pitch 0 means nominal; step sounds
// queue a small jitter so repeated footfalls do not sound stamped.
type SFXRequest struct {
	Sound cfg.SoundID
	Pitch float64
}

// AudioData is the singleton SFX queue. Gameplay systems append; the audio
// system drains the queue once per frame and plays everything.
type AudioData struct {
	PendingSFX []SFXRequest
}

var Audio = donburi.NewComponentType[AudioData]()
