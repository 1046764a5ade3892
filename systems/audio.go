package systems

import (
	"bytes"
	"math/rand"
	"sync"

	"github.com/automoto/duskrunner/assets"
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once and shared across scenes.
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	sfxCache                   = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// SFXVolume returns the current effect volume (0..1).
func SFXVolume() float64 {
	return globalSFXVolume
}

// SetSFXVolume sets the effect volume and persists it.
func SetSFXVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalSFXVolume = v
	SaveSettings()
}

// PlaySFX queues a sound effect for the audio system to play this frame.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	queueSFX(e, sound, 1.0)
}

// PlaySFXVariant queues a sound with a small random pitch jitter, used for
// repeated sounds like footsteps.
func PlaySFXVariant(e *ecs.ECS, sound cfg.SoundID) {
	queueSFX(e, sound, 0.92+rand.Float64()*0.16)
}

func queueSFX(e *ecs.ECS, sound cfg.SoundID, pitch float64) {
	session := GetOrCreateSession(e)
	if session.OnAudioCue != nil {
		session.OnAudioCue(sound, pitch != 1.0)
	}

	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{
		Sound: sound,
		Pitch: pitch,
	})
}

// GetOrCreateAudio returns the singleton SFX queue.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}

// UpdateAudio drains the SFX queue and plays everything through the shared
// audio context. Runs first in the step so sounds queued last frame get out
// with at most one frame of latency.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	for _, req := range audioData.PendingSFX {
		playSFX(req)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(req components.SFXRequest) {
	if globalSFXVolume <= 0 || globalAudioContext == nil {
		return
	}

	pcm := renderSFX(req)
	if pcm == nil {
		return
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// renderSFX returns PCM for the request, caching the nominal-pitch clips.
// Pitched variants are rendered on demand; the clips are short enough that
// synthesis is cheaper than bookkeeping.
func renderSFX(req components.SFXRequest) []byte {
	if req.Pitch == 1.0 {
		if pcm, ok := sfxCache[req.Sound]; ok {
			return pcm
		}
		pcm := assets.SynthSFX(req.Sound, cfg.Audio.SampleRate, 1.0)
		sfxCache[req.Sound] = pcm
		return pcm
	}
	return assets.SynthSFX(req.Sound, cfg.Audio.SampleRate, req.Pitch)
}
