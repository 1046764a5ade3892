package assets

import (
	"math"

	cfg "github.com/automoto/duskrunner/config"
)

// The repo ships no audio files; every SFX is a short synthesized clip,
// rendered once at startup into the 16-bit LE stereo PCM format ebiten's
// audio players consume.

type sfxShape struct {
	durationMs float64
	freqStart  float64 // Hz; 0 = pure noise
	freqEnd    float64
	noiseMix   float64 // 0..1
	tremoloHz  float64
	volume     float64
}

var sfxShapes = map[cfg.SoundID]sfxShape{
	cfg.SoundJump:    {durationMs: 120, freqStart: 330, freqEnd: 660, volume: 0.5},
	cfg.SoundLand:    {durationMs: 80, freqStart: 95, freqEnd: 70, noiseMix: 0.3, volume: 0.6},
	cfg.SoundStep:    {durationMs: 30, noiseMix: 1.0, volume: 0.25},
	cfg.SoundSwing:   {durationMs: 120, freqStart: 200, freqEnd: 120, noiseMix: 0.7, volume: 0.45},
	cfg.SoundHit:     {durationMs: 90, freqStart: 160, freqEnd: 110, noiseMix: 0.4, volume: 0.7},
	cfg.SoundDart:    {durationMs: 70, freqStart: 900, freqEnd: 500, volume: 0.4},
	cfg.SoundDeath:   {durationMs: 350, freqStart: 300, freqEnd: 60, noiseMix: 0.2, volume: 0.7},
	cfg.SoundScare:   {durationMs: 250, freqStart: 700, freqEnd: 650, tremoloHz: 30, volume: 0.5},
	cfg.SoundConfirm: {durationMs: 120, freqStart: 523, freqEnd: 784, volume: 0.5},
}

// SynthSFX renders the sound as 16-bit LE stereo PCM at the given sample
// rate. pitch scales all frequencies (1.0 = nominal); random step variants
// pass a small jitter around 1.0.
func SynthSFX(id cfg.SoundID, sampleRate int, pitch float64) []byte {
	shape, ok := sfxShapes[id]
	if !ok {
		return nil
	}
	if pitch <= 0 {
		pitch = 1.0
	}

	samples := int(shape.durationMs / 1000.0 * float64(sampleRate))
	out := make([]byte, samples*4) // 2 channels x int16

	// Deterministic noise source so identical calls render identical clips.
	noise := uint32(0x2545F491)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples) // 0..1 through the clip

		// Linear attack over the first 5%, exponential-ish decay after.
		env := 1.0 - t
		if t < 0.05 {
			env = t / 0.05
		}
		env *= env

		var tone float64
		if shape.freqStart > 0 {
			freq := (shape.freqStart + (shape.freqEnd-shape.freqStart)*t) * pitch
			phase += 2 * math.Pi * freq / float64(sampleRate)
			tone = math.Sin(phase)
		}

		noise = noise*1664525 + 1013904223
		n := float64(int32(noise))/math.MaxInt32 - 1.0

		sample := tone*(1-shape.noiseMix) + n*shape.noiseMix
		if shape.tremoloHz > 0 {
			sample *= 0.5 + 0.5*math.Sin(2*math.Pi*shape.tremoloHz*t*shape.durationMs/1000.0)
		}

		v := int16(sample * env * shape.volume * math.MaxInt16)
		out[i*4+0] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}

	return out
}
