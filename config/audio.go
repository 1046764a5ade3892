package config

// SoundID identifies a synthesized sound effect.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundLand
	SoundStep
	SoundSwing
	SoundHit
	SoundDart
	SoundDeath
	SoundScare
	SoundConfirm
)

// AudioConfig contains audio system configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultSFXVol   float64
	DefaultMusicVol float64
}

var Audio = AudioConfig{
	SampleRate:      44100,
	DefaultSFXVol:   0.8,
	DefaultMusicVol: 0.5,
}
