package config

import "image/color"

// PlayerConfig contains all runner-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	JumpSpeed    float64
	Gravity      float64
	MaxFallSpeed float64

	// Combat
	MeleeRange      float64 // width of the swing hitbox extending from the facing edge
	MeleeDamage     int
	ShootCooldownMs int64 // wall-clock cooldown checked at the command layer
	DartOffsetY     float64

	// Dimensions
	Width        float64
	Height       float64
	HitboxWidth  float64 // narrower combat hitbox, horizontally centered
	GroundOffset float64 // visual-alignment offset applied when snapping to a surface
}

// EnemyTypeConfig contains configuration for specific warden types
type EnemyTypeConfig struct {
	Name        string
	Health      int
	PatrolSpeed float64

	// Dimensions
	Width        float64
	Height       float64
	HitboxWidth  float64
	GroundOffset float64

	// Visual
	SpriteKey string // key into CharacterAnimations
	Tint      color.RGBA
}

// EnemyConfig contains warden system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	DefaultPatrolRange float64

	// Decay sequence: corpse sink + fade after the death animation finishes
	DecayDurationMs float64
	DecaySinkDepth  float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Darts
	DartSpeed  float64
	DartDamage int
	DartWidth  float64
	DartHeight float64

	// Scare zones (square centered on a crow)
	ScareZoneSize float64

	// Particles
	HitBurstCount  int
	DustBurstCount int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Swept landing: how far above a platform top the previous bottom edge may
	// be for a landing to be accepted (prevents side entry, allows snapping)
	LandingSnapTolerance float64
}

// CrowConfig contains scare-sequence timing for the ambient crows
type CrowConfig struct {
	Width  float64
	Height float64

	FadeOutMs float64
	HiddenMs  float64
	FadeInMs  float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // how fast camera follows the runner (0.0-1.0)
}

// DialogueConfig contains the intro dialogue point configuration
type DialogueConfig struct {
	TriggerX      float64
	TriggerRadius float64
	Lines         []string
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
}

// MenuConfig contains title menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// GameOverConfig contains end-of-run screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	HintY           float64
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	VolumeStep   float64
}

// WorldConfig contains level/rendering palette configuration
type WorldConfig struct {
	SkyTop        color.RGBA
	SkyBottom     color.RGBA
	GroundColor   color.RGBA
	PlatformColor color.RGBA
	FinishColor   color.RGBA
	PlayerColor   color.RGBA
	DartColor     color.RGBA
	CrowColor     color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool
	DrawHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TickMs float64 // fixed simulation step fed to the clock each ebiten tick
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Crow CrowConfig
var Camera CameraConfig
var Dialogue DialogueConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Pause PauseConfig
var World WorldConfig
var Debug DebugConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TickMs: 1000.0 / 60.0,
	}

	Player = PlayerConfig{
		MoveSpeed:    3.0,
		JumpSpeed:    13.0,
		Gravity:      0.6,
		MaxFallSpeed: 12.0,

		MeleeRange:      40.0,
		MeleeDamage:     34,
		ShootCooldownMs: 500,
		DartOffsetY:     18.0,

		Width:        32.0,
		Height:       48.0,
		HitboxWidth:  20.0,
		GroundOffset: 4.0,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Warden": {
				Name:         "Warden",
				Health:       100,
				PatrolSpeed:  1.2,
				Width:        30.0,
				Height:       46.0,
				HitboxWidth:  22.0,
				GroundOffset: 0,
				SpriteKey:    "warden",
				Tint:         color.RGBA{170, 60, 60, 255},
			},
			"HeavyWarden": {
				Name:         "HeavyWarden",
				Health:       160,
				PatrolSpeed:  0.8,
				Width:        38.0,
				Height:       54.0,
				HitboxWidth:  30.0,
				GroundOffset: 0,
				SpriteKey:    "warden",
				Tint:         color.RGBA{120, 40, 90, 255},
			},
		},

		DefaultPatrolRange: 120.0,

		DecayDurationMs: 900.0,
		DecaySinkDepth:  24.0,
	}

	Combat = CombatConfig{
		DartSpeed:  7.0,
		DartDamage: 25,
		DartWidth:  10.0,
		DartHeight: 4.0,

		ScareZoneSize: 90.0,

		HitBurstCount:  8,
		DustBurstCount: 4,
	}

	Physics = PhysicsConfig{
		LandingSnapTolerance: 6.0,
	}

	Crow = CrowConfig{
		Width:  18.0,
		Height: 14.0,

		FadeOutMs: 400.0,
		HiddenMs:  2600.0,
		FadeInMs:  600.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
	}

	Dialogue = DialogueConfig{
		TriggerX:      96.0,
		TriggerRadius: 40.0,
		Lines: []string{
			"The wardens took the district at dusk.",
			"Stay low. Darts for distance, the blade up close.",
			"Reach the far gate before the light goes.",
		},
	}

	HUD = HUDConfig{
		Margin:    10.0,
		TextColor: White,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{18, 16, 30, 255},
		TitleColor:      BrightOrange,
		Title:           "DUSKRUNNER",
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{10, 8, 18, 255},
		TitleColor:      BrightOrange,
		TextColor:       White,
		TitleY:          140.0,
		HintY:           220.0,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		VolumeStep:   0.1,
	}

	World = WorldConfig{
		SkyTop:        color.RGBA{46, 30, 66, 255},
		SkyBottom:     color.RGBA{120, 60, 70, 255},
		GroundColor:   color.RGBA{30, 24, 40, 255},
		PlatformColor: color.RGBA{58, 48, 76, 255},
		FinishColor:   color.RGBA{230, 190, 90, 255},
		PlayerColor:   color.RGBA{90, 200, 220, 255},
		DartColor:     color.RGBA{240, 240, 200, 255},
		CrowColor:     color.RGBA{28, 28, 34, 255},
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		DrawHitboxes: false,
	}
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)
