package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	Background ecs.LayerID = iota
	Default
	HUD
)

// VehicleConfig contains driving model configuration values
type VehicleConfig struct {
	// Movement
	Acceleration float64
	BrakePower   float64
	MaxSpeed     float64
	MaxReverse   float64
	Friction     float64 // per-tick speed decay when coasting

	// Steering
	TurnSpeed        float64 // degrees per tick at full steer
	MinTurnSpeedFrac float64 // fraction of MaxSpeed below which steering weakens

	// Tilt (visual lean while steering)
	TiltAttack  float64 // seconds to reach full lean
	TiltRelease float64 // seconds to settle back upright

	// Collision
	CollisionWidth  float64
	CollisionHeight float64
	BounceDamping   float64 // speed retained after hitting a wall
}

// ProjectileConfig contains cannonball tuning values
type ProjectileConfig struct {
	Speed        float64 // pixels per tick
	Lifetime     int     // ticks before despawn
	Cooldown     int     // ticks between shots while fire is held
	MuzzleOffset float64 // spawn distance ahead of the vehicle center
}

// BubbleConfig contains the vehicle's particle trail tuning values
type BubbleConfig struct {
	EmitInterval int     // ticks between particles while moving
	MinSpeed     float64 // no trail below this speed
	MinSize      float64
	MaxSize      float64
	MinLifetime  int
	MaxLifetime  int
	Speed        float64 // particle drift speed
	SpreadDeg    float64 // random wobble around the backward direction
}

// SunConfig contains the initial light state and adjustment speeds
type SunConfig struct {
	HorizontalAngle float64 // compass degrees, 0 = north
	VerticalAngle   float64 // elevation degrees, 0 = horizon
	AdjustSpeed     float64 // degrees per tick while a sun key is held
}

// ShadowConfig contains global shadow compositing defaults. Per-sprite-type
// overrides come from stacks.yaml.
type ShadowConfig struct {
	LengthFactor  float64
	BaseAlpha     uint8
	FadeFactor    float64
	MaxFullLayers int
	SampleTarget  int
	CanvasScale   float64
}

// OutlineConfig contains global outline defaults; per-type overrides come
// from stacks.yaml.
type OutlineConfig struct {
	Color       color.NRGBA
	Thickness   float32
	OffsetRatio float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the vehicle (0.0-1.0)
	Deadzone        float64 // Pixels of target movement ignored before following
}

// WorldConfig contains level and prop placement configuration
type WorldConfig struct {
	LevelPath string // TMX map inside the embedded assets

	// Perlin scatter used to fill scatter regions with props
	ScatterAlpha       float64
	ScatterBeta        float64
	ScatterOctaves     int32
	ScatterSeed        int64
	ScatterCellSize    float64 // sample grid spacing in pixels
	ScatterThreshold   float64 // noise value above which a prop spawns
	ScatterMaxPerGroup int     // cap per scatter region
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.NRGBA
	TitleColor      color.NRGBA
	Title           string
	ButtonWidth     float64
	ButtonHeight    float64
	ButtonSpacing   float64
}

// HUDConfig contains HUD text configuration values
type HUDConfig struct {
	TextColor color.NRGBA
	Margin    float64
	LineGap   float64
	FontSize  float64

	// Sun indicator: a dot orbiting the screen center opposite the shadow
	// direction.
	SunOrbitMargin float64
	SunDotRadius   float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Vehicle VehicleConfig
var Projectile ProjectileConfig
var Bubble BubbleConfig
var Sun SunConfig
var Shadow ShadowConfig
var Outline OutlineConfig
var Camera CameraConfig
var World WorldConfig
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the arena
}

// Shared color constants
var (
	White        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.NRGBA{A: 255}
	Sand         = color.NRGBA{R: 205, G: 185, B: 140, A: 255}
	WallGray     = color.NRGBA{R: 90, G: 85, B: 80, A: 255}
	OutlineWhite = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	MenuBlue     = color.NRGBA{R: 15, G: 25, B: 50, A: 255}
	TitleOrange  = color.NRGBA{R: 255, G: 140, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Vehicle = VehicleConfig{
		Acceleration: 0.08,
		BrakePower:   0.14,
		MaxSpeed:     3.2,
		MaxReverse:   1.2,
		Friction:     0.025,

		TurnSpeed:        2.6,
		MinTurnSpeedFrac: 0.15,

		TiltAttack:  0.18,
		TiltRelease: 0.28,

		CollisionWidth:  22,
		CollisionHeight: 14,
		BounceDamping:   0.35,
	}

	Projectile = ProjectileConfig{
		Speed:        4.0,
		Lifetime:     100,
		Cooldown:     15,
		MuzzleOffset: 14,
	}

	Bubble = BubbleConfig{
		EmitInterval: 4,
		MinSpeed:     0.5,
		MinSize:      1,
		MaxSize:      3,
		MinLifetime:  30,
		MaxLifetime:  60,
		Speed:        0.3,
		SpreadDeg:    30,
	}

	// Late-afternoon light from the south-east
	Sun = SunConfig{
		HorizontalAngle: 135,
		VerticalAngle:   45,
		AdjustSpeed:     1.5,
	}

	Shadow = ShadowConfig{
		LengthFactor:  2.0,
		BaseAlpha:     200,
		FadeFactor:    0.4,
		MaxFullLayers: 8,
		SampleTarget:  5,
		CanvasScale:   3.5,
	}

	Outline = OutlineConfig{
		Color:       OutlineWhite,
		Thickness:   1,
		OffsetRatio: 0.25,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
		Deadzone:        2.0,
	}

	World = WorldConfig{
		LevelPath: "arena.tmx",

		ScatterAlpha:       2,
		ScatterBeta:        2,
		ScatterOctaves:     3,
		ScatterSeed:        1337,
		ScatterCellSize:    24,
		ScatterThreshold:   0.12,
		ScatterMaxPerGroup: 40,
	}

	Menu = MenuConfig{
		BackgroundColor: MenuBlue,
		TitleColor:      TitleOrange,
		Title:           "STACKDRIVE",
		ButtonWidth:     180,
		ButtonHeight:    36,
		ButtonSpacing:   12,
	}

	HUD = HUDConfig{
		TextColor: White,
		Margin:    8,
		LineGap:   14,
		FontSize:  10,

		SunOrbitMargin: 140,
		SunDotRadius:   6,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
