package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order
const (
	Default ecs.LayerID = iota
	LayerHUD
)

// Config holds general game configuration
type Config struct {
	Title string
	TPS   int
}

// UIConfig contains HUD and drawing configuration
type UIConfig struct {
	// HUD layout
	HUDMargin     float64
	HUDLineHeight float64
	HUDBgHeight   float64

	// Colors
	Background     color.RGBA
	HUDTextColor   color.RGBA
	HUDBgColor     color.RGBA
	LocalRingColor color.RGBA

	// Edge markers, one color per wall mode
	EdgeThickness float32
	EdgeColors    map[string]color.RGBA

	// Font sizes
	HUDFontSize   float64
	TitleFontSize float64
	SmallFontSize float64
}

// BannerConfig contains the round-result banner configuration
type BannerConfig struct {
	Duration  time.Duration
	WinText   string
	LossText  string
	ResetText string
	WinColor  color.RGBA
	LossColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Outline contact sensors and show ball velocities
}

// Global configuration instances
var C *Config
var UI UIConfig
var Banner BannerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Title: "Poetry Duel",
		TPS:   60,
	}

	UI = UIConfig{
		HUDMargin:     10,
		HUDLineHeight: 18,
		HUDBgHeight:   44,

		Background:     color.RGBA{R: 12, G: 12, B: 20, A: 255},
		HUDTextColor:   White,
		HUDBgColor:     BlackOverlay,
		LocalRingColor: Yellow,

		EdgeThickness: 3,
		EdgeColors: map[string]color.RGBA{
			"WALL":   LightBlue,
			"LOOP":   BrightGreen,
			"HOLE":   Gray,
			"REMOVE": LightRed,
		},

		HUDFontSize:   14,
		TitleFontSize: 32,
		SmallFontSize: 11,
	}

	Banner = BannerConfig{
		Duration:  1500 * time.Millisecond,
		WinText:   "A PALPABLE HIT",
		LossText:  "UNHORSED",
		ResetText: "EXEUNT",
		WinColor:  BrightOrange,
		LossColor: LightRed,
	}
}
