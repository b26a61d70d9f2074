// Package simconfig defines the simulation tunables and enums shared by every
// front end. It must have zero dependencies on ebiten or any graphics library
// so the simulation and network packages stay headless.
package simconfig

import (
	"math"
	"strings"
	"time"
)

// WallMode is the behavior of one arena edge.
type WallMode int

const (
	WallSolid  WallMode = iota // bounce off the edge
	WallLoop                   // teleport to the opposite edge
	WallHole                   // pass through silently
	WallRemove                 // drop the ball from the simulation
)

var wallModeNames = map[WallMode]string{
	WallSolid:  "WALL",
	WallLoop:   "LOOP",
	WallHole:   "HOLE",
	WallRemove: "REMOVE",
}

func (m WallMode) String() string {
	if name, ok := wallModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseWallMode maps an edge name as written in arena files (case-insensitive).
func ParseWallMode(s string) (WallMode, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for mode, name := range wallModeNames {
		if name == s {
			return mode, true
		}
	}
	return WallSolid, false
}

// Edge indexes the four arena boundaries. The order matches the order walls
// are resolved in each tick.
type Edge int

const (
	EdgeRight Edge = iota
	EdgeTop
	EdgeLeft
	EdgeBottom
	EdgeCount // Must be last - used for array sizing
)

var edgeNames = [EdgeCount]string{"right", "top", "left", "bottom"}

func (e Edge) String() string {
	if e >= 0 && e < EdgeCount {
		return edgeNames[e]
	}
	return "unknown"
}

// Axis returns 0 for the horizontal edges' axis (x) and 1 for y.
func (e Edge) Axis() int {
	if e == EdgeRight || e == EdgeLeft {
		return 0
	}
	return 1
}

// IsMax reports whether the edge sits at the far end of its axis.
func (e Edge) IsMax() bool {
	return e == EdgeRight || e == EdgeBottom
}

// Opposite returns the edge across the arena.
func (e Edge) Opposite() Edge {
	return (e + 2) % EdgeCount
}

// MovementMode selects the ground/air control rules of a character group.
type MovementMode int

const (
	ModeGrounded MovementMode = iota // steer and jump only while grounded
	ModeAirJumps                     // limited mid-air jumps, sticky air steering
	ModeSurface                      // walls and ceiling count as ground
)

func (m MovementMode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirJumps:
		return "air-jumps"
	case ModeSurface:
		return "surface"
	}
	return "unknown"
}

// PhysicsConfig contains every constant the simulation step reads.
type PhysicsConfig struct {
	// Gravity is expressed y-up; screen space is y-down.
	GravityX float64
	GravityY float64

	// GridDivisions converts physics units to pixels: gridScale = height / GridDivisions.
	GridDivisions float64

	// Bounce response
	Efficiency float64 // global energy kept by every bounce
	MinForce   float64 // bounce results at or below this collapse to zero
	WallWeight float64 // mass of an immovable wall
	WallGap    float64 // pixels kept between a clamped ball and a WALL edge

	// Control
	BallAccel float64
	JumpVel   float64
	AirJumps  int     // mid-air jump charges for ModeAirJumps
	MaxSpeed  float64 // optional per-axis cap in physics units per second; 0 disables it

	// Bodies
	BaseMass      float64 // mass = BaseMass / bounce
	RadiusDivisor float64 // radius = width / RadiusDivisor

	// Contact sensors
	SensorDepth float64 // sensor thickness as a fraction of the radius
	SensorCell  int     // resolv cell size in pixels

	// WinArc is the half-angle around straight down that counts as a head landing.
	WinArc float64
}

// NetConfig contains the network loop settings.
type NetConfig struct {
	Interval   time.Duration // sleep between loop iterations
	ReadBuffer int
	WSPath     string
}

var (
	Physics PhysicsConfig
	Net     NetConfig
)

func init() {
	Physics = PhysicsConfig{
		GravityX:      0,
		GravityY:      -9.81,
		GridDivisions: 4,

		Efficiency: 0.5,
		MinForce:   0.5,
		WallWeight: 500,
		WallGap:    1,

		BallAccel: 10,
		JumpVel:   9,
		AirJumps:  2,

		BaseMass:      10,
		RadiusDivisor: 32,

		SensorDepth: 0.5,
		SensorCell:  4,

		WinArc: math.Pi / 6,
	}

	Net = NetConfig{
		Interval:   20 * time.Millisecond,
		ReadBuffer: 1024,
		WSPath:     "/duel",
	}
}
