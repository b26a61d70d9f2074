package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Side is the spawn side of a ball.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// BallData is the simulated state of one player's ball. Positions are screen
// pixels (y-down); velocities are physics units per second.
type BallData struct {
	Pos    dmath.Vec2
	Vel    dmath.Vec2
	Radius float64
	Mass   float64

	// Local balls are integrated by this process; remote balls mirror
	// network snapshots between updates.
	Local bool
	Side  Side

	JumpCharges int
	AirSteer    float64 // -1, 0 or +1; held direction while airborne
	Grounded    bool
	Removed     bool

	Color color.RGBA
}

var Ball = donburi.NewComponentType[BallData]()
