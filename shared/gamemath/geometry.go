package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the heading from a to b measured from the screen's down axis:
// atan2(dx, dy). A point directly below a has angle 0.
func Angle(a, b dmath.Vec2) float64 {
	return math.Atan2(b.X-a.X, b.Y-a.Y)
}

// PointAtAngle walks dist from origin along a heading produced by Angle.
func PointAtAngle(origin dmath.Vec2, angle, dist float64) dmath.Vec2 {
	return dmath.Vec2{
		X: origin.X + math.Sin(angle)*dist,
		Y: origin.Y + math.Cos(angle)*dist,
	}
}

// NormalizeAngle wraps an angle into (-pi, pi].
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// WithinArc reports whether angle lies within ±arc of center.
func WithinArc(angle, center, arc float64) bool {
	return math.Abs(NormalizeAngle(angle-center)) <= arc
}
