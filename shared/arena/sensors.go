package arena

import (
	"math"

	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/solarlune/resolv"
)

// Resolv tags for contact sensors and ball bodies
const (
	SensorFloor   = "floor"
	SensorCeiling = "ceiling"
	SensorSide    = "side"
	ResolvBall    = "ball"
)

// SensorTag returns the resolv tag of the sensor along e.
func SensorTag(e simconfig.Edge) string {
	switch e {
	case simconfig.EdgeBottom:
		return SensorFloor
	case simconfig.EdgeTop:
		return SensorCeiling
	default:
		return SensorSide
	}
}

// Sensors is the collision space for one arena size: a thin strip inside
// every WALL edge plus the bounding object of each ball.
type Sensors struct {
	Space  *resolv.Space
	Width  float64
	Height float64
	Depth  float64
}

// NewSensors builds the sensor strips for a viewport of width x height and
// balls of the given radius. Call again after every reset.
func NewSensors(def Definition, width, height, radius float64, p simconfig.PhysicsConfig) *Sensors {
	cell := p.SensorCell
	if cell <= 0 {
		cell = 4
	}
	space := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cell, cell)
	depth := math.Max(radius*p.SensorDepth, 1)

	for e := simconfig.Edge(0); e < simconfig.EdgeCount; e++ {
		if def.Edges[e] != simconfig.WallSolid {
			continue
		}
		x, y, w, h := edgeStrip(e, width, height, depth)
		obj := resolv.NewObject(x, y, w, h, SensorTag(e))
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		space.Add(obj)
	}

	return &Sensors{Space: space, Width: width, Height: height, Depth: depth}
}

func edgeStrip(e simconfig.Edge, width, height, depth float64) (x, y, w, h float64) {
	switch e {
	case simconfig.EdgeRight:
		return width - depth, 0, depth, height
	case simconfig.EdgeTop:
		return 0, 0, width, depth
	case simconfig.EdgeLeft:
		return 0, 0, depth, height
	default:
		return 0, height - depth, width, depth
	}
}

// NewBody creates and registers the bounding object of a ball.
func (s *Sensors) NewBody(cx, cy, radius float64) *resolv.Object {
	size := radius * 2
	obj := resolv.NewObject(cx-radius, cy-radius, size, size, ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	s.Space.Add(obj)
	return obj
}

// Move re-centers a ball body.
func (s *Sensors) Move(obj *resolv.Object, cx, cy float64) {
	obj.X = cx - obj.W/2
	obj.Y = cy - obj.H/2
	obj.Update()
}

// Remove drops a body from the space.
func (s *Sensors) Remove(obj *resolv.Object) {
	s.Space.Remove(obj)
}

// Restore re-registers a removed body centered on cx, cy.
func (s *Sensors) Restore(obj *resolv.Object, cx, cy float64) {
	obj.X = cx - obj.W/2
	obj.Y = cy - obj.H/2
	s.Space.Add(obj)
}

// Touching reports whether obj overlaps any sensor carrying one of tags.
// The cell lookup is only a broad phase; overlap is confirmed on the
// bounding rectangles.
func (s *Sensors) Touching(obj *resolv.Object, tags ...string) bool {
	check := obj.Check(0, 0, tags...)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tags...) {
		if overlaps(obj, other) {
			return true
		}
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
