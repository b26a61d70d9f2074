package sim

import (
	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/shared/gamemath"
	"github.com/automoto/poetry-duel/shared/simconfig"
	dmath "github.com/yohamta/donburi/features/math"
)

// integrate applies gravity and moves the ball by one tick. Gravity is
// y-up, so it is subtracted from the y-down screen velocity.
func (s *Session) integrate(ball *components.BallData, dt float64) {
	def := s.Arena().Def
	ball.Vel.X -= def.GravityX * dt
	ball.Vel.Y -= def.GravityY * dt

	if s.physics.MaxSpeed > 0 {
		ball.Vel.X = gamemath.ClampSpeed(ball.Vel.X, s.physics.MaxSpeed)
		ball.Vel.Y = gamemath.ClampSpeed(ball.Vel.Y, s.physics.MaxSpeed)
	}

	ball.Pos.X += ball.Vel.X * dt * s.gridScale
	ball.Pos.Y += ball.Vel.Y * dt * s.gridScale
}

// resolveWalls applies each edge's mode in edge order and reports whether a
// REMOVE edge took the ball out of play.
func (s *Session) resolveWalls(ball *components.BallData, elastic float64) bool {
	def := s.Arena().Def
	r := ball.Radius

	for e := simconfig.Edge(0); e < simconfig.EdgeCount; e++ {
		axis := e.Axis()
		size := s.width
		if axis == 1 {
			size = s.height
		}
		pos := component(ball.Pos, axis)

		var crossed bool
		if e.IsMax() {
			crossed = pos+r > size
		} else {
			crossed = pos-r < 0
		}
		if !crossed {
			continue
		}

		switch def.Edges[e] {
		case simconfig.WallSolid:
			gap := s.physics.WallGap
			if e.IsMax() {
				gap = -gap
			}
			setComponent(&ball.Pos, axis, flush(e, size, r)+gap)
			efficiency := 1.0
			if e == simconfig.EdgeBottom {
				efficiency = elastic
			}
			v := gamemath.ElasticBounce(ball.Mass, component(ball.Vel, axis), s.physics.WallWeight, 0, efficiency, s.physics)
			setComponent(&ball.Vel, axis, v)
		case simconfig.WallLoop:
			setComponent(&ball.Pos, axis, flush(e.Opposite(), size, r))
		case simconfig.WallHole:
		case simconfig.WallRemove:
			return true
		}
	}
	return false
}

// flush is the center coordinate of a ball of radius r touching edge e.
func flush(e simconfig.Edge, size, r float64) float64 {
	if e.IsMax() {
		return size - r
	}
	return r
}

func component(v dmath.Vec2, axis int) float64 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}

func setComponent(v *dmath.Vec2, axis int, value float64) {
	if axis == 0 {
		v.X = value
	} else {
		v.Y = value
	}
}
