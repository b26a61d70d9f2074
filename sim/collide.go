package sim

import (
	"math"

	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// resolvePair handles one ordered pair of entries. Each unordered pair is
// resolved at most once per tick.
func (s *Session) resolvePair(a, b *donburi.Entry) components.Outcome {
	if a.Entity() == b.Entity() {
		return components.OutcomeNone
	}
	key := pairKey{a.Entity(), b.Entity()}
	if _, done := s.resolved[key]; done {
		return components.OutcomeNone
	}
	s.resolved[key] = struct{}{}
	s.resolved[pairKey{b.Entity(), a.Entity()}] = struct{}{}

	ba, bb := components.Ball.Get(a), components.Ball.Get(b)
	dist := gamemath.Distance(ba.Pos, bb.Pos)
	if dist > ba.Radius+bb.Radius {
		return components.OutcomeNone
	}

	va, vb := ba.Vel, bb.Vel
	p := s.physics
	ba.Vel.X = gamemath.ElasticBounce(ba.Mass, va.X, bb.Mass, vb.X, 1, p)
	ba.Vel.Y = gamemath.ElasticBounce(ba.Mass, va.Y, bb.Mass, vb.Y, 1, p)
	bb.Vel.X = gamemath.ElasticBounce(bb.Mass, vb.X, ba.Mass, va.X, 1, p)
	bb.Vel.Y = gamemath.ElasticBounce(bb.Mass, vb.Y, ba.Mass, va.Y, 1, p)

	if dist > 0 {
		if out := s.headLanding(ba, bb); out != components.OutcomeNone {
			return out
		}
	}

	separate(ba, bb, dist)
	return components.OutcomeNone
}

// headLanding checks whether the controlled ball landed on the other one
// (WIN) or, in practice, was landed on (LOSS).
func (s *Session) headLanding(a, b *components.BallData) components.Outcome {
	ctrl, other := a, b
	switch {
	case a.Local:
	case b.Local:
		ctrl, other = b, a
	default:
		return components.OutcomeNone
	}

	arc := s.physics.WinArc
	if gamemath.WithinArc(gamemath.Angle(ctrl.Pos, other.Pos), 0, arc) {
		return components.OutcomeWin
	}
	if s.Practice() && gamemath.WithinArc(gamemath.Angle(other.Pos, ctrl.Pos), 0, arc) {
		return components.OutcomeLoss
	}
	return components.OutcomeNone
}

// separate pushes overlapping balls apart from the contact point, which
// splits the center distance in proportion to the radii. Coincident centers
// part vertically.
func separate(a, b *components.BallData, dist float64) {
	toward := gamemath.Angle(a.Pos, b.Pos)
	back := toward + math.Pi

	share := dist * a.Radius / (a.Radius + b.Radius)
	contact := gamemath.PointAtAngle(a.Pos, toward, share)

	if gamemath.Distance(a.Pos, contact) <= a.Radius {
		a.Pos = gamemath.PointAtAngle(contact, back, a.Radius+1)
	}
	if gamemath.Distance(b.Pos, contact) <= b.Radius {
		b.Pos = gamemath.PointAtAngle(contact, toward, b.Radius+1)
	}
}
