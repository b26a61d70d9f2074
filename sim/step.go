package sim

import (
	"log"

	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/shared/codec"
	dmath "github.com/yohamta/donburi/features/math"
)

// Step advances the match by dt seconds of wall-clock time.
func (s *Session) Step(dt float64, intent components.IntentData) components.Outcome {
	if s.link != nil && s.link.OpponentWon() {
		return s.finish(components.OutcomeLoss)
	}

	s.applyRemote()
	s.applyIntent(dt, intent)

	clear(s.resolved)
	for _, a := range s.active {
		ballA := components.Ball.Get(a)
		if ballA.Removed {
			continue
		}
		for _, b := range s.active {
			if components.Ball.Get(b).Removed {
				continue
			}
			if out := s.resolvePair(a, b); out != components.OutcomeNone {
				return s.finish(out)
			}
		}

		s.integrate(ballA, dt)
		removed := s.resolveWalls(ballA, components.Character.Get(a).Attributes.Elastic)
		if obj := components.Object.Get(a).Object; obj != nil {
			if removed {
				s.Arena().Sensors.Remove(obj)
			} else {
				s.Arena().Sensors.Move(obj, ballA.Pos.X, ballA.Pos.Y)
			}
		}
		ballA.Removed = removed
	}
	s.compact()

	local := components.Ball.Get(s.local)
	if s.link != nil {
		s.link.PublishLocal(codec.State{X: local.Pos.X, Y: local.Pos.Y, VX: local.Vel.X, VY: local.Vel.Y})
	}

	if local.Removed {
		log.Printf("[duel] %s left the arena", components.Character.Get(s.local).Name)
		m := s.Match()
		m.LastOutcome = components.OutcomeRemoved
		s.Reset()
		return components.OutcomeRemoved
	}
	return components.OutcomeNone
}

// applyRemote overwrites the opponent with the newest snapshot. A snapshot
// brings a removed remote ball back into play.
func (s *Session) applyRemote() {
	if s.link == nil {
		return
	}
	st, ok := s.link.LatestRemote()
	if !ok {
		return
	}
	ball := components.Ball.Get(s.opponent)
	ball.Pos = dmath.Vec2{X: st.X, Y: st.Y}
	ball.Vel = dmath.Vec2{X: st.VX, Y: st.VY}
	if ball.Removed {
		ball.Removed = false
		s.active = append(s.active, s.opponent)
		if obj := components.Object.Get(s.opponent).Object; obj != nil {
			s.Arena().Sensors.Restore(obj, ball.Pos.X, ball.Pos.Y)
		}
	}
}

// compact drops removed balls from the active set.
func (s *Session) compact() {
	kept := s.active[:0]
	for _, e := range s.active {
		if !components.Ball.Get(e).Removed {
			kept = append(kept, e)
		}
	}
	s.active = kept
}

// finish scores a decided round, notifies the peer of a win and resets.
func (s *Session) finish(out components.Outcome) components.Outcome {
	m := s.Match()
	switch out {
	case components.OutcomeWin:
		m.Wins++
		if s.link != nil {
			if err := s.link.SendWin(); err != nil {
				log.Printf("[duel] failed to send win: %v", err)
			}
		}
	case components.OutcomeLoss:
		m.Losses++
	}
	m.LastOutcome = out
	log.Printf("[duel] round %d: %s (%d-%d)", m.Rounds, out, m.Wins, m.Losses)
	s.Reset()
	return out
}
