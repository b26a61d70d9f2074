package sim

import (
	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/yohamta/donburi"
)

// grounded reports sensor contact for the character's movement mode. Only
// WALL edges carry sensors.
func (s *Session) grounded(e *donburi.Entry, mode simconfig.MovementMode) bool {
	sensors := s.Arena().Sensors
	if sensors == nil || !e.HasComponent(components.Object) {
		return false
	}
	obj := components.Object.Get(e).Object
	ball := components.Ball.Get(e)
	sensors.Move(obj, ball.Pos.X, ball.Pos.Y)

	if mode == simconfig.ModeSurface {
		return sensors.Touching(obj, arena.SensorFloor, arena.SensorSide, arena.SensorCeiling)
	}
	return sensors.Touching(obj, arena.SensorFloor)
}

// applyIntent steers and jumps the controlled ball.
func (s *Session) applyIntent(dt float64, intent components.IntentData) {
	e := s.local
	ball := components.Ball.Get(e)
	if ball.Removed {
		return
	}
	char := components.Character.Get(e)
	attrs := char.Attributes
	p := s.physics

	steer := clampUnit(intent.Steer)
	accel := p.BallAccel * attrs.Accel * dt
	jump := p.JumpVel * attrs.JumpVel

	ball.Grounded = s.grounded(e, char.Mode)

	switch char.Mode {
	case simconfig.ModeGrounded, simconfig.ModeSurface:
		if !ball.Grounded {
			return
		}
		ball.Vel.X += steer * accel * attrs.GroundFactor
		if intent.Jump {
			ball.Vel.Y -= jump
		}

	case simconfig.ModeAirJumps:
		if ball.Grounded {
			ball.JumpCharges = char.AirJumps
			ball.AirSteer = 0
			ball.Vel.X += steer * accel * attrs.GroundFactor
			if intent.Jump {
				ball.Vel.Y -= jump
			}
			return
		}
		if steer != 0 {
			ball.AirSteer = sign(steer)
		}
		ball.Vel.X += ball.AirSteer * accel
		if intent.Jump && ball.JumpCharges > 0 {
			ball.JumpCharges--
			ball.Vel.Y -= jump
		}
	}
}

func clampUnit(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
