package sim

import (
	"image/color"

	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reset rebuilds the sensors for the current size and puts both balls back
// on their spawn points at rest.
func (s *Session) Reset() {
	p := s.physics
	radius := float64(int(s.width / p.RadiusDivisor))
	if radius < 1 {
		radius = 1
	}
	s.gridScale = s.height / p.GridDivisions

	ad := s.Arena()
	ad.Width, ad.Height = s.width, s.height
	ad.Sensors = arena.NewSensors(ad.Def, s.width, s.height, radius, p)

	m := s.Match()
	m.Rounds++

	s.active = s.active[:0]
	for i, e := range []*donburi.Entry{s.local, s.opponent} {
		s.place(e, ad.Sensors, radius, palette[(m.Rounds+i)%len(palette)])
		s.active = append(s.active, e)
	}
}

func (s *Session) place(e *donburi.Entry, sensors *arena.Sensors, radius float64, c color.RGBA) {
	ball := components.Ball.Get(e)
	char := components.Character.Get(e)

	ball.Radius = radius
	ball.Vel = dmath.Vec2{}
	if ball.Side == components.SideLeft {
		ball.Pos = dmath.Vec2{X: radius * 2, Y: s.height - radius*2}
	} else {
		ball.Pos = dmath.Vec2{X: s.width - radius*2, Y: s.height - radius*2}
	}
	ball.JumpCharges = char.AirJumps
	ball.AirSteer = 0
	ball.Grounded = false
	ball.Removed = false
	ball.Color = c

	obj := sensors.NewBody(ball.Pos.X, ball.Pos.Y, radius)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}
