package systems

import (
	"github.com/automoto/poetry-duel/components"
	cfg "github.com/automoto/poetry-duel/config"
	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/automoto/poetry-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena fills the background and marks each edge with its wall mode.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	def := components.Arena.Get(entry).Def
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	t := cfg.UI.EdgeThickness

	for e := simconfig.Edge(0); e < simconfig.EdgeCount; e++ {
		clr, ok := cfg.UI.EdgeColors[def.Edge(e).String()]
		if !ok {
			continue
		}
		switch e {
		case simconfig.EdgeRight:
			vector.DrawFilledRect(screen, w-t, 0, t, h, clr, false)
		case simconfig.EdgeTop:
			vector.DrawFilledRect(screen, 0, 0, w, t, clr, false)
		case simconfig.EdgeLeft:
			vector.DrawFilledRect(screen, 0, 0, t, h, clr, false)
		case simconfig.EdgeBottom:
			vector.DrawFilledRect(screen, 0, h-t, w, t, clr, false)
		}
	}
}

// DrawBalls renders every ball still in play as a filled circle. The
// controlled ball gets a ring.
func DrawBalls(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		if ball.Removed || ball.Radius <= 0 {
			return
		}
		x, y, r := float32(ball.Pos.X), float32(ball.Pos.Y), float32(ball.Radius)
		vector.DrawFilledCircle(screen, x, y, r, ball.Color, true)
		if e.HasComponent(tags.Local) {
			vector.StrokeCircle(screen, x, y, r+2, 2, cfg.UI.LocalRingColor, true)
		}
	})
}
