package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/poetry-duel/components"
	cfg "github.com/automoto/poetry-duel/config"
	"github.com/automoto/poetry-duel/fonts"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/automoto/poetry-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the sensor overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if justPressed(cfg.ActionDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// DrawDebug outlines the contact sensors and ball bodies and prints each
// ball's velocity and ground state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	if entry, ok := components.Arena.First(ecs.World); ok {
		if sensors := components.Arena.Get(entry).Sensors; sensors != nil {
			for _, obj := range sensors.Space.Objects() {
				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(arena.SensorFloor) {
					c = color.RGBA{100, 100, 100, 255} // Grey
				} else if obj.HasTags(arena.SensorSide) || obj.HasTags(arena.SensorCeiling) {
					c = color.RGBA{255, 0, 255, 255} // Magenta
				} else if obj.HasTags(arena.ResolvBall) {
					c = color.RGBA{0, 0, 255, 255} // Blue
				}

				x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
				vector.FillRect(screen, x, y, w, 1, c, false)     // Top
				vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
				vector.FillRect(screen, x, y, 1, h, c, false)     // Left
				vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
			}
		}
	}

	fontFace := fonts.Small.Get()
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		if ball.Removed {
			return
		}
		label := fmt.Sprintf("v=(%.1f, %.1f) ground=%t", ball.Vel.X, ball.Vel.Y, ball.Grounded)
		text.Draw(screen, label, fontFace, int(ball.Pos.X-ball.Radius), int(ball.Pos.Y-ball.Radius-4), cfg.White)
	})
}
