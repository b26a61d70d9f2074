package systems

import (
	"fmt"

	"github.com/automoto/poetry-duel/components"
	cfg "github.com/automoto/poetry-duel/config"
	"github.com/automoto/poetry-duel/fonts"
	"github.com/automoto/poetry-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the poets, the score and the lifetime record along the top.
func (d *Duel) DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	width := float32(screen.Bounds().Dx())
	margin := cfg.UI.HUDMargin

	vector.DrawFilledRect(screen, 0, 0, width, float32(cfg.UI.HUDBgHeight), cfg.UI.HUDBgColor, false)

	mode := "networked"
	if match.Practice {
		mode = "practice"
	}
	title := fmt.Sprintf("%s vs %s  -  %s (%s)", match.Poet, match.Opponent, match.Arena, mode)
	text.Draw(screen, title, fonts.Bold.Get(), int(margin), int(margin+cfg.UI.HUDLineHeight*0.75), cfg.UI.HUDTextColor)

	score := fmt.Sprintf("Round %d   Wins %d   Losses %d", match.Rounds, match.Wins, match.Losses)
	text.Draw(screen, score, fonts.Regular.Get(), int(margin), int(margin+cfg.UI.HUDLineHeight*1.75), cfg.UI.HUDTextColor)

	record := d.Record()
	lifetime := fmt.Sprintf("Lifetime %d-%d", record.Wins, record.Losses)
	smallFace := fonts.Small.Get()
	bounds := text.BoundString(smallFace, lifetime)
	text.Draw(screen, lifetime, smallFace, int(width)-bounds.Dx()-int(margin), int(margin+cfg.UI.HUDLineHeight*0.75), cfg.UI.HUDTextColor)

	if e, ok := tags.Local.First(ecs.World); ok {
		ball := components.Ball.Get(e)
		char := components.Character.Get(e)
		if char.AirJumps > 0 {
			jumps := fmt.Sprintf("Air jumps %d/%d", ball.JumpCharges, char.AirJumps)
			bounds := text.BoundString(smallFace, jumps)
			text.Draw(screen, jumps, smallFace, int(width)-bounds.Dx()-int(margin), int(margin+cfg.UI.HUDLineHeight*1.75), cfg.UI.HUDTextColor)
		}
	}
}
