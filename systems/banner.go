package systems

import (
	"image/color"

	"github.com/automoto/poetry-duel/archetypes"
	"github.com/automoto/poetry-duel/components"
	cfg "github.com/automoto/poetry-duel/config"
	"github.com/automoto/poetry-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner starts the fading round-result message for out.
func ShowBanner(ecs *ecs.ECS, out components.Outcome) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = archetypes.Banner.Spawn(ecs.World)
	}

	label := cfg.Banner.ResetText
	switch out {
	case components.OutcomeWin:
		label = cfg.Banner.WinText
	case components.OutcomeLoss:
		label = cfg.Banner.LossText
	}

	components.Banner.SetValue(entry, components.BannerData{
		Text:  label,
		Tween: gween.New(1, 0, float32(cfg.Banner.Duration.Seconds()), ease.InQuad),
		Alpha: 1,
	})
}

// UpdateBanner advances the fade by one tick.
func UpdateBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	b := components.Banner.Get(entry)
	if b.Tween == nil {
		return
	}
	alpha, done := b.Tween.Update(1 / float32(ebiten.TPS()))
	b.Alpha = alpha
	if done {
		b.Tween = nil
		b.Alpha = 0
	}
}

// DrawBanner renders the round result centered on screen.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	b := components.Banner.Get(entry)
	if b.Alpha <= 0 || b.Text == "" {
		return
	}

	base := cfg.White
	if m, ok := components.Match.First(ecs.World); ok {
		switch components.Match.Get(m).LastOutcome {
		case components.OutcomeWin:
			base = cfg.Banner.WinColor
		case components.OutcomeLoss:
			base = cfg.Banner.LossColor
		}
	}

	fontFace := fonts.Title.Get()
	bounds := text.BoundString(fontFace, b.Text)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() / 2

	text.Draw(screen, b.Text, fontFace, x, y, fade(base, b.Alpha))
}

// fade scales a color to alpha, premultiplied as ebiten expects.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
