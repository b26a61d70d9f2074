package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the fading round-result message.
type BannerData struct {
	Text  string
	Tween *gween.Tween
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
