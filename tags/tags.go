package tags

import "github.com/yohamta/donburi"

var (
	Ball     = donburi.NewTag().SetName("Ball")
	Local    = donburi.NewTag().SetName("Local")
	Opponent = donburi.NewTag().SetName("Opponent")
)
