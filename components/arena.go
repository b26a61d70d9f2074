package components

import (
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/yohamta/donburi"
)

// ArenaData is the active arena and its sensor space at the current size.
type ArenaData struct {
	Def     arena.Definition
	Sensors *arena.Sensors
	Width   float64
	Height  float64
}

var Arena = donburi.NewComponentType[ArenaData]()
