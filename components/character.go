package components

import (
	"github.com/automoto/poetry-duel/shared/roster"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	roster.Character
}

var Character = donburi.NewComponentType[CharacterData]()
