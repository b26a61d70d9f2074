package archetypes

import (
	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/tags"
	"github.com/yohamta/donburi"
)

var (
	LocalBall = newArchetype(
		tags.Ball,
		tags.Local,
		components.Ball,
		components.Character,
		components.Object,
	)
	OpponentBall = newArchetype(
		tags.Ball,
		tags.Opponent,
		components.Ball,
		components.Character,
		components.Object,
	)
	Match = newArchetype(
		components.Match,
		components.Intent,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entry with the archetype's components plus cs. It takes
// a donburi.World rather than an ecs.ECS so headless code can spawn too.
func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return world.Entry(world.Create(
		append(a.components, cs...)...,
	))
}
