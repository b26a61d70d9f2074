// Package arena provides arena definitions parsed from Tiled maps and the
// resolv contact sensors built from them. It has no dependencies on
// ebitengine so the simulation can run headless.
package arena

import "github.com/automoto/poetry-duel/shared/simconfig"

// Definition is one playable arena.
type Definition struct {
	Name  string
	Edges [simconfig.EdgeCount]simconfig.WallMode

	// Gravity, y-up, in physics units per second squared.
	GravityX float64
	GravityY float64

	// Map size in pixels, used as the initial window size.
	Width  int
	Height int
}

// Classic is the built-in arena: wrap-around sides, solid floor and ceiling.
func Classic() Definition {
	return Definition{
		Name: "classic",
		Edges: [simconfig.EdgeCount]simconfig.WallMode{
			simconfig.EdgeRight:  simconfig.WallLoop,
			simconfig.EdgeTop:    simconfig.WallSolid,
			simconfig.EdgeLeft:   simconfig.WallLoop,
			simconfig.EdgeBottom: simconfig.WallSolid,
		},
		GravityX: simconfig.Physics.GravityX,
		GravityY: simconfig.Physics.GravityY,
		Width:    800,
		Height:   600,
	}
}

// Edge returns the wall mode of e.
func (d Definition) Edge(e simconfig.Edge) simconfig.WallMode {
	return d.Edges[e]
}
