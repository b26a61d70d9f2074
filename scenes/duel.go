package scenes

import (
	"errors"

	cfg "github.com/automoto/poetry-duel/config"
	"github.com/automoto/poetry-duel/sim"
	"github.com/automoto/poetry-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrQuit is returned from Update when the player leaves the duel.
var ErrQuit = errors.New("player quit")

type DuelScene struct {
	ecs     *ecs.ECS
	session *sim.Session
	duel    *systems.Duel
}

// NewDuelScene spawns the session into a fresh world and wires the systems.
func NewDuelScene(opts sim.Options, record *systems.SavedRecord) (*DuelScene, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	session, err := sim.NewSession(ecs.World, opts)
	if err != nil {
		return nil, err
	}
	duel := systems.NewDuel(session, record)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(duel.Update)
	ecs.AddSystem(systems.UpdateBanner)
	ecs.AddSystem(systems.UpdateDebug)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawBalls)
	ecs.AddRenderer(cfg.LayerHUD, duel.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawBanner)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)

	return &DuelScene{ecs: ecs, session: session, duel: duel}, nil
}

func (ds *DuelScene) Update() error {
	ds.ecs.Update()
	if ds.duel.Quit() {
		return ErrQuit
	}
	return nil
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	ds.ecs.Draw(screen)
}

// Resize adopts the window size as the arena size.
func (ds *DuelScene) Resize(width, height int) {
	w, h := ds.session.Size()
	if int(w) == width && int(h) == height {
		return
	}
	ds.duel.Resize(width, height)
}

// Record returns the lifetime record for saving on exit.
func (ds *DuelScene) Record() systems.SavedRecord {
	return ds.duel.Record()
}
