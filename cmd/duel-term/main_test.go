package main

import (
	"testing"
	"time"

	"github.com/automoto/poetry-duel/network"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/automoto/poetry-duel/shared/roster"
	"github.com/automoto/poetry-duel/sim"
	"github.com/gdamore/tcell/v2"
)

func newTestGame(t *testing.T, cols, rows int) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)

	g, err := newGame(screen, sim.Options{
		Arena:    arena.Classic(),
		Poet:     roster.Default(),
		Opponent: roster.Default(),
	}, network.NewShutdown())
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	t.Cleanup(g.cleanup)
	return g
}

func TestArenaSize(t *testing.T) {
	tests := []struct {
		cols, rows   int
		wantW, wantH float64
	}{
		{80, 25, 640, 384},
		{100, 40, 800, 624},
		{10, 1, 80, 16},
	}
	for _, tt := range tests {
		w, h := arenaSize(tt.cols, tt.rows)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("arenaSize(%d, %d) = %v, %v, want %v, %v", tt.cols, tt.rows, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestSessionFollowsScreen(t *testing.T) {
	g := newTestGame(t, 80, 25)
	if w, h := g.session.Size(); w != 640 || h != 384 {
		t.Fatalf("session size = %vx%v, want 640x384", w, h)
	}
}

func TestHoldWindow(t *testing.T) {
	g := newTestGame(t, 80, 25)

	g.handleInput(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if got := g.intent(time.Now()).Steer; got != -1 {
		t.Errorf("steer right after press = %v, want -1", got)
	}
	if got := g.intent(time.Now().Add(2 * holdWindow)).Steer; got != 0 {
		t.Errorf("steer after the hold window = %v, want 0", got)
	}
}

func TestJumpFiresOnce(t *testing.T) {
	g := newTestGame(t, 80, 25)

	g.handleInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !g.intent(time.Now()).Jump {
		t.Error("space should jump")
	}
	if g.intent(time.Now()).Jump {
		t.Error("a jump is consumed by one tick")
	}
}

func TestQuitKeys(t *testing.T) {
	g := newTestGame(t, 80, 25)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		keep bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), true},
	}
	for _, tt := range tests {
		if got := g.handleInput(tt.ev); got != tt.keep {
			t.Errorf("%s: handleInput = %v, want %v", tt.name, got, tt.keep)
		}
	}
}

func TestDrawMarksBalls(t *testing.T) {
	g := newTestGame(t, 80, 25)
	g.draw()

	cells, cols, _ := g.screen.(tcell.SimulationScreen).GetContents()
	found := false
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == '█' {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no ball cell drawn on a %d column screen", cols)
	}
}
