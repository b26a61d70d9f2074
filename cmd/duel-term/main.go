// Command duel-term plays a duel in the terminal. It shares the simulation,
// the network peer and the launch flow with the windowed client; each
// terminal cell stands for an 8x16 pixel block of the arena.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/automoto/poetry-duel/assets"
	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/match"
	"github.com/automoto/poetry-duel/network"
	"github.com/automoto/poetry-duel/shared/launch"
	"github.com/automoto/poetry-duel/shared/roster"
	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/automoto/poetry-duel/sim"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

const (
	cellWidth  = 8
	cellHeight = 16
	statusRows = 1

	// Terminals report key presses, not releases: a direction stays held
	// for this long after its last press or repeat.
	holdWindow = 150 * time.Millisecond
	frameTime  = time.Second / 30
	maxStep    = 0.1
)

var edgeStyles = map[simconfig.WallMode]tcell.Style{
	simconfig.WallSolid:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
	simconfig.WallLoop:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	simconfig.WallHole:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	simconfig.WallRemove: tcell.StyleDefault.Foreground(tcell.ColorRed),
}

type Game struct {
	screen  tcell.Screen
	session *sim.Session
	stop    *network.Shutdown

	steer   float64
	steerAt time.Time
	jump    bool
	last    time.Time

	status   string
	statusAt time.Time
}

func NewGame(opts sim.Options, stop *network.Shutdown) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newGame(screen, opts, stop)
}

func newGame(screen tcell.Screen, opts sim.Options, stop *network.Shutdown) (*Game, error) {
	opts.Width, opts.Height = arenaSize(screen.Size())
	session, err := sim.NewSession(donburi.NewWorld(), opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	return &Game{
		screen:  screen,
		session: session,
		stop:    stop,
	}, nil
}

// arenaSize maps the terminal grid, minus the status line, to pixels.
func arenaSize(cols, rows int) (float64, float64) {
	rows -= statusRows
	if rows < 1 {
		rows = 1
	}
	return float64(cols * cellWidth), float64(rows * cellHeight)
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.steer, g.steerAt = -1, now
		case tcell.KeyRight:
			g.steer, g.steerAt = 1, now
		case tcell.KeyUp:
			g.jump = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				g.steer, g.steerAt = -1, now
			case 'd':
				g.steer, g.steerAt = 1, now
			case ' ', 'w':
				g.jump = true
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.session.Resize(arenaSize(g.screen.Size()))
	}

	return true
}

func (g *Game) intent(now time.Time) components.IntentData {
	intent := components.IntentData{Jump: g.jump}
	if now.Sub(g.steerAt) < holdWindow {
		intent.Steer = g.steer
	}
	g.jump = false
	return intent
}

func (g *Game) update() {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	if dt > maxStep {
		dt = maxStep
	}

	switch out := g.session.Step(dt, g.intent(now)); out {
	case components.OutcomeWin:
		g.setStatus("A palpable hit!")
	case components.OutcomeLoss:
		g.setStatus("Unhorsed.")
	case components.OutcomeRemoved:
		g.setStatus("Exeunt.")
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusAt = time.Now()
}

func (g *Game) draw() {
	g.screen.Clear()
	cols, rows := g.screen.Size()
	rows -= statusRows

	g.drawEdges(cols, rows)
	g.drawBall(g.session.Opponent(), '▒')
	g.drawBall(g.session.Local(), '█')
	g.drawStatus(rows)

	g.screen.Show()
}

func (g *Game) drawEdges(cols, rows int) {
	def := g.session.Arena().Def
	for x := 0; x < cols; x++ {
		g.screen.SetContent(x, 0, '─', nil, edgeStyles[def.Edge(simconfig.EdgeTop)])
		g.screen.SetContent(x, rows-1, '─', nil, edgeStyles[def.Edge(simconfig.EdgeBottom)])
	}
	for y := 0; y < rows; y++ {
		g.screen.SetContent(0, y, '│', nil, edgeStyles[def.Edge(simconfig.EdgeLeft)])
		g.screen.SetContent(cols-1, y, '│', nil, edgeStyles[def.Edge(simconfig.EdgeRight)])
	}
}

// drawBall fills every cell whose center lies inside the ball, and always the
// cell under its center.
func (g *Game) drawBall(e *donburi.Entry, r rune) {
	ball := components.Ball.Get(e)
	if ball.Removed {
		return
	}
	c := ball.Color
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	minX := int((ball.Pos.X - ball.Radius) / cellWidth)
	maxX := int((ball.Pos.X + ball.Radius) / cellWidth)
	minY := int((ball.Pos.Y - ball.Radius) / cellHeight)
	maxY := int((ball.Pos.Y + ball.Radius) / cellHeight)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cx := (float64(x) + 0.5) * cellWidth
			cy := (float64(y) + 0.5) * cellHeight
			dx, dy := cx-ball.Pos.X, cy-ball.Pos.Y
			if dx*dx+dy*dy <= ball.Radius*ball.Radius {
				g.screen.SetContent(x, y, r, nil, style)
			}
		}
	}
	g.screen.SetContent(int(ball.Pos.X/cellWidth), int(ball.Pos.Y/cellHeight), r, nil, style)
}

func (g *Game) drawStatus(row int) {
	m := g.session.Match()
	mode := "networked"
	if m.Practice {
		mode = "practice"
	}
	line := fmt.Sprintf(" %s vs %s | %s (%s) | round %d  %d-%d ", m.Poet, m.Opponent, m.Arena, mode, m.Rounds, m.Wins, m.Losses)
	if g.status != "" && time.Since(g.statusAt) < 2*time.Second {
		line += "| " + g.status
	}
	style := tcell.StyleDefault.Reverse(true)
	for i, ch := range []rune(line) {
		g.screen.SetContent(i, row, ch, nil, style)
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				g.stop.Trigger(nil)
				return
			}

		case <-g.stop.Done():
			return

		case <-ticker.C:
			g.update()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func main() {
	opts := launch.FromEnv(launch.Defaults())
	launch.RegisterFlags(flag.CommandLine, &opts)
	listPoets := flag.Bool("list-poets", false, "Print the poets and exit")
	logPath := flag.String("log", filepath.Join(os.TempDir(), "poetry-duel-term.log"), "Log file (the terminal is busy drawing)")
	flag.Parse()

	if *listPoets {
		if err := roster.WriteTable(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := opts.Validate(); err != nil {
		log.Fatalf("[setup] %v", err)
	}
	if _, err := match.Prepare(opts, assets.FS()); err != nil {
		log.Fatalf("[setup] %v", err)
	}
	opts, err := launch.NewPrompter(os.Stdin, os.Stdout).Complete(opts)
	if err != nil {
		log.Fatalf("[setup] %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	setup, err := match.Start(ctx, opts, assets.FS())
	cancel()
	if err != nil {
		log.Fatalf("[setup] start match: %v", err)
	}
	defer setup.Close()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	game, err := NewGame(setup.Session, setup.Stop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return
	}
	game.run()
	game.cleanup()

	if reason := setup.Stop.Reason(); reason != nil {
		fmt.Fprintf(os.Stderr, "match ended: %v\n", reason)
	}
}
