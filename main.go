package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/automoto/poetry-duel/assets"
	"github.com/automoto/poetry-duel/config"
	"github.com/automoto/poetry-duel/fonts"
	"github.com/automoto/poetry-duel/match"
	"github.com/automoto/poetry-duel/network"
	"github.com/automoto/poetry-duel/scenes"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/automoto/poetry-duel/shared/launch"
	"github.com/automoto/poetry-duel/shared/roster"
	"github.com/automoto/poetry-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	scene Scene
	stop  *network.Shutdown
}

func NewGame(scene Scene, stop *network.Shutdown) *Game {
	return &Game{scene: scene, stop: stop}
}

func (g *Game) Update() error {
	if g.stop.Stopped() {
		return ebiten.Termination
	}
	if err := g.scene.Update(); err != nil {
		if errors.Is(err, scenes.ErrQuit) {
			g.stop.Trigger(nil)
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the arena the size of the window. A size change resets the
// round.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

func main() {
	// Initialize persistence and load the saved record
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	record := systems.LoadRecord()

	base := launch.Defaults()
	if record.Poet != "" {
		base.Poet = record.Poet
	}
	opts := launch.FromEnv(base)
	launch.RegisterFlags(flag.CommandLine, &opts)
	listPoets := flag.Bool("list-poets", false, "Print the poets and exit")
	listArenas := flag.Bool("list-arenas", false, "Print the arenas and exit")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Show the sensor overlay (toggle with F3)")
	flag.Parse()

	if *listPoets {
		if err := roster.WriteTable(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *listArenas {
		names, err := arena.Names(assets.FS())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	if err := opts.Validate(); err != nil {
		log.Fatalf("[setup] %v", err)
	}
	// Unknown poets and arenas are fatal before any prompt or connection.
	if _, err := match.Prepare(opts, assets.FS()); err != nil {
		log.Fatalf("[setup] %v", err)
	}

	opts, err := launch.NewPrompter(os.Stdin, os.Stdout).Complete(opts)
	if err != nil {
		log.Fatalf("[setup] %v", err)
	}

	if err := run(opts, record); err != nil {
		log.Fatal(err)
	}
}

func run(opts launch.Options, record *systems.SavedRecord) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	setup, err := match.Start(ctx, opts, assets.FS())
	if err != nil {
		return fmt.Errorf("start match: %w", err)
	}
	defer setup.Close()

	// Interrupt after connecting stops the game loop too.
	go func() {
		select {
		case <-ctx.Done():
			setup.Stop.Trigger(ctx.Err())
		case <-setup.Stop.Done():
		}
	}()

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize, config.UI.SmallFontSize); err != nil {
		return err
	}

	scene, err := scenes.NewDuelScene(setup.Session, record)
	if err != nil {
		return fmt.Errorf("create duel: %w", err)
	}

	ebiten.SetWindowSize(int(setup.Session.Width), int(setup.Session.Height))
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	runErr := ebiten.RunGame(NewGame(scene, setup.Stop))

	final := scene.Record()
	_ = systems.SaveRecord(&final)
	if reason := setup.Stop.Reason(); reason != nil {
		log.Printf("[net] match ended: %v", reason)
	}
	return runErr
}
