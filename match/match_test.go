package match

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/automoto/poetry-duel/assets"
	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/automoto/poetry-duel/shared/launch"
	"github.com/automoto/poetry-duel/shared/roster"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name     string
		mode     launch.Mode
		wantSide components.Side
	}{
		{"practice spawns left", launch.ModePractice, components.SideLeft},
		{"host spawns left", launch.ModeHost, components.SideLeft},
		{"join spawns right", launch.ModeJoin, components.SideRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := launch.Defaults()
			o.Mode = tt.mode
			o.Poet = "keats"
			o.Opponent = "Plath"

			opts, err := Prepare(o, assets.FS())
			if err != nil {
				t.Fatalf("Prepare: %v", err)
			}
			if opts.Side != tt.wantSide {
				t.Errorf("side = %v, want %v", opts.Side, tt.wantSide)
			}
			if opts.Poet.Name != "Keats" || opts.Opponent.Name != "Plath" {
				t.Errorf("poets = %s, %s", opts.Poet.Name, opts.Opponent.Name)
			}
			if opts.Width != 800 || opts.Height != 600 {
				t.Errorf("size = %vx%v, want 800x600", opts.Width, opts.Height)
			}
			if opts.Link != nil {
				t.Error("Prepare must not set a link")
			}
		})
	}
}

func TestPrepareErrors(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*launch.Options)
		wantErr error
	}{
		{"unknown poet", func(o *launch.Options) { o.Poet = "Milton" }, roster.ErrUnknownCharacter},
		{"unknown opponent", func(o *launch.Options) { o.Opponent = "Donne" }, roster.ErrUnknownCharacter},
		{"unknown arena", func(o *launch.Options) { o.Arena = "colosseum" }, arena.ErrUnknownArena},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := launch.Defaults()
			tt.edit(&o)
			if _, err := Prepare(o, assets.FS()); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartPractice(t *testing.T) {
	o := launch.Defaults()
	o.Mode = launch.ModePractice

	s, err := Start(context.Background(), o, assets.FS())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Peer != nil || s.Session.Link != nil {
		t.Error("practice must not connect")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if !s.Stop.Stopped() {
		t.Error("Close should trigger shutdown")
	}
}

func TestStartRejectsUnknownLayout(t *testing.T) {
	o := launch.Defaults()
	o.Mode = launch.ModeJoin
	o.Address = "127.0.0.1"
	o.Port = 1
	o.Layout = "v9"

	if _, err := Start(context.Background(), o, assets.FS()); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("err = %v, want ErrUnknownLayout", err)
	}
}

func TestConnectNeedsNetworkedMode(t *testing.T) {
	o := launch.Defaults()
	o.Mode = launch.ModePractice
	if _, err := Connect(context.Background(), o); err == nil {
		t.Error("practice Connect should fail")
	}
}

func TestConnectHostAndJoin(t *testing.T) {
	free, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	port := free.Addr().(*net.TCPAddr).Port
	free.Close()

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	host := launch.Defaults()
	host.Mode = launch.ModeHost
	host.Address = "127.0.0.1"
	host.Port = port

	hosted := make(chan net.Conn, 1)
	go func() {
		conn, err := Connect(ctx, host)
		if err != nil {
			t.Errorf("host Connect: %v", err)
		}
		hosted <- conn
	}()

	join := host
	join.Mode = launch.ModeJoin
	var joined net.Conn
	for joined == nil {
		joined, err = Connect(ctx, join)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("join Connect: %v", err)
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
	defer joined.Close()

	conn := <-hosted
	if conn == nil {
		t.FailNow()
	}
	defer conn.Close()

	if n := strings.Count(logs.String(), "opponent connected from"); n != 1 {
		t.Errorf("accept logged %d times, want 1:\n%s", n, logs.String())
	}
}
