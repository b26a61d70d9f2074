// Package match turns resolved launch options into a ready duel: the poets
// and arena for the session, plus the connected peer for networked modes.
// Both the ebiten client and the terminal client start matches through it.
package match

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"

	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/network"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/automoto/poetry-duel/shared/codec"
	"github.com/automoto/poetry-duel/shared/launch"
	"github.com/automoto/poetry-duel/shared/roster"
	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/automoto/poetry-duel/sim"
)

var ErrUnknownLayout = errors.New("match: unknown frame layout")

// Setup is a started match. Peer is nil in practice mode.
type Setup struct {
	Launch  launch.Options
	Session sim.Options
	Peer    *network.Peer
	Stop    *network.Shutdown
}

// Prepare resolves the poets and the arena named in o.
func Prepare(o launch.Options, fsys fs.FS) (sim.Options, error) {
	poet, err := roster.Lookup(o.Poet)
	if err != nil {
		return sim.Options{}, err
	}
	opponent, err := roster.Lookup(o.Opponent)
	if err != nil {
		return sim.Options{}, err
	}
	def, err := arena.Load(fsys, o.Arena)
	if err != nil {
		return sim.Options{}, err
	}

	side := components.SideLeft
	if o.Mode == launch.ModeJoin {
		side = components.SideRight
	}
	return sim.Options{
		Arena:    def,
		Poet:     poet,
		Opponent: opponent,
		Side:     side,
		Physics:  simconfig.Physics,
		Width:    float64(def.Width),
		Height:   float64(def.Height),
	}, nil
}

// Start prepares the session and, for host and join, connects the peer and
// starts its loops. ctx bounds only the wait for a connection.
func Start(ctx context.Context, o launch.Options, fsys fs.FS) (*Setup, error) {
	opts, err := Prepare(o, fsys)
	if err != nil {
		return nil, err
	}

	s := &Setup{Launch: o, Session: opts, Stop: network.NewShutdown()}
	if !o.Networked() {
		log.Printf("[duel] practice: %s vs %s in %s", opts.Poet.Name, opts.Opponent.Name, opts.Arena.Name)
		return s, nil
	}

	layout, ok := codec.LayoutByName(o.Layout)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, o.Layout)
	}

	conn, err := Connect(ctx, o)
	if err != nil {
		return nil, err
	}
	s.Peer = network.NewPeer(conn, layout, simconfig.Net.Interval, s.Stop)
	s.Peer.Start()
	s.Session.Link = s.Peer
	return s, nil
}

// Connect opens the stream for o: host waits for exactly one opponent, join
// dials the host.
func Connect(ctx context.Context, o launch.Options) (net.Conn, error) {
	switch o.Mode {
	case launch.ModeHost:
		ln, err := network.Listen(o.Transport, o.HostPort())
		if err != nil {
			return nil, err
		}
		defer ln.Close()

		log.Printf("[net] hosting on %s (%s), waiting for opponent", ln.Addr(), o.Transport)
		conn, err := ln.Accept(ctx)
		if err != nil {
			return nil, fmt.Errorf("accept: %w", err)
		}
		return conn, nil
	case launch.ModeJoin:
		log.Printf("[net] joining %s (%s)", o.HostPort(), o.Transport)
		conn, err := network.Dial(ctx, o.Transport, o.HostPort())
		if err != nil {
			return nil, err
		}
		log.Printf("[net] connected to %s", conn.RemoteAddr())
		return conn, nil
	}
	return nil, fmt.Errorf("match: mode %q does not connect", o.Mode)
}

// Close stops the network loops. It is a no-op in practice mode.
func (s *Setup) Close() error {
	s.Stop.Trigger(nil)
	if s.Peer == nil {
		return nil
	}
	return s.Peer.Close()
}
