// Package launch resolves how a duel is started: host, join or practice,
// where to connect, which poets and which arena. Values come from a .env
// file and POETRY_DUEL_* variables first, then command-line flags, then
// interactive prompts for whatever is still missing.
package launch

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Mode is how this process takes part in a match.
type Mode string

const (
	ModeUnset    Mode = ""
	ModeHost     Mode = "host"
	ModeJoin     Mode = "join"
	ModePractice Mode = "practice"
)

const (
	TransportTCP = "tcp"
	TransportWS  = "ws"

	DefaultPort = 5555
	EnvPrefix   = "POETRY_DUEL_"
)

var ErrInvalidPort = errors.New("launch: invalid port")

// Options is the resolved launch configuration.
type Options struct {
	Mode      Mode
	Address   string
	Port      int
	Transport string
	Poet      string
	Opponent  string // practice dummy or assumed remote poet
	Arena     string
	Layout    string // frame layout name, v1 or v2
}

// Defaults returns the built-in options.
func Defaults() Options {
	return Options{
		Mode:      ModeUnset,
		Address:   "",
		Port:      0,
		Transport: TransportTCP,
		Poet:      "Wordsworth",
		Opponent:  "Wordsworth",
		Arena:     "classic",
		Layout:    "v2",
	}
}

// FromEnv loads .env if present and overlays POETRY_DUEL_* variables on base.
func FromEnv(base Options) Options {
	// Load .env file if it exists
	_ = godotenv.Load()

	o := base
	o.Mode = Mode(strings.ToLower(getEnv("MODE", string(o.Mode))))
	o.Address = getEnv("ADDRESS", o.Address)
	o.Port = getEnvInt("PORT", o.Port)
	o.Transport = strings.ToLower(getEnv("TRANSPORT", o.Transport))
	o.Poet = getEnv("POET", o.Poet)
	o.Opponent = getEnv("OPPONENT", o.Opponent)
	o.Arena = getEnv("ARENA", o.Arena)
	o.Layout = strings.ToLower(getEnv("LAYOUT", o.Layout))
	return o
}

// RegisterFlags binds o's fields to fs. Current values become flag defaults,
// so call it after FromEnv.
func RegisterFlags(fs *flag.FlagSet, o *Options) {
	fs.Func("mode", "host, join or practice (prompted when empty)", func(s string) error {
		m := Mode(strings.ToLower(s))
		switch m {
		case ModeHost, ModeJoin, ModePractice:
			o.Mode = m
			return nil
		}
		return fmt.Errorf("unknown mode %q", s)
	})
	fs.StringVar(&o.Address, "addr", o.Address, "Address to host on or join")
	fs.IntVar(&o.Port, "port", o.Port, "Port (prompted when 0)")
	fs.StringVar(&o.Transport, "transport", o.Transport, "Stream transport: tcp or ws")
	fs.StringVar(&o.Poet, "poet", o.Poet, "Your poet")
	fs.StringVar(&o.Opponent, "opponent", o.Opponent, "Opponent poet")
	fs.StringVar(&o.Arena, "arena", o.Arena, "Arena name")
	fs.StringVar(&o.Layout, "layout", o.Layout, "Frame layout: v1 or v2")
}

// Validate checks the fields that do not depend on other packages.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeUnset, ModeHost, ModeJoin, ModePractice:
	default:
		return fmt.Errorf("launch: unknown mode %q", o.Mode)
	}
	switch o.Transport {
	case TransportTCP, TransportWS:
	default:
		return fmt.Errorf("launch: unknown transport %q", o.Transport)
	}
	if o.Port != 0 {
		if _, err := ParsePort(strconv.Itoa(o.Port)); err != nil {
			return err
		}
	}
	return nil
}

// Networked reports whether the mode opens a connection.
func (o Options) Networked() bool {
	return o.Mode == ModeHost || o.Mode == ModeJoin
}

// HostPort joins address and port for net.Listen and net.Dial.
func (o Options) HostPort() string {
	return net.JoinHostPort(o.Address, strconv.Itoa(o.Port))
}

// ParsePort accepts a decimal port in 1-65535.
func ParsePort(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 || p > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	return p, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
