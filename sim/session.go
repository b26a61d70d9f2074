// Package sim runs the duel simulation: integration, wall modes, pairwise
// ball collisions, head-landing detection and the per-character movement
// rules. It reads and writes donburi entries but never imports ebiten, so
// both front ends and the tests share it.
package sim

import (
	"errors"
	"image/color"

	"github.com/automoto/poetry-duel/archetypes"
	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/shared/arena"
	"github.com/automoto/poetry-duel/shared/codec"
	"github.com/automoto/poetry-duel/shared/roster"
	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/yohamta/donburi"
)

// Link is the session's view of the network peer. A nil Link means a
// practice match.
type Link interface {
	// LatestRemote returns the newest opponent snapshot, if one arrived
	// since the last call.
	LatestRemote() (codec.State, bool)
	// OpponentWon reports and consumes one pending opponent WIN notice.
	OpponentWon() bool
	// PublishLocal hands the controlled ball's state to the send loop.
	PublishLocal(codec.State)
	// SendWin tells the opponent this side scored.
	SendWin() error
}

// Options configures a new session.
type Options struct {
	Arena    arena.Definition
	Poet     roster.Character
	Opponent roster.Character
	Side     components.Side // spawn side of the controlled ball
	Link     Link
	Physics  simconfig.PhysicsConfig
	Width    float64
	Height   float64
}

var palette = []color.RGBA{
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff},
	{R: 0x5d, G: 0xa9, B: 0xe9, A: 0xff},
	{R: 0xe0, G: 0x6c, B: 0x75, A: 0xff},
	{R: 0x98, G: 0xc3, B: 0x79, A: 0xff},
	{R: 0xc6, G: 0x78, B: 0xdd, A: 0xff},
}

type spawner interface {
	Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry
}

type pairKey struct {
	a, b donburi.Entity
}

// Session is one match: both balls, the arena, the score and the link.
type Session struct {
	world   donburi.World
	physics simconfig.PhysicsConfig
	link    Link

	width, height float64
	gridScale     float64

	local    *donburi.Entry
	opponent *donburi.Entry
	match    *donburi.Entry
	arena    *donburi.Entry

	active   []*donburi.Entry
	resolved map[pairKey]struct{}
}

// NewSession spawns the match entries in world and places both balls.
func NewSession(world donburi.World, opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = float64(opts.Arena.Width), float64(opts.Arena.Height)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("sim: session needs a positive size")
	}
	if opts.Physics.RadiusDivisor <= 0 || opts.Physics.GridDivisions <= 0 {
		opts.Physics = simconfig.Physics
	}

	s := &Session{
		world:    world,
		physics:  opts.Physics,
		link:     opts.Link,
		width:    opts.Width,
		height:   opts.Height,
		resolved: make(map[pairKey]struct{}),
	}

	s.match = archetypes.Match.Spawn(world)
	components.Match.SetValue(s.match, components.MatchData{
		Practice: opts.Link == nil,
		Poet:     opts.Poet.Name,
		Opponent: opts.Opponent.Name,
		Arena:    opts.Arena.Name,
	})

	s.arena = archetypes.Arena.Spawn(world)
	components.Arena.SetValue(s.arena, components.ArenaData{Def: opts.Arena})

	opponentSide := components.SideRight
	if opts.Side == components.SideRight {
		opponentSide = components.SideLeft
	}
	s.local = s.spawnBall(archetypes.LocalBall, opts.Poet, true, opts.Side)
	s.opponent = s.spawnBall(archetypes.OpponentBall, opts.Opponent, false, opponentSide)

	s.Reset()
	return s, nil
}

func (s *Session) spawnBall(a spawner, char roster.Character, local bool, side components.Side) *donburi.Entry {
	e := a.Spawn(s.world)
	components.Character.SetValue(e, components.CharacterData{Character: char})
	components.Ball.SetValue(e, components.BallData{
		Mass:  char.Mass(s.physics),
		Local: local,
		Side:  side,
	})
	return e
}

// Practice reports whether the opponent is simulated locally.
func (s *Session) Practice() bool {
	return s.link == nil
}

func (s *Session) Local() *donburi.Entry    { return s.local }
func (s *Session) Opponent() *donburi.Entry { return s.opponent }

// Match returns the score singleton.
func (s *Session) Match() *components.MatchData {
	return components.Match.Get(s.match)
}

// Arena returns the active arena and sensors.
func (s *Session) Arena() *components.ArenaData {
	return components.Arena.Get(s.arena)
}

func (s *Session) GridScale() float64 { return s.gridScale }

func (s *Session) Size() (float64, float64) { return s.width, s.height }

// Active reports whether e is still part of the simulation this round.
func (s *Session) Active(e *donburi.Entry) bool {
	for _, a := range s.active {
		if a == e {
			return true
		}
	}
	return false
}

// Resize adopts a new viewport size and resets the round.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.width, s.height = width, height
	s.Reset()
}
