// Package roster is the static table of playable poets. Each poet belongs to
// a group (an era) that supplies default attributes and a movement mode; a
// poet's own overrides win over the group defaults.
package roster

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/automoto/poetry-duel/shared/simconfig"
)

var ErrUnknownCharacter = errors.New("roster: unknown character")

// Attributes scale the global physics constants for one character.
type Attributes struct {
	JumpVel      float64
	Accel        float64
	Elastic      float64 // bounce efficiency against the floor
	GroundFactor float64 // steering multiplier while grounded
	Bounce       float64 // mass divisor
}

// Group is an era of poets.
type Group struct {
	Name     string
	Mode     simconfig.MovementMode
	AirJumps int
	Defaults Attributes
}

// Character is a resolved roster entry.
type Character struct {
	Name       string
	Group      string
	Mode       simconfig.MovementMode
	AirJumps   int
	Attributes Attributes
}

// Mass derives the body mass from the character's bounce attribute.
func (c Character) Mass(p simconfig.PhysicsConfig) float64 {
	if c.Attributes.Bounce <= 0 {
		return p.BaseMass
	}
	return p.BaseMass / c.Attributes.Bounce
}

// override holds per-poet deviations; zero fields keep the group default.
type override struct {
	JumpVel      float64
	Accel        float64
	Elastic      float64
	GroundFactor float64
	Bounce       float64
}

func (o override) apply(a Attributes) Attributes {
	if o.JumpVel != 0 {
		a.JumpVel = o.JumpVel
	}
	if o.Accel != 0 {
		a.Accel = o.Accel
	}
	if o.Elastic != 0 {
		a.Elastic = o.Elastic
	}
	if o.GroundFactor != 0 {
		a.GroundFactor = o.GroundFactor
	}
	if o.Bounce != 0 {
		a.Bounce = o.Bounce
	}
	return a
}

const (
	GroupRomantic   = "Romantic"
	GroupVictorian  = "Victorian"
	GroupTwentieth  = "Twentieth Century"
	DefaultCharName = "Wordsworth"
)

var groups = map[string]Group{
	GroupRomantic: {
		Name:     GroupRomantic,
		Mode:     simconfig.ModeGrounded,
		Defaults: Attributes{JumpVel: 1, Accel: 1, Elastic: 1, GroundFactor: 1, Bounce: 1},
	},
	GroupVictorian: {
		Name:     GroupVictorian,
		Mode:     simconfig.ModeAirJumps,
		Defaults: Attributes{JumpVel: 1.1, Accel: 1, Elastic: 1, GroundFactor: 1, Bounce: 1},
	},
	GroupTwentieth: {
		Name:     GroupTwentieth,
		Mode:     simconfig.ModeSurface,
		Defaults: Attributes{JumpVel: 0.1, Accel: 1, Elastic: 4, GroundFactor: 1, Bounce: 3},
	},
}

type entry struct {
	group string
	over  override
}

var poets = map[string]entry{
	"Wordsworth": {group: GroupRomantic},
	"Keats":      {group: GroupRomantic, over: override{JumpVel: 0.9, Accel: 1.2}},
	"Shelley":    {group: GroupRomantic, over: override{Elastic: 1.3}},
	"Byron":      {group: GroupRomantic, over: override{Accel: 1.4, GroundFactor: 0.8}},

	"Hardy":    {group: GroupVictorian},
	"Tennyson": {group: GroupVictorian, over: override{GroundFactor: 1.3}},
	"Browning": {group: GroupVictorian, over: override{Bounce: 1.5}},
	"Rossetti": {group: GroupVictorian, over: override{JumpVel: 1.25, Accel: 0.9}},

	"Auden": {group: GroupTwentieth},
	"Eliot": {group: GroupTwentieth, over: override{Bounce: 2.5, Elastic: 3}},
	"Plath": {group: GroupTwentieth, over: override{JumpVel: 0.3}},
	"Yeats": {group: GroupTwentieth, over: override{Accel: 1.3}},
}

// Lookup resolves a poet by name, case-insensitively.
func Lookup(name string) (Character, error) {
	want := strings.TrimSpace(name)
	for poet, e := range poets {
		if strings.EqualFold(poet, want) {
			return resolve(poet, e), nil
		}
	}
	return Character{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Character {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the character used when none is chosen.
func Default() Character {
	return MustLookup(DefaultCharName)
}

// Names lists every poet, ordered by group then name.
func Names() []string {
	names := make([]string, 0, len(poets))
	for poet := range poets {
		names = append(names, poet)
	}
	order := map[string]int{GroupRomantic: 0, GroupVictorian: 1, GroupTwentieth: 2}
	sort.Slice(names, func(i, j int) bool {
		gi, gj := order[poets[names[i]].group], order[poets[names[j]].group]
		if gi != gj {
			return gi < gj
		}
		return names[i] < names[j]
	})
	return names
}

func resolve(name string, e entry) Character {
	g := groups[e.group]
	airJumps := g.AirJumps
	if g.Mode == simconfig.ModeAirJumps && airJumps == 0 {
		airJumps = simconfig.Physics.AirJumps
	}
	return Character{
		Name:       name,
		Group:      g.Name,
		Mode:       g.Mode,
		AirJumps:   airJumps,
		Attributes: e.over.apply(g.Defaults),
	}
}

// WriteTable prints every poet with its group, movement mode and attributes.
func WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POET\tGROUP\tMODE\tJUMP\tACCEL\tELASTIC\tGROUND\tBOUNCE")
	for _, name := range Names() {
		c := MustLookup(name)
		a := c.Attributes
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\t%g\t%g\t%g\n",
			c.Name, c.Group, c.Mode, a.JumpVel, a.Accel, a.Elastic, a.GroundFactor, a.Bounce)
	}
	return tw.Flush()
}
