package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/automoto/poetry-duel/shared/simconfig"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		group string
		mode  simconfig.MovementMode
		attrs Attributes
	}{
		{"wordsworth", GroupRomantic, simconfig.ModeGrounded, Attributes{JumpVel: 1, Accel: 1, Elastic: 1, GroundFactor: 1, Bounce: 1}},
		{"HARDY", GroupVictorian, simconfig.ModeAirJumps, Attributes{JumpVel: 1.1, Accel: 1, Elastic: 1, GroundFactor: 1, Bounce: 1}},
		{"  Auden ", GroupTwentieth, simconfig.ModeSurface, Attributes{JumpVel: 0.1, Accel: 1, Elastic: 4, GroundFactor: 1, Bounce: 3}},
		{"Eliot", GroupTwentieth, simconfig.ModeSurface, Attributes{JumpVel: 0.1, Accel: 1, Elastic: 3, GroundFactor: 1, Bounce: 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if c.Group != tt.group || c.Mode != tt.mode {
				t.Errorf("group/mode = %s/%v, want %s/%v", c.Group, c.Mode, tt.group, tt.mode)
			}
			if c.Attributes != tt.attrs {
				t.Errorf("attributes = %+v, want %+v", c.Attributes, tt.attrs)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("Milton"); !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("err = %v, want ErrUnknownCharacter", err)
	}
}

func TestAirJumpCharges(t *testing.T) {
	if c := MustLookup("Hardy"); c.AirJumps != simconfig.Physics.AirJumps {
		t.Errorf("Hardy air jumps = %d, want %d", c.AirJumps, simconfig.Physics.AirJumps)
	}
	if c := MustLookup("Keats"); c.AirJumps != 0 {
		t.Errorf("Keats air jumps = %d, want 0", c.AirJumps)
	}
}

func TestMass(t *testing.T) {
	p := simconfig.Physics
	if m := MustLookup("Wordsworth").Mass(p); m != p.BaseMass {
		t.Errorf("Wordsworth mass = %v, want %v", m, p.BaseMass)
	}
	if m := MustLookup("Auden").Mass(p); m != p.BaseMass/3 {
		t.Errorf("Auden mass = %v, want %v", m, p.BaseMass/3)
	}
}

func TestNamesOrderedByGroup(t *testing.T) {
	names := Names()
	if len(names) != len(poets) {
		t.Fatalf("len = %d, want %d", len(names), len(poets))
	}
	if names[0] != "Byron" {
		t.Errorf("first = %s, want Byron", names[0])
	}
	last := -1
	order := map[string]int{GroupRomantic: 0, GroupVictorian: 1, GroupTwentieth: 2}
	for _, n := range names {
		g := order[MustLookup(n).Group]
		if g < last {
			t.Fatalf("%s out of group order", n)
		}
		last = g
	}
}

func TestDefault(t *testing.T) {
	if Default().Name != DefaultCharName {
		t.Errorf("Default = %s", Default().Name)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(Names())+1 {
		t.Fatalf("got %d lines, want header plus %d poets", len(lines), len(Names()))
	}
	if !strings.HasPrefix(lines[0], "POET") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Byron") || !strings.Contains(lines[1], "grounded") {
		t.Errorf("first row = %q", lines[1])
	}
}
