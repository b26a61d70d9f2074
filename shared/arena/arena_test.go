package arena

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/poetry-duel/shared/simconfig"
)

func tmx(props string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0">
 <properties>` + props + `
 </properties>
</map>
`)}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"arenas/wrap.tmx": tmx(`
  <property name="right" value="loop"/>
  <property name="top" value="WALL"/>
  <property name="left" value="LOOP"/>
  <property name="bottom" value="REMOVE"/>
  <property name="gravity_y" type="float" value="-3"/>`),
		"arenas/partial.tmx": tmx(`
  <property name="top" value="HOLE"/>`),
		"arenas/broken.tmx": tmx(`
  <property name="left" value="TRAMPOLINE"/>`),
	}
}

func TestLoad(t *testing.T) {
	def, err := Load(testFS(), "wrap")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := [simconfig.EdgeCount]simconfig.WallMode{
		simconfig.EdgeRight:  simconfig.WallLoop,
		simconfig.EdgeTop:    simconfig.WallSolid,
		simconfig.EdgeLeft:   simconfig.WallLoop,
		simconfig.EdgeBottom: simconfig.WallRemove,
	}
	if def.Edges != want {
		t.Errorf("edges = %v, want %v", def.Edges, want)
	}
	if def.Width != 160 || def.Height != 128 {
		t.Errorf("size = %dx%d, want 160x128", def.Width, def.Height)
	}
	if def.GravityY != -3 {
		t.Errorf("gravity_y = %v, want -3", def.GravityY)
	}
	if def.GravityX != simconfig.Physics.GravityX {
		t.Errorf("gravity_x = %v, want default", def.GravityX)
	}
}

func TestLoadDefaultsMissingEdgesToWall(t *testing.T) {
	def, err := Load(testFS(), "partial")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for e := simconfig.Edge(0); e < simconfig.EdgeCount; e++ {
		want := simconfig.WallSolid
		if e == simconfig.EdgeTop {
			want = simconfig.WallHole
		}
		if def.Edge(e) != want {
			t.Errorf("%s = %s, want %s", e, def.Edge(e), want)
		}
	}
	if def.GravityY != simconfig.Physics.GravityY {
		t.Errorf("gravity_y = %v, want default", def.GravityY)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(testFS(), "missing"); !errors.Is(err, ErrUnknownArena) {
		t.Errorf("missing: err = %v, want ErrUnknownArena", err)
	}
	if _, err := Load(testFS(), "broken"); !errors.Is(err, ErrBadEdge) {
		t.Errorf("broken: err = %v, want ErrBadEdge", err)
	}
}

func TestNames(t *testing.T) {
	names, err := Names(testFS())
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	want := []string{"broken", "partial", "wrap"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestSensors(t *testing.T) {
	const w, h, r = 800.0, 600.0, 25.0
	s := NewSensors(Classic(), w, h, r, simconfig.Physics)

	resting := s.NewBody(400, h-r-1, r)
	if !s.Touching(resting, SensorFloor) {
		t.Error("resting ball not touching floor")
	}

	midair := s.NewBody(400, 300, r)
	if s.Touching(midair, SensorFloor, SensorCeiling, SensorSide) {
		t.Error("mid-air ball touching a sensor")
	}

	s.Move(midair, 400, r+1)
	if !s.Touching(midair, SensorCeiling) {
		t.Error("ball under ceiling not touching it")
	}

	// Classic sides loop, so no side sensors exist.
	side := s.NewBody(r+1, 300, r)
	if s.Touching(side, SensorSide) {
		t.Error("side sensor present on a LOOP edge")
	}
}

func TestSensorsRemoveAndRestore(t *testing.T) {
	const w, h, r = 800.0, 600.0, 25.0
	s := NewSensors(Classic(), w, h, r, simconfig.Physics)
	body := s.NewBody(400, h-r-1, r)

	s.Remove(body)
	if s.Touching(body, SensorFloor) {
		t.Error("removed body still touching the floor")
	}
	for _, obj := range s.Space.Objects() {
		if obj == body {
			t.Fatal("removed body still in the space")
		}
	}
	s.Move(body, 400, 300)

	s.Restore(body, 400, h-r-1)
	if body.X != 400-r || body.Y != h-2*r-1 {
		t.Errorf("restored body at %v,%v", body.X, body.Y)
	}
	if !s.Touching(body, SensorFloor) {
		t.Error("restored body not touching the floor")
	}
}

func TestSensorTag(t *testing.T) {
	tests := map[simconfig.Edge]string{
		simconfig.EdgeBottom: SensorFloor,
		simconfig.EdgeTop:    SensorCeiling,
		simconfig.EdgeLeft:   SensorSide,
		simconfig.EdgeRight:  SensorSide,
	}
	for e, want := range tests {
		if got := SensorTag(e); got != want {
			t.Errorf("SensorTag(%s) = %s, want %s", e, got, want)
		}
	}
}
