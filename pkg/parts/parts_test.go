package parts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pipegrid/pkg/errors"
	"github.com/matzehuels/pipegrid/pkg/grid"
)

func TestBuiltinIsValid(t *testing.T) {
	c := Builtin()
	if err := c.Validate(); err != nil {
		t.Fatalf("Builtin().Validate() = %v", err)
	}
	for _, name := range []string{StraightTube, ElbowTube, TeeTube, CrossTube, LiquidSource, Drain} {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("Builtin() missing %s", name)
		}
	}
}

func TestBuiltinIndependent(t *testing.T) {
	a := Builtin()
	b := Builtin()
	if err := a.Add(Type{Name: "Extra", Routes: grid.RoutingTable{}}); err != nil {
		t.Fatalf("Add() = %v", err)
	}
	if _, ok := b.Lookup("Extra"); ok {
		t.Error("catalogs returned by Builtin share state")
	}
}

func TestTeeTubeRoutes(t *testing.T) {
	tee, _ := Builtin().Lookup(TeeTube)
	want := []grid.Exit{
		{Out: grid.Down, Friction: tubeFriction},
		{Out: grid.Left, Friction: tubeFriction},
	}
	if diff := cmp.Diff(want, tee.Routes.Exits(grid.Right)); diff != "" {
		t.Errorf("TeeTube exits from right (-want +got):\n%s", diff)
	}
	if tee.Routes.Accepts(grid.Up) {
		t.Error("TeeTube accepts from up, want closed side")
	}
}

func TestSourceEntry(t *testing.T) {
	src, _ := Builtin().Lookup(LiquidSource)
	if in, ok := src.SourceEntry(); !ok || in != grid.Right {
		t.Errorf("SourceEntry() = (%d, %v), want (%d, true)", in, ok, grid.Right)
	}
	tube, _ := Builtin().Lookup(StraightTube)
	if _, ok := tube.SourceEntry(); ok {
		t.Error("SourceEntry() on non-source = true, want false")
	}
}

func TestTypeValidate(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		code errors.Code
	}{
		{"ok", Type{Name: "Tube", Routes: grid.RoutingTable{grid.Left: {{Out: grid.Right}}}}, ""},
		{"bad name", Type{Name: "bad name"}, errors.ErrCodeInvalidCatalog},
		{"bad angle", Type{Name: "Odd", Routes: grid.RoutingTable{45: {{Out: grid.Right}}}}, errors.ErrCodeInvalidCatalog},
		{"source without entry", Type{Name: "Src", IsSource: true, Routes: grid.RoutingTable{}}, errors.ErrCodeInvalidCatalog},
		{"source with two entries", Type{Name: "Src", IsSource: true, Routes: grid.RoutingTable{
			grid.Left:  {{Out: grid.Left}},
			grid.Right: {{Out: grid.Right}},
		}}, errors.ErrCodeInvalidCatalog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestCatalogMerge(t *testing.T) {
	base := Builtin()
	override := NewCatalog(Type{Name: StraightTube, Routes: grid.RoutingTable{
		grid.Left: {{Out: grid.Right, Friction: 9}},
	}})
	base.Merge(override)

	got, _ := base.Lookup(StraightTube)
	if f := got.Routes.Exits(grid.Left)[0].Friction; f != 9 {
		t.Errorf("merged StraightTube friction = %v, want 9", f)
	}
	if base.Len() != len(builtinTypes()) {
		t.Errorf("Len() = %d, want %d", base.Len(), len(builtinTypes()))
	}
	base.Merge(nil)
	base.Merge(base)
}

const sampleCatalog = `
[[type]]
name = "HeatExchanger"

  [[type.route]]
  in = 270
  exits = [{ out = 90, friction = 4.0 }]

  [[type.route]]
  in = 90
  exits = [{ out = 270, friction = 4.0 }]

[[type]]
name = "Fermenter"

  [[type.route]]
  in = 180
  exits = [{ out = 0, friction = 1.5, pressure = 3.0 }]

[[type]]
name = "Tap"
source = true

  [[type.route]]
  in = 90
  exits = [{ out = 90 }]
`

func TestReadCatalog(t *testing.T) {
	c, err := ReadCatalog(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("ReadCatalog() = %v", err)
	}
	if diff := cmp.Diff([]string{"Fermenter", "HeatExchanger", "Tap"}, c.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}

	fermenter, _ := c.Lookup("Fermenter")
	want := grid.RoutingTable{
		grid.Down: {{Out: grid.Up, Friction: 1.5, Pressure: grid.Pressure(3)}},
	}
	if diff := cmp.Diff(want, fermenter.Routes); diff != "" {
		t.Errorf("Fermenter routes (-want +got):\n%s", diff)
	}

	tap, _ := c.Lookup("Tap")
	if !tap.IsSource {
		t.Error("Tap.IsSource = false, want true")
	}
}

func TestReadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"syntax", `[[type]`},
		{"unknown key", "[[type]]\nname = \"A\"\ncolour = \"red\"\n"},
		{"duplicate type", "[[type]]\nname = \"A\"\n[[type]]\nname = \"A\"\n"},
		{"duplicate entry", "[[type]]\nname = \"A\"\n[[type.route]]\nin = 0\n[[type.route]]\nin = 0\n"},
		{"invalid angle", "[[type]]\nname = \"A\"\n[[type.route]]\nin = 45\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCatalog(strings.NewReader(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
				t.Errorf("ReadCatalog() = %v, want %s", err, errors.ErrCodeInvalidCatalog)
			}
		})
	}
}

func TestLoadCatalogMissing(t *testing.T) {
	_, err := LoadCatalog(t.TempDir() + "/missing.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadCatalog() = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestWriteCatalogRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCatalog(&buf, Builtin()); err != nil {
		t.Fatalf("WriteCatalog() = %v", err)
	}
	c, err := ReadCatalog(&buf)
	if err != nil {
		t.Fatalf("ReadCatalog() = %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(Builtin().Names(), c.Names()); diff != "" {
		t.Errorf("round trip names (-want +got):\n%s", diff)
	}
	drain, _ := c.Lookup(Drain)
	if p, ok := drain.Routes.Exits(grid.Left)[0].Bounded(); !ok || p != 0 {
		t.Errorf("Drain pressure = (%v, %v), want (0, true)", p, ok)
	}
}
