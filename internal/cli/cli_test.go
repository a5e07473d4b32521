package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pipegrid/pkg/observability"
	"github.com/matzehuels/pipegrid/pkg/parts"
	"github.com/matzehuels/pipegrid/pkg/pipeline"
)

const lineJSON = `{"name": "line", "parts": [
  {"x": 0, "y": 0, "type": "LiquidSource"},
  {"x": 1, "y": 0, "type": "StraightTube"},
  {"x": 2, "y": 0, "type": "Drain"}
]}`

const mysteryJSON = `{"name": "mystery", "parts": [
  {"x": 0, "y": 0, "type": "LiquidSource"},
  {"x": 1, "y": 0, "type": "Mystery"}
]}`

const slowDrainTOML = `
[[type]]
name = "Drain"

  [[type.route]]
  in = 270
  exits = [{ out = 180, friction = 3.0, pressure = 0.0 }]
`

// isolate keeps the user's config directory and environment out of a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(pipeline.EnvCatalog, "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command and returns its output and logs.
func execute(t *testing.T, args ...string) (out, logs string, err error) {
	t.Helper()
	var outBuf, logBuf bytes.Buffer
	c := New(&logBuf, LogInfo)
	c.Out = &outBuf
	root := c.RootCommand()
	root.SetErr(&logBuf)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return outBuf.String(), logBuf.String(), err
}

func TestComputeCommand(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "line.json", lineJSON)

	out, _, err := execute(t, "compute", path)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for _, want := range []string{"line", "LiquidSource", "right 5", "down 5", "3 parts", "1 sources"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestComputePressureFlag(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "line.json", lineJSON)

	out, _, err := execute(t, "compute", "--pressure", "20", path)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !strings.Contains(out, "down 10") {
		t.Errorf("output missing drain flow of 10:\n%s", out)
	}
}

func TestComputeMultiple(t *testing.T) {
	dir := isolate(t)
	a := writeFile(t, dir, "line.json", lineJSON)
	b := writeFile(t, dir, "mystery.json", mysteryJSON)

	out, _, err := execute(t, "compute", a, b)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !strings.Contains(out, "line") || !strings.Contains(out, "mystery") {
		t.Errorf("output missing a diagram:\n%s", out)
	}
	if !strings.Contains(out, "Mystery") {
		t.Errorf("output missing fault for Mystery:\n%s", out)
	}
}

func TestComputeStrict(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "mystery.json", mysteryJSON)

	_, _, err := execute(t, "compute", "--strict", path)
	var ef errFaults
	if !errors.As(err, &ef) {
		t.Fatalf("compute --strict = %v, want errFaults", err)
	}
	if ef.faults != 1 || ef.diagrams != 1 {
		t.Errorf("errFaults = %+v, want 1 fault in 1 diagram", ef)
	}
}

func TestComputeMissingFile(t *testing.T) {
	dir := isolate(t)
	if _, _, err := execute(t, "compute", filepath.Join(dir, "none.json")); err == nil {
		t.Error("compute of a missing file succeeded")
	}
}

func TestCheckCommand(t *testing.T) {
	dir := isolate(t)
	good := writeFile(t, dir, "line.json", lineJSON)
	bad := writeFile(t, dir, "mystery.json", mysteryJSON)

	out, _, err := execute(t, "check", good)
	if err != nil {
		t.Fatalf("check good: %v", err)
	}
	if !strings.Contains(out, "line: 3 parts") {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "check", good, bad)
	if err == nil {
		t.Fatal("check with unknown type succeeded")
	}
	if !strings.Contains(out, `unknown type "Mystery"`) {
		t.Errorf("output missing unknown type:\n%s", out)
	}
}

func TestPartsCommand(t *testing.T) {
	isolate(t)
	n := parts.Builtin().Len()

	out, _, err := execute(t, "parts")
	if err != nil {
		t.Fatalf("parts: %v", err)
	}
	for _, want := range []string{parts.Drain, parts.LiquidSource, "source"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	out, _, err = execute(t, "parts", "--toml")
	if err != nil {
		t.Fatalf("parts --toml: %v", err)
	}
	c, err := parts.ReadCatalog(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadCatalog(parts --toml): %v", err)
	}
	if c.Len() != n {
		t.Errorf("round-tripped catalog has %d types, want %d", c.Len(), n)
	}
}

func TestCatalogSources(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "line.json", lineJSON)
	slow := writeFile(t, dir, "slow.toml", slowDrainTOML)

	tests := []struct {
		name  string
		setup func(t *testing.T) []string
	}{
		{"flag", func(t *testing.T) []string { return []string{"--catalog", slow} }},
		{"env", func(t *testing.T) []string {
			t.Setenv(pipeline.EnvCatalog, slow)
			return nil
		}},
		{"config dir", func(t *testing.T) []string {
			writeFile(t, dir, filepath.Join(appName, catalogFileName), slowDrainTOML)
			return nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"compute"}, tt.setup(t)...)
			out, _, err := execute(t, append(args, path)...)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			if !strings.Contains(out, "down 2.5") {
				t.Errorf("override not applied:\n%s", out)
			}
		})
	}
}

func TestMetricsFlag(t *testing.T) {
	dir := isolate(t)
	t.Cleanup(observability.Reset)
	path := writeFile(t, dir, "line.json", lineJSON)

	_, logs, err := execute(t, "--metrics", "compute", path)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for _, want := range []string{"pipegrid_computations_total", "pipegrid_diagram_loads_total{result=ok}"} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}
