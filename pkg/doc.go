// Package pkg provides the libraries behind pipegrid, a steady-state flow
// calculator for pipe diagrams laid out on a grid.
//
// # Overview
//
// A diagram is a list of parts (tubes, valves, pumps, sources, drains), each
// placed at an integer grid cell with one of four rotations. Every part type
// declares a routing table: for each side flow can enter, the sides it leaves
// through, with a friction and optionally a fixed pressure. Flow is driven
// from every source at a boundary pressure and pushed through the network
// until it reaches a fixed-pressure exit, a dead end or a part already on the
// current path.
//
// The pkg directory is organized as:
//
//  1. [grid] - Angles, rotation, neighbors and routing tables
//  2. [parts] - Part types, the built-in catalog and TOML catalogs
//  3. [flow] - The traversal engine computing per-exit flows
//  4. [diagram] - Reading and validating diagram files
//  5. [pipeline] - Orchestration (load → compute)
//  6. [observability] - Hooks for metrics, with a Prometheus implementation
//
// # Architecture
//
//	diagram file (.json / .toml)
//	         ↓
//	    [diagram] package (decode + validate)
//	         ↓
//	    [parts] catalog (resolve types)
//	         ↓
//	    [flow] engine (walk from every source, merge)
//	         ↓
//	    annotated parts + faults
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/pipegrid/pkg/flow"
//	    "github.com/matzehuels/pipegrid/pkg/parts"
//	)
//
//	res := flow.Compute(parts.Builtin(), []flow.Part{
//	    {X: 0, Y: 0, Type: parts.LiquidSource},
//	    {X: 1, Y: 0, Type: parts.StraightTube},
//	    {X: 2, Y: 0, Type: parts.Drain},
//	})
//	fmt.Println(res.Parts[2].Flow) // map[180:5]
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/pipegrid/pkg/grid
// [parts]: https://pkg.go.dev/github.com/matzehuels/pipegrid/pkg/parts
// [flow]: https://pkg.go.dev/github.com/matzehuels/pipegrid/pkg/flow
// [diagram]: https://pkg.go.dev/github.com/matzehuels/pipegrid/pkg/diagram
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pipegrid/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/pipegrid/pkg/observability
package pkg
