// Package flow computes steady-state flow through a process diagram.
//
// # Overview
//
// A diagram is a list of [Part]s placed on an integer grid. Each part has a
// type resolved through a [parts.Registry] and a rotation. Starting from every
// source part, the [Engine] walks outward through matching connections: an
// exit of one part connects to the neighbor on that side when the neighbor's
// rotated routing table accepts fluid from the opposite side.
//
// At every exit the engine records a flow value:
//
//   - A fixed-pressure exit drives (boundary - pressure) / friction, where
//     friction is accumulated along the path from the source. Exits whose
//     pressure meets or exceeds the boundary pressure carry nothing.
//   - An internal exit recurses into its neighbor and reports the sum of the
//     flows the neighbor recorded at the exits reachable from that side, so
//     branches recombine.
//   - A missing neighbor, or one already entered during the current walk,
//     ends the branch with no additional flow.
//
// Each source is walked independently from the input list and the walks are
// added together per part, so parts shared by several sources accumulate the
// flow of all of them.
//
// # Cycles
//
// A part is entered at most once per source walk. Re-entering a part along a
// loop terminates that branch, which bounds recursion depth by the number of
// parts. Flow around loops is therefore not solved analytically.
//
// # Faults
//
// Problems local to one exit never abort a computation. A driving exit with
// zero accumulated friction and parts with unknown types are reported in
// [Result.Faults]; the affected exit keeps the flow it had and the rest of the
// diagram is computed normally.
//
// # Concurrency
//
// Compute keeps all traversal state local to the call. An [Engine] holds no
// mutable state and may be shared by goroutines.
package flow
