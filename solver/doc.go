// Package solver drives a maze through construction, search and
// backtracking as one step-wise state machine.
//
// Modes:
//
//	Setup ──construction done──▶ None ──SetMode──▶ Depth | Breadth | Manual
//	  ▲                           ▲                        │ exit reached
//	  └──────── Reset ────────────┤                        ▼
//	                              └──── start reached ── Backtrack
//
// A presentation loop calls Tick once per frame and routes input to
// SetBias, SetMode, StepManual, ResetSearch and Reset. Calls that do not fit
// the current mode return false and change nothing, so a loop may call them
// unconditionally.
//
// Depth-first and breadth-first search differ only in the order cells are
// explored: a perfect maze has exactly one path between two cells, so both
// recover the same path and PathLength equals the exit's tree distance from
// the start.
//
// A Controller is not safe for concurrent use.
package solver
