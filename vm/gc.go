package vm

import "runtime/debug"

// disableGC turns the garbage collector off for the duration of a run
// and returns a closure that restores whatever percentage was in effect
// before: memory for segments is allocated as programs map and free
// them, but the dispatch loop itself should not pay for a collection
// mid-instruction.
func disableGC() func() {
	prior := debug.SetGCPercent(-1)
	return func() {
		debug.SetGCPercent(prior)
	}
}
