package engine

import (
	"github.com/plazmaezio/OpenFrontIO/event"
)

// Executor drives all live executions in lockstep. Insertion order is
// preserved across ticks and is the tie-break whenever executions
// compete for the same resource within one pass.
type Executor struct {
	g      *Game
	execs  []Execution
	inited map[Execution]struct{}
}

func NewExecutor(g *Game) *Executor {
	return &Executor{
		g:      g,
		inited: make(map[Execution]struct{}),
	}
}

// AddExecution appends an execution in the queued state. Init does not
// run synchronously; an execution added during pass T first runs at
// pass T+1.
func (x *Executor) AddExecution(e Execution) {
	x.execs = append(x.execs, e)
}

// Executions exposes the live list in insertion order. Callers must
// not reorder it.
func (x *Executor) Executions() []Execution { return x.execs }

// ActiveCount reports how many executions are still live
func (x *Executor) ActiveCount() int {
	n := 0
	for _, e := range x.execs {
		if e.IsActive() {
			n++
		}
	}
	return n
}

// ExecuteNextTick advances the world one simulation step: initialize
// newly added executions, tick every previously initialized active
// execution in insertion order, evict inactive ones, and return the
// display events raised during the pass.
//
// Init and the first tick are separate passes: an execution
// initialized during pass T receives its first Tick at pass T+1. An
// execution therefore spawns its world effects two passes after being
// added, and a cancellation landing between those passes reliably
// prevents the spawn.
func (x *Executor) ExecuteNextTick() []event.DisplayEvent {
	x.g.ticks++
	tick := x.g.ticks

	// Snapshot so executions added mid-pass wait for the next one
	pass := x.execs

	fresh := make(map[Execution]struct{})
	for _, e := range pass {
		if _, ok := x.inited[e]; ok {
			continue
		}
		if !e.IsActive() {
			continue // cancelled while still queued, never initialize
		}
		e.Init(x.g, tick)
		x.inited[e] = struct{}{}
		fresh[e] = struct{}{}
	}

	for _, e := range pass {
		if !e.IsActive() {
			continue
		}
		if _, ok := x.inited[e]; !ok {
			continue
		}
		if _, ok := fresh[e]; ok {
			continue
		}
		if x.g.InSpawnPhase() && !e.ActiveDuringSpawnPhase() {
			continue
		}
		e.Tick(tick)
	}

	// Evict in place, preserving order of survivors
	live := x.execs[:0]
	for _, e := range x.execs {
		if e.IsActive() {
			live = append(live, e)
		} else {
			delete(x.inited, e)
		}
	}
	x.execs = live

	return x.g.consumeEvents()
}
