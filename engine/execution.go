package engine

// Execution is the polymorphic unit of scheduled behavior. Created by
// external game logic, added to the Executor, initialized exactly
// once, ticked every pass, and evicted the first pass after IsActive
// reports false. Inactive is terminal: an execution must never resume
// work once it has reported inactive.
type Execution interface {
	// Init binds the execution to the live world. Called exactly once
	// by the scheduler before the first Tick; calling any other method
	// first is a programming error.
	Init(g *Game, tick Tick)

	// Tick performs one simulation step's work. Must be safe to call
	// repeatedly and must check internal state before touching
	// resources that may not exist yet.
	Tick(tick Tick)

	// IsActive is the liveness query consulted after every tick
	IsActive() bool

	// Owner is the player the execution acts for
	Owner() *Player

	// ActiveDuringSpawnPhase reports whether the execution runs while
	// the match is still placing spawns
	ActiveDuringSpawnPhase() bool
}
