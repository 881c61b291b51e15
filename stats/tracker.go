// Package stats provides statistics sinks for the simulation kernel:
// an in-memory tracker for gameplay queries and tests, and a
// SQLite-backed recorder for post-match analysis.
package stats

import (
	"github.com/plazmaezio/OpenFrontIO/core"
	"github.com/plazmaezio/OpenFrontIO/engine"
)

// Tracker counts launch and impact events in memory. Written from the
// single scheduler thread, so no synchronization.
type Tracker struct {
	launches map[countKey]int
	impacts  map[countKey]int
}

type countKey struct {
	attacker engine.PlayerID
	target   engine.PlayerID // 0 for unclaimed
	weapon   core.UnitType
}

func NewTracker() *Tracker {
	return &Tracker{
		launches: make(map[countKey]int),
		impacts:  make(map[countKey]int),
	}
}

func key(attacker, target *engine.Player, weapon core.UnitType) countKey {
	k := countKey{attacker: attacker.ID(), weapon: weapon}
	if target != nil {
		k.target = target.ID()
	}
	return k
}

func (t *Tracker) RecordLaunch(_ engine.Tick, attacker, target *engine.Player, weapon core.UnitType) {
	t.launches[key(attacker, target, weapon)]++
}

func (t *Tracker) RecordImpact(_ engine.Tick, attacker, target *engine.Player, weapon core.UnitType) {
	t.impacts[key(attacker, target, weapon)]++
}

// Launches counts recorded launches by attacker against target with
// the given weapon
func (t *Tracker) Launches(attacker, target *engine.Player, weapon core.UnitType) int {
	return t.launches[key(attacker, target, weapon)]
}

func (t *Tracker) Impacts(attacker, target *engine.Player, weapon core.UnitType) int {
	return t.impacts[key(attacker, target, weapon)]
}

// TotalLaunches counts every launch by a player
func (t *Tracker) TotalLaunches(attacker *engine.Player) int {
	n := 0
	for k, v := range t.launches {
		if k.attacker == attacker.ID() {
			n += v
		}
	}
	return n
}
