package parameter

import (
	"github.com/plazmaezio/OpenFrontIO/core"
)

// Magnitude is the per-weapon blast profile: tiles within Inner of the
// detonation point are always destroyed, tiles between Inner and Outer
// probabilistically.
type Magnitude struct {
	Inner int `toml:"inner"`
	Outer int `toml:"outer"`
}

// Config is the read-only tuning provider consumed by the simulation.
// Concrete numeric tables live behind it; the kernel never hard-codes
// damage curves or radii.
type Config interface {
	// DefaultWeaponSpeed is the flight speed in tiles per tick used
	// when a strike does not pin its own
	DefaultWeaponSpeed(weapon core.UnitType) int

	// Magnitude returns the blast profile for a weapon class
	Magnitude(weapon core.UnitType) Magnitude

	// AllianceBreakThreshold is the accumulated tile weight above
	// which a launch breaks diplomatic ties with the attacked player
	AllianceBreakThreshold() float64

	// StrikeDamage computes troops removed from a player owning one
	// destroyed tile, given their current troops, remaining owned
	// tile count and the reference troop ceiling for their context
	StrikeDamage(weapon core.UnitType, troops int64, tilesOwned int, maxTroops int64) int64

	// TargetableRange is the radius around launch site and destination
	// within which an in-flight weapon can be intercepted
	TargetableRange() int

	// MaxTroops is the troop ceiling for a player owning the given
	// number of tiles
	MaxTroops(tilesOwned int) int64

	// SiloCooldown is the tick count a silo stays unavailable after a
	// launch
	SiloCooldown() int

	// StructureRefreshMargin widens the detonation radius for the
	// cosmetic structure-refresh sweep
	StructureRefreshMargin() int
}
