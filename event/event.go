package event

import (
	"github.com/plazmaezio/OpenFrontIO/core"
)

// Type discriminates display events surfaced by the scheduler
type Type int

const (
	// TypeIncomingStrike alerts the destination's owner that a weapon
	// has been launched against their territory
	TypeIncomingStrike Type = iota

	// TypeStrikeLaunched narrates a successful launch
	TypeStrikeLaunched

	// TypeStrikeCancelled narrates a cancelled strike (no launch site,
	// interception, or diplomatic cancellation)
	TypeStrikeCancelled

	// TypeStrikeDetonated narrates a detonation
	TypeStrikeDetonated

	// TypeAllianceFormed narrates an accepted alliance request
	TypeAllianceFormed
)

// DisplayEvent is a structured message for downstream presentation.
// The core never renders; it only collects these per tick.
type DisplayEvent struct {
	Type Type

	// PlayerID addresses the event to one player; 0 broadcasts
	PlayerID uint16

	// Tile is the relevant map position, when one exists
	Tile uint32

	Weapon  core.UnitType
	Message string
}
