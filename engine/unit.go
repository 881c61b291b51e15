package engine

import (
	"github.com/plazmaezio/OpenFrontIO/core"
)

// TrajectoryTile is one step of a precomputed flight path. Targetable
// tiles lie within the intercept range of the launch site or the
// destination and are visible to defensive systems.
type TrajectoryTile struct {
	Tile       TileRef
	Targetable bool
}

// Unit is a world object owned by exactly one player. Deletion removes
// it from world state; ownership never changes by reassignment.
type Unit struct {
	id    uint32
	typ   core.UnitType
	owner *Player
	tile  TileRef

	active     bool
	targetable bool

	hasTarget  bool
	targetTile TileRef

	// trajectory is set for launched weapons; trajectoryIndex is the
	// progress cursor used by external interpolation
	trajectory      []TrajectoryTile
	trajectoryIndex int

	// troops is transported cargo (transport ships, attacks in transit)
	troops int64

	cooldownUntil Tick
	dirty         bool
	deleted       bool
}

func (u *Unit) ID() uint32          { return u.id }
func (u *Unit) Type() core.UnitType { return u.typ }
func (u *Unit) Owner() *Player      { return u.owner }
func (u *Unit) Tile() TileRef       { return u.tile }
func (u *Unit) IsActive() bool      { return u.active }

// Deactivate marks the unit inactive without removing it from world
// state. Interception uses this; the owning execution observes it on
// its next tick.
func (u *Unit) Deactivate() { u.active = false }

// MoveTo relocates the unit one step; tile-discrete, no interpolation
func (u *Unit) MoveTo(t TileRef) { u.tile = t }

func (u *Unit) Targetable() bool     { return u.targetable }
func (u *Unit) SetTargetable(v bool) { u.targetable = v }

func (u *Unit) Trajectory() []TrajectoryTile { return u.trajectory }

// SetTrajectory attaches the precomputed flight path. Set once, at
// launch.
func (u *Unit) SetTrajectory(traj []TrajectoryTile) { u.trajectory = traj }

// SetTargetTile pins the destination a launched weapon flies toward
func (u *Unit) SetTargetTile(t TileRef) {
	u.targetTile = t
	u.hasTarget = true
}

func (u *Unit) TrajectoryIndex() int     { return u.trajectoryIndex }
func (u *Unit) SetTrajectoryIndex(i int) { u.trajectoryIndex = i }

func (u *Unit) TargetTile() (TileRef, bool) { return u.targetTile, u.hasTarget }

func (u *Unit) Troops() int64     { return u.troops }
func (u *Unit) SetTroops(n int64) { u.troops = n }

// SetCooldown makes a launch structure unavailable until the given tick
func (u *Unit) SetCooldown(until Tick) { u.cooldownUntil = until }

func (u *Unit) OnCooldown(now Tick) bool { return now < u.cooldownUntil }

// MarkDirty flags the unit for a visual refresh. Cosmetic; the core
// only invokes the hook.
func (u *Unit) MarkDirty() { u.dirty = true }

func (u *Unit) Dirty() bool { return u.dirty }

// Delete removes the unit from world state. A non-nil killer gets the
// kill attributed.
func (u *Unit) Delete(by *Player) {
	if u.deleted {
		return
	}
	u.deleted = true
	u.active = false
	u.owner.removeUnit(u)
	if by != nil && by != u.owner {
		by.unitKills++
	}
}
