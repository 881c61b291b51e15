// Package execution holds the concrete behaviors scheduled by the
// engine executor. StrikeExecution is the guided-munition execution;
// assaults, construction and transports are peer implementations of
// the same contract.
package execution

import (
	"fmt"

	"github.com/plazmaezio/OpenFrontIO/core"
	"github.com/plazmaezio/OpenFrontIO/engine"
	"github.com/plazmaezio/OpenFrontIO/event"
	"github.com/plazmaezio/OpenFrontIO/physics"
)

// destroyedSetSalt decorrelates the detonation draw from other
// consumers seeded off the same tick
const destroyedSetSalt = 0x5EED_00D5

// StrikeSpec describes a strike to queue. Source nil means the launch
// site is resolved at spawn time; Speed 0 means the config default.
type StrikeSpec struct {
	Weapon    core.UnitType
	Owner     *engine.Player
	Target    engine.TileRef
	Source    *engine.TileRef
	Speed     int
	WaitTicks int
}

// StrikeExecution advances a ballistic weapon strike through
// queued -> in-flight -> detonated/cancelled. One unit of work per
// tick: the spawn tick never also moves the weapon.
type StrikeExecution struct {
	weapon    core.UnitType
	owner     *engine.Player
	dst       engine.TileRef
	src       engine.TileRef
	srcPinned bool
	speed     int
	waitTicks int

	g           *engine.Game
	initialized bool
	active      bool

	pf   *physics.ParabolaPathFinder
	unit *engine.Unit

	// toDestroy caches the detonation tile set; immutable once computed
	toDestroy   []engine.TileRef
	setComputed bool
}

func NewStrikeExecution(spec StrikeSpec) *StrikeExecution {
	s := &StrikeExecution{
		weapon:    spec.Weapon,
		owner:     spec.Owner,
		dst:       spec.Target,
		speed:     spec.Speed,
		waitTicks: spec.WaitTicks,
		active:    true,
	}
	if spec.Source != nil {
		s.src = *spec.Source
		s.srcPinned = true
	}
	return s
}

// Init binds the execution to the live world and resolves the default
// speed. One-time setup only; the launch itself is tick work.
func (s *StrikeExecution) Init(g *engine.Game, _ engine.Tick) {
	s.g = g
	if s.speed <= 0 {
		s.speed = g.Config().DefaultWeaponSpeed(s.weapon)
	}
	s.initialized = true
}

func (s *StrikeExecution) Tick(tick engine.Tick) {
	if !s.active {
		return
	}
	if !s.initialized {
		panic("execution: strike ticked before init")
	}

	if s.unit == nil {
		s.launch(tick)
		return
	}

	if !s.unit.IsActive() {
		// Intercepted by an external actor: terminal, no detonation
		s.active = false
		log := s.g.Log()
		log.Debug().
			Str("weapon", s.weapon.String()).
			Str("owner", s.owner.Name()).
			Msg("strike intercepted in flight")
		s.g.PushEvent(event.DisplayEvent{
			Type:     event.TypeStrikeCancelled,
			PlayerID: uint16(s.owner.ID()),
			Tile:     uint32(s.dst),
			Weapon:   s.weapon,
			Message:  "weapon intercepted",
		})
		return
	}

	if s.waitTicks > 0 {
		// Launch-delay throttling, not a failure
		s.waitTicks--
		return
	}

	next, arrived := s.pf.Next(s.speed)
	if arrived {
		s.detonate(tick)
		return
	}
	s.unit.MoveTo(next)
	s.unit.SetTargetable(s.withinInterceptRange(next))
	s.unit.SetTrajectoryIndex(s.pf.Index())
}

// launch performs the queued -> in-flight transition: resolve the
// launch site, build the trajectory, spawn the unit, fire the
// launch-time side effects.
func (s *StrikeExecution) launch(tick engine.Tick) {
	spawn, ok := s.owner.CanBuild(s.weapon, s.dst)
	if !ok {
		log := s.g.Log()
		log.Warn().
			Str("weapon", s.weapon.String()).
			Str("owner", s.owner.Name()).
			Uint32("target", uint32(s.dst)).
			Msg("no launch site available, strike cancelled")
		s.active = false
		s.g.PushEvent(event.DisplayEvent{
			Type:     event.TypeStrikeCancelled,
			PlayerID: uint16(s.owner.ID()),
			Tile:     uint32(s.dst),
			Weapon:   s.weapon,
			Message:  "no launch site available",
		})
		return
	}
	if !s.srcPinned {
		s.src = spawn
		s.srcPinned = true
	}

	curved := s.weapon != core.UnitMIRVWarhead
	s.pf = physics.NewParabolaPathFinder(s.g.Map(), s.src, s.dst, curved)

	traj := make([]engine.TrajectoryTile, 0, len(s.pf.Path()))
	for _, t := range s.pf.Path() {
		traj = append(traj, engine.TrajectoryTile{
			Tile:       t,
			Targetable: s.withinInterceptRange(t),
		})
	}

	s.unit = s.owner.BuildUnit(s.weapon, s.src)
	s.unit.SetTargetTile(s.dst)
	s.unit.SetTrajectory(traj)
	s.unit.SetTargetable(traj[0].Targetable)

	if s.weapon != core.UnitMIRVWarhead {
		s.breakAlliances()
	}

	if target := s.g.Owner(s.dst); target != nil {
		s.g.PushEvent(event.DisplayEvent{
			Type:     event.TypeIncomingStrike,
			PlayerID: uint16(target.ID()),
			Tile:     uint32(s.dst),
			Weapon:   s.weapon,
			Message:  fmt.Sprintf("%s launched a %s against you", s.owner.Name(), s.weapon),
		})
		s.g.Stats().RecordLaunch(tick, s.owner, target, s.weapon)
	}

	// Silo reload: launch-capable structure at the source goes cold
	for _, silo := range s.owner.Units(core.UnitMissileSilo) {
		if silo.Tile() == s.src {
			silo.SetCooldown(tick + engine.Tick(s.g.Config().SiloCooldown()))
		}
	}

	s.g.PushEvent(event.DisplayEvent{
		Type:     event.TypeStrikeLaunched,
		PlayerID: uint16(s.owner.ID()),
		Tile:     uint32(s.src),
		Weapon:   s.weapon,
		Message:  fmt.Sprintf("%s launched", s.weapon),
	})
}

// detonate applies the area effects at the destination and terminates
// the execution.
func (s *StrikeExecution) detonate(tick engine.Tick) {
	g := s.g
	m := g.Map()
	cfg := g.Config()
	mag := cfg.Magnitude(s.weapon)
	target := g.Owner(s.dst)

	for _, t := range s.DestroyedTiles(tick) {
		if p := g.Owner(t); p != nil {
			p.Relinquish(t)
			before := p.Troops()
			maxTroops := cfg.MaxTroops(p.TilesOwned())
			loss := cfg.StrikeDamage(s.weapon, before, p.TilesOwned(), maxTroops)
			removed := p.RemoveTroops(loss)
			p.ApplyAttrition(removed, before)
		}
		m.SetFallout(t)
	}

	// Collateral: every non-weapon unit inside the blast dies, kill
	// attributed to the striker
	outerSq := mag.Outer * mag.Outer
	refreshRadius := mag.Outer + cfg.StructureRefreshMargin()
	refreshSq := refreshRadius * refreshRadius
	for _, p := range g.Players() {
		for _, u := range p.Units() {
			if u == s.unit {
				continue
			}
			d := m.DistSquared(u.Tile(), s.dst)
			if !u.Type().IsWeapon() && d <= outerSq {
				u.Delete(s.owner)
				continue
			}
			if u.Type().IsStructure() && d <= refreshSq {
				u.MarkDirty()
			}
		}
	}

	s.active = false
	s.unit.Delete(nil)
	g.Stats().RecordImpact(tick, s.owner, target, s.weapon)
	g.PushEvent(event.DisplayEvent{
		Type:    event.TypeStrikeDetonated,
		Tile:    uint32(s.dst),
		Weapon:  s.weapon,
		Message: fmt.Sprintf("%s detonated", s.weapon),
	})
}

// DestroyedTiles computes the detonation tile set once and caches it:
// a breadth-first expansion from the destination admitting tiles
// inside the outer radius, with the annulus beyond the inner radius
// thinned by a reproducible 1-in-2 draw keyed to the current tick.
// Querying before the weapon exists is a programming error.
func (s *StrikeExecution) DestroyedTiles(tick engine.Tick) []engine.TileRef {
	if s.unit == nil {
		panic("execution: destroyed tiles queried before launch")
	}
	if s.setComputed {
		return s.toDestroy
	}

	m := s.g.Map()
	mag := s.g.Config().Magnitude(s.weapon)
	innerSq := mag.Inner * mag.Inner
	outerSq := mag.Outer * mag.Outer
	rand := core.NewPseudoRandom(uint64(tick) + destroyedSetSalt)

	s.toDestroy = m.BfsTiles(s.dst, func(t engine.TileRef) bool {
		d := m.DistSquared(t, s.dst)
		if d > outerSq {
			return false
		}
		return d <= innerSq || rand.Chance(2)
	})
	s.setComputed = true
	return s.toDestroy
}

func (s *StrikeExecution) withinInterceptRange(t engine.TileRef) bool {
	m := s.g.Map()
	r := s.g.Config().TargetableRange()
	rSq := r * r
	return m.DistSquared(t, s.src) <= rSq || m.DistSquared(t, s.dst) <= rSq
}

func (s *StrikeExecution) IsActive() bool        { return s.active }
func (s *StrikeExecution) Owner() *engine.Player { return s.owner }

// ActiveDuringSpawnPhase is false: weapons do not fly while the match
// is still placing spawns
func (s *StrikeExecution) ActiveDuringSpawnPhase() bool { return false }

// Target is the destination tile, known from construction
func (s *StrikeExecution) Target() engine.TileRef { return s.dst }

// IsInFlight reports whether the weapon unit exists and is still live
func (s *StrikeExecution) IsInFlight() bool {
	return s.active && s.unit != nil
}

// Unit returns the spawned weapon unit, nil while merely queued
func (s *StrikeExecution) Unit() *engine.Unit { return s.unit }

// Cancel is the forced external cancellation: an in-flight strike
// deletes its unit, a still-queued one is marked inactive so its
// launch transition never runs. Idempotent; inactive is terminal.
func (s *StrikeExecution) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	if s.unit != nil && s.unit.IsActive() {
		s.unit.Delete(nil)
	}
	if s.g != nil {
		s.g.PushEvent(event.DisplayEvent{
			Type:     event.TypeStrikeCancelled,
			PlayerID: uint16(s.owner.ID()),
			Tile:     uint32(s.dst),
			Weapon:   s.weapon,
			Message:  "strike cancelled",
		})
	}
}

// TargetOwner resolves the destination's owner. Usable before Init;
// ok is false until the execution is bound to a world, since ownership
// is not resolvable earlier.
func (s *StrikeExecution) TargetOwner() (*engine.Player, bool) {
	if !s.initialized {
		return nil, false
	}
	return s.g.Owner(s.dst), true
}
