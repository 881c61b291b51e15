package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazmaezio/OpenFrontIO/core"
	"github.com/plazmaezio/OpenFrontIO/engine"
	"github.com/plazmaezio/OpenFrontIO/event"
	"github.com/plazmaezio/OpenFrontIO/parameter"
	"github.com/plazmaezio/OpenFrontIO/stats"
)

// testTuning shrinks radii and speeds so scenarios fit a small map
func testTuning() *parameter.Tuning {
	t := parameter.Default()
	t.Weapons[core.UnitAtomBomb.String()] = parameter.WeaponTuning{
		Speed: 5, Blast: parameter.Magnitude{Inner: 1, Outer: 2}, DamageFactor: 100,
	}
	t.Weapons[core.UnitMIRVWarhead.String()] = parameter.WeaponTuning{
		Speed: 8, Blast: parameter.Magnitude{Inner: 1, Outer: 2}, DamageFactor: 50,
	}
	t.BreakThreshold = 3.0
	t.InterceptRange = 4
	t.SiloReload = 20
	t.RefreshMargin = 2
	return t
}

type fixture struct {
	g       *engine.Game
	ex      *engine.Executor
	tracker *stats.Tracker
	p1, p2  *engine.Player

	p1Silo *engine.Unit
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	m := engine.NewGameMap(24, 24)
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			m.SetLand(m.Ref(x, y), true)
		}
	}
	g := engine.NewGame(m, testTuning())
	tracker := stats.NewTracker()
	g.SetStats(tracker)

	p1 := g.AddPlayer("attacker", 100_000)
	p2 := g.AddPlayer("defender", 100_000)

	claim := func(p *engine.Player, cx, cy, r int) {
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				if m.InBounds(x, y) {
					p.Conquer(m.Ref(x, y))
				}
			}
		}
	}
	claim(p1, 2, 2, 2)
	claim(p2, 18, 18, 3)

	return &fixture{
		g:       g,
		ex:      engine.NewExecutor(g),
		tracker: tracker,
		p1:      p1,
		p2:      p2,
		p1Silo:  p1.BuildUnit(core.UnitMissileSilo, m.Ref(2, 2)),
	}
}

func (f *fixture) target() engine.TileRef { return f.g.Map().Ref(18, 18) }

func (f *fixture) queueStrike(spec StrikeSpec) *StrikeExecution {
	s := NewStrikeExecution(spec)
	f.ex.AddExecution(s)
	return s
}

// run advances n passes and returns every display event raised
func (f *fixture) run(n int) []event.DisplayEvent {
	var evs []event.DisplayEvent
	for i := 0; i < n; i++ {
		evs = append(evs, f.ex.ExecuteNextTick()...)
	}
	return evs
}

// runUntilDone advances until no execution is live
func (f *fixture) runUntilDone(t *testing.T) []event.DisplayEvent {
	t.Helper()
	var evs []event.DisplayEvent
	for i := 0; i < 200; i++ {
		evs = append(evs, f.ex.ExecuteNextTick()...)
		if f.ex.ActiveCount() == 0 {
			return evs
		}
	}
	t.Fatal("simulation did not settle in 200 ticks")
	return nil
}

func eventsOfType(evs []event.DisplayEvent, typ event.Type) []event.DisplayEvent {
	var out []event.DisplayEvent
	for _, ev := range evs {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func TestLaunchSpawnsUnitOnSecondPass(t *testing.T) {
	f := newFixture(t)
	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})

	f.run(1) // init pass
	assert.False(t, s.IsInFlight(), "no unit before the launch tick")
	assert.Nil(t, s.Unit())

	evs := f.run(1) // launch pass
	require.True(t, s.IsInFlight())
	require.NotNil(t, s.Unit())
	assert.Equal(t, f.p1Silo.Tile(), s.Unit().Tile(), "spawn tick must not also move the weapon")
	assert.Equal(t, core.UnitAtomBomb, s.Unit().Type())

	incoming := eventsOfType(evs, event.TypeIncomingStrike)
	require.Len(t, incoming, 1)
	assert.Equal(t, uint16(f.p2.ID()), incoming[0].PlayerID)

	assert.Equal(t, 1, f.tracker.Launches(f.p1, f.p2, core.UnitAtomBomb))
	assert.True(t, f.p1Silo.OnCooldown(f.g.Ticks()), "launch puts the silo on cooldown")
}

func TestTrajectoryTargetableNearEndpointsOnly(t *testing.T) {
	f := newFixture(t)
	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	f.run(2)

	traj := s.Unit().Trajectory()
	require.NotEmpty(t, traj)
	m := f.g.Map()
	rangeSq := 4 * 4
	sawTargetable, sawShielded := false, false
	for _, step := range traj {
		near := m.DistSquared(step.Tile, f.p1Silo.Tile()) <= rangeSq ||
			m.DistSquared(step.Tile, f.target()) <= rangeSq
		require.Equal(t, near, step.Targetable)
		if step.Targetable {
			sawTargetable = true
		} else {
			sawShielded = true
		}
	}
	assert.True(t, sawTargetable)
	assert.True(t, sawShielded, "mid-flight tiles far from both endpoints stay untargetable")
}

func TestNoLaunchSiteCancelsWithoutSideEffects(t *testing.T) {
	f := newFixture(t)
	noSilo := f.g.AddPlayer("unarmed", 1000)
	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: noSilo, Target: f.target()})

	evs := f.run(2)
	assert.False(t, s.IsActive())
	assert.Nil(t, s.Unit())
	require.Len(t, eventsOfType(evs, event.TypeStrikeCancelled), 1)
	assert.Zero(t, f.tracker.TotalLaunches(noSilo))
	assert.Equal(t, 0, f.ex.ActiveCount(), "cancelled strike dropped by the scheduler")
	assert.Equal(t, 49, f.p2.TilesOwned(), "no detonation side effects")
}

func TestWaitTicksDelayFlightWithoutCancelling(t *testing.T) {
	f := newFixture(t)
	s := f.queueStrike(StrikeSpec{
		Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target(), WaitTicks: 3,
	})

	f.run(2) // init + launch
	src := s.Unit().Tile()

	f.run(3) // wait ticks burn down, one per pass
	assert.Equal(t, src, s.Unit().Tile(), "weapon holds position while throttled")
	assert.True(t, s.IsActive())

	f.run(1)
	assert.NotEqual(t, src, s.Unit().Tile(), "flight resumes after the delay")
	assert.Equal(t, 5, s.Unit().TrajectoryIndex())
}

func TestInterceptionCancelsWithoutDetonation(t *testing.T) {
	f := newFixture(t)
	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	f.run(2)

	troopsBefore := f.p2.Troops()
	s.Unit().Deactivate() // external defensive actor

	evs := f.run(1)
	assert.False(t, s.IsActive())
	require.Len(t, eventsOfType(evs, event.TypeStrikeCancelled), 1)
	assert.Equal(t, troopsBefore, f.p2.Troops())
	assert.False(t, f.g.Map().HasFallout(f.target()))
	assert.Zero(t, f.tracker.Impacts(f.p1, f.p2, core.UnitAtomBomb))
}

func TestDetonationAppliesAreaEffects(t *testing.T) {
	f := newFixture(t)
	m := f.g.Map()
	dst := f.target()

	cityInBlast := f.p2.BuildUnit(core.UnitCity, dst)
	cityNearBlast := f.p2.BuildUnit(core.UnitCity, m.Ref(21, 18)) // outside outer, inside refresh margin
	attack := f.p2.AddAttack(f.p1, 1000)

	tilesBefore := f.p2.TilesOwned()
	troopsBefore := f.p2.Troops()

	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: dst})
	evs := f.runUntilDone(t)

	// Territory and troops
	assert.Nil(t, f.g.Owner(dst), "inner-radius tiles always relinquished")
	assert.Less(t, f.p2.TilesOwned(), tilesBefore)
	assert.Less(t, f.p2.Troops(), troopsBefore)
	assert.True(t, m.HasFallout(dst))

	// Collateral attrition scales forces without destroying them
	assert.Less(t, attack.Troops, int64(1000))

	// Units: in-blast deleted with kill attribution, near-blast marked
	assert.False(t, cityInBlast.IsActive())
	assert.Equal(t, int64(1), f.p1.UnitKills())
	assert.True(t, cityNearBlast.IsActive())
	assert.True(t, cityNearBlast.Dirty(), "structure refresh hook fires inside the margin")

	// Weapon consumed, bookkeeping done
	assert.Empty(t, f.p1.Units(core.UnitAtomBomb))
	assert.Equal(t, 1, f.tracker.Impacts(f.p1, f.p2, core.UnitAtomBomb))
	require.Len(t, eventsOfType(evs, event.TypeStrikeDetonated), 1)
	assert.False(t, s.IsInFlight())
}

func TestDestroyedTilesCachedAndBounded(t *testing.T) {
	f := newFixture(t)
	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	f.run(2)

	first := s.DestroyedTiles(f.g.Ticks())
	second := s.DestroyedTiles(f.g.Ticks() + 17)
	assert.Equal(t, first, second, "cache ignores later ticks once computed")

	m := f.g.Map()
	for _, tile := range first {
		assert.LessOrEqual(t, m.DistSquared(tile, f.target()), 4, "set contained in the outer radius")
	}
	// Inner zone is guaranteed
	assert.Contains(t, first, f.target())
	assert.Contains(t, first, m.Ref(17, 18))
	assert.Contains(t, first, m.Ref(18, 17))
}

func TestDestroyedTilesBeforeLaunchPanics(t *testing.T) {
	f := newFixture(t)
	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	f.run(1) // initialized, still queued

	assert.Panics(t, func() { s.DestroyedTiles(f.g.Ticks()) })
}

func TestTickBeforeInitPanics(t *testing.T) {
	f := newFixture(t)
	s := NewStrikeExecution(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	assert.Panics(t, func() { s.Tick(1) })
}

func TestTargetOwnerUnknownBeforeInit(t *testing.T) {
	f := newFixture(t)
	s := NewStrikeExecution(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})

	_, ok := s.TargetOwner()
	assert.False(t, ok)

	f.ex.AddExecution(s)
	f.run(1)
	owner, ok := s.TargetOwner()
	require.True(t, ok)
	assert.Equal(t, f.p2, owner)
}

func TestCancelledStrikeStaysCancelled(t *testing.T) {
	f := newFixture(t)
	s := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	f.run(2)
	require.True(t, s.IsInFlight())

	s.Cancel()
	assert.False(t, s.IsActive())
	assert.False(t, s.Unit().IsActive())

	// Terminal state survives further scheduler passes and cancels
	s.Cancel()
	f.run(3)
	assert.False(t, s.IsActive())
	assert.Zero(t, f.tracker.Impacts(f.p1, f.p2, core.UnitAtomBomb))
}

func TestSecondLaunchBlockedBySiloCooldown(t *testing.T) {
	f := newFixture(t)
	f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	f.run(2) // first strike launches, silo goes cold

	s2 := f.queueStrike(StrikeSpec{Weapon: core.UnitAtomBomb, Owner: f.p1, Target: f.target()})
	f.run(2)
	assert.False(t, s2.IsActive(), "no ready silo while reloading")
	assert.Nil(t, s2.Unit())
}
