package engine

import (
	"github.com/plazmaezio/OpenFrontIO/core"
)

// PlayerID identifies a player within one match. 0 is reserved for
// broadcast addressing.
type PlayerID uint16

// Attack is an outgoing ground force in transit. Only its troop count
// matters to the kernel; resolution is a peer execution out of scope.
type Attack struct {
	Target *Player
	Troops int64
}

// Player owns tiles, troops, units, outgoing attacks and diplomatic
// state. All mutation goes through the operations below; the single
// scheduler thread is the only writer.
type Player struct {
	g    *Game
	id   PlayerID
	name string

	troops int64
	tiles  map[TileRef]struct{}
	units  []*Unit

	attacks []*Attack

	relations map[PlayerID]int

	unitKills  int64
	nextUnitID uint32
}

func (p *Player) ID() PlayerID     { return p.id }
func (p *Player) Name() string     { return p.name }
func (p *Player) Troops() int64    { return p.troops }
func (p *Player) UnitKills() int64 { return p.unitKills }

func (p *Player) SetTroops(n int64) { p.troops = n }

// RemoveTroops deducts up to n troops and returns the amount actually
// removed
func (p *Player) RemoveTroops(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n > p.troops {
		n = p.troops
	}
	p.troops -= n
	return n
}

func (p *Player) TilesOwned() int { return len(p.tiles) }

func (p *Player) OwnsTile(t TileRef) bool {
	_, ok := p.tiles[t]
	return ok
}

// Conquer transfers tile ownership to p, relinquishing it from any
// current owner first
func (p *Player) Conquer(t TileRef) {
	if cur := p.g.Owner(t); cur != nil {
		cur.Relinquish(t)
	}
	p.tiles[t] = struct{}{}
	p.g.owners[t] = p
}

// Relinquish releases a tile back to unclaimed
func (p *Player) Relinquish(t TileRef) {
	if _, ok := p.tiles[t]; !ok {
		return
	}
	delete(p.tiles, t)
	delete(p.g.owners, t)
}

// BuildUnit creates a unit of the given type at a tile and registers it
func (p *Player) BuildUnit(typ core.UnitType, tile TileRef) *Unit {
	p.nextUnitID++
	u := &Unit{
		id:     p.nextUnitID,
		typ:    typ,
		owner:  p,
		tile:   tile,
		active: true,
	}
	p.units = append(p.units, u)
	return u
}

// Units returns the player's active units, filtered to the given types
// when any are passed
func (p *Player) Units(types ...core.UnitType) []*Unit {
	out := make([]*Unit, 0, len(p.units))
	for _, u := range p.units {
		if !u.active {
			continue
		}
		if len(types) == 0 {
			out = append(out, u)
			continue
		}
		for _, t := range types {
			if u.typ == t {
				out = append(out, u)
				break
			}
		}
	}
	return out
}

func (p *Player) removeUnit(u *Unit) {
	for i, cand := range p.units {
		if cand == u {
			p.units[i] = p.units[len(p.units)-1]
			p.units = p.units[:len(p.units)-1]
			return
		}
	}
}

// CanBuild resolves a launch site for a weapon class and destination.
// Silo-launched weapons need an owned, active missile silo off
// cooldown; the nearest one to the destination wins. MIRV warheads are
// released mid-air and carry a pinned source, so no site is needed.
func (p *Player) CanBuild(typ core.UnitType, dst TileRef) (TileRef, bool) {
	if typ == core.UnitMIRVWarhead {
		return dst, true
	}
	if !typ.IsWeapon() {
		return 0, false
	}
	now := p.g.Ticks()
	var best *Unit
	bestDist := -1
	for _, u := range p.Units(core.UnitMissileSilo) {
		if u.OnCooldown(now) {
			continue
		}
		d := p.g.Map().DistSquared(u.tile, dst)
		if bestDist < 0 || d < bestDist {
			best = u
			bestDist = d
		}
	}
	if best == nil {
		return 0, false
	}
	return best.tile, true
}

// AddAttack registers an outgoing ground force
func (p *Player) AddAttack(target *Player, troops int64) *Attack {
	a := &Attack{Target: target, Troops: troops}
	p.attacks = append(p.attacks, a)
	return a
}

func (p *Player) Attacks() []*Attack { return p.attacks }

// ApplyAttrition scales every outgoing attack force and every
// in-transit transport cargo by the proportion removed/total, the same
// ratio a detonation just applied to the player's standing troops. The
// force objects survive; only their strength shrinks.
func (p *Player) ApplyAttrition(removed, total int64) {
	if removed <= 0 || total <= 0 {
		return
	}
	for _, a := range p.attacks {
		a.Troops -= a.Troops * removed / total
	}
	for _, u := range p.Units(core.UnitTransportShip) {
		u.troops -= u.troops * removed / total
	}
}

// Relation returns the relation score toward another player
func (p *Player) Relation(other *Player) int {
	return p.relations[other.id]
}

// AdjustRelation shifts the symmetric relation score, clamped to the
// legal range
func (p *Player) AdjustRelation(other *Player, delta int) {
	v := p.relations[other.id] + delta
	if v < core.RelationMin {
		v = core.RelationMin
	}
	if v > core.RelationMax {
		v = core.RelationMax
	}
	p.relations[other.id] = v
	other.relations[p.id] = v
}

// AllianceWith returns the alliance with another player, if any
func (p *Player) AllianceWith(other *Player) *Alliance {
	return p.g.AllianceBetween(p, other)
}

// IncomingRequests lists pending alliance requests addressed to p
func (p *Player) IncomingRequests() []*AllianceRequest {
	out := make([]*AllianceRequest, 0, 2)
	for _, r := range p.g.requests {
		if r.to == p {
			out = append(out, r)
		}
	}
	return out
}
