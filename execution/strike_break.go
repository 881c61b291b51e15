package execution

import (
	"github.com/plazmaezio/OpenFrontIO/core"
	"github.com/plazmaezio/OpenFrontIO/engine"
)

// breakAlliances evaluates the diplomatic cost of a launch. Runs once,
// at launch, before the weapon is in flight, never at detonation.
//
// A tile-weighted blast estimate is built over a circular search
// around the destination: full weight inside the inner radius, half
// weight in the annulus. Every attacked player whose accumulated
// weight crosses the configured threshold loses their ties with the
// attacker:
//   - a pending attacker -> attacked alliance request is rejected
//     first, so a strike cannot be laundered by an alliance accepted
//     between launch and impact
//   - an existing alliance is broken
//   - the relation score takes the fixed penalty
func (s *StrikeExecution) breakAlliances() {
	g := s.g
	m := g.Map()
	mag := g.Config().Magnitude(s.weapon)
	innerSq := mag.Inner * mag.Inner

	weights := make(map[*engine.Player]float64)
	for _, t := range m.TilesInRange(s.dst, mag.Outer) {
		p := g.Owner(t)
		if p == nil {
			continue
		}
		if m.DistSquared(t, s.dst) <= innerSq {
			weights[p] += 1.0
		} else {
			weights[p] += 0.5
		}
	}

	// Stable player order, not map order: side effects per player are
	// independent, but event ordering stays replay-identical
	threshold := g.Config().AllianceBreakThreshold()
	for _, attacked := range g.Players() {
		w, ok := weights[attacked]
		if !ok || w <= threshold {
			continue
		}

		if req := g.PendingRequest(s.owner, attacked); req != nil {
			req.Reject()
		}

		if al := g.AllianceBetween(s.owner, attacked); al != nil {
			al.Break()
			log := g.Log()
			log.Debug().
				Str("attacker", s.owner.Name()).
				Str("attacked", attacked.Name()).
				Msg("alliance broken by strike")
		}

		if attacked != s.owner {
			s.owner.AdjustRelation(attacked, -core.RelationPenaltyStrike)
		}
	}
}
