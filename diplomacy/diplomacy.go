// Package diplomacy hosts the alliance-acceptance side of the strike
// race window: accepting an alliance must destroy every strike still
// pending between the two parties, whichever phase it is in.
package diplomacy

import (
	"github.com/plazmaezio/OpenFrontIO/engine"
	"github.com/plazmaezio/OpenFrontIO/event"
)

// strike is the structural view of a scheduled weapon strike. Detected
// by interface assertion so this package needs no dependency on the
// concrete execution types.
type strike interface {
	engine.Execution
	Target() engine.TileRef
	IsInFlight() bool
	Cancel()
}

// CancelReport splits affected strikes by phase at sweep time
type CancelReport struct {
	Queued   int
	InFlight int
}

func (r CancelReport) Total() int { return r.Queued + r.InFlight }

// AcceptAllianceRequest accepts a pending request, forming the
// alliance, then sweeps the executor: every strike between the two
// players targeting a tile the other party owns is destroyed. An
// in-flight strike deletes its unit and deactivates immediately; a
// still-queued one is marked inactive before its launch transition
// can run, even though it is already scheduled. Strikes against third
// parties are untouched.
func AcceptAllianceRequest(g *engine.Game, ex *engine.Executor, req *engine.AllianceRequest) CancelReport {
	from, to := req.From(), req.To()
	req.Accept()

	g.PushEvent(event.DisplayEvent{
		Type:    event.TypeAllianceFormed,
		Message: from.Name() + " and " + to.Name() + " formed an alliance",
	})

	report := sweep(g, ex, from, to, true)
	if report.Total() > 0 {
		log := g.Log()
		log.Debug().
			Str("a", from.Name()).
			Str("b", to.Name()).
			Int("queued", report.Queued).
			Int("in_flight", report.InFlight).
			Msg("strikes cancelled by alliance")
	}
	return report
}

// StrikesBetween classifies the live strikes between two players
// without mutating anything. Observability/testing hook.
func StrikesBetween(g *engine.Game, ex *engine.Executor, a, b *engine.Player) CancelReport {
	return sweep(g, ex, a, b, false)
}

func sweep(g *engine.Game, ex *engine.Executor, a, b *engine.Player, cancel bool) CancelReport {
	var report CancelReport
	for _, e := range ex.Executions() {
		s, ok := e.(strike)
		if !ok || !s.IsActive() {
			continue
		}

		var victim *engine.Player
		switch s.Owner() {
		case a:
			victim = b
		case b:
			victim = a
		default:
			continue
		}
		if g.Owner(s.Target()) != victim {
			continue
		}

		if s.IsInFlight() {
			report.InFlight++
		} else {
			report.Queued++
		}
		if cancel {
			s.Cancel()
		}
	}
	return report
}
