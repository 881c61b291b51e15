package engine

import (
	"github.com/rs/zerolog"

	"github.com/plazmaezio/OpenFrontIO/core"
	"github.com/plazmaezio/OpenFrontIO/event"
	"github.com/plazmaezio/OpenFrontIO/parameter"
)

// Tick is the simulation step counter
type Tick uint64

// StatsSink is the write-only observer notified of launch and impact
// events. Target may be nil when the destination is unclaimed.
type StatsSink interface {
	RecordLaunch(tick Tick, attacker, target *Player, weapon core.UnitType)
	RecordImpact(tick Tick, attacker, target *Player, weapon core.UnitType)
}

// NoopStats discards every notification
type NoopStats struct{}

func (NoopStats) RecordLaunch(Tick, *Player, *Player, core.UnitType) {}
func (NoopStats) RecordImpact(Tick, *Player, *Player, core.UnitType) {}

// Game is the shared world handle borrowed by executions during their
// init and tick phases. Exactly one writer (the tick loop) mutates it,
// so there is no locking.
type Game struct {
	mapp    *GameMap
	owners  map[TileRef]*Player
	players []*Player

	alliances []*Alliance
	requests  []*AllianceRequest

	ticks      Tick
	spawnTicks Tick // pre-game spawn phase length

	cfg    parameter.Config
	events *event.Queue
	stats  StatsSink
	log    zerolog.Logger
}

// NewGame assembles a world over a map with the given tuning provider
func NewGame(m *GameMap, cfg parameter.Config) *Game {
	return &Game{
		mapp:   m,
		owners: make(map[TileRef]*Player),
		cfg:    cfg,
		events: event.NewQueue(),
		stats:  NoopStats{},
		log:    zerolog.Nop(),
	}
}

func (g *Game) SetLogger(log zerolog.Logger) { g.log = log }
func (g *Game) SetStats(s StatsSink)         { g.stats = s }

// SetSpawnPhase sets how many ticks the pre-game spawn phase lasts
func (g *Game) SetSpawnPhase(ticks Tick) { g.spawnTicks = ticks }

func (g *Game) Map() *GameMap            { return g.mapp }
func (g *Game) Config() parameter.Config { return g.cfg }
func (g *Game) Stats() StatsSink         { return g.stats }
func (g *Game) Log() zerolog.Logger      { return g.log }

func (g *Game) Ticks() Tick { return g.ticks }

// InSpawnPhase reports whether the match is still placing spawns
func (g *Game) InSpawnPhase() bool { return g.ticks < g.spawnTicks }

// PushEvent queues a display event for the current scheduler pass
func (g *Game) PushEvent(ev event.DisplayEvent) { g.events.Push(ev) }

func (g *Game) consumeEvents() []event.DisplayEvent { return g.events.Consume() }

// AddPlayer registers a player with starting troops
func (g *Game) AddPlayer(name string, troops int64) *Player {
	p := &Player{
		g:         g,
		id:        PlayerID(len(g.players) + 1),
		name:      name,
		troops:    troops,
		tiles:     make(map[TileRef]struct{}),
		relations: make(map[PlayerID]int),
	}
	g.players = append(g.players, p)
	return p
}

func (g *Game) Players() []*Player { return g.players }

func (g *Game) Player(id PlayerID) *Player {
	for _, p := range g.players {
		if p.id == id {
			return p
		}
	}
	return nil
}

// Owner returns the tile's owner, nil when unclaimed
func (g *Game) Owner(t TileRef) *Player { return g.owners[t] }

// AllianceBetween returns the alliance joining two players, if any
func (g *Game) AllianceBetween(a, b *Player) *Alliance {
	for _, al := range g.alliances {
		if (al.a == a && al.b == b) || (al.a == b && al.b == a) {
			return al
		}
	}
	return nil
}

func (g *Game) Alliances() []*Alliance { return g.alliances }

// SendAllianceRequest opens a directed pending request. Duplicate
// pending requests and requests between allied players are refused.
func (g *Game) SendAllianceRequest(from, to *Player) (*AllianceRequest, bool) {
	if from == to || g.AllianceBetween(from, to) != nil || g.PendingRequest(from, to) != nil {
		return nil, false
	}
	r := &AllianceRequest{g: g, from: from, to: to, createdAt: g.ticks}
	g.requests = append(g.requests, r)
	return r, true
}

// PendingRequest finds the unresolved request from one player to
// another, if any
func (g *Game) PendingRequest(from, to *Player) *AllianceRequest {
	for _, r := range g.requests {
		if r.from == from && r.to == to {
			return r
		}
	}
	return nil
}

func (g *Game) removeAlliance(al *Alliance) {
	for i, cand := range g.alliances {
		if cand == al {
			g.alliances = append(g.alliances[:i], g.alliances[i+1:]...)
			return
		}
	}
}

func (g *Game) removeRequest(r *AllianceRequest) {
	for i, cand := range g.requests {
		if cand == r {
			g.requests = append(g.requests[:i], g.requests[i+1:]...)
			return
		}
	}
}
