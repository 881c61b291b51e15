// Command openfront-sim runs a small headless match: three players,
// a handful of strikes, a fixed number of ticks. Demonstrates the
// scheduler, the strike lifecycle and the diplomacy race handling.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/plazmaezio/OpenFrontIO/core"
	"github.com/plazmaezio/OpenFrontIO/diplomacy"
	"github.com/plazmaezio/OpenFrontIO/engine"
	"github.com/plazmaezio/OpenFrontIO/execution"
	"github.com/plazmaezio/OpenFrontIO/parameter"
	"github.com/plazmaezio/OpenFrontIO/stats"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML tuning overlay")
		statsPath  = flag.String("stats", "", "SQLite database for strike statistics (empty = in-memory tracker only)")
		ticks      = flag.Int("ticks", 120, "simulation steps to run")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	if *debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg := parameter.Config(parameter.Default())
	if *configPath != "" {
		loaded, err := parameter.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
		cfg = loaded
	}

	g := engine.NewGame(buildMap(), cfg)
	g.SetLogger(log)

	tracker := stats.NewTracker()
	g.SetStats(tracker)
	if *statsPath != "" {
		rec, err := stats.NewRecorder(*statsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open stats recorder")
		}
		defer rec.Close()
		g.SetStats(tee{tracker, rec})
		log.Info().Str("match_id", rec.MatchID()).Msg("recording strike statistics")
	}

	p1 := spawnPlayer(g, "Aldrin", 4, 4)
	p2 := spawnPlayer(g, "Borodin", 24, 24)
	p3 := spawnPlayer(g, "Castile", 24, 4)

	ex := engine.NewExecutor(g)

	// Aldrin strikes Borodin; Castile strikes Borodin a few ticks later
	ex.AddExecution(execution.NewStrikeExecution(execution.StrikeSpec{
		Weapon: core.UnitAtomBomb,
		Owner:  p1,
		Target: g.Map().Ref(24, 24),
	}))
	ex.AddExecution(execution.NewStrikeExecution(execution.StrikeSpec{
		Weapon:    core.UnitAtomBomb,
		Owner:     p3,
		Target:    g.Map().Ref(23, 24),
		WaitTicks: 10,
	}))

	// Borodin sues for peace with Castile mid-flight
	peaceAt := 5
	for i := 0; i < *ticks; i++ {
		if i == peaceAt {
			if req, ok := g.SendAllianceRequest(p3, p2); ok {
				report := diplomacy.AcceptAllianceRequest(g, ex, req)
				log.Info().
					Int("queued", report.Queued).
					Int("in_flight", report.InFlight).
					Msg("alliance accepted, strikes cancelled")
			}
		}
		for _, ev := range ex.ExecuteNextTick() {
			log.Info().
				Uint64("tick", uint64(g.Ticks())).
				Uint16("player", ev.PlayerID).
				Str("weapon", ev.Weapon.String()).
				Msg(ev.Message)
		}
		if ex.ActiveCount() == 0 {
			break
		}
	}

	log.Info().
		Int("p1_launches", tracker.TotalLaunches(p1)).
		Int("p3_launches", tracker.TotalLaunches(p3)).
		Int64("p2_troops", p2.Troops()).
		Int("p2_tiles", p2.TilesOwned()).
		Msg("match summary")
}

// tee fans stats notifications out to multiple sinks
type tee [2]engine.StatsSink

func (t tee) RecordLaunch(tick engine.Tick, a, b *engine.Player, w core.UnitType) {
	for _, s := range t {
		s.RecordLaunch(tick, a, b, w)
	}
}

func (t tee) RecordImpact(tick engine.Tick, a, b *engine.Player, w core.UnitType) {
	for _, s := range t {
		s.RecordImpact(tick, a, b, w)
	}
}

// buildMap returns a 32x32 all-land map
func buildMap() *engine.GameMap {
	m := engine.NewGameMap(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			m.SetLand(m.Ref(x, y), true)
		}
	}
	return m
}

// spawnPlayer claims a 7x7 block around (cx, cy) and builds a silo at
// its center
func spawnPlayer(g *engine.Game, name string, cx, cy int) *engine.Player {
	p := g.AddPlayer(name, 50_000)
	m := g.Map()
	for y := cy - 3; y <= cy+3; y++ {
		for x := cx - 3; x <= cx+3; x++ {
			if m.InBounds(x, y) {
				p.Conquer(m.Ref(x, y))
			}
		}
	}
	p.BuildUnit(core.UnitMissileSilo, m.Ref(cx, cy))
	return p
}
