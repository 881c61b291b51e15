package stats

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/plazmaezio/OpenFrontIO/core"
	"github.com/plazmaezio/OpenFrontIO/engine"
)

// StrikeRow is one persisted launch or impact event
type StrikeRow struct {
	ID        uint   `gorm:"primarykey"`
	MatchID   string `gorm:"index"`
	Tick      uint64
	Kind      string `gorm:"index"` // "launch" or "impact"
	Attacker  string
	Target    string // empty for unclaimed territory
	Weapon    string
	CreatedAt time.Time
}

// Recorder persists strike statistics to a SQLite database, one row
// per event. Rows share a match id generated at open time.
type Recorder struct {
	db      *gorm.DB
	matchID string
}

// NewRecorder opens (or creates) the database at path and migrates the
// schema. Use ":memory:" for an ephemeral database.
func NewRecorder(path string) (*Recorder, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("stats: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&StrikeRow{}); err != nil {
		return nil, fmt.Errorf("stats: migrate: %w", err)
	}
	return &Recorder{db: db, matchID: uuid.NewString()}, nil
}

func (r *Recorder) MatchID() string { return r.matchID }

func (r *Recorder) RecordLaunch(tick engine.Tick, attacker, target *engine.Player, weapon core.UnitType) {
	r.record("launch", tick, attacker, target, weapon)
}

func (r *Recorder) RecordImpact(tick engine.Tick, attacker, target *engine.Player, weapon core.UnitType) {
	r.record("impact", tick, attacker, target, weapon)
}

func (r *Recorder) record(kind string, tick engine.Tick, attacker, target *engine.Player, weapon core.UnitType) {
	row := StrikeRow{
		MatchID:  r.matchID,
		Tick:     uint64(tick),
		Kind:     kind,
		Attacker: attacker.Name(),
		Weapon:   weapon.String(),
	}
	if target != nil {
		row.Target = target.Name()
	}
	// The sink is write-only fire-and-forget; a failed insert must not
	// disturb the simulation
	r.db.Create(&row)
}

// Rows returns every persisted event for this match in insertion order
func (r *Recorder) Rows() ([]StrikeRow, error) {
	var rows []StrikeRow
	err := r.db.Where("match_id = ?", r.matchID).Order("id").Find(&rows).Error
	return rows, err
}

// Close releases the underlying database handle
func (r *Recorder) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
