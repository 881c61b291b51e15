package parameter

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/plazmaezio/OpenFrontIO/core"
)

// WeaponTuning is the per-weapon-class numeric table
type WeaponTuning struct {
	Speed        int       `toml:"speed"`
	Blast        Magnitude `toml:"blast"`
	DamageFactor int64     `toml:"damage_factor"` // percent of the base toll
}

// Tuning is the built-in Config implementation. Fields are exported so
// a TOML overlay (and tests) can replace any subset of the table.
type Tuning struct {
	Weapons map[string]WeaponTuning `toml:"weapons"`

	BreakThreshold float64 `toml:"alliance_break_threshold"`
	InterceptRange int     `toml:"targetable_range"`
	SiloReload     int     `toml:"silo_cooldown"`
	RefreshMargin  int     `toml:"structure_refresh_margin"`

	// Troop ceiling: TroopBase + TroopPerTile * tilesOwned
	TroopBase    int64 `toml:"troop_base"`
	TroopPerTile int64 `toml:"troop_per_tile"`

	// Flat per-tile blast toll is maxTroops / DamageDivisor
	DamageDivisor int64 `toml:"damage_divisor"`
}

// Default returns the stock tuning table
func Default() *Tuning {
	return &Tuning{
		Weapons: map[string]WeaponTuning{
			core.UnitAtomBomb.String():     {Speed: 4, Blast: Magnitude{Inner: 12, Outer: 30}, DamageFactor: 100},
			core.UnitHydrogenBomb.String(): {Speed: 3, Blast: Magnitude{Inner: 80, Outer: 100}, DamageFactor: 250},
			core.UnitMIRV.String():         {Speed: 6, Blast: Magnitude{Inner: 12, Outer: 30}, DamageFactor: 100},
			core.UnitMIRVWarhead.String():  {Speed: 8, Blast: Magnitude{Inner: 9, Outer: 12}, DamageFactor: 50},
		},
		BreakThreshold: 3.0,
		InterceptRange: 15,
		SiloReload:     75,
		RefreshMargin:  5,
		TroopBase:      10_000,
		TroopPerTile:   100,
		DamageDivisor:  200,
	}
}

// Load decodes a TOML overlay on top of the defaults
func Load(path string) (*Tuning, error) {
	t := Default()
	if _, err := toml.DecodeFile(path, t); err != nil {
		return nil, fmt.Errorf("parameter: decode %s: %w", path, err)
	}
	return t, nil
}

func (t *Tuning) weapon(w core.UnitType) WeaponTuning {
	return t.Weapons[w.String()]
}

func (t *Tuning) DefaultWeaponSpeed(w core.UnitType) int {
	if s := t.weapon(w).Speed; s > 0 {
		return s
	}
	return 1
}

func (t *Tuning) Magnitude(w core.UnitType) Magnitude {
	return t.weapon(w).Blast
}

func (t *Tuning) AllianceBreakThreshold() float64 { return t.BreakThreshold }

// StrikeDamage scales a flat toll plus the player's per-tile troop
// concentration by the weapon's damage factor. Never exceeds the
// troops actually present.
func (t *Tuning) StrikeDamage(w core.UnitType, troops int64, tilesOwned int, maxTroops int64) int64 {
	base := maxTroops / t.DamageDivisor
	if tilesOwned > 0 {
		base += troops / int64(2*tilesOwned)
	}
	d := base * t.weapon(w).DamageFactor / 100
	if d > troops {
		d = troops
	}
	if d < 0 {
		d = 0
	}
	return d
}

func (t *Tuning) TargetableRange() int { return t.InterceptRange }

func (t *Tuning) MaxTroops(tilesOwned int) int64 {
	return t.TroopBase + t.TroopPerTile*int64(tilesOwned)
}

func (t *Tuning) SiloCooldown() int { return t.SiloReload }

func (t *Tuning) StructureRefreshMargin() int { return t.RefreshMargin }
