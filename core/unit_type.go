package core

// UnitType tags every world object with its class
type UnitType uint8

const (
	UnitCity UnitType = iota
	UnitPort
	UnitDefensePost
	UnitMissileSilo
	UnitWarship
	UnitTransportShip
	UnitAtomBomb
	UnitHydrogenBomb
	UnitMIRV
	UnitMIRVWarhead
)

var unitTypeNames = map[UnitType]string{
	UnitCity:          "city",
	UnitPort:          "port",
	UnitDefensePost:   "defense_post",
	UnitMissileSilo:   "missile_silo",
	UnitWarship:       "warship",
	UnitTransportShip: "transport_ship",
	UnitAtomBomb:      "atom_bomb",
	UnitHydrogenBomb:  "hydrogen_bomb",
	UnitMIRV:          "mirv",
	UnitMIRVWarhead:   "mirv_warhead",
}

func (t UnitType) String() string {
	if name, ok := unitTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsWeapon reports whether the type is a launched munition
func (t UnitType) IsWeapon() bool {
	switch t {
	case UnitAtomBomb, UnitHydrogenBomb, UnitMIRV, UnitMIRVWarhead:
		return true
	}
	return false
}

// IsStructure reports whether the type is a fixed installation
func (t UnitType) IsStructure() bool {
	switch t {
	case UnitCity, UnitPort, UnitDefensePost, UnitMissileSilo:
		return true
	}
	return false
}
