package core

// Relation scores are clamped to [RelationMin, RelationMax].
// A strike that crosses the alliance-break threshold applies
// RelationPenaltyStrike once, at launch.
const (
	RelationMin = -100
	RelationMax = 100

	RelationPenaltyStrike = 80
)
