package courier

import (
	"fmt"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/errs"
)

// Level represents a courier's position in the four-tier delivery hierarchy.
// Higher levels manage wider scopes: a level-4 courier covers a whole city,
// a level-1 courier a single building or room. Level-gated behavior is
// expressed everywhere as comparisons against these thresholds, never as
// per-level role strings.
type Level int

const (
	// LevelUnknown represents an invalid or undefined level.
	// This value (0) helps catch uninitialized Level values.
	LevelUnknown Level = iota

	// LevelBuilding couriers serve a single building or room (narrowest scope).
	LevelBuilding

	// LevelZone couriers serve a zone inside a school (a group of buildings).
	LevelZone

	// LevelSchool couriers serve a whole school campus.
	LevelSchool

	// LevelCity couriers serve the whole city (widest scope, hierarchy roots).
	LevelCity
)

// getLevelStrings returns a map of Level values to their string representations.
func getLevelStrings() map[Level]string {
	return map[Level]string{
		LevelUnknown:  "Unknown",
		LevelBuilding: "Building",
		LevelZone:     "Zone",
		LevelSchool:   "School",
		LevelCity:     "City",
	}
}

// Validate checks if the Level value is one of the four hierarchy tiers.
func (l Level) Validate() error {
	if l < LevelBuilding || l > LevelCity {
		return errs.NewValueIsInvalidErrorWithCause("level is invalid",
			fmt.Errorf("%d is not a valid courier level", l))
	}
	return nil
}

// String returns the human-readable name of the level.
// Implements the fmt.Stringer interface; safe to call on invalid values.
func (l Level) String() string {
	if str, ok := getLevelStrings()[l]; ok {
		return str
	}
	return "Unknown"
}

// PrefixDepth returns the managed-prefix segment depth that corresponds to
// this level under the default segment scheme. Longer prefix means narrower
// scope means lower level: a city courier manages a depth-1 prefix, a
// building courier a full-depth one.
func (l Level) PrefixDepth() (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	return kernel.DefaultSegmentScheme.Depth() - int(l) + 1, nil
}

// CanBatch reports whether the level grants batch operations.
// Batch capability starts at zone level; building couriers act on single
// entities only.
func (l Level) CanBatch() bool {
	return l >= LevelZone
}
