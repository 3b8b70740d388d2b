// Package leveling is the pure arithmetic turning (level, exp, delta) into
// (new level, new exp) for both the hunter profile and per-category
// progression.
//
// EXP is cumulative and never reset on level-up, and the EXP-needed figure is
// always computed from the pre-update level. A large delta can therefore jump
// several levels in one call, and a progress bar rendered against the current
// level can read above 100%. That behavior is carried from the reference
// product on purpose; do not "correct" it here.
package leveling

// Divisors for the two progression tracks.
const (
	ProfileDivisor  = 100
	CategoryDivisor = 50
)

// Advance applies an EXP delta and returns the new (level, exp).
//
//	newExp   = max(0, exp+delta)
//	expNeeded = level * divisor        (pre-update level)
//	newLevel = max(1, level + floor(newExp/expNeeded))
func Advance(level, exp, delta, divisor int) (int, int) {
	newExp := exp + delta
	if newExp < 0 {
		newExp = 0
	}

	expNeeded := ExpNeeded(level, divisor)
	newLevel := level
	if expNeeded > 0 {
		newLevel = level + newExp/expNeeded
	}
	if newLevel < 1 {
		newLevel = 1
	}
	return newLevel, newExp
}

// ApplyPenalty applies a non-positive EXP delta. EXP floors at zero and the
// level field never decreases, even if the resulting EXP falls below the
// current level's threshold.
func ApplyPenalty(level, exp, penalty, divisor int) (int, int) {
	newLevel, newExp := Advance(level, exp, penalty, divisor)
	if newLevel < level {
		newLevel = level
	}
	return newLevel, newExp
}

// ExpNeeded is the EXP threshold displayed for the given level. Relative to
// the current level only; see the package comment.
func ExpNeeded(level, divisor int) int {
	if level < 1 {
		level = 1
	}
	return level * divisor
}
