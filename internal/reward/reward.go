// Package reward maps difficulty ranks to default EXP/HP/gold/penalty values.
package reward

import (
	"fmt"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// Spec is a resolved reward tuple for a single entity. Penalty is a
// non-positive EXP delta applied when a daily/weekly quest is failed.
type Spec struct {
	Exp     int `json:"exp"`
	HP      int `json:"hp"`
	Gold    int `json:"gold"`
	Penalty int `json:"penalty"`
}

// Default values per rank. Callers can override exp/hp when creating an
// entity; overrides replace the defaults entirely.
var defaults = map[domain.Difficulty]Spec{
	domain.DifficultyS: {Exp: 1000, HP: 500, Penalty: 0},
	domain.DifficultyA: {Exp: 500, HP: 250, Penalty: 0},
	domain.DifficultyB: {Exp: 250, HP: 100, Penalty: 0},
	domain.DifficultyC: {Exp: 100, HP: 50, Penalty: 0},
	domain.DifficultyD: {Exp: 50, HP: 25, Penalty: 0},
}

// Resolve returns the reward spec for a rank, applying explicit overrides
// when supplied. An unknown rank is a validation failure.
func Resolve(rank domain.Difficulty, expOverride, hpOverride *int) (Spec, error) {
	spec, ok := defaults[rank]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, rank)
	}
	if expOverride != nil {
		spec.Exp = *expOverride
	}
	if hpOverride != nil {
		spec.HP = *hpOverride
	}
	return spec, nil
}

// Penalty returns the penalty EXP delta for a rank.
func Penalty(rank domain.Difficulty) (int, error) {
	spec, ok := defaults[rank]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, rank)
	}
	return spec.Penalty, nil
}
