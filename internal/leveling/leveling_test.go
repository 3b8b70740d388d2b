package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		exp       int
		delta     int
		divisor   int
		wantLevel int
		wantExp   int
	}{
		{"no delta", 1, 0, 0, ProfileDivisor, 1, 0},
		{"exact level up", 1, 0, 100, ProfileDivisor, 2, 100},
		{"under threshold", 1, 0, 99, ProfileDivisor, 1, 99},
		{"multi level jump", 1, 0, 350, ProfileDivisor, 4, 350},
		{"threshold uses pre-update level", 3, 250, 100, ProfileDivisor, 4, 350},
		{"category divisor", 1, 0, 100, CategoryDivisor, 3, 100},
		{"cumulative exp carries", 2, 150, 60, ProfileDivisor, 3, 210},
		{"negative delta floors exp", 1, 30, -50, ProfileDivisor, 1, 0},
		{"level never below 1", 1, 0, -10, ProfileDivisor, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLevel, gotExp := Advance(tt.level, tt.exp, tt.delta, tt.divisor)
			assert.Equal(t, tt.wantLevel, gotLevel)
			assert.Equal(t, tt.wantExp, gotExp)
		})
	}
}

// Level must be monotone non-decreasing for any non-negative delta.
func TestAdvance_NonNegativeDeltaNeverLowersLevel(t *testing.T) {
	for level := 1; level <= 20; level++ {
		for _, exp := range []int{0, 10, 99, 100, 1000} {
			for _, delta := range []int{0, 1, 50, 500} {
				got, gotExp := Advance(level, exp, delta, ProfileDivisor)
				assert.GreaterOrEqual(t, got, level)
				assert.Equal(t, exp+delta, gotExp)
				assert.Equal(t, level+(exp+delta)/(level*ProfileDivisor), got)
			}
		}
	}
}

func TestApplyPenalty(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		exp       int
		penalty   int
		wantLevel int
		wantExp   int
	}{
		{"zero penalty", 2, 150, 0, 2, 150},
		{"exp floors at zero", 1, 20, -50, 1, 0},
		{"level never drops", 5, 10, -100, 5, 0},
		{"partial deduction", 3, 400, -150, 3, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLevel, gotExp := ApplyPenalty(tt.level, tt.exp, tt.penalty, ProfileDivisor)
			assert.Equal(t, tt.wantLevel, gotLevel)
			assert.Equal(t, tt.wantExp, gotExp)
		})
	}
}

func TestExpNeeded(t *testing.T) {
	assert.Equal(t, 100, ExpNeeded(1, ProfileDivisor))
	assert.Equal(t, 500, ExpNeeded(5, ProfileDivisor))
	assert.Equal(t, 50, ExpNeeded(1, CategoryDivisor))
	assert.Equal(t, 100, ExpNeeded(0, ProfileDivisor), "level below 1 treated as 1")
}
