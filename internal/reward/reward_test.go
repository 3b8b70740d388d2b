package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

func TestResolve_Defaults(t *testing.T) {
	tests := []struct {
		rank    domain.Difficulty
		wantExp int
		wantHP  int
	}{
		{domain.DifficultyS, 1000, 500},
		{domain.DifficultyA, 500, 250},
		{domain.DifficultyB, 250, 100},
		{domain.DifficultyC, 100, 50},
		{domain.DifficultyD, 50, 25},
	}

	for _, tt := range tests {
		t.Run(string(tt.rank), func(t *testing.T) {
			spec, err := Resolve(tt.rank, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExp, spec.Exp)
			assert.Equal(t, tt.wantHP, spec.HP)
			assert.LessOrEqual(t, spec.Penalty, 0)
		})
	}
}

func TestResolve_OverridesReplaceDefaults(t *testing.T) {
	exp := 42
	hp := 7

	spec, err := Resolve(domain.DifficultyS, &exp, &hp)
	require.NoError(t, err)

	assert.Equal(t, 42, spec.Exp)
	assert.Equal(t, 7, spec.HP)
}

func TestResolve_PartialOverride(t *testing.T) {
	exp := 300

	spec, err := Resolve(domain.DifficultyC, &exp, nil)
	require.NoError(t, err)

	assert.Equal(t, 300, spec.Exp)
	assert.Equal(t, 50, spec.HP, "hp keeps the rank default")
}

func TestResolve_InvalidDifficulty(t *testing.T) {
	_, err := Resolve("Z", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestPenalty_InvalidDifficulty(t *testing.T) {
	_, err := Penalty("SS")

	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}
