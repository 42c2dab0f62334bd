// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probs(ps ...*float64) [ChoiceCount]*float64 {
	var out [ChoiceCount]*float64
	copy(out[:], ps)
	return out
}

func TestValidateChoices(t *testing.T) {
	assert.NoError(t, ValidateChoices([]string{"a", "b", "c"}))
	assert.ErrorIs(t, ValidateChoices([]string{"a", "b"}), ErrChoiceCount)
	assert.ErrorIs(t, ValidateChoices(nil), ErrChoiceCount)
	assert.ErrorIs(t, ValidateChoices([]string{"a", "b", "c", "d"}), ErrChoiceCount)
}

func TestIsLogicalOrder(t *testing.T) {
	tests := []struct {
		name  string
		probs [ChoiceCount]*float64
		want  bool
	}{
		{"hardest first", probs(f(0.05), f(0.12), f(0.30)), true},
		{"easiest first", probs(f(0.30), f(0.12), f(0.05)), false},
		{"equal", probs(f(0.2), f(0.2), f(0.2)), true},
		{"within tolerance", probs(f(0.104), f(0.10), f(0.30)), true},
		{"outside tolerance", probs(f(0.106), f(0.10), f(0.30)), false},
		{"missing middle", probs(f(0.05), nil, f(0.30)), false},
		{"all missing", probs(nil, nil, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLogicalOrder(tt.probs))
		})
	}
}

func TestApplicationOdds(t *testing.T) {
	got := ApplicationOdds(probs(f(0.05), f(0.12), f(0.30)))
	require.NotNil(t, got)
	assert.Equal(t, 0.30, *got)

	got = ApplicationOdds(probs(nil, f(0.12), nil))
	require.NotNil(t, got)
	assert.Equal(t, 0.12, *got)

	assert.Nil(t, ApplicationOdds(probs(nil, nil, nil)))
	assert.Nil(t, ApplicationOdds(probs(f(0), nil, f(0))))
}

func TestPlanAdvice(t *testing.T) {
	t.Run("logical", func(t *testing.T) {
		advice := PlanAdvice("ELK", probs(f(0.05), f(0.12), f(0.30)), true)
		assert.Equal(t, adviceLogicallyOrdered+" "+adviceHighestOddsDrives, advice)
	})

	t.Run("reversed elk", func(t *testing.T) {
		advice := PlanAdvice("ELK", probs(f(0.30), f(0.12), f(0.05)), false)
		assert.True(t, strings.HasPrefix(advice, adviceNotOrdered))
		assert.Contains(t, advice, adviceFirstBeatsSecond)
		assert.Contains(t, advice, adviceSecondBeatsThird)
		assert.Contains(t, advice, adviceElkDreamUnits)
		assert.NotContains(t, advice, adviceDeerDreamUnits)
	})

	t.Run("only second beats third", func(t *testing.T) {
		advice := PlanAdvice("DER", probs(f(0.05), f(0.30), f(0.12)), false)
		assert.NotContains(t, advice, adviceFirstBeatsSecond)
		assert.Contains(t, advice, adviceSecondBeatsThird)
		assert.Contains(t, advice, adviceDeerDreamUnits)
	})

	t.Run("missing data other species", func(t *testing.T) {
		advice := PlanAdvice("ORX", probs(nil, f(0.3), f(0.1)), false)
		assert.Equal(t, adviceNotOrdered+" "+adviceSecondBeatsThird, advice)
	})
}

func TestEvaluatePlanLogical(t *testing.T) {
	choices := []string{"ELK-1-100", "ELK-1-200", "ELK-1-300"}
	counts := map[string]ChoiceCounts{
		"ELK-1-100": {Applications: n(1000), Licenses: n(50)},
		"ELK-1-200": {Applications: n(500), Licenses: n(60)},
		"ELK-1-300": {Applications: n(100), Licenses: n(30)},
	}
	name := "Elk"

	resp := EvaluatePlan(PoolResident, "ELK", choices, counts, &name)

	assert.Equal(t, "resident", resp.Pool)
	assert.Equal(t, "Resident", resp.PoolLabel)
	require.NotNil(t, resp.SpeciesName)
	assert.Equal(t, "Elk", *resp.SpeciesName)
	require.Len(t, resp.Choices, 3)
	for i, c := range resp.Choices {
		assert.Equal(t, i+1, c.ChoiceNumber)
		assert.Equal(t, choices[i], c.HuntCode)
		require.NotNil(t, c.P)
	}
	assert.InDelta(t, 0.05, *resp.Choices[0].P, 1e-9)
	assert.InDelta(t, 0.12, *resp.Choices[1].P, 1e-9)
	assert.InDelta(t, 0.30, *resp.Choices[2].P, 1e-9)

	assert.True(t, resp.LogicalOrder)
	require.NotNil(t, resp.ApplicationOdds)
	assert.InDelta(t, 0.30, *resp.ApplicationOdds, 1e-9)
	require.NotNil(t, resp.OneInN)
	assert.Equal(t, 3, *resp.OneInN)
	require.NotNil(t, resp.Advice)
	assert.Contains(t, *resp.Advice, "logically ordered")
}

func TestEvaluatePlanUnknownHunts(t *testing.T) {
	choices := []string{"X", "Y", "Z"}
	resp := EvaluatePlan(PoolNonresident, "ELK", choices, map[string]ChoiceCounts{}, nil)

	assert.Nil(t, resp.SpeciesName)
	assert.False(t, resp.LogicalOrder)
	assert.Nil(t, resp.ApplicationOdds)
	assert.Nil(t, resp.OneInN)
	for _, c := range resp.Choices {
		assert.Nil(t, c.P)
		assert.Nil(t, c.Applications)
		assert.Nil(t, c.Licenses)
	}
	require.NotNil(t, resp.Advice)
	assert.True(t, strings.HasPrefix(*resp.Advice, adviceNotOrdered))
}

func TestEvaluatePlanZeroLicenses(t *testing.T) {
	counts := map[string]ChoiceCounts{
		"A": {Applications: n(100), Licenses: n(0)},
		"B": {Applications: n(100), Licenses: n(10)},
		"C": {Applications: null, Licenses: n(10)},
	}
	resp := EvaluatePlan(PoolResident, "DER", []string{"A", "B", "C"}, counts, nil)

	require.NotNil(t, resp.Choices[0].Applications)
	assert.Equal(t, int64(100), *resp.Choices[0].Applications)
	assert.Nil(t, resp.Choices[0].P)
	assert.NotNil(t, resp.Choices[1].P)
	assert.Nil(t, resp.Choices[2].Applications)
	assert.Nil(t, resp.Choices[2].P)

	require.NotNil(t, resp.ApplicationOdds)
	assert.InDelta(t, 0.1, *resp.ApplicationOdds, 1e-9)
	require.NotNil(t, resp.OneInN)
	assert.Equal(t, 10, *resp.OneInN)
}
