package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

func demoStints() []races.TyreStint {
	return []races.TyreStint{
		{Driver: "VER", Stint: 1, Compound: races.CompoundSoft, LapsCount: 14},
		{Driver: "VER", Stint: 2, Compound: races.CompoundSoft, LapsCount: 22},
		{Driver: "VER", Stint: 3, Compound: races.CompoundHard, LapsCount: 21},
		{Driver: "ALO", Stint: 1, Compound: races.CompoundSoft, LapsCount: 12},
		{Driver: "ALO", Stint: 2, Compound: races.CompoundHard, LapsCount: 25},
	}
}

func TestBuildStintSeriesMapsInOrder(t *testing.T) {
	series := BuildStintSeries(demoStints(), DefaultRoster())

	require.False(t, series.NoData)
	require.Len(t, series.Points, 5)
	assert.Equal(t, Point{Label: "VER S1", Laps: 14, Compound: races.CompoundSoft, Driver: "VER", Color: "#FF3333"}, series.Points[0])
	assert.Equal(t, "VER S3", series.Points[2].Label)
	assert.Equal(t, "#FFFFFF", series.Points[2].Color)
	assert.Equal(t, "ALO S2", series.Points[4].Label)
}

func TestBuildStintSeriesIsIdempotent(t *testing.T) {
	input := demoStints()

	first := BuildStintSeries(input, DefaultRoster())
	second := BuildStintSeries(input, DefaultRoster())

	assert.Equal(t, first, second)
	assert.Equal(t, demoStints(), input)
}

func TestBuildStintSeriesFiltersRoster(t *testing.T) {
	input := []races.TyreStint{
		{Driver: "NOR", Stint: 1, Compound: races.CompoundMedium, LapsCount: 30},
		{Driver: "HAM", Stint: 1, Compound: races.CompoundMedium, LapsCount: 28},
		{Driver: "PIA", Stint: 1, Compound: races.CompoundHard, LapsCount: 40},
	}

	series := BuildStintSeries(input, DefaultRoster())

	require.Len(t, series.Points, 1)
	assert.Equal(t, "HAM", series.Points[0].Driver)
}

func TestBuildStintSeriesNoData(t *testing.T) {
	tests := []struct {
		name   string
		stints []races.TyreStint
	}{
		{"never_fetched", nil},
		{"empty", []races.TyreStint{}},
		{"no_roster_match", []races.TyreStint{{Driver: "NOR", Stint: 1, Compound: races.CompoundSoft, LapsCount: 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := BuildStintSeries(tt.stints, DefaultRoster())

			assert.True(t, series.NoData)
			assert.Empty(t, series.Points)
			assert.NotNil(t, series.Points)
		})
	}
}

func TestBuildStintSeriesUnknownCompoundUsesDefaultColor(t *testing.T) {
	input := []races.TyreStint{{Driver: "LEC", Stint: 4, Compound: "UNKNOWN", LapsCount: 2}}

	series := BuildStintSeries(input, DefaultRoster())

	require.Len(t, series.Points, 1)
	assert.Equal(t, races.Compound("UNKNOWN"), series.Points[0].Compound)
	assert.Equal(t, DefaultColor, series.Points[0].Color)
}

func TestBuildStintSeriesCustomRoster(t *testing.T) {
	series := BuildStintSeries(demoStints(), NewRoster([]string{" alo ", "", "ALO"}))

	require.Len(t, series.Points, 2)
	assert.Equal(t, "ALO", series.Points[0].Driver)
}
