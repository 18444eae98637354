package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeScores(t *testing.T) {
	samples := []ScoreSample{
		{Impulse: 30, Concentration: 20, Status: "normal"},
		{Impulse: 24, Concentration: 16, Status: "caution"},
		{Impulse: 12, Concentration: 24, Status: "normal"},
	}

	summary := SummarizeScores(samples)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "normal", summary.LatestStatus)
	assert.Equal(t, map[string]int{"normal": 2, "caution": 1}, summary.StatusCounts)

	assert.Equal(t, 12.0, summary.Impulse.Latest)
	assert.Equal(t, 22.0, summary.Impulse.Mean)
	assert.Equal(t, 12.0, summary.Impulse.Min)
	assert.Equal(t, 30.0, summary.Impulse.Max)

	assert.Equal(t, 24.0, summary.Concentration.Latest)
	assert.Equal(t, 20.0, summary.Concentration.Mean)

	require.Len(t, summary.ImpulseTrend, 3)
	assert.Equal(t, Point{X: 1, Y: 30}, summary.ImpulseTrend[0])
	assert.Equal(t, Point{X: 3, Y: 12}, summary.ImpulseTrend[2])
	require.Len(t, summary.ConcentrationTrend, 3)
	assert.Equal(t, Point{X: 2, Y: 16}, summary.ConcentrationTrend[1])
}

func TestSummarizeScoresEmpty(t *testing.T) {
	summary := SummarizeScores(nil)

	assert.Equal(t, 0, summary.Count)
	assert.NotNil(t, summary.StatusCounts)
	assert.NotNil(t, summary.ImpulseTrend)
	assert.Empty(t, summary.ImpulseTrend)
	assert.Empty(t, summary.LatestStatus)
}
