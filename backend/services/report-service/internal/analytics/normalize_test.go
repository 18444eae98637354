package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(ts float64, values map[Channel]float64) Record {
	return Record{Timestamp: ts, Values: values}
}

func left(ts, v float64) Record {
	return rec(ts, map[Channel]float64{ChannelPupilLeft: v})
}

func TestNormalizeSortsAscending(t *testing.T) {
	records := []Record{left(3, 12), left(1, 10), left(2, 14)}

	sorted, err := Normalize(records)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, timestamps(sorted))
	// input untouched
	assert.Equal(t, []float64{3, 1, 2}, timestamps(records))
}

func TestNormalizeIsStable(t *testing.T) {
	first := rec(5, map[Channel]float64{ChannelBlink: 1})
	second := rec(5, map[Channel]float64{ChannelBlink: 2})
	sorted, err := Normalize([]Record{left(9, 1), first, second})
	require.NoError(t, err)

	v0, _ := sorted[0].Value(ChannelBlink)
	v1, _ := sorted[1].Value(ChannelBlink)
	assert.Equal(t, 1.0, v0)
	assert.Equal(t, 2.0, v1)
}

func TestNormalizeIdempotent(t *testing.T) {
	records := []Record{left(3, 12), left(1, 10), left(1, 11), left(2, 14)}

	once, err := Normalize(records)
	require.NoError(t, err)
	twice, err := Normalize(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestNormalizeEmptyInput(t *testing.T) {
	sorted, err := Normalize(nil)
	require.NoError(t, err)
	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestNormalizeRejectsNonFiniteTimestamp(t *testing.T) {
	for _, ts := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Normalize([]Record{left(1, 10), left(ts, 11)})
		assert.ErrorIs(t, err, ErrInvalidRecord)
	}
}

func timestamps(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Timestamp
	}
	return out
}
