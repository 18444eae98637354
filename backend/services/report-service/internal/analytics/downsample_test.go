package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsampleBucketSizeOneIsIdentity(t *testing.T) {
	records, err := Normalize([]Record{left(1, 10), left(3, 12), left(2, 14)})
	require.NoError(t, err)

	points := Downsample(records, ChannelPupilLeft, 1)

	assert.Equal(t, []Point{{X: 1, Y: 10}, {X: 2, Y: 14}, {X: 3, Y: 12}}, points)
}

func TestDownsampleMeansBucket(t *testing.T) {
	// records with values [2, 4, 6] and bucketSize 3 yield exactly one point y=4
	records := []Record{left(10, 2), left(20, 4), left(30, 6)}

	points := Downsample(records, ChannelPupilLeft, 3)

	require.Len(t, points, 1)
	assert.Equal(t, Point{X: 20, Y: 4}, points[0])
}

func TestDownsampleScenarioReorderThenMean(t *testing.T) {
	records, err := Normalize([]Record{left(1, 10), left(3, 12), left(2, 14)})
	require.NoError(t, err)

	points := Downsample(records, ChannelPupilLeft, 3)

	require.Len(t, points, 1)
	assert.Equal(t, Point{X: 2, Y: 12}, points[0])
}

func TestDownsampleCountBound(t *testing.T) {
	var records []Record
	for i := 0; i < 10; i++ {
		records = append(records, left(float64(i), float64(i)))
	}
	// two records do not define the channel at all
	records = append(records, rec(100, nil), rec(101, map[Channel]float64{ChannelBlink: 1}))

	for _, k := range []int{1, 2, 3, 4, 7, 10, 25} {
		points := Downsample(records, ChannelPupilLeft, k)
		expected := int(math.Ceil(10 / float64(k)))
		assert.Len(t, points, expected, "bucketSize=%d", k)
	}
}

func TestDownsampleSkipsAbsentValuesWithoutBias(t *testing.T) {
	records := []Record{
		left(1, 3),
		rec(2, nil), // absent, must not drag the mean toward zero
		left(3, 5),
	}

	points := Downsample(records, ChannelPupilLeft, 2)

	require.Len(t, points, 1)
	assert.Equal(t, Point{X: 2, Y: 4}, points[0])
}

func TestDownsampleNoDefinedValues(t *testing.T) {
	points := Downsample([]Record{rec(1, nil), rec(2, nil)}, ChannelScore, 2)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestDownsampleShortLastBucket(t *testing.T) {
	records := []Record{left(1, 1), left(2, 2), left(3, 3), left(4, 10)}

	points := Downsample(records, ChannelPupilLeft, 3)

	require.Len(t, points, 2)
	assert.Equal(t, Point{X: 2, Y: 2}, points[0])
	assert.Equal(t, Point{X: 4, Y: 10}, points[1])
}

func TestDownsampleClampsBucketSize(t *testing.T) {
	records := []Record{left(1, 5), left(2, 7)}
	assert.Equal(t, Downsample(records, ChannelPupilLeft, 1), Downsample(records, ChannelPupilLeft, 0))
}

func TestDownsampleDeterministic(t *testing.T) {
	records := []Record{left(1, 10), left(2, 14), left(3, 12), left(4, 9)}
	assert.Equal(t,
		Downsample(records, ChannelPupilLeft, 2),
		Downsample(records, ChannelPupilLeft, 2),
	)
}
