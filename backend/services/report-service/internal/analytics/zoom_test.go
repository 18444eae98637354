package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomWindowContainment(t *testing.T) {
	var records []Record
	for i := 0; i < 20; i++ {
		records = append(records, left(float64(i), float64(i)*2))
	}

	w := ZoomWindow(records, ChannelPupilLeft, 10, 6, 3.5)

	assert.Equal(t, 7.0, w.RangeMin)
	assert.Equal(t, 13.0, w.RangeMax)
	assert.Equal(t, 3.5, w.Baseline)
	require.Len(t, w.RawPoints, 7) // 7..13 inclusive
	for _, p := range w.RawPoints {
		assert.GreaterOrEqual(t, p.X, w.RangeMin)
		assert.LessOrEqual(t, p.X, w.RangeMax)
	}
}

func TestZoomWindowInclusiveEdges(t *testing.T) {
	records := []Record{left(7, 1), left(13, 2), left(6.999, 3), left(13.001, 4)}

	w := ZoomWindow(records, ChannelPupilLeft, 10, 6, 0)

	assert.Equal(t, []Point{{X: 7, Y: 1}, {X: 13, Y: 2}}, w.RawPoints)
}

func TestZoomWindowOmitsMissingChannel(t *testing.T) {
	records := []Record{
		left(9, 1),
		rec(10, map[Channel]float64{ChannelBlink: 1}),
		left(11, 2),
	}

	w := ZoomWindow(records, ChannelPupilLeft, 10, 4, 0)

	assert.Equal(t, []Point{{X: 9, Y: 1}, {X: 11, Y: 2}}, w.RawPoints)
}

func TestZoomWindowDegenerateIsNotAnError(t *testing.T) {
	records := []Record{left(1, 1), left(2, 2)}

	w := ZoomWindow(records, ChannelPupilLeft, 100, 2, 0)

	assert.NotNil(t, w.RawPoints)
	assert.Empty(t, w.RawPoints)
	assert.Equal(t, 99.0, w.RangeMin)
	assert.Equal(t, 101.0, w.RangeMax)
}

// Cross-check with the downsampler: zooming on a bucket's mean timestamp
// recovers only records that belong to the original input.
func TestZoomWindowRecoversBucketMembers(t *testing.T) {
	records, err := Normalize([]Record{left(1, 10), left(2, 14), left(3, 12), left(10, 50)})
	require.NoError(t, err)

	points := Downsample(records, ChannelPupilLeft, 3)
	require.NotEmpty(t, points)

	w := ZoomWindow(records, ChannelPupilLeft, points[0].X, 3, 0)
	require.NotEmpty(t, w.RawPoints)
	for _, p := range w.RawPoints {
		found := false
		for _, r := range records {
			v, ok := r.Value(ChannelPupilLeft)
			if ok && r.Timestamp == p.X && v == p.Y {
				found = true
				break
			}
		}
		assert.True(t, found, "zoom returned a point not present in the raw records: %+v", p)
	}
}

func TestZoomWindowRepeatable(t *testing.T) {
	records := []Record{left(1, 1), left(2, 2), left(3, 3)}

	first := ZoomWindow(records, ChannelPupilLeft, 2, 2, 1.5)
	second := ZoomWindow(records, ChannelPupilLeft, 2, 2, 1.5)

	assert.Equal(t, first, second)
}
