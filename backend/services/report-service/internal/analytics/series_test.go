package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSeriesFiltersToVisible(t *testing.T) {
	points := map[Channel][]Point{
		ChannelPupilLeft:  {{X: 1, Y: 2}},
		ChannelPupilRight: {{X: 1, Y: 3}},
		ChannelEEGAlpha:   {{X: 1, Y: 4}},
	}
	visible := map[Channel]SeriesStyle{
		ChannelPupilRight: {ID: "Right pupil", Color: "#00aa00"},
		ChannelPupilLeft:  {ID: "Left pupil", Color: "#0055ff"},
	}

	series := ComposeSeries(points, visible)

	require.Len(t, series, 2)
	// alphabetical by channel key: pupil_left before pupil_right
	assert.Equal(t, "Left pupil", series[0].ID)
	assert.Equal(t, "#0055ff", series[0].Color)
	assert.Equal(t, []Point{{X: 1, Y: 2}}, series[0].Data)
	assert.Equal(t, "Right pupil", series[1].ID)
}

func TestComposeSeriesEmptyVisibleSet(t *testing.T) {
	points := map[Channel][]Point{ChannelPupilLeft: {{X: 1, Y: 2}}}

	series := ComposeSeries(points, nil)

	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestComposeSeriesSkipsChannelsWithoutData(t *testing.T) {
	points := map[Channel][]Point{ChannelPupilLeft: {{X: 1, Y: 2}}}
	visible := map[Channel]SeriesStyle{
		ChannelPupilLeft: {ID: "left"},
		ChannelEEGGamma:  {ID: "gamma"},
	}

	series := ComposeSeries(points, visible)

	require.Len(t, series, 1)
	assert.Equal(t, "left", series[0].ID)
}

func TestComposeSeriesDeterministicOrder(t *testing.T) {
	points := map[Channel][]Point{}
	visible := map[Channel]SeriesStyle{}
	for _, ch := range KnownChannels() {
		points[ch] = []Point{{X: 1, Y: 1}}
		visible[ch] = SeriesStyle{ID: string(ch)}
	}

	first := ComposeSeries(points, visible)
	second := ComposeSeries(points, visible)

	assert.Equal(t, first, second)
	require.Len(t, first, len(KnownChannels()))
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].ID, first[i].ID)
	}
}
