package analytics

import "sort"

// SeriesStyle is the caller-supplied presentation for one channel. The
// pipeline never invents labels or colors.
type SeriesStyle struct {
	ID    string `json:"id"`
	Color string `json:"color,omitempty"`
}

// Series is one labeled line on a chart.
type Series struct {
	ID    string  `json:"id"`
	Color string  `json:"color,omitempty"`
	Data  []Point `json:"data"`
}

// ComposeSeries assembles the downsampled points of the visible channels into
// chart series. Channels absent from the visible set are excluded; an empty
// visible set yields an empty (non-nil) slice. Output order is alphabetical by
// channel key so repeated calls render identically.
func ComposeSeries(points map[Channel][]Point, visible map[Channel]SeriesStyle) []Series {
	channels := make([]Channel, 0, len(visible))
	for ch := range visible {
		if _, ok := points[ch]; ok {
			channels = append(channels, ch)
		}
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })

	series := make([]Series, 0, len(channels))
	for _, ch := range channels {
		style := visible[ch]
		data := points[ch]
		if data == nil {
			data = make([]Point, 0)
		}
		series = append(series, Series{ID: style.ID, Color: style.Color, Data: data})
	}
	return series
}
