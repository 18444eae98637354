package analytics

// Window is the raw-data detail view recovered around one downsampled point.
// It lives only as long as the detail view that requested it.
type Window struct {
	Channel   Channel `json:"channel"`
	RawPoints []Point `json:"raw_points"`
	Baseline  float64 `json:"baseline"`
	RangeMin  float64 `json:"range_min"`
	RangeMax  float64 `json:"range_max"`
}

// ZoomWindow recovers the raw (non-averaged) readings whose timestamps fall in
// the window of bucketSize timestamp units centered on center, inclusive at
// both edges. Records missing the channel are omitted. The baseline is an
// externally supplied reference value (e.g. the session's resting pupil size)
// carried through for display. A window that matches nothing is still a valid
// window with empty RawPoints.
func ZoomWindow(records []Record, channel Channel, center float64, bucketSize int, baseline float64) Window {
	half := float64(bucketSize) / 2
	w := Window{
		Channel:   channel,
		RawPoints: make([]Point, 0),
		Baseline:  baseline,
		RangeMin:  center - half,
		RangeMax:  center + half,
	}

	for _, r := range records {
		if r.Timestamp < w.RangeMin || r.Timestamp > w.RangeMax {
			continue
		}
		if v, ok := r.Value(channel); ok {
			w.RawPoints = append(w.RawPoints, Point{X: r.Timestamp, Y: v})
		}
	}
	return w
}
