package analytics

// Downsample reduces a normalized record slice to one mean point per bucket of
// bucketSize consecutive readings of the given channel. Records that do not
// define the channel are skipped before bucketing, so every emitted point is a
// real arithmetic mean and the output length is ceil(defined/bucketSize).
// bucketSize 1 is the identity case: one point per defined reading. Values
// below 1 are clamped to 1.
func Downsample(records []Record, channel Channel, bucketSize int) []Point {
	if bucketSize < 1 {
		bucketSize = 1
	}

	points := make([]Point, 0, len(records)/bucketSize+1)

	var sumX, sumY float64
	count := 0
	for _, r := range records {
		v, ok := r.Value(channel)
		if !ok {
			continue
		}
		sumX += r.Timestamp
		sumY += v
		count++
		if count == bucketSize {
			points = append(points, Point{X: sumX / float64(count), Y: sumY / float64(count)})
			sumX, sumY, count = 0, 0, 0
		}
	}
	if count > 0 {
		points = append(points, Point{X: sumX / float64(count), Y: sumY / float64(count)})
	}
	return points
}
