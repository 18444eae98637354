package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidRecord marks a record whose timestamp is not a finite number.
var ErrInvalidRecord = errors.New("analytics: record timestamp is not a finite number")

// Normalize returns a new slice sorted ascending by timestamp. The sort is
// stable: records sharing a timestamp keep their input order, which the
// downsampler's positional bucketing relies on. A NaN or infinite timestamp
// rejects the whole batch so upstream data-quality defects stay visible.
func Normalize(records []Record) ([]Record, error) {
	for i, r := range records {
		if math.IsNaN(r.Timestamp) || math.IsInf(r.Timestamp, 0) {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidRecord, i)
		}
	}

	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out, nil
}
