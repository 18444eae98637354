package format

import (
	"fmt"
	"strings"
	"time"
)

// Upstream backend versions disagree on timestamp rendering, so parsing
// walks the layouts observed in the wild.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime decodes an upstream timestamp string.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format: unrecognized timestamp %q", s)
}

// ShortDate renders the yyyy-mm-dd form used as the x value of trend charts.
func ShortDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DisplayDateTime renders the minute-resolution form shown in session lists.
func DisplayDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
