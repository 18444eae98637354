package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDelimitedTextRoundTrip(t *testing.T) {
	header := []string{"session_id", "created_at", "blink_eye_count"}
	rows := [][]string{
		{"17", "2025-03-02", "42"},
		{"18", "2025-03-09", "35"},
	}

	text := ToDelimitedText(header, rows)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, header, strings.Split(lines[0], ","))
	assert.Equal(t, rows[0], strings.Split(lines[1], ","))
	assert.Equal(t, rows[1], strings.Split(lines[2], ","))
}

func TestToDelimitedTextNoRows(t *testing.T) {
	text := ToDelimitedText([]string{"a", "b"}, nil)
	assert.Equal(t, "a,b", text)
}

func TestToDelimitedTextNoTrailingNewline(t *testing.T) {
	text := ToDelimitedText([]string{"a"}, [][]string{{"1"}})
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestToDelimitedTextPure(t *testing.T) {
	header := []string{"x", "y"}
	rows := [][]string{{"1", "2"}}
	assert.Equal(t, ToDelimitedText(header, rows), ToDelimitedText(header, rows))
}
