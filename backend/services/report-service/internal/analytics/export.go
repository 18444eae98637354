package analytics

import "strings"

// ToDelimitedText renders a header line followed by one line per row, fields
// comma-joined and lines newline-joined. Fields are emitted verbatim: values
// containing commas or newlines are not quoted or escaped. That matches the
// export format the legacy report tool shipped and is a known limitation of
// the format, not of the callers.
func ToDelimitedText(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}
