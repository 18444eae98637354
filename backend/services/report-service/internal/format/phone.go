package format

import "strings"

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether the value contains 10 or 11 digits, the two
// lengths member login ids are issued with.
func ValidPhone(s string) bool {
	n := len(DigitsOnly(s))
	return n == 10 || n == 11
}

// FormatPhone renders a phone number with hyphens: 3-3-4 for 10 digits,
// 3-4-4 for 11. Anything else is returned unchanged.
func FormatPhone(s string) string {
	digits := DigitsOnly(s)
	switch len(digits) {
	case 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	default:
		return s
	}
}
