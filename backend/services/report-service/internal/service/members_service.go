package service

import (
	"errors"
	"fmt"
	"strings"

	"eyewave/backend/services/report-service/internal/format"
	"eyewave/backend/services/report-service/internal/models"
	"eyewave/backend/services/report-service/internal/platform"
)

// Validation outcomes surfaced to handlers as 400/409 responses.
var (
	ErrInvalidInput   = errors.New("service: invalid input")
	ErrDuplicatePhone = errors.New("service: phone number already registered")
)

const (
	SexMan   = "MAN"
	SexWoman = "WOMAN"
)

// MemberFilter narrows the member list. Zero values leave the corresponding
// dimension unbounded; the keyword matches name or login id case-insensitively.
type MemberFilter struct {
	Keyword string
	Sex     string
	AgeMin  int
	AgeMax  int
}

// Apply filters in list order.
func (f MemberFilter) Apply(members []models.Member) []models.Member {
	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(m.Name), keyword) &&
			!strings.Contains(strings.ToLower(m.LoginID), keyword) {
			continue
		}
		if f.Sex != "" && m.Sex != f.Sex {
			continue
		}
		if f.AgeMin > 0 && m.Age < f.AgeMin {
			continue
		}
		if f.AgeMax > 0 && m.Age > f.AgeMax {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ValidateRegistration checks a registration request against the field rules
// and the existing member list. Phone comparison ignores hyphenation.
func ValidateRegistration(input platform.RegisterInput, existing []models.Member) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !format.ValidPhone(input.PhoneNumber) {
		return fmt.Errorf("%w: phone number must contain 10 or 11 digits", ErrInvalidInput)
	}
	if input.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}
	if input.Sex != SexMan && input.Sex != SexWoman {
		return fmt.Errorf("%w: sex must be %s or %s", ErrInvalidInput, SexMan, SexWoman)
	}

	digits := format.DigitsOnly(input.PhoneNumber)
	for _, m := range existing {
		if format.DigitsOnly(m.PhoneNumber) == digits {
			return ErrDuplicatePhone
		}
	}
	return nil
}

// normalizeRegistration trims the name and strips phone hyphenation before the
// payload goes upstream.
func normalizeRegistration(input platform.RegisterInput) platform.RegisterInput {
	input.Name = strings.TrimSpace(input.Name)
	input.PhoneNumber = format.DigitsOnly(input.PhoneNumber)
	return input
}
