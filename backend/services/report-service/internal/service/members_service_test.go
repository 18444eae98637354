package service

import (
	"errors"
	"testing"

	"eyewave/backend/services/report-service/internal/models"
	"eyewave/backend/services/report-service/internal/platform"
)

func sampleMembers() []models.Member {
	return []models.Member{
		{ID: 1, LoginID: "01012345678", Name: "Kim Minjun", PhoneNumber: "01012345678", Age: 9, Sex: SexMan},
		{ID: 2, LoginID: "01098765432", Name: "Lee Seoyeon", PhoneNumber: "010-9876-5432", Age: 12, Sex: SexWoman},
		{ID: 3, LoginID: "01055554444", Name: "Park Jiho", PhoneNumber: "01055554444", Age: 15, Sex: SexMan},
	}
}

func TestMemberFilterKeyword(t *testing.T) {
	got := MemberFilter{Keyword: "seoyeon"}.Apply(sampleMembers())
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected member 2 only, got %v", got)
	}

	// keyword also matches login ids
	got = MemberFilter{Keyword: "5555"}.Apply(sampleMembers())
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected member 3 only, got %v", got)
	}
}

func TestMemberFilterSexAndAge(t *testing.T) {
	got := MemberFilter{Sex: SexMan, AgeMin: 10}.Apply(sampleMembers())
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected member 3 only, got %v", got)
	}

	got = MemberFilter{AgeMin: 9, AgeMax: 12}.Apply(sampleMembers())
	if len(got) != 2 {
		t.Fatalf("expected inclusive age bounds to keep 2 members, got %d", len(got))
	}
}

func TestMemberFilterZeroValueKeepsAll(t *testing.T) {
	got := MemberFilter{}.Apply(sampleMembers())
	if len(got) != 3 {
		t.Fatalf("expected all members, got %d", len(got))
	}
}

func TestValidateRegistration(t *testing.T) {
	existing := sampleMembers()
	valid := platform.RegisterInput{Name: "Choi Haeun", PhoneNumber: "010-1111-2222", Age: 8, Sex: SexWoman}

	if err := ValidateRegistration(valid, existing); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name  string
		input platform.RegisterInput
		want  error
	}{
		{"empty name", platform.RegisterInput{Name: "  ", PhoneNumber: "01011112222", Age: 8, Sex: SexWoman}, ErrInvalidInput},
		{"short phone", platform.RegisterInput{Name: "Choi Haeun", PhoneNumber: "0101111", Age: 8, Sex: SexWoman}, ErrInvalidInput},
		{"zero age", platform.RegisterInput{Name: "Choi Haeun", PhoneNumber: "01011112222", Age: 0, Sex: SexWoman}, ErrInvalidInput},
		{"bad sex", platform.RegisterInput{Name: "Choi Haeun", PhoneNumber: "01011112222", Age: 8, Sex: "OTHER"}, ErrInvalidInput},
		{"duplicate phone ignores hyphens", platform.RegisterInput{Name: "Choi Haeun", PhoneNumber: "010-1234-5678", Age: 8, Sex: SexWoman}, ErrDuplicatePhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateRegistration(tc.input, existing); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNormalizeRegistration(t *testing.T) {
	got := normalizeRegistration(platform.RegisterInput{Name: " Choi Haeun ", PhoneNumber: "010-1111-2222", Age: 8, Sex: SexWoman})
	if got.Name != "Choi Haeun" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if got.PhoneNumber != "01011112222" {
		t.Fatalf("expected digits-only phone, got %q", got.PhoneNumber)
	}
}
