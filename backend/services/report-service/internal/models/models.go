package models

import "time"

// Member is a registered trainee as the admin UI sees it.
type Member struct {
	ID          int64     `json:"id"`
	LoginID     string    `json:"login_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Age         int       `json:"age"`
	Sex         string    `json:"sex"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionSummary is one completed training session in a member's history.
type SessionSummary struct {
	ID            int64     `json:"id"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	AvgPupilLeft  float64   `json:"avg_left_eye_pupil_size"`
	AvgPupilRight float64   `json:"avg_right_eye_pupil_size"`
	BlinkCount    int       `json:"blink_eye_count"`
}

// SessionDetail carries the per-session eye-tracking aggregates shown on the
// session page and used as zoom baselines.
type SessionDetail struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	BasePupilLeft  float64   `json:"base_pupil_left"`
	BasePupilRight float64   `json:"base_pupil_right"`
	BlinkCount     int       `json:"blink_eye_count"`
}

// ScoreRecord is one ADHD evaluation produced by the platform per session.
type ScoreRecord struct {
	CreatedAt     time.Time `json:"created_at"`
	Impulse       float64   `json:"impulse_inhibition_score"`
	Concentration float64   `json:"concentration_score"`
	Status        string    `json:"adhd_status"`
}

// TrendPoint is one dated value on a per-member trend chart.
type TrendPoint struct {
	Date  string  `json:"x"`
	Value float64 `json:"y"`
}

// TrendSeries is one labeled line on the member statistics chart.
type TrendSeries struct {
	ID    string       `json:"id"`
	Color string       `json:"color,omitempty"`
	Data  []TrendPoint `json:"data"`
}
