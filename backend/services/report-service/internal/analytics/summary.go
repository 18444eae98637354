package analytics

import (
	"github.com/montanaflynn/stats"
)

// ScoreSample is one ADHD evaluation attached to a completed session.
type ScoreSample struct {
	Impulse       float64 `json:"impulse_inhibition_score"`
	Concentration float64 `json:"concentration_score"`
	Status        string  `json:"adhd_status"`
}

// ScoreStats aggregates one score stream across sessions.
type ScoreStats struct {
	Latest float64 `json:"latest"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ScoreSummary is the chart-ready aggregate behind the member's ADHD
// overview: gauge values, per-status counts and trend lines indexed by
// 1-based measurement number.
type ScoreSummary struct {
	Count              int            `json:"count"`
	Impulse            ScoreStats     `json:"impulse_inhibition"`
	Concentration      ScoreStats     `json:"concentration"`
	LatestStatus       string         `json:"latest_status"`
	StatusCounts       map[string]int `json:"status_counts"`
	ImpulseTrend       []Point        `json:"impulse_trend"`
	ConcentrationTrend []Point        `json:"concentration_trend"`
}

// SummarizeScores reduces a chronological score history into the overview
// aggregate. Empty history yields a zero summary with empty (non-nil)
// collections, never an error.
func SummarizeScores(samples []ScoreSample) ScoreSummary {
	summary := ScoreSummary{
		Count:              len(samples),
		StatusCounts:       make(map[string]int),
		ImpulseTrend:       make([]Point, 0, len(samples)),
		ConcentrationTrend: make([]Point, 0, len(samples)),
	}
	if len(samples) == 0 {
		return summary
	}

	impulse := make([]float64, len(samples))
	concentration := make([]float64, len(samples))
	for i, s := range samples {
		impulse[i] = s.Impulse
		concentration[i] = s.Concentration
		summary.StatusCounts[s.Status]++
		x := float64(i + 1)
		summary.ImpulseTrend = append(summary.ImpulseTrend, Point{X: x, Y: s.Impulse})
		summary.ConcentrationTrend = append(summary.ConcentrationTrend, Point{X: x, Y: s.Concentration})
	}

	latest := samples[len(samples)-1]
	summary.LatestStatus = latest.Status
	summary.Impulse = summarizeStream(impulse, latest.Impulse)
	summary.Concentration = summarizeStream(concentration, latest.Concentration)
	return summary
}

func summarizeStream(values []float64, latest float64) ScoreStats {
	out := ScoreStats{Latest: latest}
	if mean, err := stats.Mean(values); err == nil {
		out.Mean = mean
	}
	if min, err := stats.Min(values); err == nil {
		out.Min = min
	}
	if max, err := stats.Max(values); err == nil {
		out.Max = max
	}
	return out
}
