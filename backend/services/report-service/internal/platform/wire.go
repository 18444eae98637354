package platform

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"eyewave/backend/services/report-service/internal/analytics"
	"eyewave/backend/services/report-service/internal/format"
	"eyewave/backend/services/report-service/internal/models"
)

// Response-normalization boundary. Upstream backend versions drift between
// snake_case and camelCase field names and occasionally render numbers as
// strings; each decode function maps the loose wire object onto the single
// internal shape so nothing past this file ever sees the drift.

type looseObject map[string]json.RawMessage

func decodeObject(body []byte) (looseObject, error) {
	var obj looseObject
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(body []byte) ([]looseObject, error) {
	var items []looseObject
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// text returns the first present key decoded as a string.
func (o looseObject) text(keys ...string) string {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return ""
}

// number returns the first present key coerced to float64. Numeric strings
// are accepted; anything else reports absent.
func (o looseObject) number(keys ...string) (float64, bool) {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok {
			continue
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			return f, true
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func (o looseObject) integer(keys ...string) int64 {
	if f, ok := o.number(keys...); ok {
		return int64(f)
	}
	return 0
}

func (o looseObject) timestamp(keys ...string) time.Time {
	if s := o.text(keys...); s != "" {
		if t, err := format.ParseTime(s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (o looseObject) object(keys ...string) looseObject {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok {
			continue
		}
		var nested looseObject
		if err := json.Unmarshal(raw, &nested); err == nil {
			return nested
		}
	}
	return nil
}

func decodeMembers(body []byte) ([]models.Member, error) {
	items, err := decodeArray(body)
	if err != nil {
		return nil, err
	}
	members := make([]models.Member, 0, len(items))
	for _, item := range items {
		members = append(members, decodeMember(item))
	}
	return members, nil
}

func decodeMember(o looseObject) models.Member {
	return models.Member{
		ID:          o.integer("id"),
		LoginID:     o.text("login_id", "loginId"),
		Name:        o.text("name"),
		PhoneNumber: o.text("phone_number", "phoneNumber"),
		Age:         int(o.integer("age")),
		Sex:         o.text("sex"),
		CreatedAt:   o.timestamp("created_at", "createdAt"),
	}
}

func decodeSessions(body []byte) ([]models.SessionSummary, error) {
	items, err := decodeArray(body)
	if err != nil {
		return nil, err
	}
	sessions := make([]models.SessionSummary, 0, len(items))
	for _, item := range items {
		left, _ := item.number("avg_left_eye_pupil_size", "avgLeftEyePupilSize")
		right, _ := item.number("avg_right_eye_pupil_size", "avgRightEyePupilSize")
		sessions = append(sessions, models.SessionSummary{
			ID:            item.integer("id"),
			Category:      item.text("category"),
			CreatedAt:     item.timestamp("created_at", "createdAt"),
			AvgPupilLeft:  left,
			AvgPupilRight: right,
			BlinkCount:    int(item.integer("blink_eye_count", "blinkEyeCount")),
		})
	}
	return sessions, nil
}

func decodeSessionDetail(body []byte) (*models.SessionDetail, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	detail := &models.SessionDetail{
		ID:        obj.integer("id"),
		CreatedAt: obj.timestamp("created_at", "createdAt"),
	}
	if eye := obj.object("eye_data", "eyeData"); eye != nil {
		detail.BlinkCount = int(eye.integer("blink_eye_count", "blinkEyeCount"))
		if base := eye.object("base_pupil_size", "basePupilSize"); base != nil {
			if v, ok := base.number("left"); ok {
				detail.BasePupilLeft = v
			}
			if v, ok := base.number("right"); ok {
				detail.BasePupilRight = v
			}
		}
	}
	return detail, nil
}

// Aliases per channel across known upstream versions.
var sampleChannelKeys = map[analytics.Channel][]string{
	analytics.ChannelPupilLeft:  {"left_pupil_size", "leftPupilSize", "pupil_left"},
	analytics.ChannelPupilRight: {"right_pupil_size", "rightPupilSize", "pupil_right"},
	analytics.ChannelEEGDelta:   {"eeg_delta", "eegDelta"},
	analytics.ChannelEEGTheta:   {"eeg_theta", "eegTheta"},
	analytics.ChannelEEGAlpha:   {"eeg_alpha", "eegAlpha"},
	analytics.ChannelEEGBeta:    {"eeg_beta", "eegBeta"},
	analytics.ChannelEEGGamma:   {"eeg_gamma", "eegGamma"},
	analytics.ChannelBlink:      {"blink", "blink_flag", "blinkFlag"},
	analytics.ChannelScore:      {"score"},
}

func decodeSamples(body []byte) ([]analytics.Record, error) {
	items, err := decodeArray(body)
	if err != nil {
		return nil, err
	}
	records := make([]analytics.Record, 0, len(items))
	for _, item := range items {
		records = append(records, decodeSample(item))
	}
	return records, nil
}

// decodeSample keeps a missing or malformed timestamp as NaN so the
// normalizer rejects the batch instead of silently re-ordering garbage.
func decodeSample(o looseObject) analytics.Record {
	record := analytics.Record{Timestamp: math.NaN()}
	if ts, ok := o.number("timestamp", "ts"); ok {
		record.Timestamp = ts
	}
	for ch, keys := range sampleChannelKeys {
		if v, ok := o.number(keys...); ok {
			if record.Values == nil {
				record.Values = make(map[analytics.Channel]float64)
			}
			record.Values[ch] = v
		}
	}
	return record
}

func decodeScores(body []byte) ([]models.ScoreRecord, error) {
	items, err := decodeArray(body)
	if err != nil {
		return nil, err
	}
	scores := make([]models.ScoreRecord, 0, len(items))
	for _, item := range items {
		impulse, _ := item.number("impulse_inhibition_score", "impulseInhibitionScore")
		concentration, _ := item.number("concentration_score", "concentrationScore")
		scores = append(scores, models.ScoreRecord{
			CreatedAt:     item.timestamp("created_at", "createdAt"),
			Impulse:       impulse,
			Concentration: concentration,
			Status:        item.text("adhd_status", "adhdStatus"),
		})
	}
	return scores, nil
}
