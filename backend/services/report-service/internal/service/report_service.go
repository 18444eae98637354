package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/analytics"
	"eyewave/backend/services/report-service/internal/auth"
	"eyewave/backend/services/report-service/internal/cache"
	"eyewave/backend/services/report-service/internal/format"
	"eyewave/backend/services/report-service/internal/models"
	"eyewave/backend/services/report-service/internal/password"
	"eyewave/backend/services/report-service/internal/platform"
	"eyewave/backend/services/report-service/internal/session"
)

// ErrMemberNotFound is returned when a member id resolves to nothing.
var ErrMemberNotFound = errors.New("service: member not found")

// PlatformAPI is the upstream surface the report service consumes.
type PlatformAPI interface {
	Login(ctx context.Context, loginID, passwordDigest string) (string, error)
	ChangePassword(ctx context.Context, token, currentDigest, newDigest string) error
	ListUsers(ctx context.Context, token string) ([]models.Member, error)
	RegisterUser(ctx context.Context, token string, input platform.RegisterInput) error
	WithdrawUser(ctx context.Context, token string, userID int64) error
	ListGames(ctx context.Context, token string, userID int64) ([]models.SessionSummary, error)
	GameDetail(ctx context.Context, token string, userID, gameID int64) (*models.SessionDetail, error)
	GameSamples(ctx context.Context, token string, userID, gameID int64) ([]analytics.Record, error)
	BioStatistics(ctx context.Context, token string, userID int64) ([]models.ScoreRecord, error)
}

// DefaultSeriesStyles returns the chart presentation used when none is
// configured. Labels and colors follow the admin UI palette.
func DefaultSeriesStyles() map[analytics.Channel]analytics.SeriesStyle {
	return map[analytics.Channel]analytics.SeriesStyle{
		analytics.ChannelPupilLeft:  {ID: "left pupil", Color: "#2f7ed8"},
		analytics.ChannelPupilRight: {ID: "right pupil", Color: "#910000"},
		analytics.ChannelEEGDelta:   {ID: "eeg delta", Color: "#8bbc21"},
		analytics.ChannelEEGTheta:   {ID: "eeg theta", Color: "#1aadce"},
		analytics.ChannelEEGAlpha:   {ID: "eeg alpha", Color: "#492970"},
		analytics.ChannelEEGBeta:    {ID: "eeg beta", Color: "#f28f43"},
		analytics.ChannelEEGGamma:   {ID: "eeg gamma", Color: "#77a1e5"},
		analytics.ChannelBlink:      {ID: "blink", Color: "#c42525"},
		analytics.ChannelScore:      {ID: "score", Color: "#a6c96a"},
	}
}

// ReportService orchestrates the admin workflows: authentication against the
// platform, member management and the chart pipelines. It holds no state of
// its own; sessions live in the session store and sample sets in the cache.
type ReportService struct {
	platform PlatformAPI
	sessions session.Store
	samples  *cache.SamplesCache
	tokens   *auth.TokenService
	styles   map[analytics.Channel]analytics.SeriesStyle
	logger   *zap.Logger
}

// NewReportService wires the service. The samples cache may be nil, in which
// case every chart request refetches from the platform.
func NewReportService(
	platformAPI PlatformAPI,
	sessions session.Store,
	samples *cache.SamplesCache,
	tokens *auth.TokenService,
	styles map[analytics.Channel]analytics.SeriesStyle,
	logger *zap.Logger,
) *ReportService {
	if styles == nil {
		styles = DefaultSeriesStyles()
	}
	return &ReportService{
		platform: platformAPI,
		sessions: sessions,
		samples:  samples,
		tokens:   tokens,
		styles:   styles,
		logger:   logger,
	}
}

// Login authenticates against the platform and returns a gateway session
// token. The upstream access token never reaches the caller; it is parked in
// the session store under a fresh session id.
func (s *ReportService) Login(ctx context.Context, loginID, plainPassword string) (string, error) {
	upstreamToken, err := s.platform.Login(ctx, loginID, password.Digest(plainPassword))
	if err != nil {
		return "", err
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Set(ctx, sessionID, upstreamToken); err != nil {
		return "", err
	}

	gatewayToken, err := s.tokens.Generate(sessionID)
	if err != nil {
		return "", err
	}
	s.logger.Info("admin signed in", zap.String("login_id", loginID))
	return gatewayToken, nil
}

// Logout drops the session.
func (s *ReportService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

// ChangePassword rotates the administrator password upstream.
func (s *ReportService) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	if newPassword == "" {
		return errors.New("service: new password is required")
	}
	return s.platform.ChangePassword(ctx, token, password.Digest(currentPassword), password.Digest(newPassword))
}

// Members returns the filtered member list with display-formatted phone
// numbers.
func (s *ReportService) Members(ctx context.Context, token string, filter MemberFilter) ([]models.Member, error) {
	members, err := s.platform.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	members = filter.Apply(members)
	for i := range members {
		members[i].PhoneNumber = format.FormatPhone(members[i].PhoneNumber)
	}
	return members, nil
}

// RegisterMember validates and creates a member account.
func (s *ReportService) RegisterMember(ctx context.Context, token string, input platform.RegisterInput) error {
	existing, err := s.platform.ListUsers(ctx, token)
	if err != nil {
		return err
	}
	if err := ValidateRegistration(input, existing); err != nil {
		return err
	}
	return s.platform.RegisterUser(ctx, token, normalizeRegistration(input))
}

// WithdrawMember deletes a member account.
func (s *ReportService) WithdrawMember(ctx context.Context, token string, userID int64) error {
	return s.platform.WithdrawUser(ctx, token, userID)
}

// MemberByID resolves one member. The platform exposes no single-member
// endpoint, so this scans the full list.
func (s *ReportService) MemberByID(ctx context.Context, token string, userID int64) (*models.Member, error) {
	members, err := s.platform.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.ID == userID {
			m.PhoneNumber = format.FormatPhone(m.PhoneNumber)
			return &m, nil
		}
	}
	return nil, ErrMemberNotFound
}

// MemberSessions returns a member's training session history.
func (s *ReportService) MemberSessions(ctx context.Context, token string, userID int64) ([]models.SessionSummary, error) {
	return s.platform.ListGames(ctx, token, userID)
}

// SessionTrends charts the per-session eye aggregates over time: one dated
// line per metric.
func (s *ReportService) SessionTrends(ctx context.Context, token string, userID int64) ([]models.TrendSeries, error) {
	sessions, err := s.platform.ListGames(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	left := models.TrendSeries{ID: "avg left pupil", Color: s.styles[analytics.ChannelPupilLeft].Color, Data: make([]models.TrendPoint, 0, len(sessions))}
	right := models.TrendSeries{ID: "avg right pupil", Color: s.styles[analytics.ChannelPupilRight].Color, Data: make([]models.TrendPoint, 0, len(sessions))}
	blink := models.TrendSeries{ID: "blink count", Color: s.styles[analytics.ChannelBlink].Color, Data: make([]models.TrendPoint, 0, len(sessions))}

	for _, sess := range sessions {
		date := format.ShortDate(sess.CreatedAt)
		left.Data = append(left.Data, models.TrendPoint{Date: date, Value: sess.AvgPupilLeft})
		right.Data = append(right.Data, models.TrendPoint{Date: date, Value: sess.AvgPupilRight})
		blink.Data = append(blink.Data, models.TrendPoint{Date: date, Value: float64(sess.BlinkCount)})
	}
	return []models.TrendSeries{left, right, blink}, nil
}

// BioSummary reduces a member's score history into the ADHD overview.
func (s *ReportService) BioSummary(ctx context.Context, token string, userID int64) (*analytics.ScoreSummary, error) {
	scores, err := s.platform.BioStatistics(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	samples := make([]analytics.ScoreSample, 0, len(scores))
	for _, sc := range scores {
		samples = append(samples, analytics.ScoreSample{
			Impulse:       sc.Impulse,
			Concentration: sc.Concentration,
			Status:        sc.Status,
		})
	}
	summary := analytics.SummarizeScores(samples)
	return &summary, nil
}

// SessionSeries builds the smoothed chart series for the requested channels.
func (s *ReportService) SessionSeries(ctx context.Context, token string, userID, gameID int64, channels []analytics.Channel, bucketSize int) ([]analytics.Series, error) {
	records, err := s.loadSamples(ctx, token, userID, gameID)
	if err != nil {
		return nil, err
	}

	points := make(map[analytics.Channel][]analytics.Point, len(channels))
	visible := make(map[analytics.Channel]analytics.SeriesStyle, len(channels))
	for _, ch := range channels {
		points[ch] = analytics.Downsample(records, ch, bucketSize)
		style, ok := s.styles[ch]
		if !ok {
			style = analytics.SeriesStyle{ID: string(ch)}
		}
		visible[ch] = style
	}
	return analytics.ComposeSeries(points, visible), nil
}

// SessionZoom re-slices the raw samples around a chart point. Pupil channels
// use the session's base pupil size as the reference line; the other channels
// have no baseline.
func (s *ReportService) SessionZoom(ctx context.Context, token string, userID, gameID int64, channel analytics.Channel, center float64, bucketSize int) (*analytics.Window, error) {
	records, err := s.loadSamples(ctx, token, userID, gameID)
	if err != nil {
		return nil, err
	}

	var baseline float64
	if channel == analytics.ChannelPupilLeft || channel == analytics.ChannelPupilRight {
		detail, err := s.platform.GameDetail(ctx, token, userID, gameID)
		if err != nil {
			s.logger.Warn("session detail unavailable, zoom baseline defaults to zero",
				zap.Int64("game_id", gameID), zap.Error(err))
		} else if channel == analytics.ChannelPupilLeft {
			baseline = detail.BasePupilLeft
		} else {
			baseline = detail.BasePupilRight
		}
	}

	window := analytics.ZoomWindow(records, channel, center, bucketSize, baseline)
	return &window, nil
}

// ExportSessions renders a member's session history as comma-delimited text.
func (s *ReportService) ExportSessions(ctx context.Context, token string, userID int64) (string, error) {
	sessions, err := s.platform.ListGames(ctx, token, userID)
	if err != nil {
		return "", err
	}

	header := []string{"id", "category", "created_at", "avg_left_eye_pupil_size", "avg_right_eye_pupil_size", "blink_eye_count"}
	rows := make([][]string, 0, len(sessions))
	for _, sess := range sessions {
		rows = append(rows, []string{
			strconv.FormatInt(sess.ID, 10),
			sess.Category,
			format.DisplayDateTime(sess.CreatedAt),
			strconv.FormatFloat(sess.AvgPupilLeft, 'f', -1, 64),
			strconv.FormatFloat(sess.AvgPupilRight, 'f', -1, 64),
			strconv.Itoa(sess.BlinkCount),
		})
	}
	return analytics.ToDelimitedText(header, rows), nil
}

// loadSamples returns the normalized sample records for a session, consulting
// the cache first. Cache failures degrade to a platform fetch.
func (s *ReportService) loadSamples(ctx context.Context, token string, userID, gameID int64) ([]analytics.Record, error) {
	if s.samples != nil {
		records, err := s.samples.Get(ctx, userID, gameID)
		if err == nil {
			return records, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("samples cache read failed", zap.Int64("game_id", gameID), zap.Error(err))
		}
	}

	raw, err := s.platform.GameSamples(ctx, token, userID, gameID)
	if err != nil {
		return nil, err
	}
	records, err := analytics.Normalize(raw)
	if err != nil {
		return nil, err
	}

	if s.samples != nil {
		if err := s.samples.Save(ctx, userID, gameID, records); err != nil {
			s.logger.Warn("samples cache write failed", zap.Int64("game_id", gameID), zap.Error(err))
		}
	}
	return records, nil
}
