package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/analytics"
	"eyewave/backend/services/report-service/internal/models"
)

// Sentinel errors mapped from upstream status codes.
var (
	ErrUnauthorized = errors.New("platform: unauthorized")
	ErrNotFound     = errors.New("platform: not found")
)

// HTTPDoer defines http.Client interface subset.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the remote therapy-platform admin API. It owns bearer-token
// attachment and status-to-error mapping; callers own retry policy (none).
type Client struct {
	baseURL string
	client  HTTPDoer
	logger  *zap.Logger
}

// NewClient builds the platform API client.
func NewClient(baseURL string, httpClient HTTPDoer, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

// NewDefaultHTTPClient returns *http.Client with timeout.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// RegisterInput is the member-registration payload the upstream API accepts.
type RegisterInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
	Sex         string `json:"sex"`
}

// Login exchanges credentials for an upstream access token. The password must
// already be digested (see the password package).
func (c *Client) Login(ctx context.Context, loginID, passwordDigest string) (string, error) {
	payload := map[string]string{
		"login_id": loginID,
		"password": passwordDigest,
	}
	body, err := c.do(ctx, http.MethodPost, "/admin/login", "", nil, payload)
	if err != nil {
		return "", err
	}

	obj, err := decodeObject(body)
	if err != nil {
		return "", fmt.Errorf("platform: decode login response: %w", err)
	}
	token := obj.text("access_token", "accessToken")
	if token == "" {
		return "", errors.New("platform: login response missing access token")
	}
	return token, nil
}

// ChangePassword rotates the administrator password upstream. Both values are
// digests.
func (c *Client) ChangePassword(ctx context.Context, token, currentDigest, newDigest string) error {
	payload := map[string]string{
		"cur_password": currentDigest,
		"new_password": newDigest,
	}
	_, err := c.do(ctx, http.MethodPatch, "/admin/password", token, nil, payload)
	return err
}

// ListUsers fetches every registered member.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.Member, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/users", token, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeMembers(body)
}

// RegisterUser creates a member account.
func (c *Client) RegisterUser(ctx context.Context, token string, input RegisterInput) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/user/register", token, nil, input)
	return err
}

// WithdrawUser deletes a member account.
func (c *Client) WithdrawUser(ctx context.Context, token string, userID int64) error {
	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/user/withdraw", token, query, nil)
	return err
}

// ListGames fetches a member's training session history.
func (c *Client) ListGames(ctx context.Context, token string, userID int64) ([]models.SessionSummary, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/game", token, userQuery(userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeSessions(body)
}

// GameDetail fetches one session's eye-tracking aggregates.
func (c *Client) GameDetail(ctx context.Context, token string, userID, gameID int64) (*models.SessionDetail, error) {
	path := fmt.Sprintf("/admin/game/%d", gameID)
	body, err := c.do(ctx, http.MethodGet, path, token, userQuery(userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeSessionDetail(body)
}

// GameSamples fetches one session's raw biometric sample records.
func (c *Client) GameSamples(ctx context.Context, token string, userID, gameID int64) ([]analytics.Record, error) {
	path := fmt.Sprintf("/admin/game/%d/samples", gameID)
	body, err := c.do(ctx, http.MethodGet, path, token, userQuery(userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeSamples(body)
}

// BioStatistics fetches a member's chronological ADHD score history.
func (c *Client) BioStatistics(ctx context.Context, token string, userID int64) ([]models.ScoreRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/game/statistics/bio", token, userQuery(userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeScores(body)
}

func userQuery(userID int64) url.Values {
	return url.Values{"user_id": {strconv.FormatInt(userID, 10)}}
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("platform request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 300:
		detail := errorDetail(body)
		c.logger.Warn("platform returned non-success",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail))
		if detail != "" {
			return nil, fmt.Errorf("platform: %s %s: status %d: %s", method, path, resp.StatusCode, detail)
		}
		return nil, fmt.Errorf("platform: %s %s: status %d", method, path, resp.StatusCode)
	}

	return body, nil
}

func errorDetail(body []byte) string {
	obj, err := decodeObject(body)
	if err != nil {
		return ""
	}
	return obj.text("detail", "error", "message")
}
