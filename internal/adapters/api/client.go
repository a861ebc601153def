package api

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

	"github.com/bnema/evaldash/internal/domain"
	"github.com/bnema/evaldash/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RecommendationsPath = "/api/ai-recommendations/"
	maxResponseBytes    = 1 << 20
	defaultTimeout      = 30 * time.Second
	requestIDHeader     = "X-Request-ID"
)

var ErrInvalidResponseFormat = errors.New("invalid response format")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

type Client struct {
	BaseURL        string
	CSRFCookie     string
	CSRFHeader     string
	Tokens         ports.TokenStore
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

var _ ports.RecommendationSource = (*Client)(nil)

type sectionDataBody struct {
	HasData          bool      `json:"has_data"`
	TotalPercentage  float64   `json:"total_percentage"`
	EvaluationCount  int       `json:"evaluation_count"`
	CategoryScores   []float64 `json:"category_scores"`
	TotalResponses   int       `json:"total_responses"`
	PositiveComments []string  `json:"positive_comments"`
	NegativeComments []string  `json:"negative_comments"`
	MixedComments    []string  `json:"mixed_comments"`
}

type requestBody struct {
	SectionData    sectionDataBody `json:"section_data"`
	SectionCode    string          `json:"section_code"`
	IsOverall      bool            `json:"is_overall"`
	EvaluationType string          `json:"evaluation_type"`
	Timestamp      int64           `json:"timestamp"`
}

type itemBody struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Content         string   `json:"content"`
	Priority        string   `json:"priority"`
	ActionItems     []string `json:"action_items"`
	EstimatedImpact string   `json:"estimated_impact"`
	Reason          string   `json:"reason"`
}

type envelopeBody struct {
	Recommendations json.RawMessage `json:"recommendations"`
}

func (c *Client) Fetch(ctx context.Context, req ports.RecommendationRequest) ([]domain.RecommendationItem, error) {
	endpoint, err := buildAPIURL(c.BaseURL, RecommendationsPath)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(encodeRequest(req))
	if err != nil {
		return nil, fmt.Errorf("encode recommendations request: %w", err)
	}

	cookieHeader, csrfToken, err := c.sessionCookies(ctx)
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create recommendations request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	httpReq.Header.Set("Pragma", "no-cache")
	httpReq.Header.Set(requestIDHeader, requestID)
	if cookieHeader != "" {
		httpReq.Header.Set("Cookie", cookieHeader)
	}
	if csrfToken != "" {
		httpReq.Header.Set(c.csrfHeader(), csrfToken)
	}

	logger := c.logger().With(zap.String("request_id", requestID), zap.String("section", req.SectionCode))
	started := time.Now()

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		logger.Debug("recommendations request failed", zap.Error(err))
		return nil, fmt.Errorf("request recommendations: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("recommendations response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: statusText(resp)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read recommendations response: %w", err)
	}

	return ParseRecommendations(body)
}

// ParseRecommendations accepts either {"recommendations": [...]} or a bare
// array. Anything else is ErrInvalidResponseFormat.
func ParseRecommendations(data []byte) ([]domain.RecommendationItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidResponseFormat)
	}

	list := trimmed
	switch trimmed[0] {
	case '{':
		var envelope envelopeBody
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponseFormat, err)
		}
		list = bytes.TrimSpace(envelope.Recommendations)
		if len(list) == 0 || list[0] != '[' {
			return nil, fmt.Errorf("%w: missing recommendations array", ErrInvalidResponseFormat)
		}
	case '[':
	default:
		return nil, fmt.Errorf("%w: unexpected payload", ErrInvalidResponseFormat)
	}

	var items []*itemBody
	if err := json.Unmarshal(list, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponseFormat, err)
	}

	result := make([]domain.RecommendationItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			item = &itemBody{}
		}
		result = append(result, decodeItem(*item))
	}

	return result, nil
}

func encodeRequest(req ports.RecommendationRequest) requestBody {
	data := req.Data
	evaluations := data.Evaluations()

	return requestBody{
		SectionData: sectionDataBody{
			HasData:          data.HasData,
			TotalPercentage:  data.TotalPercentage,
			EvaluationCount:  evaluations,
			CategoryScores:   orEmpty(data.CategoryScores),
			TotalResponses:   evaluations,
			PositiveComments: orEmpty(data.PositiveComments),
			NegativeComments: orEmpty(data.NegativeComments),
			MixedComments:    orEmpty(data.MixedComments),
		},
		SectionCode:    req.SectionCode,
		IsOverall:      req.IsOverall,
		EvaluationType: string(req.EvaluationType),
		Timestamp:      req.Timestamp,
	}
}

func decodeItem(item itemBody) domain.RecommendationItem {
	return domain.RecommendationItem{
		Title:           item.Title,
		Description:     item.Description,
		Content:         item.Content,
		Priority:        domain.ParsePriority(item.Priority),
		ActionItems:     item.ActionItems,
		EstimatedImpact: item.EstimatedImpact,
		Reason:          item.Reason,
	}
}

func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}

func (c *Client) sessionCookies(ctx context.Context) (string, string, error) {
	if c.Tokens == nil {
		return "", "", nil
	}

	header, err := c.Tokens.CookieHeader(ctx)
	if err != nil {
		return "", "", fmt.Errorf("read session cookies: %w", err)
	}
	if c.CSRFCookie == "" {
		return header, "", nil
	}

	token, err := c.Tokens.Token(ctx, c.CSRFCookie)
	if err != nil {
		return "", "", fmt.Errorf("read csrf token: %w", err)
	}
	if token == "" {
		c.logger().Debug("csrf cookie not set", zap.String("cookie", c.CSRFCookie))
	}

	return header, token, nil
}

func (c *Client) csrfHeader() string {
	if c.CSRFHeader != "" {
		return c.CSRFHeader
	}
	return "X-CSRFToken"
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
