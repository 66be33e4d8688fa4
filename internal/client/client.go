package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospital-portal/config"
	"hospital-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnexpectedStatus   = errors.New("unexpected status from backend")
)

// APIClient is the shared transport of every resource service. It builds
// path-encoded URLs from the configured base and decodes JSON bodies.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewAPIClient(cfg config.APIConfig, log *logrus.Logger) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// URL joins the base with escaped path segments.
func (c *APIClient) URL(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

type apiResponse struct {
	StatusCode int
	Body       []byte
}

func (r *apiResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *apiResponse) Decode(v interface{}) error {
	if len(r.Body) == 0 {
		return io.EOF
	}
	return json.Unmarshal(r.Body, v)
}

func (c *APIClient) do(ctx context.Context, method, target string, payload interface{}) (*apiResponse, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     req.URL.Path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("Backend call")

	return &apiResponse{StatusCode: resp.StatusCode, Body: data}, nil
}

// messageBody covers the shapes the backend uses for write results.
type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// write performs a write call that fails loud: Success mirrors the HTTP
// status and Message is surfaced to the user as is.
func (c *APIClient) write(ctx context.Context, method, target string, payload interface{}, failure string) entity.Result {
	resp, err := c.do(ctx, method, target, payload)
	if err != nil {
		c.log.WithError(err).Errorf("%s", failure)
		return entity.Result{Success: false, Message: failure}
	}

	var body messageBody
	_ = resp.Decode(&body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = failure
		if resp.OK() {
			message = "Request completed"
		}
	}

	if !resp.OK() {
		c.log.WithFields(logrus.Fields{"status": resp.StatusCode, "message": message}).Warn(failure)
	}
	return entity.Result{Success: resp.OK(), Message: message}
}

// read performs a read call that fails soft: any error is logged and
// reported as false so callers render their not-found state.
func (c *APIClient) read(ctx context.Context, target string, out interface{}, what string) bool {
	resp, err := c.do(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.log.WithError(err).Warnf("Error fetching %s", what)
		return false
	}
	if !resp.OK() {
		c.log.WithField("status", resp.StatusCode).Warnf("Failed to fetch %s", what)
		return false
	}
	if err := resp.Decode(out); err != nil {
		c.log.WithError(err).Warnf("Invalid %s payload", what)
		return false
	}
	return true
}

type tokenBody struct {
	Token string `json:"token"`
}

// login posts credentials and extracts the token. Non-OK answers are ErrInvalidCredentials.
func (c *APIClient) login(ctx context.Context, target string, credentials interface{}) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, target, credentials)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", ErrInvalidCredentials
	}

	var body tokenBody
	if err := resp.Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrUnexpectedStatus)
	}
	return body.Token, nil
}
