package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sportdesk/internal/auth"
	"sportdesk/internal/coalesce"

	"go.uber.org/zap"
)

// Client talks to the platform REST API. It never retries; the caller's
// context bounds every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	inspector  auth.Inspector
	logger     *zap.SugaredLogger
	now        func() time.Time
}

func NewClient(baseURL string, httpClient *http.Client, logger *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		inspector:  auth.NewJWTInspector(),
		logger:     logger,
		now:        time.Now,
	}
}

// do issues one authenticated request and decodes the JSON answer with
// json.Number preserved. A 204 or empty body decodes to nil.
func (c *Client) do(ctx context.Context, s Session, method, path string, payload any) (any, error) {
	if err := s.check(c.inspector, c.now()); err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("backend request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	var decoded any
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&decoded); err != nil && resp.StatusCode < 300 {
			return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}

	if resp.StatusCode >= 300 {
		c.logger.Warnw("backend request failed", "method", method, "path", path, "status", resp.StatusCode)
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, unauthenticated(errors.New(errorMessage(decoded, resp.StatusCode)))
		}
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(decoded, resp.StatusCode)}
	}
	return decoded, nil
}

func (c *Client) getList(ctx context.Context, s Session, path string) ([]coalesce.Raw, error) {
	v, err := c.do(ctx, s, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return unwrapList(v), nil
}

func (c *Client) getObject(ctx context.Context, s Session, method, path string, payload any) (coalesce.Raw, error) {
	v, err := c.do(ctx, s, method, path, payload)
	if err != nil {
		return nil, err
	}
	return unwrapObject(v), nil
}

// unwrapList accepts a bare array or an array under data/items/results,
// at most two envelopes deep. Non-object elements are dropped.
func unwrapList(v any) []coalesce.Raw {
	for range 3 {
		switch t := v.(type) {
		case []any:
			out := make([]coalesce.Raw, 0, len(t))
			for _, e := range t {
				if m, ok := e.(map[string]any); ok {
					out = append(out, m)
				}
			}
			return out
		case map[string]any:
			next, found := any(nil), false
			for _, k := range []string{"data", "items", "results"} {
				if inner, ok := t[k]; ok && inner != nil {
					next, found = inner, true
					break
				}
			}
			if !found {
				return []coalesce.Raw{}
			}
			v = next
		default:
			return []coalesce.Raw{}
		}
	}
	return []coalesce.Raw{}
}

// unwrapObject accepts a bare object or one under data.
func unwrapObject(v any) coalesce.Raw {
	m, ok := v.(map[string]any)
	if !ok {
		return coalesce.Raw{}
	}
	if inner, ok := m["data"].(map[string]any); ok {
		return inner
	}
	return m
}
