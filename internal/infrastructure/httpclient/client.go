package httpclient

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

	"hospital-dashboard/internal/infrastructure/session"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every live-mode request.
const DefaultTimeout = 10 * time.Second

// ErrUnauthorized is returned after the backend answered 401. By then the
// session has already been cleared and the unauthorized handler has run.
var ErrUnauthorized = errors.New("unauthorized: session expired")

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: backend status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// UnauthorizedHandler sends the user back to the login entry point.
type UnauthorizedHandler func()

// Client is the single configured client used for every live-mode call.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	session        *session.Session
	onUnauthorized UnauthorizedHandler
	log            *logrus.Logger
}

type Option func(*Client)

// WithUnauthorizedHandler sets the hook run after a 401 cleared the session.
func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *Client) { c.onUnauthorized = h }
}

// WithHTTPClient replaces the underlying http.Client, e.g. for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New constructs a Client.
// base := "https://hospital.example.com/api" (no trailing slash required).
func New(base string, timeout time.Duration, sess *session.Session, log *logrus.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", base)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	c := &Client{
		baseURL:        u,
		httpClient:     &http.Client{Timeout: timeout},
		session:        sess,
		onUnauthorized: func() {},
		log:            log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do sends one request. path is relative to the base URL and must already be
// escaped. body is JSON-encoded when non-nil; the response body is decoded
// into out when out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := c.resolve(path)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warnf("Backend rejected %s %s with 401, clearing session", method, path)
		if err := c.session.Clear(ctx); err != nil {
			c.log.Warnf("Failed to clear session: %+v", err)
		}
		c.onUnauthorized()
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// resolve appends the escaped path to the base URL without cleaning "." or
// ".." segments, so every id stays inside its own segment.
func (c *Client) resolve(path string) (*url.URL, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	raw := strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + path

	unescaped, err := url.PathUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	u := *c.baseURL
	u.Path = unescaped
	u.RawPath = raw
	return &u, nil
}
