package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/tripjournal/internal/buildinfo"
	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
	"github.com/dmitrijs2005/tripjournal/internal/models"
	"github.com/dmitrijs2005/tripjournal/internal/wire"
)

const (
	maxErrorBody    = 64 << 10
	maxResponseBody = 32 << 20
)

type HTTPClient struct {
	base      *url.URL
	http      *http.Client
	session   TokenSession
	log       logging.Logger
	hooks     []Hook
	uniform   bool
	userAgent string
}

var _ Client = (*HTTPClient)(nil)

// New validates cfg.BaseURL and returns a client bound to sess.
func New(cfg Config, sess TokenSession, opts ...Option) (*HTTPClient, error) {
	if sess == nil {
		return nil, errors.New("client: session is required")
	}

	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &HTTPClient{
		base:      base,
		http:      &http.Client{Timeout: timeout},
		session:   sess,
		log:       logging.NopLogger{},
		userAgent: cfg.UserAgent,
	}
	if c.userAgent == "" {
		c.userAgent = buildinfo.UserAgent()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: base url is empty", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: base url has no host", ErrInvalidURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

func (c *HTTPClient) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return c.base.ResolveReference(ref), nil
}

func (c *HTTPClient) policy(ep endpoint) successPolicy {
	if c.uniform {
		return any2xx
	}
	return ep.success
}

// payload is an encoded request body.
type payload struct {
	data        []byte
	contentType string
}

func jsonPayload(v any) (*payload, error) {
	data, err := wire.EncodeJSON(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return &payload{data: data, contentType: common.MediaTypeJSON}, nil
}

func formPayload(fields map[string]string) *payload {
	return &payload{data: wire.EncodeForm(fields), contentType: common.MediaTypeForm}
}

// send performs the call described by o and decodes the response into T.
func send[T any](ctx context.Context, c *HTTPClient, o op, body *payload, args ...any) (T, error) {
	var out T

	data, err := c.do(ctx, o, body, args...)
	if err != nil {
		return out, err
	}
	if err := decode(data, &out); err != nil {
		ep := endpoints[o]
		return out, fmt.Errorf("%s %s: %w: %w", ep.method, ep.resolvePath(args...), ErrDecoding, err)
	}
	return out, nil
}

// decode parses data into out and rejects bodies lacking the keys the
// target type requires.
func decode(data []byte, out any) error {
	if err := wire.DecodeJSON(data, out); err != nil {
		return err
	}
	keys := requiredKeys(out)
	if keys == nil {
		return nil
	}
	return wire.RequireKeys(data, keys...)
}

func requiredKeys(out any) []string {
	switch out.(type) {
	case *models.AuthToken:
		return models.AuthTokenKeys
	case *models.Trip, *[]models.Trip:
		return models.TripKeys
	case *models.Event, *[]models.Event:
		return models.EventKeys
	case *models.Media, *[]models.Media:
		return models.MediaKeys
	}
	return nil
}

// sendNoContent performs the call and ignores any response body.
func sendNoContent(ctx context.Context, c *HTTPClient, o op, args ...any) error {
	_, err := c.do(ctx, o, nil, args...)
	return err
}

// do executes one request and returns the raw body of a successful response.
// Errors carry the method and path as context.
func (c *HTTPClient) do(ctx context.Context, o op, body *payload, args ...any) ([]byte, error) {
	ep := endpoints[o]
	path := ep.resolvePath(args...)

	data, err := c.roundTrip(ctx, ep, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ep.method, path, err)
	}
	return data, nil
}

func (c *HTTPClient) roundTrip(ctx context.Context, ep endpoint, path string, body *payload) ([]byte, error) {
	u, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	var rd io.Reader = http.NoBody
	if body != nil {
		rd = bytes.NewReader(body.data)
	}
	req, err := http.NewRequestWithContext(ctx, ep.method, u.String(), rd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if body != nil {
		req.Header.Set(common.HeaderContentType, body.contentType)
	}
	req.Header.Set(common.HeaderRequestID, uuid.NewString())
	req.Header.Set(common.HeaderUserAgent, c.userAgent)

	for _, h := range c.hooks {
		h.BeforeRequest(ctx, req)
	}
	c.applyDefaults(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		c.afterResponse(ctx, req, nil, nil, time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()

	if !c.policy(ep).accepts(resp.StatusCode) {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		herr := &HTTPError{StatusCode: resp.StatusCode, Body: data}
		c.afterResponse(ctx, req, resp, data, time.Since(start), herr)
		return nil, herr
	}

	if ep.discard {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		c.afterResponse(ctx, req, resp, nil, time.Since(start), nil)
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		err = fmt.Errorf("%w: read body: %w", ErrInvalidResponse, err)
		c.afterResponse(ctx, req, resp, nil, time.Since(start), err)
		return nil, err
	}
	c.afterResponse(ctx, req, resp, data, time.Since(start), nil)
	return data, nil
}

// applyDefaults fills Accept and Authorization unless a hook already set them.
func (c *HTTPClient) applyDefaults(req *http.Request) {
	if req.Header.Get(common.HeaderAccept) == "" {
		req.Header.Set(common.HeaderAccept, common.MediaTypeJSON)
	}
	if req.Header.Get(common.HeaderAuthorization) != "" {
		return
	}
	if token, ok := c.session.Token(); ok {
		req.Header.Set(common.HeaderAuthorization, common.BearerScheme+" "+token.AccessToken)
	}
}

func (c *HTTPClient) afterResponse(ctx context.Context, req *http.Request, resp *http.Response, body []byte, elapsed time.Duration, err error) {
	for _, h := range c.hooks {
		h.AfterResponse(ctx, req, resp, body, elapsed, err)
	}
}

// Token returns the session's current token.
func (c *HTTPClient) Token() (models.AuthToken, bool) {
	return c.session.Token()
}

func (c *HTTPClient) IsAuthenticated() bool {
	return c.session.IsAuthenticated()
}

func (c *HTTPClient) Subscribe(fn func(authenticated bool)) func() {
	return c.session.Subscribe(fn)
}
