package client

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/tripjournal/internal/logging"
)

const DefaultTimeout = 30 * time.Second

// Config holds the connection settings for HTTPClient.
type Config struct {
	// BaseURL is the backend root, e.g. http://localhost:8000. A path prefix
	// is kept: http://host/api + /trips resolves to http://host/api/trips.
	BaseURL string
	// Timeout bounds each request when the client builds its own http.Client.
	Timeout time.Duration
	// UserAgent defaults to buildinfo.UserAgent().
	UserAgent string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client; Config.Timeout is then ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithRequestHook adds a hook. Hooks run in the order they were added.
func WithRequestHook(h Hook) Option {
	return func(c *HTTPClient) { c.hooks = append(c.hooks, h) }
}

// WithUniformSuccess makes every endpoint accept exactly the 2xx range.
// Deletes, which otherwise ignore the status, then fail on 4xx and 5xx.
func WithUniformSuccess() Option {
	return func(c *HTTPClient) { c.uniform = true }
}
