package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidURL means the base URL or a request path could not be resolved.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidResponse means no well-formed HTTP response was received.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrDecoding means the response body did not match the expected shape.
	ErrDecoding = errors.New("decoding failed")
	// ErrEncoding means the request body could not be serialized.
	ErrEncoding = errors.New("encoding failed")
)

// HTTPError is returned when the server answers with a status outside the
// endpoint's success range. Body holds at most maxErrorBody bytes.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := e.Detail()
	if msg == "" {
		msg = strings.TrimSpace(string(e.Body))
	}
	if msg == "" {
		return fmt.Sprintf("http %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// Detail extracts the "detail" message the backend puts in error bodies.
// Validation errors carry a list; their messages are joined with "; ".
// It returns "" when the body is not JSON or has no detail.
func (e *HTTPError) Detail() string {
	if !gjson.ValidBytes(e.Body) {
		return ""
	}
	d := gjson.GetBytes(e.Body, "detail")
	switch {
	case !d.Exists():
		return ""
	case d.IsArray():
		var msgs []string
		for _, m := range d.Get("#.msg").Array() {
			msgs = append(msgs, m.String())
		}
		return strings.Join(msgs, "; ")
	default:
		return d.String()
	}
}

// IsUnauthorized reports whether err is a 401 or 403 from the server.
func IsUnauthorized(err error) bool {
	var he *HTTPError
	if !errors.As(err, &he) {
		return false
	}
	return he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}
