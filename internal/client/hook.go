package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
)

// Hook observes requests. BeforeRequest may add headers; Accept and
// Authorization set here are kept as is. resp is nil on transport errors.
type Hook interface {
	BeforeRequest(ctx context.Context, req *http.Request)
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, body []byte, elapsed time.Duration, err error)
}

const maxLoggedBody = 4 << 10

type loggingHook struct {
	log       logging.Logger
	logBodies bool
}

// NewLoggingHook logs each request and response at debug level. Bodies are
// included only when logBodies is set, and never for credential endpoints.
func NewLoggingHook(log logging.Logger, logBodies bool) Hook {
	return &loggingHook{log: log, logBodies: logBodies}
}

func (h *loggingHook) BeforeRequest(ctx context.Context, req *http.Request) {
	args := []any{
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", req.Header.Get(common.HeaderRequestID),
	}
	if h.bodiesAllowed(req) && req.GetBody != nil {
		if rc, err := req.GetBody(); err == nil {
			b, _ := io.ReadAll(io.LimitReader(rc, maxLoggedBody))
			_ = rc.Close()
			args = append(args, "body", string(b))
		}
	}
	h.log.Debug(ctx, "http request", args...)
}

func (h *loggingHook) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, body []byte, elapsed time.Duration, err error) {
	args := []any{
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", req.Header.Get(common.HeaderRequestID),
		"duration", elapsed,
	}
	if resp != nil {
		args = append(args, "status", resp.StatusCode)
	}
	if err != nil {
		args = append(args, "error", err)
	}
	if h.bodiesAllowed(req) && len(body) > 0 {
		if len(body) > maxLoggedBody {
			body = body[:maxLoggedBody]
		}
		args = append(args, "body", string(body))
	}
	h.log.Debug(ctx, "http response", args...)
}

func (h *loggingHook) bodiesAllowed(req *http.Request) bool {
	if !h.logBodies {
		return false
	}
	p := req.URL.Path
	return !strings.HasSuffix(p, "/token") && !strings.HasSuffix(p, "/register")
}
