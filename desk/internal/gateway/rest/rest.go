package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxBodySize = 4 << 20 // 4 MB

var errServer = errors.New("server error")

// Client performs JSON requests against the library API. It never retries:
// every failure goes back to the caller.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	cb      circuit_breaker.CircuitBreaker
}

func New(log *zap.Logger, cfg config.API, cb circuit_breaker.CircuitBreaker) *Client {
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		log:     log.Named("rest"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(limit, burst),
		cb:      cb,
	}
}

func (c *Client) CB() circuit_breaker.CircuitBreaker {
	return c.cb
}

// Do sends body as JSON and decodes the response into out when out is not nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return errors.Wrapf(err, "%s %s: encode", method, path)
		}
		payload = b
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, errs.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.Wrapf(err, "%s %s: new request", method, path)
	}
	requestID := uuid.NewString()
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRequestID, requestID)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}

	start := time.Now()
	var resp *http.Response
	err = c.cb.Call(func() error {
		var err error
		resp, err = c.client.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return errServer
		}
		return nil
	})
	if resp == nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w: %w", method, path, errs.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, errs.ErrTransport, err)
	}
	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", requestID))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &errs.StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   shorten(strings.TrimSpace(string(data)), 200),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, errs.ErrDecode, err)
	}
	return nil
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
