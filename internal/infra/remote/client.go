// Package remote implements the backend HTTP contract consumed by the storefront.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxErrorBodyBytes = 64 << 10

// Client sends JSON requests to the backend. Every request is bounded by the
// configured timeout so a hung backend never suspends a caller indefinitely.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	return NewClientWithHTTP(cfg.API, &http.Client{Timeout: cfg.API.Timeout}, logger)
}

// NewClientWithHTTP creates a backend client around a caller-supplied http.Client.
func NewClientWithHTTP(cfg *config.APIConfig, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid api base url")
	}
	if httpClient.Timeout <= 0 && cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		logger:     logger,
	}, nil
}

// request describes one backend call.
type request struct {
	method      string
	path        string
	query       url.Values
	credential  string
	body        any
	rawBody     io.Reader
	contentType string
}

// messageBody is the common {message} / {error} envelope of backend answers.
type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Path    string `json:"path"`
		Msg     string `json:"msg"`
	} `json:"errors"`
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	var body io.Reader
	contentType := req.contentType
	switch {
	case req.rawBody != nil:
		body = req.rawBody
	case req.body != nil:
		data, err := json.Marshal(req.body)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	target := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if req.credential != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.credential)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn("Remote call failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Duration("latency", time.Since(start)),
			slog.Any("error", err),
		)

		return &domainerrors.TransportError{Method: req.method, Path: req.path, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("Remote call",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp, req)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domainerrors.TransportError{Method: req.method, Path: req.path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", req.method, req.path)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response, req request) error {
	remoteErr := &domainerrors.RemoteError{
		Status: resp.StatusCode,
		Method: req.method,
		Path:   req.path,
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var msg messageBody
	if err := json.Unmarshal(data, &msg); err != nil {
		remoteErr.ServerMessage = strings.TrimSpace(string(data))

		return remoteErr
	}

	remoteErr.ServerMessage = msg.Message
	if remoteErr.ServerMessage == "" {
		remoteErr.ServerMessage = msg.Error
	}
	if len(msg.Errors) > 0 {
		remoteErr.Fields = make(map[string]string, len(msg.Errors))
		for _, fe := range msg.Errors {
			field := fe.Field
			if field == "" {
				field = fe.Path
			}
			message := fe.Message
			if message == "" {
				message = fe.Msg
			}
			if field != "" {
				remoteErr.Fields[field] = message
			}
		}
	}

	return remoteErr
}
