package riskverify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"reservation-gateway/internal/domain/risk"
	"reservation-gateway/internal/pkg/config"
)

const defaultTimeout = 10 * time.Second

// Client scores a client-presented risk token against an external
// siteverify-style endpoint. One round trip per verification attempt; the
// call is bounded by the configured budget and never retried.
type Client struct {
	cfg        config.VerifyConfig
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.VerifyConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// upstream response shape; error-codes is only present on failure.
type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify submits token (plus remoteIP when present) and classifies the
// response. Check order is fixed: transport/timeout, upstream failure, action
// mismatch, score threshold, hostname allow-list. The first failing check
// wins; only upstream-supplied failures may carry more than one reason.
func (c *Client) Verify(ctx context.Context, token, remoteIP, action string) risk.Verification {
	if c.cfg.Secret == "" {
		return risk.Rejected(risk.ReasonSecretMissing)
	}
	if token == "" {
		return risk.Rejected(risk.ReasonTokenMissing)
	}

	resp, rejection := c.submit(ctx, token, remoteIP)
	if rejection != nil {
		return *rejection
	}

	if !resp.Success {
		if len(resp.ErrorCodes) > 0 {
			return risk.Rejected(resp.ErrorCodes...)
		}
		return risk.Rejected(risk.ReasonNotSuccess)
	}

	if expected := c.expectedAction(action); expected != "" && resp.Action != expected {
		rej := risk.Rejected(risk.ReasonUnexpectedAction)
		rej.Action = resp.Action
		rej.Hostname = resp.Hostname
		rej.Score = resp.Score
		return rej
	}

	if resp.Score != nil && *resp.Score < c.cfg.MinScore {
		rej := risk.Rejected(risk.ReasonLowScore)
		rej.Score = resp.Score
		rej.Action = resp.Action
		rej.Hostname = resp.Hostname
		return rej
	}

	if len(c.cfg.AllowedHostnames) > 0 && resp.Hostname != "" &&
		!slices.Contains(c.cfg.AllowedHostnames, resp.Hostname) {
		rej := risk.Rejected(risk.ReasonHostnameNotAllowed)
		rej.Score = resp.Score
		rej.Action = resp.Action
		rej.Hostname = resp.Hostname
		return rej
	}

	return risk.Accepted(resp.Score, resp.Action, resp.Hostname)
}

// submit performs the single bounded round trip. A nil rejection means the
// upstream answered and resp is valid.
func (c *Client) submit(ctx context.Context, token, remoteIP string) (*verifyResponse, *risk.Verification) {
	budget := c.cfg.Timeout
	if budget <= 0 {
		budget = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	form := url.Values{}
	form.Set("secret", c.cfg.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EndpointURL, strings.NewReader(form.Encode()))
	if err != nil {
		rej := risk.Rejected(risk.ReasonRequestFailed)
		return nil, &rej
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		rej := risk.Rejected(c.classifyTransportError(ctx, err))
		return nil, &rej
	}
	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close verify response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		rej := risk.Rejected(c.classifyTransportError(ctx, err))
		return nil, &rej
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Warn("verify endpoint returned unparseable body", "error", err)
		rej := risk.Rejected(risk.ReasonRequestFailed)
		return nil, &rej
	}

	return &resp, nil
}

// classifyTransportError separates budget expiry from plain transport
// failure; both are terminal for the attempt.
func (c *Client) classifyTransportError(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return risk.ReasonTimeout
	}
	return risk.ReasonRequestFailed
}

// expectedAction prefers the system-wide expectation; the caller-supplied
// label applies only when no expectation is configured.
func (c *Client) expectedAction(callerAction string) string {
	if c.cfg.ExpectedAction != "" {
		return c.cfg.ExpectedAction
	}
	return callerAction
}
