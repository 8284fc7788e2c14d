//go:build unit

package riskverify_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-gateway/internal/domain/risk"
	"reservation-gateway/internal/infra/riskverify"
	"reservation-gateway/internal/pkg/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newVerifyServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.NotEmpty(t, r.Form.Get("secret"))
		require.NotEmpty(t, r.Form.Get("response"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func verifyConfig(endpoint string) config.VerifyConfig {
	return config.VerifyConfig{
		Secret:      "secret",
		EndpointURL: endpoint,
		MinScore:    0.5,
		Timeout:     5 * time.Second,
	}
}

func TestVerifyAccepted(t *testing.T) {
	srv := newVerifyServer(t, `{"success":true,"score":0.9,"action":"reserve","hostname":"tickets.example.com"}`)
	cfg := verifyConfig(srv.URL)
	cfg.ExpectedAction = "reserve"

	got := riskverify.NewClient(cfg, testLogger()).Verify(context.Background(), "tok", "", "")

	assert.True(t, got.Accepted)
	assert.Empty(t, got.Reasons)
	require.NotNil(t, got.Score)
	assert.InDelta(t, 0.9, *got.Score, 1e-9)
	assert.Equal(t, "reserve", got.Action)
	assert.Equal(t, "tickets.example.com", got.Hostname)
}

func TestVerifySecretMissing(t *testing.T) {
	cfg := verifyConfig("http://unreachable.invalid")
	cfg.Secret = ""

	got := riskverify.NewClient(cfg, testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonSecretMissing}, got.Reasons)
}

func TestVerifyTokenMissing(t *testing.T) {
	got := riskverify.NewClient(verifyConfig("http://unreachable.invalid"), testLogger()).
		Verify(context.Background(), "", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonTokenMissing}, got.Reasons)
}

func TestVerifyUpstreamFailureCarriesUpstreamReasons(t *testing.T) {
	srv := newVerifyServer(t, `{"success":false,"error-codes":["invalid-input-response","timeout-or-duplicate"]}`)

	got := riskverify.NewClient(verifyConfig(srv.URL), testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{"invalid-input-response", "timeout-or-duplicate"}, got.Reasons)
}

func TestVerifyUpstreamFailureWithoutReasons(t *testing.T) {
	srv := newVerifyServer(t, `{"success":false}`)

	got := riskverify.NewClient(verifyConfig(srv.URL), testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonNotSuccess}, got.Reasons)
}

func TestVerifyLowScore(t *testing.T) {
	srv := newVerifyServer(t, `{"success":true,"score":0.2,"action":"reserve"}`)

	got := riskverify.NewClient(verifyConfig(srv.URL), testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonLowScore}, got.Reasons)
	require.NotNil(t, got.Score)
	assert.InDelta(t, 0.2, *got.Score, 1e-9)
}

func TestVerifyActionMismatchShortCircuitsScoreCheck(t *testing.T) {
	// Both the action and the score are bad; only the action mismatch is
	// reported because the checks run in fixed order.
	srv := newVerifyServer(t, `{"success":true,"score":0.1,"action":"login"}`)
	cfg := verifyConfig(srv.URL)
	cfg.ExpectedAction = "reserve"

	got := riskverify.NewClient(cfg, testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonUnexpectedAction}, got.Reasons)
}

func TestVerifyCallerActionUsedOnlyWithoutConfiguredOne(t *testing.T) {
	srv := newVerifyServer(t, `{"success":true,"score":0.9,"action":"reserve"}`)

	cfg := verifyConfig(srv.URL)
	got := riskverify.NewClient(cfg, testLogger()).Verify(context.Background(), "tok", "", "other")
	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonUnexpectedAction}, got.Reasons)

	cfg.ExpectedAction = "reserve"
	got = riskverify.NewClient(cfg, testLogger()).Verify(context.Background(), "tok", "", "other")
	assert.True(t, got.Accepted)
}

func TestVerifyHostnameNotAllowed(t *testing.T) {
	srv := newVerifyServer(t, `{"success":true,"score":0.9,"hostname":"evil.example.com"}`)
	cfg := verifyConfig(srv.URL)
	cfg.AllowedHostnames = []string{"tickets.example.com"}

	got := riskverify.NewClient(cfg, testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonHostnameNotAllowed}, got.Reasons)
	assert.Equal(t, "evil.example.com", got.Hostname)
}

func TestVerifyEmptyAllowListAcceptsAnyHostname(t *testing.T) {
	srv := newVerifyServer(t, `{"success":true,"score":0.9,"hostname":"anywhere.example.com"}`)

	got := riskverify.NewClient(verifyConfig(srv.URL), testLogger()).Verify(context.Background(), "tok", "", "")

	assert.True(t, got.Accepted)
}

func TestVerifyTimeout(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-blocked
	}))
	t.Cleanup(func() {
		close(blocked)
		srv.Close()
	})

	cfg := verifyConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	start := time.Now()
	got := riskverify.NewClient(cfg, testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonTimeout}, got.Reasons)
	// the in-flight call is abandoned, not waited out
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestVerifyTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	got := riskverify.NewClient(verifyConfig(srv.URL), testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonRequestFailed}, got.Reasons)
}

func TestVerifyUnparseableBody(t *testing.T) {
	srv := newVerifyServer(t, `not json at all`)

	got := riskverify.NewClient(verifyConfig(srv.URL), testLogger()).Verify(context.Background(), "tok", "", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, []string{risk.ReasonRequestFailed}, got.Reasons)
}
