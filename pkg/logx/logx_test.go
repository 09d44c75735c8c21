package logx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-pkgz/requester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestChain_RequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := slog.New(NewChain(slog.HandlerOptions{}.NewTextHandler(buf), RequestID))

	lg.InfoCtx(ContextWithRequestID(context.Background(), "abc"), "hello")
	assert.Contains(t, buf.String(), "request_id=abc")

	buf.Reset()
	lg.With(slog.String("prefix", "test")).InfoCtx(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
	assert.Contains(t, buf.String(), "prefix=test")
}

func TestChain_Order(t *testing.T) {
	var calls []string
	mw := func(name string) Middleware {
		return func(next HandleFunc) HandleFunc {
			return func(ctx context.Context, rec slog.Record) error {
				calls = append(calls, name)
				return next(ctx, rec)
			}
		}
	}

	lg := slog.New(NewChain(slog.HandlerOptions{}.NewTextHandler(io.Discard), mw("outer"), mw("inner")))
	lg.WithGroup("g").Info("hello")
	assert.Equal(t, []string{"outer", "inner"}, calls)

	slog.New(NoOp()).Info("dropped")
	assert.False(t, NoOp().Enabled(context.Background(), slog.LevelError))
}

func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("api-key"))
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer ts.Close()

	buf := &bytes.Buffer{}
	lg := slog.New(slog.HandlerOptions{Level: slog.LevelDebug}.NewTextHandler(buf))

	rq := requester.New(http.Client{}, LoggingRoundTripper(lg, RoundTripperOpts{
		Level:        slog.LevelDebug,
		SecretParams: []string{"api-key"},
	}))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/x.json?api-key=secret&q=go", http.NoBody)
	require.NoError(t, err)

	resp, err := rq.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"OK"}`, string(body))

	out := buf.String()
	assert.NotContains(t, out, "secret")
	assert.True(t, strings.Contains(out, "api-key=%2A%2A%2A"), out)
	assert.Contains(t, out, "response received")
}

func TestCopyAndTrim(t *testing.T) {
	long := strings.Repeat("a", trimBodyAt+10)
	rd, portion := copyAndTrim(io.NopCloser(strings.NewReader(long)))
	assert.Equal(t, strings.Repeat("a", trimBodyAt)+"...", portion)

	full, err := io.ReadAll(rd)
	require.NoError(t, err)
	assert.Equal(t, long, string(full))
}
