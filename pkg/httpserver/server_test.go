package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food/pkg/httpserver"
)

func TestServer_RunAndShutdown(t *testing.T) {
	srv := httpserver.New(httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: 100 * time.Millisecond}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()

	require.Eventually(t, func() bool { return srv.Addr() != nil }, time.Second, 10*time.Millisecond)
	resp, err := http.Get("http://" + srv.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
	assert.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown")
}

func TestServer_RunTwice(t *testing.T) {
	srv := httpserver.New(httpserver.Config{Addr: "127.0.0.1:0"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	require.Eventually(t, func() bool { return srv.Addr() != nil }, time.Second, 10*time.Millisecond)

	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrRunning)

	cancel()
	require.NoError(t, <-done)
}

func TestServer_BadAddr(t *testing.T) {
	err := httpserver.New(httpserver.Config{Addr: "256.0.0.1:99999"}, nil).Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		name   string
		checks []httpserver.Check
		code   int
		body   string
	}{
		{name: "liveness", code: http.StatusOK, body: "ALIVE"},
		{name: "ready", checks: []httpserver.Check{func(context.Context) error { return nil }}, code: http.StatusOK, body: "READY"},
		{name: "not ready", checks: []httpserver.Check{func(context.Context) error { return errors.New("down") }}, code: http.StatusServiceUnavailable, body: "NOT_READY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httpserver.HealthHandler(nil, tc.checks...)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}
