package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.BaseURL = ""
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	app, err := newApp(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.Close)

	server := httptest.NewServer(app.router)
	t.Cleanup(server.Close)

	return server
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func shorten(t *testing.T, client *http.Client, baseURL, body string) *http.Response {
	t.Helper()

	resp, err := client.Post(baseURL+"/shorten", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestApp_Close(t *testing.T) {
	t.Run("database pool exists", func(t *testing.T) {
		// Arrange
		mockDB := mocks.NewMockDatabase(t)
		mockDB.EXPECT().Close().Once()

		app := &App{
			logger: zap.NewNop(),
			deps:   &dependencies{database: mockDB},
		}

		// Act
		app.Close()
	})

	t.Run("notifier is drained before close", func(t *testing.T) {
		// Arrange
		publisher := mocks.NewMockPublisher(t)
		app := &App{
			logger: zap.NewNop(),
			deps: &dependencies{
				notifier: notifier.NewVisitNotifier(publisher, "visits", 1, 1, metrics.NewNop(), zap.NewNop()),
			},
		}

		// Act - should not panic
		app.Close()
	})

	t.Run("nothing to close", func(t *testing.T) {
		app := &App{logger: zap.NewNop()}

		// Act - should not panic
		app.Close()
	})
}

// TestApp_ShortenRedirectDelete проходит полный цикл короткой ссылки через HTTP
func TestApp_ShortenRedirectDelete(t *testing.T) {
	// Arrange
	server := newTestServer(t, newTestConfig())
	client := noRedirectClient()

	// Act: create
	resp := shorten(t, client, server.URL, `{"url":"https://www.example.com","userId":"user-1"}`)

	// Assert: create
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ShortCode string `json:"shortCode"`
		ShortURL  string `json:"shortUrl"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Regexp(t, `^[0-9a-zA-Z]{7}$`, created.ShortCode)
	assert.Equal(t, server.URL+"/"+created.ShortCode, created.ShortURL)

	// Act: redirect
	redirect, err := client.Get(server.URL + "/" + created.ShortCode)
	require.NoError(t, err)
	_ = redirect.Body.Close()

	// Assert: redirect
	assert.Equal(t, http.StatusMovedPermanently, redirect.StatusCode)
	assert.Equal(t, "https://www.example.com", redirect.Header.Get("Location"))

	// Act: delete
	req, err := http.NewRequest(http.MethodDelete, server.URL+"/urls/"+created.ShortCode, nil)
	require.NoError(t, err)
	deleted, err := client.Do(req)
	require.NoError(t, err)
	_ = deleted.Body.Close()

	// Assert: delete
	assert.Equal(t, http.StatusNoContent, deleted.StatusCode)

	// Act: redirect after delete
	gone, err := client.Get(server.URL + "/" + created.ShortCode)
	require.NoError(t, err)
	defer gone.Body.Close()

	// Assert: not found
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)
	var message struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(gone.Body).Decode(&message))
	assert.NotEmpty(t, message.Message)
}

func TestApp_ShortenInvalidURL(t *testing.T) {
	// Arrange
	server := newTestServer(t, newTestConfig())

	// Act
	resp := shorten(t, http.DefaultClient, server.URL, `{"url":"not-a-url","userId":"user-1"}`)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Invalid URL format"}`, string(body))
}

func TestApp_ShortenRateLimited(t *testing.T) {
	// Arrange
	cfg := newTestConfig()
	cfg.RateLimit.MaxRequests = 2
	server := newTestServer(t, cfg)
	body := `{"url":"https://example.com","userId":"user-1"}`

	// Act
	first := shorten(t, http.DefaultClient, server.URL, body)
	second := shorten(t, http.DefaultClient, server.URL, body)
	third := shorten(t, http.DefaultClient, server.URL, body)

	// Assert
	assert.Equal(t, http.StatusCreated, first.StatusCode)
	assert.Equal(t, http.StatusCreated, second.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, third.StatusCode)
}

func TestApp_StatsCountVisits(t *testing.T) {
	// Arrange
	server := newTestServer(t, newTestConfig())
	client := noRedirectClient()

	resp := shorten(t, client, server.URL, `{"url":"https://example.com/stats","userId":"user-1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ShortCode string `json:"shortCode"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	redirect, err := client.Get(server.URL + "/" + created.ShortCode)
	require.NoError(t, err)
	_ = redirect.Body.Close()

	// Act
	stats, err := client.Get(server.URL + "/urls/" + created.ShortCode)
	require.NoError(t, err)
	defer stats.Body.Close()

	// Assert
	assert.Equal(t, http.StatusOK, stats.StatusCode)
	var record struct {
		ShortCode   string `json:"shortCode"`
		OriginalURL string `json:"originalUrl"`
	}
	require.NoError(t, json.NewDecoder(stats.Body).Decode(&record))
	assert.Equal(t, created.ShortCode, record.ShortCode)
	assert.Equal(t, "https://example.com/stats", record.OriginalURL)
}

func TestApp_Metrics(t *testing.T) {
	// Arrange
	server := newTestServer(t, newTestConfig())

	missing, err := http.Get(server.URL + "/zzzzzzz")
	require.NoError(t, err)
	_ = missing.Body.Close()

	// Act
	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shortlink_cache_misses_total 1")
}

func TestApp_Ping_WithoutDatabase(t *testing.T) {
	// Arrange
	server := newTestServer(t, newTestConfig())

	// Act
	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestApp_Serve_GracefulShutdown(t *testing.T) {
	// Arrange
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := newTestConfig()
	cfg.ServerAddress = config.NetworkAddress{Host: "127.0.0.1", Port: port}
	cfg.ShutdownTimeout = time.Second

	app, err := newApp(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	// Act
	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
