package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func gunzipString(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)

	return string(out)
}

func TestGzipMiddleware_CompressResponse(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		status         int
		acceptEncoding string
		body           string
		shouldCompress bool
	}{
		{
			name:           "JSON response",
			contentType:    "application/json",
			status:         http.StatusCreated,
			acceptEncoding: "gzip, deflate",
			body:           `{"shortCode":"abc1234","shortUrl":"http://localhost:8080/abc1234"}`,
			shouldCompress: true,
		},
		{
			name:           "JSON with charset",
			contentType:    "application/json; charset=utf-8",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           `{"visitCount":3}`,
			shouldCompress: true,
		},
		{
			name:           "Client without gzip",
			contentType:    "application/json",
			status:         http.StatusOK,
			acceptEncoding: "",
			body:           `{"visitCount":3}`,
			shouldCompress: false,
		},
		{
			name:           "Plain text is not compressed",
			contentType:    "text/plain",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           "pong",
			shouldCompress: false,
		},
		{
			name:           "Redirect body is not compressed",
			contentType:    "text/html; charset=utf-8",
			status:         http.StatusMovedPermanently,
			acceptEncoding: "gzip",
			body:           `<a href="https://example.com">Moved Permanently</a>.`,
			shouldCompress: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			handler := GzipMiddleware(zaptest.NewLogger(t))(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.status, rec.Code)
			if tt.shouldCompress {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzipString(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGzipMiddleware_DecompressRequest(t *testing.T) {
	const payload = `{"url":"https://www.example.com","userId":"user-1"}`

	tests := []struct {
		name           string
		body           []byte
		encoding       string
		expectedStatus int
	}{
		{
			name:           "Gzip request",
			body:           gzipBytes(t, payload),
			encoding:       "gzip",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Plain request",
			body:           []byte(payload),
			encoding:       "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid gzip data",
			body:           []byte("not gzip data"),
			encoding:       "gzip",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var received string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				received = string(body)
				w.WriteHeader(http.StatusOK)
			})
			handler := GzipMiddleware(zap.NewNop())(next)

			req := httptest.NewRequest(http.MethodPost, "/shorten", bytes.NewReader(tt.body))
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, payload, received)
			}
		})
	}
}

func TestGzipMiddleware_ReusesPooledWriters(t *testing.T) {
	// Arrange
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"n":"` + r.URL.Query().Get("n") + `"}`))
	})
	handler := GzipMiddleware(zap.NewNop())(next)

	for _, n := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodGet, "/?n="+n, nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, `{"n":"`+n+`"}`, gunzipString(t, rec.Body.Bytes()))
	}
}

func TestIsCompressible(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"TEXT/HTML", true},
		{"text/plain", false},
		{"image/png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, isCompressible(tt.contentType))
		})
	}
}

func TestGzipMiddleware_LogsDecompressionFailure(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.WarnLevel)
	handler := GzipMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("invalid gzip data"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	entries := logs.FilterMessage("Failed to decompress request body").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "error")
}
