package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestPing(t *testing.T) {
	boundedCtx := mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= pingTimeout
	})

	tests := []struct {
		name       string
		setupDB    func(t *testing.T) Database
		wantStatus int
	}{
		{
			name: "database answers",
			setupDB: func(t *testing.T) Database {
				m := mocks.NewMockDatabase(t)
				m.EXPECT().Ping(boundedCtx).Return(nil).Once()
				return m
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "database fails",
			setupDB: func(t *testing.T) Database {
				m := mocks.NewMockDatabase(t)
				m.EXPECT().Ping(boundedCtx).Return(assert.AnError).Once()
				return m
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "no database configured",
			setupDB:    func(*testing.T) Database { return nil },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := New(nil, zap.NewNop(), tt.setupDB(t))
			rec := httptest.NewRecorder()

			// Act
			h.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
