package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetURLStats_Success(t *testing.T) {
	// Arrange
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mockUsecase := mocks.NewMockURLUsecase(t)
	mockUsecase.EXPECT().
		GetURLStats(mock.Anything, "abc1234").
		Return(&model.URLRecord{
			ID:          "1",
			ShortCode:   "abc1234",
			OriginalURL: "https://example.com",
			OwnerID:     "user-1",
			VisitCount:  42,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}, nil).
		Once()

	handler := New(mockUsecase, zap.NewNop(), nil)

	req := withCode(httptest.NewRequest(http.MethodGet, "/urls/abc1234", nil), "abc1234")
	w := httptest.NewRecorder()

	// Act
	handler.GetURLStats(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response StatsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "abc1234", response.ShortCode)
	assert.Equal(t, "https://example.com", response.OriginalURL)
	assert.Equal(t, "user-1", response.OwnerID)
	assert.Equal(t, int64(42), response.VisitCount)
	assert.True(t, createdAt.Equal(response.CreatedAt))
}

func TestGetURLStats_NotFound(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockURLUsecase(t)
	mockUsecase.EXPECT().
		GetURLStats(mock.Anything, "missing").
		Return(nil, usecase.ErrURLNotFound).
		Once()

	handler := New(mockUsecase, zap.NewNop(), nil)

	req := withCode(httptest.NewRequest(http.MethodGet, "/urls/missing", nil), "missing")
	w := httptest.NewRecorder()

	// Act
	handler.GetURLStats(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgNotFound, decodeError(t, w.Body).Message)
}
