package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveURL_Success(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		storedURL model.URL
	}{
		{name: "Simple code", code: "abc1234", storedURL: "https://example.com"},
		{name: "URL with path", code: "xyz9876", storedURL: "https://example.com/path/to/resource"},
		{name: "URL with anchor", code: "anchor9", storedURL: "https://example.com/page#section"},
		{name: "Unicode URL", code: "unicod1", storedURL: "https://example.com/путь"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase, mockService, mockNotifier := newTestUsecase(t, config.NewDefaultConfig())

			mockService.EXPECT().
				FindByShortCode(mock.Anything, model.Code(tt.code)).
				Return(&model.URLRecord{ShortCode: model.Code(tt.code), OriginalURL: tt.storedURL}, nil).
				Once()
			mockNotifier.EXPECT().Notify(model.Code(tt.code)).Return().Once()

			// Act
			result, err := usecase.ResolveURL(context.Background(), tt.code)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.storedURL, result)
		})
	}
}

func TestResolveURL_Errors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		expectedErr error
	}{
		{
			name:        "Not found",
			serviceErr:  fmt.Errorf("%w: missing", service.ErrNotFound),
			expectedErr: ErrURLNotFound,
		},
		{
			name:        "Store failure",
			serviceErr:  errors.New("connection reset"),
			expectedErr: ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase, mockService, mockNotifier := newTestUsecase(t, config.NewDefaultConfig())

			mockService.EXPECT().
				FindByShortCode(mock.Anything, model.Code("missing")).
				Return(nil, tt.serviceErr).
				Once()

			// Act
			result, err := usecase.ResolveURL(context.Background(), "missing")

			// Assert
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, result)
			mockNotifier.AssertNotCalled(t, "Notify", mock.Anything)
		})
	}
}

func TestGetURLStats(t *testing.T) {
	usecase, mockService, _ := newTestUsecase(t, config.NewDefaultConfig())

	mockService.EXPECT().
		GetURLStats(mock.Anything, model.Code("abc1234")).
		Return(&model.URLRecord{ShortCode: "abc1234", VisitCount: 7}, nil).
		Once()
	mockService.EXPECT().
		GetURLStats(mock.Anything, model.Code("missing")).
		Return(nil, service.ErrNotFound).
		Once()

	record, err := usecase.GetURLStats(context.Background(), "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.VisitCount)

	_, err = usecase.GetURLStats(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrURLNotFound)
}

func TestDeleteURL(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		expectedErr error
	}{
		{name: "Deleted"},
		{name: "Not found", serviceErr: service.ErrNotFound, expectedErr: ErrURLNotFound},
		{name: "Store failure", serviceErr: errors.New("connection reset"), expectedErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase, mockService, _ := newTestUsecase(t, config.NewDefaultConfig())
			mockService.EXPECT().DeleteURL(mock.Anything, model.Code("abc1234")).Return(tt.serviceErr).Once()

			err := usecase.DeleteURL(context.Background(), "abc1234")

			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestRecordVisit(t *testing.T) {
	t.Run("increments visit count", func(t *testing.T) {
		usecase, mockService, _ := newTestUsecase(t, config.NewDefaultConfig())
		mockService.EXPECT().IncrementVisitCount(mock.Anything, model.Code("abc1234")).Return(nil).Once()

		err := usecase.RecordVisit(context.Background(), []byte(`{"short_code":"abc1234","visited_at":"2024-05-01T12:00:00Z"}`))

		assert.NoError(t, err)
	})

	t.Run("skips undecodable payload", func(t *testing.T) {
		usecase, mockService, _ := newTestUsecase(t, config.NewDefaultConfig())

		assert.NoError(t, usecase.RecordVisit(context.Background(), []byte("not json")))
		assert.NoError(t, usecase.RecordVisit(context.Background(), []byte(`{}`)))
		mockService.AssertNotCalled(t, "IncrementVisitCount", mock.Anything, mock.Anything)
	})

	t.Run("store failure is returned for redelivery", func(t *testing.T) {
		usecase, mockService, _ := newTestUsecase(t, config.NewDefaultConfig())
		mockService.EXPECT().
			IncrementVisitCount(mock.Anything, model.Code("abc1234")).
			Return(errors.New("connection reset")).
			Once()

		err := usecase.RecordVisit(context.Background(), []byte(`{"short_code":"abc1234"}`))

		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}
