package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/mock"
	"github.com/pkostin/fieldsync/models"
)

func newTestHandler(t *testing.T) (*handler, *mock.MockBatchService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockBatchService(ctrl)
	return newHandler(svc, logger.Nop()), svc
}

func TestGetSyncStats(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		GetSyncStats(gomock.Any()).
		Return(models.SyncStats{Pending: 2, InFlight: 1, Done: 10, Failed: 3}, nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/sync/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var stats models.SyncStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 3, stats.Failed)
}

func TestGetSyncStats_ServiceError(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		GetSyncStats(gomock.Any()).
		Return(models.SyncStats{}, errors.New("database is locked"))

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/sync/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRetryFailed(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().RetryFailed(gomock.Any()).Return(int64(4), nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/sync/retry", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp retryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Reset)
}

func TestRetryFailed_WrongMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/sync/retry", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServerAddress)
}
