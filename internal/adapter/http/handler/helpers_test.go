package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/revsync/internal/adapter/http/dto"
	"github.com/iho/revsync/internal/domain"
)

func TestQueryParsing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/A/events?limit=50&offset=x&upstream=true", nil)

	assert.Equal(t, 50, parseIntQuery(req, "limit", 10))
	assert.Equal(t, 0, parseIntQuery(req, "offset", 0), "malformed value falls back")
	assert.Equal(t, 25, parseIntQuery(req, "missing", 25))
	assert.True(t, parseBoolQuery(req, "upstream"))
	assert.False(t, parseBoolQuery(req, "missing"))
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"run not found", domain.ErrRunNotFound, http.StatusNotFound},
		{"invalid cadence", fmt.Errorf("%w: \"hourly\"", domain.ErrInvalidCadence), http.StatusBadRequest},
		{"invalid search", domain.ErrInvalidSearch, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidIDFormat, http.StatusBadRequest},
		{"invalid event inside write failure", fmt.Errorf("%w: %w", domain.ErrWriteFailure, domain.ErrInvalidEvent), http.StatusBadRequest},
		{"lease busy", domain.ErrSyncInProgress, http.StatusConflict},
		{"failed account", domain.ErrAccountFailed, http.StatusConflict},
		{"upstream", &domain.UpstreamError{Kind: domain.ErrRateLimited, StatusCode: 429}, http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapDomainError(tt.err))
		})
	}
}

func TestWriteDomainError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeDomainError(rr, "diagnose failed", fmt.Errorf("load A: %w", domain.ErrAccountNotFound))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "diagnose failed", resp.Error)
	assert.Contains(t, resp.Message, "load A")
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		wantIDs []string
	}{
		{name: "empty body keeps defaults"},
		{name: "account ids", body: `{"account_ids":["A","B"]}`, wantIDs: []string{"A", "B"}},
		{name: "malformed json", body: `{"account_ids":`, wantErr: "unexpected EOF"},
		{name: "blank id fails validation", body: `{"account_ids":[""]}`, wantErr: "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/manual", strings.NewReader(tt.body))

			var body dto.SyncRequest
			err := decodeJSON(req, &body)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, body.AccountIDs)
		})
	}
}
