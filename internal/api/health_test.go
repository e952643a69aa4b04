// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/internal/api"
)

func TestHealthHandlers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		deps       api.HealthDependencies
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all healthy",
			deps:       api.HealthDependencies{CheckDatabase: healthy, CheckCache: healthy},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ready"`,
		},
		{
			name:       "cache down",
			deps:       api.HealthDependencies{CheckDatabase: healthy, CheckCache: broken},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"error":"connection refused"`,
		},
		{
			name:       "no checks configured",
			deps:       api.HealthDependencies{},
			wantStatus: http.StatusOK,
			wantBody:   `"checks":[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			liveness, readiness := api.NewHealthHandlers(tt.deps, logger)

			live := httptest.NewRecorder()
			liveness(live, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, live.Code)

			ready := httptest.NewRecorder()
			readiness(ready, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.wantStatus, ready.Code)
			assert.Contains(t, ready.Body.String(), tt.wantBody)
		})
	}
}
