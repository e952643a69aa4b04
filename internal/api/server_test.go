// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/api"
	"github.com/taibuivan/inkwell/internal/core/article"
	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/core/tag"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/config"
	"github.com/taibuivan/inkwell/internal/platform/constants"
)

type staticTags []tag.Tag

func (s staticTags) List(context.Context) ([]tag.Tag, error) { return s, nil }

func (s staticTags) FindByID(_ context.Context, id int) (*tag.Tag, error) {
	for _, t := range s {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperr.NotFound("Tag")
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, logger)
	tags := tag.NewService(staticTags{{ID: 1, Name: "go"}, {ID: 2, Name: "web"}}, logger)

	return api.NewRouter(ctx, &config.Config{Environment: "development"}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Article:   article.NewHandler(nil),
		Comment:   comment.NewHandler(nil),
		Tag:       tag.NewHandler(tags),
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "liveness", target: "/health", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "tag vocabulary", target: "/api/v1/tags", wantStatus: http.StatusOK, wantBody: `"name":"web"`},
		{name: "single tag", target: "/api/v1/tags/1", wantStatus: http.StatusOK, wantBody: `"name":"go"`},
		{name: "unknown tag", target: "/api/v1/tags/9", wantStatus: http.StatusNotFound, wantBody: `"code":"NOT_FOUND"`},
		{name: "non numeric tag", target: "/api/v1/tags/go", wantStatus: http.StatusNotFound, wantBody: `"code":"NOT_FOUND"`},
		{name: "unknown route", target: "/api/v2/articles", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
			assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
		})
	}
}
