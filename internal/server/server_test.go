// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/blueprint"
	"github.com/pdiddy/blueprint-engine/internal/creative"
	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/internal/monitoring"
	"github.com/pdiddy/blueprint-engine/internal/project"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, cfg types.ServerConfig) (*Server, *archive.Store) {
	t.Helper()
	store, err := archive.NewStore(types.ArchiveConfig{Dir: filepath.Join(t.TempDir(), "archive")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := monitoring.NewMetrics()
	svc := &blueprint.Service{Archive: store, Metrics: m}
	return New(cfg, Deps{Service: svc, Runs: store, Metrics: m}), store
}

func do(s *Server, method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

type projectResponse struct {
	Digest    string                 `json:"digest"`
	Source    string                 `json:"source"`
	RunID     string                 `json:"runId"`
	Blueprint types.ProjectBlueprint `json:"blueprint"`
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})
	w := do(s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

// downCache is a cache whose backend is unreachable.
type downCache struct{}

func (downCache) Lookup(context.Context, types.Engine, string, any) (bool, error) {
	return false, errors.New("connection refused")
}

func (downCache) Store(context.Context, types.Engine, string, any) error {
	return errors.New("connection refused")
}

func (downCache) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthReportsCache(t *testing.T) {
	s := New(types.ServerConfig{}, Deps{Service: &blueprint.Service{Cache: downCache{}}})

	w := do(s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), `"cache":"connection refused"`)

	// Generation still succeeds without the cache.
	w = do(s, http.MethodPost, "/v1/blueprints/creative", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, monitoring.SourceGenerated, w.Header().Get("X-Blueprint-Source"))
}

func TestGenerateProjectWithRawStringLists(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})
	body := `{"name":"Atlas","goals":"Cut costs\nGrow revenue","kpis":["Margin %"],"team":"PM, Engineer"}`

	w := do(s, http.MethodPost, "/v1/blueprints/project", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp projectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, monitoring.SourceGenerated, resp.Source)
	assert.Equal(t, []string{"Cut costs", "Grow revenue"}, resp.Blueprint.Architecture.Objectives)
	assert.Equal(t, "PM", resp.Blueprint.Architecture.WBS[0].Owner)
	assert.Equal(t, resp.Digest, w.Header().Get("X-Blueprint-Digest"))
	assert.Empty(t, resp.RunID)
}

func TestGenerateEmptyBodyUsesSeedForm(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})
	w := do(s, http.MethodPost, "/v1/blueprints/creative", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Blueprint types.CreativeBlueprint `json:"blueprint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, creative.Generate(form.DefaultCreativeForm().Input()), resp.Blueprint)
}

func TestGenerateInvalidBody(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})
	w := do(s, http.MethodPost, "/v1/blueprints/project", `{"goals": 7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestGenerateRenderedFormats(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})

	w := do(s, http.MethodPost, "/v1/blueprints/project?format=markdown", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "# Project Blueprint"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")

	w = do(s, http.MethodPost, "/v1/blueprints/creative?format=yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "style_guide:")

	w = do(s, http.MethodPost, "/v1/blueprints/creative?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArchiveAndRuns(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})

	w := do(s, http.MethodPost, "/v1/blueprints/project?archive=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp projectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RunID)

	w = do(s, http.MethodGet, "/v1/runs?engine=project", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
		Runs  []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Runs, 1)
	assert.Equal(t, "Command Atlas Transformation", list.Runs[0].Title)

	w = do(s, http.MethodGet, "/v1/runs/"+resp.RunID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var run archive.Run
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	var bp types.ProjectBlueprint
	require.NoError(t, json.Unmarshal(run.Blueprint, &bp))
	assert.Equal(t, project.Generate(form.DefaultProjectForm().Input()), bp)

	w = do(s, http.MethodGet, "/v1/runs/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(s, http.MethodGet, "/v1/runs?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunsWithoutArchive(t *testing.T) {
	s := New(types.ServerConfig{}, Deps{})
	w := do(s, http.MethodGet, "/v1/runs", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDefaultForm(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})

	w := do(s, http.MethodGet, "/v1/forms/creative", "")
	require.Equal(t, http.StatusOK, w.Code)
	var f form.CreativeForm
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, form.DefaultCreativeForm(), f)

	w = do(s, http.MethodGet, "/v1/forms/poster", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBearerToken(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{Token: "s3cret"})

	assert.Equal(t, http.StatusUnauthorized, do(s, http.MethodGet, "/v1/forms/project", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(s, http.MethodGet, "/v1/forms/project", "", "Authorization", "Bearer wrong").Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/v1/forms/project", "", "Authorization", "Bearer s3cret").Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/healthz", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{})
	do(s, http.MethodPost, "/v1/blueprints/project", "")

	w := do(s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `blueprint_generations_total{engine="project",source="generated"} 1`)
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t, types.ServerConfig{AllowedOrigins: []string{"https://studio.example.com"}})
	w := do(s, http.MethodGet, "/healthz", "", "Origin", "https://studio.example.com")
	assert.Equal(t, "https://studio.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
