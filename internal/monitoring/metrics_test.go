// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func TestRecordGeneration(t *testing.T) {
	m := NewMetrics()
	m.RecordGeneration(types.EngineProject, SourceGenerated, time.Millisecond)
	m.RecordGeneration(types.EngineProject, SourceCache, 0)
	m.RecordGeneration(types.EngineCreative, SourceGenerated, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("project", SourceGenerated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("project", SourceCache)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.GenerationDuration))
}

func TestRecordCacheLookup(t *testing.T) {
	m := NewMetrics()
	m.RecordCacheLookup(types.EngineCreative, true)
	m.RecordCacheLookup(types.EngineCreative, false)
	m.RecordCacheLookup(types.EngineCreative, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("creative", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("creative", "miss")))
}

func TestSeparateRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.RecordArchived(types.EngineProject)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ArchivedRuns.WithLabelValues("project")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	r := gin.New()
	r.Use(Middleware(m))
	r.GET("/v1/runs/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/runs/"+id, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/v1/runs/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "blueprint_http_requests_total"))
}
