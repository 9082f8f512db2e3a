// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/blueprint"
	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/internal/render"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// maxBodyBytes caps form payloads.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// generateResponse wraps a blueprint with how it was produced.
type generateResponse struct {
	blueprint.Outcome
	Blueprint any `json:"blueprint"`
}

// pinger is implemented by caches that can report their connection state.
type pinger interface {
	Ping(ctx context.Context) error
}

func (s *Server) health(c *gin.Context) {
	body := gin.H{"status": "ok", "archive": s.runs != nil}
	if p, ok := s.service.Cache.(pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			body["status"] = "degraded"
			body["cache"] = err.Error()
		} else {
			body["cache"] = "ok"
		}
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) generateProject(c *gin.Context) {
	f := form.DefaultProjectForm()
	if !bindForm(c, &f) {
		return
	}
	bp, out, err := s.service.Project(c.Request.Context(), f.Input(), s.options(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.respond(c, out, bp, func(w io.Writer, format types.OutputFormat) error {
		return render.Project(w, bp, format)
	})
}

func (s *Server) generateCreative(c *gin.Context) {
	f := form.DefaultCreativeForm()
	if !bindForm(c, &f) {
		return
	}
	bp, out, err := s.service.Creative(c.Request.Context(), f.Input(), s.options(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.respond(c, out, bp, func(w io.Writer, format types.OutputFormat) error {
		return render.Creative(w, bp, format)
	})
}

// bindForm decodes the request body over the seed form in dst. An empty
// body keeps the seed form; a body replaces it entirely.
func bindForm[F any](c *gin.Context, dst *F) bool {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("reading body: "+err.Error()))
		return false
	}
	if len(body) > maxBodyBytes {
		c.JSON(http.StatusRequestEntityTooLarge, errorBody("form body too large"))
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}

	var f F
	if err := json.Unmarshal(body, &f); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid form: "+err.Error()))
		return false
	}
	*dst = f
	return true
}

func (s *Server) options(c *gin.Context) blueprint.Options {
	archiveRun, _ := strconv.ParseBool(c.Query("archive"))
	return blueprint.Options{Archive: archiveRun}
}

// respond writes JSON by default, or the rendered blueprint when ?format=
// asks for markdown or yaml.
func (s *Server) respond(c *gin.Context, out blueprint.Outcome, bp any, write func(io.Writer, types.OutputFormat) error) {
	c.Header("X-Blueprint-Digest", out.Digest)
	c.Header("X-Blueprint-Source", out.Source)

	format := types.OutputJSON
	if q := c.Query("format"); q != "" {
		f, err := types.ParseOutputFormat(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		format = f
	}

	if format == types.OutputJSON {
		c.JSON(http.StatusOK, generateResponse{Outcome: out, Blueprint: bp})
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, format); err != nil {
		s.fail(c, err)
		return
	}
	contentType := "text/markdown; charset=utf-8"
	if format == types.OutputYAML {
		contentType = "application/yaml; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (s *Server) defaultForm(c *gin.Context) {
	engine, err := types.ParseEngine(c.Param("engine"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody(err.Error()))
		return
	}
	f, err := form.Default(engine)
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody(err.Error()))
		return
	}
	c.JSON(http.StatusOK, f)
}

// runSummary is a run without its payloads.
type runSummary struct {
	ID        string `json:"id"`
	Engine    string `json:"engine"`
	Title     string `json:"title"`
	Digest    string `json:"digest"`
	CreatedAt string `json:"createdAt"`
}

func (s *Server) listRuns(c *gin.Context) {
	if s.runs == nil {
		c.JSON(http.StatusNotFound, errorBody("archive is not enabled"))
		return
	}

	var opts archive.ListOptions
	if e := c.Query("engine"); e != "" {
		engine, err := types.ParseEngine(e)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		opts.Engine = engine
	}
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, errorBody(fmt.Sprintf("invalid limit %q", l)))
			return
		}
		opts.Limit = n
	}

	ctx := c.Request.Context()
	runs, err := s.runs.List(ctx, opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	total, err := s.runs.Count(ctx, opts.Engine)
	if err != nil {
		s.fail(c, err)
		return
	}

	summaries := make([]runSummary, len(runs))
	for i, r := range runs {
		summaries[i] = runSummary{
			ID:        r.ID,
			Engine:    string(r.Engine),
			Title:     r.Title,
			Digest:    r.Digest,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "runs": summaries})
}

func (s *Server) getRun(c *gin.Context) {
	if s.runs == nil {
		c.JSON(http.StatusNotFound, errorBody("archive is not enabled"))
		return
	}
	run, err := s.runs.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, archive.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorBody(err.Error()))
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
}
