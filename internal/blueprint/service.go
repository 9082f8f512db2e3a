// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blueprint runs the generators with the optional outer layers the
// CLI and server share: result cache, metrics, archive, and logging. Every
// dependency may be nil; a zero Service simply generates.
package blueprint

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/creative"
	"github.com/pdiddy/blueprint-engine/internal/monitoring"
	"github.com/pdiddy/blueprint-engine/internal/project"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Archiver persists runs.
type Archiver interface {
	Save(ctx context.Context, run archive.Run) (archive.Run, error)
}

// Cache looks up and stores blueprints by engine and input digest.
type Cache interface {
	Lookup(ctx context.Context, engine types.Engine, digest string, dst any) (bool, error)
	Store(ctx context.Context, engine types.Engine, digest string, bp any) error
}

// Service generates blueprints.
type Service struct {
	Archive Archiver
	Cache   Cache
	Metrics *monitoring.Metrics
	Logger  *zap.Logger
}

// Outcome describes how a blueprint was produced.
type Outcome struct {
	Digest string `json:"digest"`
	Source string `json:"source"`
	RunID  string `json:"runId,omitempty"`
}

// Options controls one generation.
type Options struct {
	// Archive saves the run when an archive is configured.
	Archive bool
}

// Project generates a project blueprint for in.
func (s *Service) Project(ctx context.Context, in types.ProjectInput, opts Options) (types.ProjectBlueprint, Outcome, error) {
	return run(ctx, s, types.EngineProject, in.Name, in, opts, project.Generate)
}

// Creative generates a creative blueprint for in.
func (s *Service) Creative(ctx context.Context, in types.CreativeInput, opts Options) (types.CreativeBlueprint, Outcome, error) {
	return run(ctx, s, types.EngineCreative, in.BrandName, in, opts, creative.Generate)
}

func run[In, Out any](ctx context.Context, s *Service, engine types.Engine, title string, in In, opts Options, generate func(In) Out) (Out, Outcome, error) {
	var zero Out
	log := s.logger().With(zap.String("engine", string(engine)))

	digest, err := archive.Digest(in)
	if err != nil {
		return zero, Outcome{}, err
	}
	out := Outcome{Digest: digest, Source: monitoring.SourceGenerated}

	var bp Out
	hit := false
	if s.Cache != nil {
		hit, err = s.Cache.Lookup(ctx, engine, digest, &bp)
		if err != nil {
			log.Warn("cache lookup failed", zap.Error(err))
			hit = false
		}
		if s.Metrics != nil {
			s.Metrics.RecordCacheLookup(engine, hit)
		}
	}

	start := time.Now()
	if hit {
		out.Source = monitoring.SourceCache
	} else {
		bp = generate(in)
	}
	elapsed := time.Since(start)

	if s.Metrics != nil {
		s.Metrics.RecordGeneration(engine, out.Source, elapsed)
	}
	if s.Cache != nil && !hit {
		if err := s.Cache.Store(ctx, engine, digest, bp); err != nil {
			log.Warn("cache store failed", zap.Error(err))
		}
	}

	if opts.Archive && s.Archive != nil {
		r, err := archive.NewRun(engine, title, in, bp)
		if err != nil {
			return zero, Outcome{}, err
		}
		saved, err := s.Archive.Save(ctx, r)
		if err != nil {
			return zero, Outcome{}, fmt.Errorf("archiving %s run: %w", engine, err)
		}
		out.RunID = saved.ID
		if s.Metrics != nil {
			s.Metrics.RecordArchived(engine)
		}
	}

	log.Debug("blueprint ready",
		zap.String("digest", digest),
		zap.String("source", out.Source),
		zap.Duration("elapsed", elapsed),
		zap.String("run_id", out.RunID),
	)
	return bp, out, nil
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
