// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/blueprint"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// addGenerateFlags registers the flags shared by project and creative.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("form", "", "path to a YAML or JSON form (default: the built-in seed form)")
	cmd.Flags().String("format", "", "output format: markdown, yaml, or json (default from config)")
	cmd.Flags().StringP("output", "o", "", "write the blueprint to this file instead of stdout")
	cmd.Flags().Bool("archive", false, "record the run in the archive (default from config)")
}

// outputFormat returns --format when set, otherwise the configured format.
func outputFormat(cmd *cobra.Command) (types.OutputFormat, error) {
	if cmd.Flags().Changed("format") {
		s, _ := cmd.Flags().GetString("format")
		return types.ParseOutputFormat(s)
	}
	return types.ParseOutputFormat(string(cfg.Generation.Format))
}

// archiveRequested returns --archive when set, otherwise archive.enabled.
func archiveRequested(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("archive") {
		v, _ := cmd.Flags().GetBool("archive")
		return v
	}
	return cfg.Archive.Enabled
}

// newService builds a Service for CLI use. The archive is opened only when
// runs are recorded; the returned func closes it.
func newService(archiveRuns bool) (*blueprint.Service, func(), error) {
	svc := &blueprint.Service{Logger: logger}
	if !archiveRuns {
		return svc, func() {}, nil
	}
	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return nil, nil, err
	}
	svc.Archive = store
	return svc, func() { store.Close() }, nil
}

// writeOutput calls render with stdout, or with a new file at path when path
// is set. Parent directories are created.
func writeOutput(path string, render func(io.Writer) error) error {
	if path == "" || path == "-" {
		return render(os.Stdout)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// reportOutcome logs how a blueprint was produced and where it went.
func reportOutcome(engine types.Engine, out blueprint.Outcome, path string) {
	fields := []zap.Field{
		zap.String("engine", string(engine)),
		zap.String("digest", out.Digest),
	}
	if out.RunID != "" {
		fields = append(fields, zap.String("run", out.RunID))
	}
	if path != "" && path != "-" {
		fields = append(fields, zap.String("output", path))
	}
	logger.Info("blueprint generated", fields...)
}
