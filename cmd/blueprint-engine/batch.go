// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/blueprint-engine/internal/blueprint"
	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/internal/render"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <form>...",
	Short: "Generate blueprints for many forms in parallel",
	Long: `Batch generates one blueprint per form file and writes each to
--output-dir, named after the form (project-a.yaml -> project-a.md).

All forms must be for the same engine. Failures are reported per form and do
not stop the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	engineName, _ := cmd.Flags().GetString("engine")
	engine, err := types.ParseEngine(engineName)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = cfg.Generation.OutputDir
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs <= 0 {
		jobs = cfg.Generation.Jobs
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	archiveRuns := archiveRequested(cmd)
	svc, closeArchive, err := newService(archiveRuns)
	if err != nil {
		return err
	}
	defer closeArchive()

	var (
		mu        sync.Mutex
		generated int
		failed    int
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(jobs, 1))

	outPaths := batchOutputs(args, outputDir, format.Extension())
	for i, path := range args {
		outPath := outPaths[i]
		g.Go(func() error {
			err := generateOne(ctx, svc, engine, path, outPath, format, archiveRuns)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				logger.Error("batch form failed", zap.String("form", path), zap.Error(err))
				return nil
			}
			generated++
			fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s\n", path, outPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nBatch summary: %d generated, %d failed (total: %d)\n",
		generated, failed, len(args))
	if failed > 0 {
		return fmt.Errorf("%d form(s) failed", failed)
	}
	return nil
}

// generateOne loads the form at path, generates its blueprint, and writes it
// to outPath.
func generateOne(ctx context.Context, svc *blueprint.Service, engine types.Engine, path, outPath string, format types.OutputFormat, archiveRuns bool) error {
	opts := blueprint.Options{Archive: archiveRuns}

	switch engine {
	case types.EngineProject:
		f, err := form.LoadProjectForm(path)
		if err != nil {
			return err
		}
		bp, _, err := svc.Project(ctx, f.Input(), opts)
		if err != nil {
			return err
		}
		return writeOutput(outPath, func(w io.Writer) error { return render.Project(w, bp, format) })
	default:
		f, err := form.LoadCreativeForm(path)
		if err != nil {
			return err
		}
		bp, _, err := svc.Creative(ctx, f.Input(), opts)
		if err != nil {
			return err
		}
		return writeOutput(outPath, func(w io.Writer) error { return render.Creative(w, bp, format) })
	}
}

// batchName is the form's base name without its extension.
func batchName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// batchOutputs names one output file per form in dir. Forms sharing a base
// name get "-2", "-3", ... suffixes in argument order, skipping names another
// form already owns, so no two forms write the same file.
func batchOutputs(paths []string, dir, ext string) []string {
	owned := make(map[string]bool, len(paths))
	for _, p := range paths {
		owned[batchName(p)] = true
	}

	used := make(map[string]bool, len(paths))
	out := make([]string, len(paths))
	for i, p := range paths {
		base := batchName(p)
		name := base
		for n := 2; used[name] || (name != base && owned[name]); n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[name] = true
		out[i] = filepath.Join(dir, name+"."+ext)
	}
	return out
}

func init() {
	batchCmd.Flags().String("engine", "project", "engine for every form: project or creative")
	batchCmd.Flags().String("output-dir", "", "directory for generated blueprints (default from config)")
	batchCmd.Flags().Int("jobs", 0, "forms generated in parallel (default from config)")
	batchCmd.Flags().String("format", "", "output format: markdown, yaml, or json (default from config)")
	batchCmd.Flags().Bool("archive", false, "record each run in the archive (default from config)")

	rootCmd.AddCommand(batchCmd)
}
