// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/render"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and export archived blueprint runs",
	Long: `History reads the SQLite archive of generated blueprints. Runs are
recorded when archive.enabled is set in the config or --archive is passed to
project, creative, batch, or the HTTP API.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	opts, err := historyListOptions(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	runs, err := store.List(ctx, opts)
	if err != nil {
		return err
	}
	total, err := store.Count(ctx, opts.Engine)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"total": total, "runs": runs})
	}

	fmt.Fprintf(out, "Versions generated: %d\n\n", total)
	if len(runs) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tENGINE\tTITLE\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(r.ID), r.Engine, r.Title, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render an archived blueprint",
	Long: `Show renders the blueprint of one archived run. The id may be any
unique prefix of the run ID, as printed by "history list".`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("run %s: %w", args[0], err)
	}
	return renderRun(cmd.OutOrStdout(), run, format)
}

// renderRun decodes the stored blueprint for run's engine and renders it.
func renderRun(w io.Writer, run archive.Run, format types.OutputFormat) error {
	switch run.Engine {
	case types.EngineProject:
		var bp types.ProjectBlueprint
		if err := json.Unmarshal(run.Blueprint, &bp); err != nil {
			return fmt.Errorf("decoding blueprint of %s: %w", run.ID, err)
		}
		return render.Project(w, bp, format)
	case types.EngineCreative:
		var bp types.CreativeBlueprint
		if err := json.Unmarshal(run.Blueprint, &bp); err != nil {
			return fmt.Errorf("decoding blueprint of %s: %w", run.ID, err)
		}
		return render.Creative(w, bp, format)
	default:
		return fmt.Errorf("run %s has unknown engine %q", run.ID, run.Engine)
	}
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived runs to a YAML or JSON file",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	opts, err := historyListOptions(cmd)
	if err != nil {
		return err
	}
	formatName, _ := cmd.Flags().GetString("format")
	format, err := types.ParseOutputFormat(formatName)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(cfg.Archive.Dir, "export."+format.Extension())
	}

	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Export(cmd.Context(), output, format, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d run(s) to %s\n", n, output)
	return nil
}

// historyListOptions reads --engine and --limit.
func historyListOptions(cmd *cobra.Command) (archive.ListOptions, error) {
	var opts archive.ListOptions
	if name, _ := cmd.Flags().GetString("engine"); name != "" {
		engine, err := types.ParseEngine(name)
		if err != nil {
			return opts, err
		}
		opts.Engine = engine
	}
	if cmd.Flags().Lookup("limit") != nil {
		opts.Limit, _ = cmd.Flags().GetInt("limit")
	}
	return opts, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	historyListCmd.Flags().String("engine", "", "only list runs for this engine: project or creative")
	historyListCmd.Flags().Int("limit", 0, "maximum runs to list (default from config)")
	historyListCmd.Flags().Bool("json", false, "print runs as JSON")

	historyShowCmd.Flags().String("format", "", "output format: markdown, yaml, or json (default from config)")

	historyExportCmd.Flags().String("engine", "", "only export runs for this engine: project or creative")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().StringP("output", "o", "", "export path (default: <archive dir>/export.<format>)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
