// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-engine/internal/blueprint"
	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/internal/render"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Generate a project blueprint from a project form",
	Long: `Project reads a project form (name, vision, industry, timeframe, budget,
goals, KPIs, stakeholders, team, constraints) and writes the project
blueprint: summary, architecture, execution path, documents, and
recommendations.

Without --form the built-in seed form is used. Run "form init --engine project"
to write a copy you can edit.`,
	RunE: runProject,
}

func runProject(cmd *cobra.Command, args []string) error {
	formPath, _ := cmd.Flags().GetString("form")
	outPath, _ := cmd.Flags().GetString("output")

	f := form.DefaultProjectForm()
	if formPath != "" {
		loaded, err := form.LoadProjectForm(formPath)
		if err != nil {
			return err
		}
		f = loaded
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

	bp, out, err := svc.Project(cmd.Context(), f.Input(), blueprint.Options{Archive: archiveRuns})
	if err != nil {
		return err
	}
	if err := writeOutput(outPath, func(w io.Writer) error {
		return render.Project(w, bp, format)
	}); err != nil {
		return err
	}

	reportOutcome(types.EngineProject, out, outPath)
	return nil
}

func init() {
	addGenerateFlags(projectCmd)
	rootCmd.AddCommand(projectCmd)
}
