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

var creativeCmd = &cobra.Command{
	Use:   "creative",
	Short: "Generate a creative blueprint from a creative form",
	Long: `Creative reads a creative form (brand name, product, audience, mood,
keywords, palette, differentiators) and writes the creative blueprint:
narrative, image prompts, interface system, copy deck, style guide, and
recommendations.

Palette entries are passed through as written. List fields accept either a
YAML list or a single string split on commas and newlines.`,
	RunE: runCreative,
}

func runCreative(cmd *cobra.Command, args []string) error {
	formPath, _ := cmd.Flags().GetString("form")
	outPath, _ := cmd.Flags().GetString("output")

	f := form.DefaultCreativeForm()
	if formPath != "" {
		loaded, err := form.LoadCreativeForm(formPath)
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

	bp, out, err := svc.Creative(cmd.Context(), f.Input(), blueprint.Options{Archive: archiveRuns})
	if err != nil {
		return err
	}
	if err := writeOutput(outPath, func(w io.Writer) error {
		return render.Creative(w, bp, format)
	}); err != nil {
		return err
	}

	reportOutcome(types.EngineCreative, out, outPath)
	return nil
}

func init() {
	addGenerateFlags(creativeCmd)
	rootCmd.AddCommand(creativeCmd)
}
