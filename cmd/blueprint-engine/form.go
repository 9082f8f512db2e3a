// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Work with intake forms",
	Long: `Form writes and prints the seed forms. Each engine ships with a filled-in
example form; copy it and edit the fields for your own project or brand.`,
}

// --- init subcommand ---

var formInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the seed form for an engine to a file",
	Long: `Init writes the seed form for --engine to --output. The file is YAML
unless the path ends in .json. Existing files are kept unless --force is set.`,
	RunE: runFormInit,
}

func runFormInit(cmd *cobra.Command, args []string) error {
	engine, err := engineFlag(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	if output == "" {
		output = string(engine) + "-form.yaml"
	}

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", output)
	}

	seed, err := form.Default(engine)
	if err != nil {
		return err
	}
	if err := form.WriteForm(output, seed); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s form to %s\n", engine, output)
	return nil
}

// --- show subcommand ---

var formShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the seed form for an engine",
	RunE:  runFormShow,
}

func runFormShow(cmd *cobra.Command, args []string) error {
	engine, err := engineFlag(cmd)
	if err != nil {
		return err
	}
	seed, err := form.Default(engine)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(seed); err != nil {
		return err
	}
	return enc.Close()
}

func engineFlag(cmd *cobra.Command) (types.Engine, error) {
	name, _ := cmd.Flags().GetString("engine")
	return types.ParseEngine(name)
}

func init() {
	formInitCmd.Flags().String("engine", "project", "engine: project or creative")
	formInitCmd.Flags().StringP("output", "o", "", "form path (default: <engine>-form.yaml)")
	formInitCmd.Flags().Bool("force", false, "overwrite an existing file")

	formShowCmd.Flags().String("engine", "project", "engine: project or creative")

	formCmd.AddCommand(formInitCmd)
	formCmd.AddCommand(formShowCmd)
	rootCmd.AddCommand(formCmd)
}
