//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Seed writes the seed form for each engine into forms/.
func Seed() error {
	mg.Deps(Init)
	for _, engine := range types.Engines {
		seed, err := form.Default(engine)
		if err != nil {
			return err
		}
		path := filepath.Join("forms", string(engine)+"-form.yaml")
		if err := form.WriteForm(path, seed); err != nil {
			return err
		}
		fmt.Println("  ", path)
	}
	return nil
}

// Examples builds the CLI and renders a blueprint for each seed form into
// output/blueprints.
func Examples() error {
	mg.Deps(Build, Seed)
	bin := filepath.Join(binDir, binName)
	for _, engine := range types.Engines {
		name := string(engine)
		out := filepath.Join("output", "blueprints", name+"-example.md")
		if err := sh.RunV(bin, name, "--form", filepath.Join("forms", name+"-form.yaml"), "--output", out); err != nil {
			return fmt.Errorf("%s example: %w", name, err)
		}
	}
	return nil
}
