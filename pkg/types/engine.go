// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for blueprint-engine.
// Implements: project engine (ProjectInput, ProjectBlueprint);
//
//	creative engine (CreativeInput, CreativeBlueprint);
//	outer surfaces (Config, OutputFormat, Engine).
package types

import "fmt"

// Engine identifies which generator produced a blueprint.
type Engine string

const (
	EngineProject  Engine = "project"
	EngineCreative Engine = "creative"
)

// Engines lists every engine in display order.
var Engines = []Engine{EngineProject, EngineCreative}

// ParseEngine validates an engine name.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case EngineProject, EngineCreative:
		return Engine(s), nil
	default:
		return "", fmt.Errorf("unknown engine %q: use project or creative", s)
	}
}
