// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import "github.com/pdiddy/blueprint-engine/pkg/types"

// deriveExecutionPath fills the fixed phase table. The number and order of
// phases never depend on input.
func deriveExecutionPath(b brief) []types.Phase {
	v := b.vars()
	out := make([]types.Phase, len(phases))
	for i, p := range phases {
		out[i] = types.Phase{
			Name:  p.Name,
			Focus: v.Fill(p.Focus),
			Steps: v.FillAll(p.Steps),
		}
	}
	return out
}
