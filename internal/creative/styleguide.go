// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package creative

import (
	"strconv"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func deriveStyleGuide(b brief) types.StyleGuide {
	v := b.vars()
	return types.StyleGuide{
		Palette:     derivePalette(b),
		Typography:  deriveTypography(b.family),
		Imagery:     v.FillAll(imageryTemplates),
		Motion:      v.FillAll(motionTemplates),
		Iconography: v.FillAll(iconographyTemplates),
	}
}

// derivePalette maps colors one-to-one, in order, onto roles. Roles repeat
// once a palette outgrows them; the suffix counts the cycle ("Primary 2").
func derivePalette(b brief) []types.ColorToken {
	v := b.vars()
	out := make([]types.ColorToken, len(b.colors))
	for i, c := range b.colors {
		role := paletteRoles[i%len(paletteRoles)]
		out[i] = types.ColorToken{
			Name:  role.Role + " " + strconv.Itoa(i/len(paletteRoles)+1),
			Value: c,
			Usage: v.Fill(role.Usage),
		}
	}
	return out
}

func deriveTypography(f moodFamily) []types.TypeToken {
	fonts := []string{f.Display, f.Body, f.Utility}
	out := make([]types.TypeToken, len(typeRoles))
	for i, r := range typeRoles {
		out[i] = types.TypeToken{Role: r.Role, Font: fonts[i], Specs: r.Specs}
	}
	return out
}
