// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package creative

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

const (
	fallbackBrand    = "Your brand"
	fallbackProduct  = "signature product"
	fallbackAudience = "discerning early adopters"
	fallbackMood     = "confident, modern"

	fallbackKeyword        = "one signature visual motif"
	fallbackDifferentiator = "the signature workflow"
)

// defaultPalette is used when the brief supplies no colors.
var defaultPalette = []string{"#0F172A", "#F8FAFC", "#38BDF8", "#E2E8F0", "#1E293B"}

// paletteRole is one usage role; palette entries cycle through the roles by
// position.
type paletteRole struct {
	Role  string
	Usage string
}

var paletteRoles = []paletteRole{
	{Role: "Primary", Usage: "Brand-defining color for calls to action and key moments in {aMoodPhrase} register"},
	{Role: "Background", Usage: "Canvas for pages and large surfaces"},
	{Role: "Accent", Usage: "Highlights, focus rings, and data emphasis"},
	{Role: "Surface", Usage: "Cards, panels, and elevated containers"},
	{Role: "Text", Usage: "Body copy and iconography held to AA contrast"},
}

// slotSpec builds one prompt: subject, shared mood/palette/keyword clauses,
// then the slot directive.
type slotSpec struct {
	Slot      types.PromptSlot
	Subject   string
	Directive string
}

var slots = []slotSpec{
	{
		Slot:      types.SlotHero,
		Subject:   "Hero visual for {brand}, the {product}, framed for {audience}",
		Directive: "Cinematic wide composition, editorial lighting, shallow depth of field, 16:9, ultra-detailed",
	},
	{
		Slot:      types.SlotBackground,
		Subject:   "Background system for {brand} pages and presentations",
		Directive: "Seamless abstract texture with subtle gradients, tileable, no text, 8k",
	},
	{
		Slot:      types.SlotBranding,
		Subject:   "Brand signature for {brand} ({product})",
		Directive: "Logo mark and lockup exploration on neutral ground, vector precision, generous negative space",
	},
	{
		Slot:      types.SlotUX,
		Subject:   "Interface narrative for the {product} by {brand}, designed for {audience}",
		Directive: "High-fidelity product UI on a device, clean 12-column grid, legible typography, realistic states",
	},
	{
		Slot:      types.SlotThreeD,
		Subject:   "3D concept object embodying {brand} and the {product}",
		Directive: "Sculptural 3D render, soft global illumination, studio backdrop, physically based materials",
	},
}

// promptTokens caps how many palette and keyword tokens enter a prompt.
const promptTokens = 3

// moodFamily groups visual decisions that follow from the mood. The first
// family with a keyword prefixing a mood word wins.
type moodFamily struct {
	Name      string
	Keywords  []string
	Spacing   string
	Display   string
	Body      string
	Utility   string
	Motion    string
	IconStyle string
}

var moodFamilies = []moodFamily{
	{
		Name:      "editorial",
		Keywords:  []string{"minimal", "calm", "clean", "quiet", "serene", "airy", "cinematic"},
		Spacing:   "generous",
		Display:   "Neue Haas Grotesk Display",
		Body:      "Inter",
		Utility:   "IBM Plex Mono",
		Motion:    "Slow, deliberate easing (400–600ms, cubic-bezier(0.2, 0, 0, 1))",
		IconStyle: "Thin-line",
	},
	{
		Name:      "luxe",
		Keywords:  []string{"luxur", "premium", "elegant", "refined", "sophisticat", "timeless"},
		Spacing:   "generous",
		Display:   "Canela",
		Body:      "Suisse Int'l",
		Utility:   "Suisse Int'l Mono",
		Motion:    "Soft cross-fades and parallax under 8px (500ms ease-out)",
		IconStyle: "Hairline",
	},
	{
		Name:      "bold",
		Keywords:  []string{"bold", "energetic", "playful", "vibrant", "loud", "fun", "dynamic"},
		Spacing:   "tight, punchy",
		Display:   "Druk Wide",
		Body:      "Satoshi",
		Utility:   "JetBrains Mono",
		Motion:    "Snappy springs (200–300ms) with a playful overshoot",
		IconStyle: "Filled, rounded",
	},
	{
		Name:      "tech",
		Keywords:  []string{"futur", "tech", "digital", "cyber", "neo", "innovat"},
		Spacing:   "precise",
		Display:   "Space Grotesk",
		Body:      "Inter",
		Utility:   "JetBrains Mono",
		Motion:    "Precise linear reveals and 150ms micro-interactions",
		IconStyle: "Geometric outline",
	},
}

var balancedFamily = moodFamily{
	Name:      "balanced",
	Spacing:   "balanced",
	Display:   "Inter Display",
	Body:      "Inter",
	Utility:   "IBM Plex Mono",
	Motion:    "Measured ease-in-out transitions (250–350ms)",
	IconStyle: "Outline",
}

var breakpoints = []string{"Mobile · 375px", "Tablet · 768px", "Desktop · 1280px", "Wide · 1600px"}

const (
	gridTemplate    = "12-column fluid grid, 80px outer margins, 24px gutters, {spacing} vertical rhythm for {aMoodPhrase} feel"
	spacingTemplate = "8pt base scale (4, 8, 16, 24, 40, 64, 96) with {spacing} section padding"
)

var layoutNotes = []string{
	"Anchor the first viewport on a single {moodPhrase} hero message",
	"Let {keyword} lead art direction in every full-bleed section",
	"Reserve the accent color ({accent}) for primary actions only",
}

// componentSpec is one catalog component. Dataset builds its sample copy
// from the copy deck; see figma.go.
type componentSpec struct {
	Name    string
	Usage   string
	States  []string
	Dataset func(b brief, v phrase.Vars, content types.Content) []string
}

var components = []componentSpec{
	{Name: "Navigation", Usage: "Persistent top bar that keeps every {product} section one click away", States: []string{"default", "scrolled", "menu open", "focus"}, Dataset: navigationData},
	{Name: "Hero", Usage: "Full-bleed opener introducing the {product} to {audience}", States: []string{"default", "video playing", "reduced motion"}, Dataset: heroData},
	{Name: "Feature Card", Usage: "Modular card that proves one differentiator of the {product}", States: []string{"default", "hover", "focus", "expanded"}, Dataset: featureCardData},
	{Name: "CTA Banner", Usage: "Conversion band that closes each page with a single {brand} action", States: []string{"default", "hover", "pressed", "disabled"}, Dataset: ctaBannerData},
	{Name: "Footer", Usage: "Quiet close with navigation, legal links, and the {brand} sign-off", States: []string{"default", "compact"}, Dataset: footerData},
}

var navigationItems = []string{"Product", "Stories", "Pricing"}

var footerItems = []string{"© {brand}", "Privacy", "Terms", "Contact"}

// flowSpec is one user journey. {keyword} and {differentiator} rotate by
// flow position.
type flowSpec struct {
	Name        string
	Touchpoints []string
	Success     string
}

var flows = []flowSpec{
	{
		Name: "Onboarding",
		Touchpoints: []string{
			"Land on the hero and read the {brand} promise",
			"Sign up with a single field",
			"Personalize the workspace around {keyword}",
			"First win: {differentiator}",
		},
		Success: "New users reach their first win in under five minutes.",
	},
	{
		Name: "Core task",
		Touchpoints: []string{
			"Open the {product} home view",
			"Act on {differentiator}",
			"Review results shaped by {keyword}",
			"Share progress with the team",
		},
		Success: "Returning users finish the core task without help.",
	},
	{
		Name: "Upgrade",
		Touchpoints: []string{
			"Hit a usage moment that reveals {differentiator}",
			"Compare plans side by side",
			"Confirm the upgrade in one step",
			"Celebrate with {aMoodWord} confirmation",
		},
		Success: "Upgrade decisions close in a single session.",
	},
}

const (
	heroTemplate       = "{brand}: the {product} that feels {moodPhrase}."
	subheadingTemplate = "{brand} is built for {audience} and shaped to feel {moodPhrase} from the first click."
	onboardingTemplate = "Welcome to {brand}. In your first session we set up the {product} around {keywordPair}, walk you through {differentiator}, and leave you with {aMoodWord} workspace ready for {audience}."
)

var ctaTemplates = []string{"Start with {brand}", "Book a {brand} walkthrough", "Explore {differentiator}"}

// valuePropCount fixes the length of the value-prop list.
const valuePropCount = 3

var valuePropClauses = []string{
	"built into every {product} workflow",
	"delivered with {aMoodWord} finish",
	"proven with {audience}",
}

var fallbackValueProps = []string{
	"Clarity at a glance: every screen answers one question",
	"Speed without noise: fewer steps to every outcome",
	"Confidence by design: decisions backed by visible evidence",
}

var typeRoles = []struct {
	Role  string
	Specs string
}{
	{Role: "Display", Specs: "56/64 · Semibold · -2% tracking"},
	{Role: "Body", Specs: "17/28 · Regular · 0% tracking"},
	{Role: "Utility", Specs: "13/20 · Medium · +4% tracking, uppercase labels"},
}

var imageryTemplates = []string{
	"Art direction that feels {moodPhrase}, built on {keywordPair}",
	"Natural light and real {audience} in context",
	"Crop with intent: generous negative space and a single focal point",
}

var motionTemplates = []string{
	"{familyMotion}",
	"Stagger reveals by 60ms to guide the eye through {brand} stories",
	"Respect reduced-motion preferences with instant fades",
}

var iconographyTemplates = []string{
	"{iconStyle} icons on a 24px grid with 1.5px strokes",
	"Pair icons with labels; never rely on an icon alone",
	"Tint active icons with the accent color ({accent})",
}

// keywordCeiling is the count above which keywords start to dilute prompts.
const keywordCeiling = 5
