// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CreativeInput is the parsed brand-intent form.
type CreativeInput struct {
	BrandName       string   `json:"brandName" yaml:"brand_name"`
	Product         string   `json:"product" yaml:"product"`
	Audience        string   `json:"audience" yaml:"audience"`
	Mood            string   `json:"mood" yaml:"mood"`
	Keywords        []string `json:"keywords" yaml:"keywords"`
	Palette         []string `json:"palette" yaml:"palette"`
	Differentiators []string `json:"differentiators" yaml:"differentiators"`
}

// CreativeBlueprint is the creative-system bundle derived from a CreativeInput.
type CreativeBlueprint struct {
	Narrative       Narrative   `json:"narrative" yaml:"narrative"`
	Prompts         Prompts     `json:"prompts" yaml:"prompts"`
	FigmaSystem     FigmaSystem `json:"figmaSystem" yaml:"figma_system"`
	Content         Content     `json:"content" yaml:"content"`
	StyleGuide      StyleGuide  `json:"styleGuide" yaml:"style_guide"`
	Recommendations []string    `json:"recommendations" yaml:"recommendations"`
}

// Narrative is the brand story in three sentences.
type Narrative struct {
	Positioning string `json:"positioning" yaml:"positioning"`
	Voice       string `json:"voice" yaml:"voice"`
	Promise     string `json:"promise" yaml:"promise"`
}

// PromptSlot names one of the five image-generation prompt categories.
type PromptSlot string

const (
	SlotHero       PromptSlot = "hero"
	SlotBackground PromptSlot = "background"
	SlotBranding   PromptSlot = "branding"
	SlotUX         PromptSlot = "ux"
	SlotThreeD     PromptSlot = "threeD"
)

// PromptSlots lists every slot in display order.
var PromptSlots = []PromptSlot{SlotHero, SlotBackground, SlotBranding, SlotUX, SlotThreeD}

// Label returns the human-readable heading for a slot.
func (s PromptSlot) Label() string {
	switch s {
	case SlotHero:
		return "Hero Visual"
	case SlotBackground:
		return "Background System"
	case SlotBranding:
		return "Brand Signature"
	case SlotUX:
		return "UI / UX Narrative"
	case SlotThreeD:
		return "3D Concept"
	default:
		return string(s)
	}
}

// Prompts holds one generated prompt per slot. The slots are fields rather
// than map keys so every blueprint carries exactly five.
type Prompts struct {
	Hero       string `json:"hero" yaml:"hero"`
	Background string `json:"background" yaml:"background"`
	Branding   string `json:"branding" yaml:"branding"`
	UX         string `json:"ux" yaml:"ux"`
	ThreeD     string `json:"threeD" yaml:"three_d"`
}

// Get returns the prompt for slot, or "" for an unknown slot.
func (p Prompts) Get(slot PromptSlot) string {
	switch slot {
	case SlotHero:
		return p.Hero
	case SlotBackground:
		return p.Background
	case SlotBranding:
		return p.Branding
	case SlotUX:
		return p.UX
	case SlotThreeD:
		return p.ThreeD
	default:
		return ""
	}
}

// Set stores prompt under slot. Unknown slots are ignored.
func (p *Prompts) Set(slot PromptSlot, prompt string) {
	switch slot {
	case SlotHero:
		p.Hero = prompt
	case SlotBackground:
		p.Background = prompt
	case SlotBranding:
		p.Branding = prompt
	case SlotUX:
		p.UX = prompt
	case SlotThreeD:
		p.ThreeD = prompt
	}
}

// FigmaSystem is the interface-design blueprint.
type FigmaSystem struct {
	Layout     Layout      `json:"layout" yaml:"layout"`
	Components []Component `json:"components" yaml:"components"`
	Flows      []Flow      `json:"flows" yaml:"flows"`
}

// Layout describes grid, spacing, and breakpoints.
type Layout struct {
	Grid        string   `json:"grid" yaml:"grid"`
	Spacing     string   `json:"spacing" yaml:"spacing"`
	Breakpoints []string `json:"breakpoints" yaml:"breakpoints"`
	Notes       []string `json:"notes" yaml:"notes"`
}

// Component is one entry of the component catalog.
type Component struct {
	Name    string   `json:"name" yaml:"name"`
	Usage   string   `json:"usage" yaml:"usage"`
	States  []string `json:"states" yaml:"states"`
	Dataset []string `json:"dataset" yaml:"dataset"`
}

// Flow is a user journey through the product.
type Flow struct {
	Name        string   `json:"name" yaml:"name"`
	Touchpoints []string `json:"touchpoints" yaml:"touchpoints"`
	Success     string   `json:"success" yaml:"success"`
}

// Content is the copy deck.
type Content struct {
	Hero       string   `json:"hero" yaml:"hero"`
	Subheading string   `json:"subheading" yaml:"subheading"`
	CTAs       []string `json:"ctas" yaml:"ctas"`
	ValueProps []string `json:"valueProps" yaml:"value_props"`
	Onboarding string   `json:"onboarding" yaml:"onboarding"`
}

// StyleGuide collects the visual language tokens.
type StyleGuide struct {
	Palette     []ColorToken `json:"palette" yaml:"palette"`
	Typography  []TypeToken  `json:"typography" yaml:"typography"`
	Imagery     []string     `json:"imagery" yaml:"imagery"`
	Motion      []string     `json:"motion" yaml:"motion"`
	Iconography []string     `json:"iconography" yaml:"iconography"`
}

// ColorToken is one palette entry. Value is the literal input token.
type ColorToken struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Usage string `json:"usage" yaml:"usage"`
}

// TypeToken is one typography role.
type TypeToken struct {
	Role  string `json:"role" yaml:"role"`
	Font  string `json:"font" yaml:"font"`
	Specs string `json:"specs" yaml:"specs"`
}
