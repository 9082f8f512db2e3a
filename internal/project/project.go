// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project expands a project-intent form into a program-management
// blueprint: summary, architecture, execution pathway, documents, and
// recommendations.
//
// Generate is pure and total. Each derivation takes only the slice of the
// brief it needs plus the static tables in tables.go, so every section can be
// tested on its own.
package project

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// brief is a ProjectInput with blank scalars replaced by fallback wording and
// list fields cleaned. Lists may still be empty; derivations decide their own
// fallbacks.
type brief struct {
	name      string
	vision    string
	industry  string
	timeframe string
	budget    string

	// rawBudget is the untouched budget text, for keyword checks.
	rawBudget string

	goals        []string
	kpis         []string
	stakeholders []string
	team         []string
	constraints  []string
}

func newBrief(in types.ProjectInput) brief {
	return brief{
		name:         phrase.Or(in.Name, fallbackName),
		vision:       phrase.Or(in.Vision, fallbackVision),
		industry:     phrase.Or(in.Industry, fallbackIndustry),
		timeframe:    phrase.Or(in.Timeframe, fallbackTimeframe),
		budget:       phrase.Or(in.Budget, fallbackBudget),
		rawBudget:    in.Budget,
		goals:        phrase.Clean(in.Goals),
		kpis:         phrase.Clean(in.KPIs),
		stakeholders: phrase.Clean(in.Stakeholders),
		team:         phrase.Clean(in.Team),
		constraints:  phrase.Clean(in.Constraints),
	}
}

// vars returns the placeholder values shared by every template.
func (b brief) vars() phrase.Vars {
	return phrase.Vars{
		"name":         b.name,
		"vision":       phrase.Clause(b.vision),
		"industry":     b.industry,
		"timeframe":    b.timeframe,
		"budget":       b.budget,
		"goal":         b.goalAt(0),
		"goal2":        b.goalAt(1),
		"kpi":          b.kpiAt(0),
		"kpis":         b.kpiList(),
		"constraint":   phrase.Clause(phrase.CycleOr(b.constraints, 0, fallbackConstraint)),
		"stakeholder":  phrase.CycleOr(b.stakeholders, 0, fallbackStakeholder),
		"stakeholders": b.stakeholderList(),
	}
}

func (b brief) goalAt(i int) string {
	return phrase.Clause(phrase.CycleOr(b.goals, i, fallbackGoal))
}

func (b brief) kpiAt(i int) string {
	return phrase.Clause(phrase.CycleOr(b.kpis, i, fallbackKPI))
}

func (b brief) kpiList() string {
	if len(b.kpis) == 0 {
		return fallbackKPI
	}
	clauses := make([]string, 0, 3)
	for _, k := range phrase.Take(b.kpis, 3) {
		clauses = append(clauses, phrase.Clause(k))
	}
	return phrase.Join(clauses)
}

func (b brief) stakeholderList() string {
	if len(b.stakeholders) == 0 {
		return "sponsors"
	}
	return phrase.Join(phrase.Take(b.stakeholders, 3))
}

// Generate derives the full blueprint for in. Identical input, including
// list order, always yields an identical blueprint.
func Generate(in types.ProjectInput) types.ProjectBlueprint {
	b := newBrief(in)

	arch := deriveArchitecture(b)
	path := deriveExecutionPath(b)
	summary := deriveSummary(b)

	return types.ProjectBlueprint{
		Summary:         summary,
		Architecture:    arch,
		ExecutionPath:   path,
		Documents:       deriveDocuments(b, summary, arch, path),
		Recommendations: deriveRecommendations(b, arch),
	}
}
