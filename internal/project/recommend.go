// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// deriveRecommendations always returns five items: steering, budget,
// constraints, measurement, and staffing, in that order.
func deriveRecommendations(b brief, arch types.Architecture) []string {
	v := b.vars()
	return []string{
		v.Fill("Run a fortnightly steering review with {stakeholder} so decisions land inside one cycle."),
		budgetRecommendation(b, v),
		constraintRecommendation(b, arch.Risks),
		kpiRecommendation(b, v),
		staffingRecommendation(b),
	}
}

func budgetRecommendation(b brief, v phrase.Vars) string {
	switch {
	case phrase.HasWordPrefix(b.rawBudget, complianceTerms):
		return v.Fill("Reserve a compliance contingency inside the {budget} and pre-clear spend controls with audit before Build.")
	case phrase.Or(b.rawBudget, "") != "":
		return v.Fill("Stage-gate the {budget} against milestone evidence rather than calendar dates.")
	default:
		return "Confirm a budget envelope before Build so scope decisions have a hard guardrail."
	}
}

func constraintRecommendation(b brief, risks []types.Risk) string {
	if len(b.constraints) == 0 {
		return "Run a pre-mortem during " + phases[0].Name + " to surface constraints the brief has not named yet."
	}
	top := risks[0]
	for _, r := range risks {
		if r.Probability == tierHigh {
			top = r
			break
		}
	}
	return "Attack \"" + top.Title + "\" first: it carries " + article(top.Probability) + " probability and shapes the critical path."
}

func kpiRecommendation(b brief, v phrase.Vars) string {
	if len(b.kpis) == 0 {
		return "Define baseline KPIs before design locks; this blueprint is using generic success measures."
	}
	return v.Fill("Publish a live scorecard for {kpis} from week one.")
}

func staffingRecommendation(b brief) string {
	if len(b.team) == 0 {
		return "Staff the four workstreams; every owner in this blueprint is a default role archetype."
	}
	if missing := unownedWorkstreams(b.team); len(missing) > 0 {
		return "Name owners for " + phrase.Join(missing) + "; they currently fall back to default role titles."
	}
	return "Pair each workstream owner with a deputy to protect delivery against attrition."
}

func article(tier string) string {
	switch tier {
	case tierHigh:
		return "a high"
	case tierMedium:
		return "a medium"
	default:
		return "a low"
	}
}
