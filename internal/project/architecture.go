// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func deriveArchitecture(b brief) types.Architecture {
	v := b.vars()
	return types.Architecture{
		Scope:        v.Fill("Deliver {vision} across the {timeframe}, inside a budget guardrail of {budget}."),
		Objectives:   phrase.OrList(b.goals, defaultObjectives),
		KPIs:         phrase.OrList(b.kpis, defaultKPIs),
		Deliverables: v.FillAll(deliverableTemplates),
		WBS:          deriveWBS(b),
		Milestones:   deriveMilestones(b),
		Risks:        deriveRisks(b),
		Dependencies: deriveDependencies(b),
	}
}

// assignTeam buckets team members into the fixed workstreams. A member joins
// the first workstream (table order) with a keyword prefixing one of its
// words; otherwise it joins workstream index mod len(workstreams), where index
// is its position in team.
func assignTeam(team []string) [][]string {
	buckets := make([][]string, len(workstreams))
	for i, member := range team {
		slot := i % len(workstreams)
		for w, ws := range workstreams {
			if phrase.HasWordPrefix(member, ws.Keywords) {
				slot = w
				break
			}
		}
		buckets[slot] = append(buckets[slot], member)
	}
	return buckets
}

func deriveWBS(b brief) []types.Workstream {
	team := b.team
	if len(team) == 0 {
		team = defaultTeam
	}
	buckets := assignTeam(team)
	base := b.vars()

	out := make([]types.Workstream, len(workstreams))
	for i, ws := range workstreams {
		members := buckets[i]
		owner := ws.DefaultOwner
		if len(members) > 0 {
			owner = members[0]
		}

		v := base.With(
			"goal", b.goalAt(i),
			"kpi", b.kpiAt(i),
			"stakeholder", phrase.CycleOr(b.stakeholders, i, fallbackStakeholder),
			"focus", ws.Focus,
		)
		items := v.FillAll(ws.Items)
		for _, m := range members[min(1, len(members)):] {
			if len(items) == maxWorkItems {
				break
			}
			items = append(items, v.With("member", m).Fill(supportItem))
		}

		out[i] = types.Workstream{
			Title:     ws.Title,
			Owner:     owner,
			WorkItems: items,
		}
	}
	return out
}

// unownedWorkstreams lists workstreams that no real team member joined.
func unownedWorkstreams(team []string) []string {
	var titles []string
	for i, members := range assignTeam(team) {
		if len(members) == 0 {
			titles = append(titles, workstreams[i].Title)
		}
	}
	return titles
}

func deriveMilestones(b brief) []string {
	s := parseSpan(b.timeframe)
	out := make([]string, len(phases))
	for i, p := range phases {
		v := b.vars().With("goal", b.goalAt(i))
		out[i] = s.marker(i, len(phases), b.timeframe) + " · " + v.Fill(p.Milestone)
	}
	return out
}

// classifyRisk returns the tier and mitigation for the constraint at
// position i.
func classifyRisk(constraint string, i int) (string, string) {
	for _, r := range riskRules {
		if phrase.HasWordPrefix(constraint, r.Keywords) {
			return r.Probability, r.Mitigation
		}
	}
	tier := tierLow
	switch {
	case i == 0:
		tier = tierHigh
	case i <= 2:
		tier = tierMedium
	}
	return tier, phrase.Cycle(genericMitigations, i)
}

func deriveRisks(b brief) []types.Risk {
	constraints := phrase.OrList(b.constraints, defaultConstraints)
	v := b.vars()
	out := make([]types.Risk, len(constraints))
	for i, c := range constraints {
		tier, mitigation := classifyRisk(c, i)
		out[i] = types.Risk{
			Title:       c,
			Probability: tier,
			Mitigation:  v.Fill(mitigation),
		}
	}
	return out
}

func deriveDependencies(b brief) []string {
	v := b.vars()
	out := make([]string, 0, len(b.stakeholders)+len(integrationDependencies)+1)
	if len(b.stakeholders) == 0 {
		out = append(out, sponsorDependency)
	}
	for _, s := range b.stakeholders {
		out = append(out, v.With("stakeholder", s).Fill(stakeholderDependency))
	}
	return append(out, v.FillAll(integrationDependencies)...)
}
