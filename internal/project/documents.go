// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func deriveDocuments(b brief, summary types.ProjectSummary, arch types.Architecture, path []types.Phase) types.Documents {
	return types.Documents{
		Charter:  deriveCharter(b, summary, arch),
		SOW:      deriveSOW(b, summary, arch),
		RACI:     deriveRACI(b, arch.WBS),
		Timeline: deriveTimeline(b, arch.Milestones, path),
		Roadmap:  deriveRoadmap(b),
	}
}

func deriveCharter(b brief, summary types.ProjectSummary, arch types.Architecture) []types.DocumentSection {
	governance := []string{"Executive sponsor: nominate before discovery closes"}
	if len(b.stakeholders) > 0 {
		governance = []string{"Executive sponsor: " + b.stakeholders[0]}
		if rest := b.stakeholders[1:]; len(rest) > 0 {
			governance = append(governance, "Steering committee: "+phrase.Join(rest))
		}
	}
	governance = append(governance, "Program lead: "+arch.WBS[0].Owner)

	risks := make([]string, len(arch.Risks))
	for i, r := range arch.Risks {
		risks[i] = r.Title + " (" + r.Probability + ")"
	}

	return []types.DocumentSection{
		{Title: "Purpose", Items: []string{summary.NorthStar, summary.Positioning}},
		{Title: "Objectives", Items: arch.Objectives},
		{Title: "Success measures", Items: arch.KPIs},
		{Title: "Scope & guardrails", Items: []string{
			arch.Scope,
			"Timeframe: " + b.timeframe,
			"Budget guardrail: " + b.budget,
			"Industry context: " + b.industry,
		}},
		{Title: "Governance", Items: governance},
		{Title: "Key risks", Items: risks},
	}
}

func deriveSOW(b brief, summary types.ProjectSummary, arch types.Architecture) []types.DocumentSection {
	workstreams := make([]string, len(arch.WBS))
	for i, ws := range arch.WBS {
		workstreams[i] = ws.Title + " (owner: " + ws.Owner + ")"
	}

	assumptions := []string{
		"Sponsors are available for fortnightly steering reviews",
		"Environments and data access are provisioned by the end of " + phases[0].Name,
	}
	for _, c := range b.constraints {
		assumptions = append(assumptions, "Constraint acknowledged: "+c)
	}

	acceptance := make([]string, len(arch.KPIs))
	for i, k := range arch.KPIs {
		acceptance[i] = "Measurable movement in " + phrase.Clause(k) + " verified at the launch review"
	}

	return []types.DocumentSection{
		{Title: "Background", Items: []string{phrase.Sentence(b.vision), summary.Positioning}},
		{Title: "Deliverables", Items: arch.Deliverables},
		{Title: "Workstreams", Items: workstreams},
		{Title: "Schedule & milestones", Items: arch.Milestones},
		{Title: "Assumptions", Items: assumptions},
		{Title: "Acceptance criteria", Items: acceptance},
	}
}

// deriveRACI assigns one row per fixed activity. Responsible is the lead
// workstream's owner and Consulted the next workstream's owner. Accountable
// rotates through stakeholders by row index; Informed is every other
// stakeholder.
func deriveRACI(b brief, wbs []types.Workstream) []types.RACIEntry {
	out := make([]types.RACIEntry, len(raciActivities))
	for i, a := range raciActivities {
		accountable, informed := defaultAccountable, defaultInformed
		if n := len(b.stakeholders); n > 0 {
			accountable = b.stakeholders[i%n]
			others := make([]string, 0, n-1)
			for j, s := range b.stakeholders {
				if j != i%n {
					others = append(others, s)
				}
			}
			if len(others) > 0 {
				informed = phrase.Join(others)
			}
		}
		out[i] = types.RACIEntry{
			Activity:    a.Name,
			Responsible: wbs[a.Lead].Owner,
			Accountable: accountable,
			Consulted:   wbs[(a.Lead+1)%len(wbs)].Owner,
			Informed:    informed,
		}
	}
	return out
}

// deriveTimeline buckets the execution phases into consecutive periods of
// the timeframe.
func deriveTimeline(b brief, milestones []string, path []types.Phase) []types.TimelineEntry {
	s := parseSpan(b.timeframe)
	out := make([]types.TimelineEntry, len(path))
	for i, p := range path {
		out[i] = types.TimelineEntry{
			Period: s.period(i, len(path), b.timeframe),
			Focus:  p.Focus,
			Checkpoints: []string{
				milestones[i],
				"Exit: " + p.Steps[len(p.Steps)-1],
			},
		}
	}
	return out
}

// deriveRoadmap splits goals and KPIs into contiguous horizon groups,
// preserving input order.
func deriveRoadmap(b brief) []types.RoadmapEntry {
	goalGroups := phrase.Chunk(b.goals, len(horizons))
	kpiGroups := phrase.Chunk(b.kpis, len(horizons))
	v := b.vars()

	out := make([]types.RoadmapEntry, len(horizons))
	for i, h := range horizons {
		outcomes := append([]string(nil), goalGroups[i]...)
		if len(outcomes) == 0 {
			outcomes = []string{h.FallbackOutcome}
		}
		enablers := make([]string, 0, len(kpiGroups[i])+1)
		for _, k := range kpiGroups[i] {
			enablers = append(enablers, v.With("kpi", phrase.Clause(k)).Fill(instrumentEnabler))
		}
		enablers = append(enablers, h.Enabler)

		out[i] = types.RoadmapEntry{
			Horizon:  h.Horizon,
			Outcomes: outcomes,
			Enablers: enablers,
		}
	}
	return out
}
