// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func sampleInput() types.ProjectInput {
	return types.ProjectInput{
		Name:         "Command Atlas Transformation",
		Vision:       "Launch a unified command center so enterprise leaders can orchestrate growth and operations from a single canvas.",
		Industry:     "Enterprise SaaS",
		Timeframe:    "16-week sprint program",
		Budget:       "$1.8M envelope",
		Goals:        []string{"Compress decision cycles for executives", "Digitize cross-functional playbooks", "Prove measurable ROI within one quarter"},
		KPIs:         []string{"Decision cycle time", "Adoption across regions", "Net promoter score uplift"},
		Stakeholders: []string{"Chief Strategy Officer", "VP Product", "Head of RevOps", "PMO Director"},
		Team:         []string{"Program Director", "Product Strategist", "Design Architect", "Lead Engineer", "Change Lead"},
		Constraints:  []string{"Complex legacy systems", "Compressed go-live timeline", "Strict compliance reviews"},
	}
}

// assertPopulated fails for any empty string, empty slice, or leftover
// placeholder anywhere in v.
func assertPopulated(t *testing.T, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.String:
		s := v.String()
		assert.NotEmpty(t, strings.TrimSpace(s), "%s is blank", path)
		for _, bad := range []string{"undefined", "<nil>", "%!", "{", "}"} {
			assert.NotContains(t, s, bad, "%s = %q", path, s)
		}
	case reflect.Slice:
		assert.NotZero(t, v.Len(), "%s is empty", path)
		for i := 0; i < v.Len(); i++ {
			assertPopulated(t, v.Index(i), path+"["+strconv.Itoa(i)+"]")
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			assertPopulated(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	in := sampleInput()
	first := Generate(in)
	second := Generate(in)
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	in := sampleInput()
	in.Goals = []string{" Cut costs ", "cut costs", "Grow revenue"}
	snapshot := append([]string(nil), in.Goals...)
	Generate(in)
	assert.Equal(t, snapshot, in.Goals)
}

func TestGenerateEmptyInputIsTotal(t *testing.T) {
	bp := Generate(types.ProjectInput{})
	assertPopulated(t, reflect.ValueOf(bp), "blueprint")

	assert.Equal(t, defaultObjectives, bp.Architecture.Objectives)
	assert.Equal(t, defaultKPIs, bp.Architecture.KPIs)
	assert.Len(t, bp.Summary.ValueStreams, 1)
	assert.Contains(t, bp.Summary.NorthStar, fallbackName)
}

func TestGenerateSampleIsPopulated(t *testing.T) {
	assertPopulated(t, reflect.ValueOf(Generate(sampleInput())), "blueprint")
}

func TestScenarioGoalsKPIsTeam(t *testing.T) {
	in := sampleInput()
	in.Goals = []string{"Cut costs", "Grow revenue"}
	in.KPIs = []string{"Margin %"}
	in.Team = []string{"PM", "Engineer"}

	bp := Generate(in)

	assert.Equal(t, []string{"Cut costs", "Grow revenue"}, bp.Architecture.Objectives)
	require.Len(t, bp.Architecture.WBS, 4)
	for _, ws := range bp.Architecture.WBS {
		assert.NotEmpty(t, ws.Owner, ws.Title)
		assert.NotEmpty(t, ws.WorkItems, ws.Title)
	}
	assert.Equal(t, "PM", bp.Architecture.WBS[0].Owner)
	assert.Equal(t, "Engineer", bp.Architecture.WBS[2].Owner)

	require.Len(t, bp.Documents.RACI, len(raciActivities))
	for i, row := range bp.Documents.RACI {
		assert.Equal(t, raciActivities[i].Name, row.Activity)
	}
}

func TestScenarioEmptyGoals(t *testing.T) {
	in := sampleInput()
	in.Goals = nil

	bp := Generate(in)
	assert.Equal(t, defaultObjectives, bp.Architecture.Objectives)
	assertPopulated(t, reflect.ValueOf(bp), "blueprint")
}

func TestObjectivesAreTrimmedAndDeduplicated(t *testing.T) {
	in := sampleInput()
	in.Goals = []string{"  Cut costs ", "CUT COSTS", "", "Grow revenue"}
	bp := Generate(in)
	assert.Equal(t, []string{"Cut costs", "Grow revenue"}, bp.Architecture.Objectives)
}

func TestFixedCardinality(t *testing.T) {
	inputs := []types.ProjectInput{{}, sampleInput(), {Goals: []string{"a", "b", "c", "d", "e", "f", "g"}}}
	for _, in := range inputs {
		bp := Generate(in)
		assert.Len(t, bp.ExecutionPath, len(phases))
		assert.Len(t, bp.Architecture.WBS, len(workstreams))
		assert.Len(t, bp.Architecture.Milestones, len(phases))
		assert.Len(t, bp.Architecture.Deliverables, len(deliverableTemplates))
		assert.Len(t, bp.Documents.RACI, len(raciActivities))
		assert.Len(t, bp.Documents.Timeline, len(phases))
		assert.Len(t, bp.Documents.Roadmap, len(horizons))
		assert.Len(t, bp.Recommendations, 5)
	}
}

func TestGoalOrderSensitivity(t *testing.T) {
	in := sampleInput()
	swapped := sampleInput()
	swapped.Goals[0], swapped.Goals[1] = swapped.Goals[1], swapped.Goals[0]

	a, b := Generate(in), Generate(swapped)

	assert.NotEqual(t, a.Summary.ValueStreams, b.Summary.ValueStreams)
	assert.NotEqual(t, a.Architecture.Milestones, b.Architecture.Milestones)
	assert.NotEqual(t, a.Architecture.Objectives, b.Architecture.Objectives)
	assert.NotEqual(t, a.Documents.Roadmap, b.Documents.Roadmap)

	assert.Equal(t, a.Architecture.Deliverables, b.Architecture.Deliverables)
	assert.Equal(t, a.Architecture.Risks, b.Architecture.Risks)
	assert.Equal(t, a.Architecture.Dependencies, b.Architecture.Dependencies)
	for i := range a.ExecutionPath {
		assert.Equal(t, a.ExecutionPath[i].Name, b.ExecutionPath[i].Name)
	}
}

func TestTeamOrderChangesOwners(t *testing.T) {
	in := sampleInput()
	in.Team = []string{"Product Strategist", "Program Director"}
	bp := Generate(in)
	assert.Equal(t, "Product Strategist", bp.Architecture.WBS[0].Owner)

	in.Team = []string{"Program Director", "Product Strategist"}
	bp = Generate(in)
	assert.Equal(t, "Program Director", bp.Architecture.WBS[0].Owner)
}

func TestAssignTeam(t *testing.T) {
	tests := []struct {
		name string
		team []string
		want [][]string
	}{
		{
			name: "keyword match",
			team: []string{"Program Director", "Product Strategist", "Design Architect", "Lead Engineer", "Change Lead"},
			want: [][]string{
				{"Program Director", "Product Strategist"},
				{"Design Architect"},
				{"Lead Engineer"},
				{"Change Lead"},
			},
		},
		{
			name: "round robin by position when nothing matches",
			team: []string{"Alice", "Bob", "Carol", "Dan", "Eve"},
			want: [][]string{{"Alice", "Eve"}, {"Bob"}, {"Carol"}, {"Dan"}},
		},
		{
			name: "default archetypes own their workstreams",
			team: defaultTeam,
			want: [][]string{{"Program Director"}, {"Experience Lead"}, {"Engineering Lead"}, {"Change Lead"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assignTeam(tt.team)
			require.Len(t, got, len(workstreams))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i], workstreams[i].Title)
			}
		})
	}
}

func TestWorkItemsAreCapped(t *testing.T) {
	in := sampleInput()
	in.Team = []string{"PMO Lead", "Program Manager", "Portfolio Analyst", "Strategy Partner", "Finance Partner", "Chief of Staff"}
	ws := Generate(in).Architecture.WBS[0]
	assert.Equal(t, "PMO Lead", ws.Owner)
	assert.Len(t, ws.WorkItems, maxWorkItems)
	assert.Contains(t, ws.WorkItems[3], "Program Manager supports")
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		constraint string
		index      int
		want       string
	}{
		{"Strict compliance reviews", 2, tierHigh},
		{"Complex legacy systems", 0, tierHigh},
		{"Compressed go-live timeline", 1, tierMedium},
		{"Tight budget", 0, tierMedium},
		{"Something unusual", 0, tierHigh},
		{"Something unusual", 1, tierMedium},
		{"Something unusual", 3, tierLow},
	}
	for _, tt := range tests {
		got, mitigation := classifyRisk(tt.constraint, tt.index)
		assert.Equal(t, tt.want, got, tt.constraint)
		assert.NotEmpty(t, mitigation)
	}
}

func TestRisksFollowConstraints(t *testing.T) {
	bp := Generate(sampleInput())
	require.Len(t, bp.Architecture.Risks, 3)
	assert.Equal(t, "Complex legacy systems", bp.Architecture.Risks[0].Title)
	assert.Equal(t, "Strict compliance reviews", bp.Architecture.Risks[2].Title)
	assert.Equal(t, tierHigh, bp.Architecture.Risks[2].Probability)
}

func TestMilestonesAndPeriods(t *testing.T) {
	tests := []struct {
		timeframe string
		markers   []string
		periods   []string
	}{
		{
			timeframe: "16-week sprint program",
			markers:   []string{"Week 4", "Week 8", "Week 12", "Week 16"},
			periods:   []string{"Weeks 1–4", "Weeks 5–8", "Weeks 9–12", "Weeks 13–16"},
		},
		{
			timeframe: "6 months",
			markers:   []string{"Month 2", "Month 3", "Month 5", "Month 6"},
			periods:   []string{"Months 1–2", "Month 3", "Months 4–5", "Month 6"},
		},
		{
			timeframe: "1 year",
			markers:   []string{"Week 13", "Week 26", "Week 39", "Week 52"},
			periods:   []string{"Weeks 1–13", "Weeks 14–26", "Weeks 27–39", "Weeks 40–52"},
		},
		{
			timeframe: "1 week",
			markers:   []string{"Day 2", "Day 4", "Day 6", "Day 7"},
			periods:   []string{"Days 1–2", "Days 3–4", "Days 5–6", "Day 7"},
		},
		{
			timeframe: "3 sprints",
			markers:   []string{"Week 2", "Week 3", "Week 5", "Week 6"},
			periods:   []string{"Weeks 1–2", "Week 3", "Weeks 4–5", "Week 6"},
		},
		{
			timeframe: "2 days",
			markers:   []string{"Checkpoint 1 (25% of the 2 days)", "Checkpoint 2 (50% of the 2 days)", "Checkpoint 3 (75% of the 2 days)", "Checkpoint 4 (100% of the 2 days)"},
			periods:   []string{"Period 1 of the 2 days", "Period 2 of the 2 days", "Period 3 of the 2 days", "Period 4 of the 2 days"},
		},
		{
			timeframe: "4611686018427387904 weeks",
			markers:   []string{"Checkpoint 1 (25% of the 4611686018427387904 weeks)", "Checkpoint 2 (50% of the 4611686018427387904 weeks)", "Checkpoint 3 (75% of the 4611686018427387904 weeks)", "Checkpoint 4 (100% of the 4611686018427387904 weeks)"},
			periods:   []string{"Period 1 of the 4611686018427387904 weeks", "Period 2 of the 4611686018427387904 weeks", "Period 3 of the 4611686018427387904 weeks", "Period 4 of the 4611686018427387904 weeks"},
		},
		{
			timeframe: "10000 days",
			markers:   []string{"Day 2500", "Day 5000", "Day 7500", "Day 10000"},
			periods:   []string{"Days 1–2500", "Days 2501–5000", "Days 5001–7500", "Days 7501–10000"},
		},
		{
			timeframe: "As soon as possible",
			markers:   []string{"Checkpoint 1 (25% of the As soon as possible)", "Checkpoint 2 (50% of the As soon as possible)", "Checkpoint 3 (75% of the As soon as possible)", "Checkpoint 4 (100% of the As soon as possible)"},
			periods:   []string{"Period 1 of the As soon as possible", "Period 2 of the As soon as possible", "Period 3 of the As soon as possible", "Period 4 of the As soon as possible"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.timeframe, func(t *testing.T) {
			in := sampleInput()
			in.Timeframe = tt.timeframe
			bp := Generate(in)
			require.Len(t, bp.Architecture.Milestones, len(tt.markers))
			seen := map[string]bool{}
			for i, m := range bp.Architecture.Milestones {
				assert.True(t, strings.HasPrefix(m, tt.markers[i]+" · "), "milestone %d = %q", i, m)
				assert.False(t, seen[tt.markers[i]], "repeated marker %q", tt.markers[i])
				seen[tt.markers[i]] = true
			}
			for i, e := range bp.Documents.Timeline {
				assert.Equal(t, tt.periods[i], e.Period)
				assert.Equal(t, bp.ExecutionPath[i].Focus, e.Focus)
			}
		})
	}
}

func TestRACIAssignment(t *testing.T) {
	bp := Generate(sampleInput())
	raci := bp.Documents.RACI
	wbs := bp.Architecture.WBS

	assert.Equal(t, wbs[0].Owner, raci[0].Responsible)
	assert.Equal(t, wbs[1].Owner, raci[0].Consulted)
	assert.Equal(t, "Chief Strategy Officer", raci[0].Accountable)
	assert.Equal(t, "VP Product, Head of RevOps, and PMO Director", raci[0].Informed)
	assert.Equal(t, "Chief Strategy Officer", raci[4].Accountable, "accountable rotates by row index")

	empty := Generate(types.ProjectInput{}).Documents.RACI
	for _, row := range empty {
		assert.Equal(t, defaultAccountable, row.Accountable)
		assert.Equal(t, defaultInformed, row.Informed)
	}
}

func TestRoadmapSplitsGoalsInOrder(t *testing.T) {
	bp := Generate(sampleInput())
	rm := bp.Documents.Roadmap
	assert.Equal(t, []string{"Compress decision cycles for executives"}, rm[0].Outcomes)
	assert.Equal(t, []string{"Prove measurable ROI within one quarter"}, rm[2].Outcomes)
	assert.Equal(t, "Instrument decision cycle time with an owner and a target", rm[0].Enablers[0])
}

func TestRecommendations(t *testing.T) {
	t.Run("compliance-sensitive budget", func(t *testing.T) {
		in := sampleInput()
		in.Budget = "Grant-funded, audit required"
		recs := Generate(in).Recommendations
		assert.Contains(t, recs[1], "compliance contingency")
	})
	t.Run("plain budget", func(t *testing.T) {
		recs := Generate(sampleInput()).Recommendations
		assert.Contains(t, recs[1], "Stage-gate the $1.8M envelope")
		assert.Contains(t, recs[2], `"Complex legacy systems"`)
	})
	t.Run("empty input", func(t *testing.T) {
		recs := Generate(types.ProjectInput{}).Recommendations
		assert.Contains(t, recs[1], "Confirm a budget envelope")
		assert.Contains(t, recs[2], "pre-mortem")
		assert.Contains(t, recs[3], "baseline KPIs")
		assert.Contains(t, recs[4], "default role archetype")
	})
	t.Run("partial team", func(t *testing.T) {
		in := sampleInput()
		in.Team = []string{"PM", "Engineer"}
		recs := Generate(in).Recommendations
		assert.Contains(t, recs[4], "Experience & Design and Change & Enablement")
	})
}
