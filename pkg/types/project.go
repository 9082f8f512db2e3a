// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProjectInput is the parsed project-intent form. List fields are already
// tokenized: trimmed, order-preserving, empty entries removed.
type ProjectInput struct {
	Name         string   `json:"name" yaml:"name"`
	Vision       string   `json:"vision" yaml:"vision"`
	Industry     string   `json:"industry" yaml:"industry"`
	Timeframe    string   `json:"timeframe" yaml:"timeframe"`
	Budget       string   `json:"budget" yaml:"budget"`
	Goals        []string `json:"goals" yaml:"goals"`
	KPIs         []string `json:"kpis" yaml:"kpis"`
	Stakeholders []string `json:"stakeholders" yaml:"stakeholders"`
	Team         []string `json:"team" yaml:"team"`
	Constraints  []string `json:"constraints" yaml:"constraints"`
}

// ProjectBlueprint is the program-management bundle derived from a ProjectInput.
type ProjectBlueprint struct {
	Summary         ProjectSummary `json:"summary" yaml:"summary"`
	Architecture    Architecture   `json:"architecture" yaml:"architecture"`
	ExecutionPath   []Phase        `json:"executionPath" yaml:"execution_path"`
	Documents       Documents      `json:"documents" yaml:"documents"`
	Recommendations []string       `json:"recommendations" yaml:"recommendations"`
}

// ProjectSummary is the north-star narrative.
type ProjectSummary struct {
	NorthStar    string   `json:"northStar" yaml:"north_star"`
	Positioning  string   `json:"positioning" yaml:"positioning"`
	ValueStreams []string `json:"valueStreams" yaml:"value_streams"`
}

// Architecture holds scope, measures, work breakdown, and risk posture.
type Architecture struct {
	Scope        string       `json:"scope" yaml:"scope"`
	Objectives   []string     `json:"objectives" yaml:"objectives"`
	KPIs         []string     `json:"kpis" yaml:"kpis"`
	Deliverables []string     `json:"deliverables" yaml:"deliverables"`
	WBS          []Workstream `json:"wbs" yaml:"wbs"`
	Milestones   []string     `json:"milestones" yaml:"milestones"`
	Risks        []Risk       `json:"risks" yaml:"risks"`
	Dependencies []string     `json:"dependencies" yaml:"dependencies"`
}

// Workstream is one bucket of the work-breakdown structure.
type Workstream struct {
	Title     string   `json:"title" yaml:"title"`
	Owner     string   `json:"owner" yaml:"owner"`
	WorkItems []string `json:"workItems" yaml:"work_items"`
}

// Risk pairs a constraint with a probability tier and a mitigation.
type Risk struct {
	Title       string `json:"title" yaml:"title"`
	Probability string `json:"probability" yaml:"probability"`
	Mitigation  string `json:"mitigation" yaml:"mitigation"`
}

// Phase is one step of the execution pathway. Phases are chronological.
type Phase struct {
	Name  string   `json:"name" yaml:"name"`
	Focus string   `json:"focus" yaml:"focus"`
	Steps []string `json:"steps" yaml:"steps"`
}

// Documents groups the ready-to-deploy program documents.
type Documents struct {
	Charter  []DocumentSection `json:"charter" yaml:"charter"`
	SOW      []DocumentSection `json:"sow" yaml:"sow"`
	RACI     []RACIEntry       `json:"raci" yaml:"raci"`
	Timeline []TimelineEntry   `json:"timeline" yaml:"timeline"`
	Roadmap  []RoadmapEntry    `json:"roadmap" yaml:"roadmap"`
}

// DocumentSection is a titled list of items inside a charter or SOW.
type DocumentSection struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// RACIEntry maps one activity to its responsible, accountable, consulted,
// and informed parties.
type RACIEntry struct {
	Activity    string `json:"activity" yaml:"activity"`
	Responsible string `json:"responsible" yaml:"responsible"`
	Accountable string `json:"accountable" yaml:"accountable"`
	Consulted   string `json:"consulted" yaml:"consulted"`
	Informed    string `json:"informed" yaml:"informed"`
}

// TimelineEntry is one period of the program timeline.
type TimelineEntry struct {
	Period      string   `json:"period" yaml:"period"`
	Focus       string   `json:"focus" yaml:"focus"`
	Checkpoints []string `json:"checkpoints" yaml:"checkpoints"`
}

// RoadmapEntry is one horizon of the roadmap.
type RoadmapEntry struct {
	Horizon  string   `json:"horizon" yaml:"horizon"`
	Outcomes []string `json:"outcomes" yaml:"outcomes"`
	Enablers []string `json:"enablers" yaml:"enablers"`
}
