// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

// Fallback wording for blank scalar fields.
const (
	fallbackName      = "Unnamed initiative"
	fallbackVision    = "Build a sharper operating model for the organization"
	fallbackIndustry  = "cross-industry"
	fallbackTimeframe = "12-week program"
	fallbackBudget    = "budget envelope to be confirmed"

	fallbackGoal        = "the program objectives"
	fallbackKPI         = "the success measures"
	fallbackConstraint  = "delivery risk"
	fallbackStakeholder = "the executive sponsor"
)

var defaultObjectives = []string{
	"Align sponsors on a single definition of success",
	"Stand up a repeatable delivery cadence",
	"Prove measurable value before scaling",
}

var defaultKPIs = []string{
	"Time to first measurable outcome",
	"Stakeholder adoption rate",
	"Delivery predictability (planned vs. shipped)",
}

// defaultTeam stands in for an empty team list. Each archetype matches its
// own workstream's keywords.
var defaultTeam = []string{
	"Program Director",
	"Experience Lead",
	"Engineering Lead",
	"Change Lead",
}

var defaultConstraints = []string{
	"Competing priorities across sponsors",
	"Unclear data ownership",
	"Adoption fatigue in frontline teams",
}

// valueClauses pair with goals, by position, to form value streams.
var valueClauses = []string{
	"anchored by a named outcome owner and a weekly signal",
	"codified into reusable playbooks across {industry} teams",
	"tracked on the executive scorecard from the first sprint",
	"de-risked through staged releases inside the {timeframe}",
}

const genericValueStream = "Translate the {name} vision into a measurable operating rhythm for {industry} teams."

var deliverableTemplates = []string{
	"{industry} operating model blueprint",
	"Program charter and statement of work",
	"Integrated delivery roadmap and milestone plan",
	"Experience prototypes validated with {industry} users",
	"Production release with {industry} integration runbooks",
	"Value realization scorecard and scale-out playbook",
}

// workstreamSpec is one fixed WBS bucket. Keywords are lowercase word
// prefixes matched against team entries.
type workstreamSpec struct {
	Title        string
	DefaultOwner string
	Focus        string
	Keywords     []string
	Items        []string
}

// maxWorkItems caps base plus support items per workstream.
const maxWorkItems = 5

var workstreams = []workstreamSpec{
	{
		Title:        "Strategy & Governance",
		DefaultOwner: "Program Director",
		Focus:        "governance and value tracking",
		Keywords:     []string{"strateg", "program", "pmo", "pm", "portfolio", "govern", "director", "sponsor", "chief", "finance"},
		Items: []string{
			"Stand up governance cadence and decision rights for {name}",
			"Translate {goal} into a measurable benefits case",
			"Run fortnightly steering reviews against the {budget}",
		},
	},
	{
		Title:        "Experience & Design",
		DefaultOwner: "Experience Lead",
		Focus:        "journey and service design",
		Keywords:     []string{"design", "ux", "ui", "research", "product", "experience", "content", "creative", "service"},
		Items: []string{
			"Map current and target journeys for {stakeholder}",
			"Prototype the core experience for {industry} users",
			"Validate designs against {kpi}",
		},
	},
	{
		Title:        "Engineering & Data",
		DefaultOwner: "Engineering Lead",
		Focus:        "platform build and integration",
		Keywords:     []string{"engineer", "develop", "architect", "data", "platform", "tech", "devops", "qa", "test", "secur", "cloud", "software"},
		Items: []string{
			"Define the target architecture and integration map",
			"Build in two-week increments toward {goal}",
			"Harden, test, and instrument releases to report {kpi}",
		},
	},
	{
		Title:        "Change & Enablement",
		DefaultOwner: "Change Lead",
		Focus:        "adoption and enablement",
		Keywords:     []string{"change", "train", "enable", "comm", "adoption", "people", "hr", "learning", "ops", "operat", "success"},
		Items: []string{
			"Build the stakeholder and change impact map",
			"Design enablement and communications for {stakeholder}",
			"Track adoption and reinforce new ways of working",
		},
	},
}

const supportItem = "{member} supports {focus}"

// phaseSpec is one fixed execution phase, with the milestone that closes it.
type phaseSpec struct {
	Name      string
	Focus     string
	Steps     []string
	Milestone string
}

var phases = []phaseSpec{
	{
		Name:  "Discover & Align",
		Focus: "Baseline the current state and align sponsors on {goal}.",
		Steps: []string{
			"Interview {stakeholders} to confirm outcomes and decision rights",
			"Baseline {kpi} and current delivery performance",
			"Surface constraints, starting with {constraint}",
			"Publish the charter and program guardrails",
		},
		Milestone: "Discovery sign-off: baseline agreed for {goal}",
	},
	{
		Name:  "Design the Model",
		Focus: "Shape the target operating model and experience around {goal2}.",
		Steps: []string{
			"Co-design target journeys and operating model options",
			"Prioritize the backlog against {kpi}",
			"Lock architecture, integration, and data decisions",
			"Sign off the release plan inside the {budget}",
		},
		Milestone: "Design lock: release plan approved for {goal}",
	},
	{
		Name:  "Build & Integrate",
		Focus: "Build iteratively while neutralizing {constraint}.",
		Steps: []string{
			"Deliver in two-week increments with demoable outcomes",
			"Integrate with {industry} systems behind feature flags",
			"Run enablement pilots with early-adopter teams",
			"Track burn-up and risk exposure at every steering review",
		},
		Milestone: "Build complete: integrated release ready for {goal}",
	},
	{
		Name:  "Launch & Scale",
		Focus: "Launch, measure, and scale against {kpis}.",
		Steps: []string{
			"Execute launch readiness and hypercare",
			"Report {kpi} movement to sponsors",
			"Codify playbooks for the next wave",
			"Hand over run ownership and close the program",
		},
		Milestone: "Launch and value review: outcomes reported for {goal}",
	},
}

// riskRule assigns a probability tier and mitigation to constraints whose
// words start with one of the keywords. The first matching rule wins.
type riskRule struct {
	Keywords    []string
	Probability string
	Mitigation  string
}

const (
	tierHigh   = "High"
	tierMedium = "Medium"
	tierLow    = "Low"
)

var riskRules = []riskRule{
	{
		Keywords:    []string{"complian", "regulat", "legal", "audit", "privacy", "secur", "gdpr", "hipaa", "sox", "policy"},
		Probability: tierHigh,
		Mitigation:  "Embed compliance reviewers in sprint reviews and pre-clear controls before each release.",
	},
	{
		Keywords:    []string{"legacy", "integrat", "system", "migrat", "data", "vendor"},
		Probability: tierHigh,
		Mitigation:  "Run an integration spike during discovery and ring-fence a platform squad for legacy adapters.",
	},
	{
		Keywords:    []string{"timeline", "deadline", "compress", "schedule", "date"},
		Probability: tierMedium,
		Mitigation:  "Protect the critical path with weekly burn-up reviews and a pre-agreed scope release valve.",
	},
	{
		Keywords:    []string{"budget", "cost", "fund", "spend", "capex", "opex"},
		Probability: tierMedium,
		Mitigation:  "Stage-gate funding against milestone evidence and track burn against the {budget}.",
	},
	{
		Keywords:    []string{"capacity", "talent", "staff", "resourc", "skill", "adoption", "change", "fatigue", "priorit"},
		Probability: tierMedium,
		Mitigation:  "Name backfill owners and run enablement sprints ahead of each release.",
	},
}

// genericMitigations cover constraints no rule matches, cycled by position.
var genericMitigations = []string{
	"Assign a named risk owner and review exposure at every steering checkpoint.",
	"Define an early-warning signal and a pre-agreed escalation path.",
	"Timebox a mitigation spike in the next sprint and report the outcome to sponsors.",
}

const (
	stakeholderDependency = "Decision rights and sponsorship from {stakeholder}"
	sponsorDependency     = "Executive sponsor named and decision rights agreed"
)

var integrationDependencies = []string{
	"Identity, access, and environment provisioning for {industry} systems",
	"Data platform access and analytics instrumentation",
	"Legal, security, and procurement sign-off for new tooling",
}

// raciActivity is one fixed RACI row; Lead indexes workstreams.
type raciActivity struct {
	Name string
	Lead int
}

var raciActivities = []raciActivity{
	{Name: "Program governance & funding", Lead: 0},
	{Name: "Discovery & requirements", Lead: 0},
	{Name: "Experience design", Lead: 1},
	{Name: "Solution build & integration", Lead: 2},
	{Name: "Change management & training", Lead: 3},
	{Name: "Launch readiness & hypercare", Lead: 2},
}

const (
	defaultAccountable = "Executive sponsor"
	defaultInformed    = "Steering committee"
)

// horizonSpec is one roadmap horizon.
type horizonSpec struct {
	Horizon         string
	FallbackOutcome string
	Enabler         string
}

var horizons = []horizonSpec{
	{
		Horizon:         "Short term · this program",
		FallbackOutcome: "Prove value on the first priority outcome",
		Enabler:         "Stand up the steering cadence and live scorecard",
	},
	{
		Horizon:         "Mid term · next two quarters",
		FallbackOutcome: "Scale the operating model to adjacent teams",
		Enabler:         "Codify playbooks and platform patterns",
	},
	{
		Horizon:         "Long term · 12+ months",
		FallbackOutcome: "Embed the capability as business as usual",
		Enabler:         "Transfer ownership to run teams with sustained funding",
	},
}

const instrumentEnabler = "Instrument {kpi} with an owner and a target"

// complianceTerms flag budget text that needs a compliance reserve.
var complianceTerms = []string{"complian", "regulat", "audit", "govern", "grant", "public", "restricted", "ring", "approval", "capex"}
