package engine

// ImpactDisclaimer must accompany the impact estimate wherever it is
// surfaced. The projections are illustrative, derived from static activity
// multipliers and company-size defaults, and are not guarantees.
const ImpactDisclaimer = "Illustrative projection based on industry-average multipliers and " +
	"company-size defaults. Not a forecast or guarantee of results."

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

type ReadinessTier string

const (
	TierAdvanced   ReadinessTier = "advanced"
	TierProficient ReadinessTier = "proficient"
	TierBasic      ReadinessTier = "basic"
	TierBeginner   ReadinessTier = "beginner"
	// TierModerate marks the neutral default assigned to a selected
	// activity with no configured questions.
	TierModerate ReadinessTier = "moderate"
)

type ReadinessCategory string

const (
	CategoryLeader       ReadinessCategory = "Leader"
	CategoryReady        ReadinessCategory = "Ready"
	CategoryDeveloping   ReadinessCategory = "Developing"
	CategoryFoundational ReadinessCategory = "Foundational"
	// CategoryUnavailable marks the degraded fallback result and is never
	// produced by a normal evaluation.
	CategoryUnavailable ReadinessCategory = "Unavailable"
)

// Input is the caller-supplied record for one assessment. No field is
// required: absent answers simply don't contribute, an unknown or empty
// industry key falls back to the equal-weight default profile, an unknown
// company size falls back to "small", and an empty activity selection
// yields the neutral activity blend.
type Input struct {
	Answers            map[string]int `json:"answers"`
	IndustryKey        string         `json:"industry_key"`
	CompanySizeKey     string         `json:"company_size_key"`
	SelectedActivities []string       `json:"selected_activities"`
	// MaxRecommendations caps the recommendation list; zero means the
	// policy default.
	MaxRecommendations int `json:"max_recommendations,omitempty"`
}

// DimensionScore is the weighted 0-100 aggregate for one dimension.
// AnsweredQuestions lets presentation layers distinguish "insufficient
// data" (zero answered) from genuinely low maturity; the numeric value is
// 0 in both cases by policy.
type DimensionScore struct {
	Dimension         string  `json:"dimension"`
	Value             float64 `json:"value"`
	AnsweredQuestions int     `json:"answered_questions"`
}

// ActivityScore is the weighted 0-100 aggregate for one selected activity.
// Defaulted is true when the activity had no configured questions and
// received the neutral score.
type ActivityScore struct {
	Activity     string        `json:"activity"`
	Value        float64       `json:"value"`
	Tier         ReadinessTier `json:"readiness_tier"`
	ImpactWeight float64       `json:"impact_weight"`
	Defaulted    bool          `json:"defaulted,omitempty"`
}

// Recommendation is one selected and ranked catalog template.
type Recommendation struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Priority       Priority `json:"priority"`
	RelevanceScore float64  `json:"relevance_score"`
	// Source identifies what the template was matched against:
	// "dimension:<key>", "activity:<key>", or "industry:<key>".
	Source         string `json:"source"`
	InvestmentHint string `json:"investment_hint,omitempty"`
	TimelineHint   string `json:"timeline_hint,omitempty"`
}

// ImpactEstimate carries the illustrative productivity projections.
type ImpactEstimate struct {
	AdjustedMultiplier     float64 `json:"adjusted_multiplier"`
	TeamSize               int     `json:"team_size"`
	LaborCostBaselineUSD   float64 `json:"labor_cost_baseline_usd"`
	AnnualLaborSavingsUSD  float64 `json:"annual_labor_savings_usd"`
	AnnualRevenueImpactUSD float64 `json:"annual_revenue_impact_usd"`
	Disclaimer             string  `json:"disclaimer"`
}

// Result is the sole externally visible artifact of an evaluation. It is
// fully self-contained and serializable and holds no reference back to the
// raw answers or to engine internals.
type Result struct {
	OverallScore       float64                   `json:"overall_score"`
	DimensionScores    map[string]DimensionScore `json:"dimension_scores"`
	ActivityScores     map[string]ActivityScore  `json:"activity_scores"`
	ReadinessCategory  ReadinessCategory         `json:"readiness_category"`
	PercentileEstimate int                       `json:"percentile_estimate"`
	Recommendations    []Recommendation          `json:"recommendations"`
	Impact             ImpactEstimate            `json:"impact_estimate"`
	IndustryKey        string                    `json:"industry_key"`
	CompanySizeKey     string                    `json:"company_size_key"`
	// Degraded is true only for the fallback result produced when the
	// engine could not run (invalid configuration). It distinguishes the
	// neutral fallback from a genuine mid-range outcome.
	Degraded bool `json:"degraded,omitempty"`
}
