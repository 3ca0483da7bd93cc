package config

// Catalog is the full static configuration consumed by the scoring engine:
// the question catalog, industry profiles, activity profiles, company-size
// table, and the recommendation catalog. A Catalog is read-only after
// Validate; the engine never mutates it, so one validated Catalog can be
// shared across any number of concurrent evaluations.
type Catalog struct {
	Dimensions      []string                      `yaml:"dimensions" json:"dimensions"`
	Questions       []Question                    `yaml:"questions" json:"questions"`
	Industries      map[string]IndustryProfile    `yaml:"industries" json:"industries"`
	Activities      map[string]ActivityProfile    `yaml:"activities" json:"activities"`
	CompanySizes    map[string]CompanySizeProfile `yaml:"company_sizes" json:"company_sizes"`
	Recommendations []RecommendationTemplate      `yaml:"recommendations" json:"recommendations"`
}

// Question is one Likert-scale survey item. Every question belongs to
// exactly one dimension and may additionally belong to one activity.
// When OptionScores is set it maps raw answer values to 0-100 scores;
// raw values absent from the map are treated as not applicable. Without
// OptionScores the raw value is normalized linearly against MaxValue.
type Question struct {
	ID           string          `yaml:"id" json:"id"`
	Dimension    string          `yaml:"dimension" json:"dimension"`
	Activity     string          `yaml:"activity,omitempty" json:"activity,omitempty"`
	Text         string          `yaml:"text,omitempty" json:"text,omitempty"`
	Weight       float64         `yaml:"weight,omitempty" json:"weight,omitempty"`
	MaxValue     int             `yaml:"max_value,omitempty" json:"max_value,omitempty"`
	OptionScores map[int]float64 `yaml:"option_scores,omitempty" json:"option_scores,omitempty"`
}

// IndustryProfile carries per-industry dimension weighting and benchmark
// data. DimensionWeights must cover every catalog dimension and sum to 1.0
// within WeightSumTolerance. A zero BenchmarkAverage disables benchmark
// normalization for that industry.
type IndustryProfile struct {
	Key                  string             `yaml:"key" json:"key"`
	Label                string             `yaml:"label,omitempty" json:"label,omitempty"`
	DimensionWeights     map[string]float64 `yaml:"dimension_weights" json:"dimension_weights"`
	BenchmarkAverage     float64            `yaml:"benchmark_average" json:"benchmark_average"`
	BenchmarkTopQuartile float64            `yaml:"benchmark_top_quartile" json:"benchmark_top_quartile"`
}

// ActivityProfile describes an opt-in practice area. ImpactWeight scales the
// activity's contribution to the activity blend; ROIMultiplier is the
// theoretical productivity multiplier used by the impact estimator.
type ActivityProfile struct {
	Key           string  `yaml:"key" json:"key"`
	Label         string  `yaml:"label,omitempty" json:"label,omitempty"`
	ImpactWeight  float64 `yaml:"impact_weight" json:"impact_weight"`
	ROIMultiplier float64 `yaml:"roi_multiplier" json:"roi_multiplier"`
}

// CompanySizeProfile supplies the labor-cost baseline inputs for the impact
// estimator.
type CompanySizeProfile struct {
	Key                 string  `yaml:"key" json:"key"`
	Label               string  `yaml:"label,omitempty" json:"label,omitempty"`
	TeamSize            int     `yaml:"team_size" json:"team_size"`
	AvgCostPerPersonUSD float64 `yaml:"avg_cost_per_person_usd" json:"avg_cost_per_person_usd"`
}

// ScoreBand is a closed score interval [Min, Max] on the 0-100 scale.
type ScoreBand struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether score falls inside the band.
func (b ScoreBand) Contains(score float64) bool {
	return score >= b.Min && score <= b.Max
}

// RecommendationTemplate is a static improvement suggestion keyed to exactly
// one of a dimension, an activity, or an industry, applicable when the
// associated score falls inside Band. Templates are never mutated; selection
// is a filter and sort over the catalog.
type RecommendationTemplate struct {
	ID             string    `yaml:"id" json:"id"`
	Dimension      string    `yaml:"dimension,omitempty" json:"dimension,omitempty"`
	Activity       string    `yaml:"activity,omitempty" json:"activity,omitempty"`
	Industry       string    `yaml:"industry,omitempty" json:"industry,omitempty"`
	Band           ScoreBand `yaml:"band" json:"band"`
	Priority       string    `yaml:"priority" json:"priority"`
	Title          string    `yaml:"title" json:"title"`
	Body           string    `yaml:"body" json:"body"`
	InvestmentHint string    `yaml:"investment_hint,omitempty" json:"investment_hint,omitempty"`
	TimelineHint   string    `yaml:"timeline_hint,omitempty" json:"timeline_hint,omitempty"`
}

// QuestionsByDimension groups the question catalog by dimension key,
// preserving catalog order within each group.
func (c *Catalog) QuestionsByDimension() map[string][]Question {
	out := make(map[string][]Question, len(c.Dimensions))
	for _, q := range c.Questions {
		out[q.Dimension] = append(out[q.Dimension], q)
	}
	return out
}

// QuestionsByActivity groups activity-specific questions by activity key.
// Questions without an activity key are omitted.
func (c *Catalog) QuestionsByActivity() map[string][]Question {
	out := map[string][]Question{}
	for _, q := range c.Questions {
		if q.Activity != "" {
			out[q.Activity] = append(out[q.Activity], q)
		}
	}
	return out
}

// IndustryFor returns the profile for key, falling back to an equal-weight
// default profile when the key is absent or empty. The fallback is a
// documented missing-data condition, never an error.
func (c *Catalog) IndustryFor(key string) IndustryProfile {
	if p, ok := c.Industries[key]; ok {
		return p
	}
	return EqualWeightProfile(c.Dimensions)
}

// CompanySizeFor returns the profile for key, falling back to "small".
func (c *Catalog) CompanySizeFor(key string) CompanySizeProfile {
	if p, ok := c.CompanySizes[key]; ok {
		return p
	}
	if p, ok := c.CompanySizes[DefaultCompanySizeKey]; ok {
		return p
	}
	return CompanySizeProfile{Key: DefaultCompanySizeKey, TeamSize: 5, AvgCostPerPersonUSD: 60000}
}

// EqualWeightProfile builds the default industry profile: every dimension
// weighted equally, no benchmark data (which disables benchmark
// normalization downstream).
func EqualWeightProfile(dimensions []string) IndustryProfile {
	p := IndustryProfile{
		Key:              DefaultIndustryKey,
		Label:            "General / cross-industry",
		DimensionWeights: make(map[string]float64, len(dimensions)),
	}
	if len(dimensions) == 0 {
		return p
	}
	w := 1.0 / float64(len(dimensions))
	for _, d := range dimensions {
		p.DimensionWeights[d] = w
	}
	return p
}
