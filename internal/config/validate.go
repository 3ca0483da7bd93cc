package config

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DefaultIndustryKey    = "default"
	DefaultCompanySizeKey = "small"

	// DefaultQuestionWeight applies when a question omits its weight.
	DefaultQuestionWeight = 1.0
	// DefaultMaxAnswerValue is the top of the raw Likert range.
	DefaultMaxAnswerValue = 5

	// WeightSumTolerance bounds how far an industry's dimension weights may
	// drift from 1.0 before the catalog is rejected. Silent renormalization
	// is deliberately not performed.
	WeightSumTolerance = 0.01
)

var validPriorities = map[string]bool{"HIGH": true, "MEDIUM": true, "LOW": true}

// ValidationError aggregates every problem found in a catalog so operators
// see the full list at once instead of fixing one issue per load attempt.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the catalog invariants and applies per-question defaults.
// It must be called once after load and before the catalog is handed to the
// engine; scoring never re-validates. A non-nil return is always a
// *ValidationError and means the catalog must not be used.
func (c *Catalog) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(c.Dimensions) == 0 {
		add("catalog declares no dimensions")
	}
	dims := map[string]bool{}
	for _, d := range c.Dimensions {
		if dims[d] {
			add("duplicate dimension %q", d)
		}
		dims[d] = true
	}

	seenQuestions := map[string]bool{}
	for i := range c.Questions {
		q := &c.Questions[i]
		if q.ID == "" {
			add("question %d has empty id", i)
			continue
		}
		if seenQuestions[q.ID] {
			add("duplicate question id %q", q.ID)
		}
		seenQuestions[q.ID] = true
		if !dims[q.Dimension] {
			add("question %q references unknown dimension %q", q.ID, q.Dimension)
		}
		if q.Activity != "" {
			if _, ok := c.Activities[q.Activity]; !ok {
				add("question %q references unknown activity %q", q.ID, q.Activity)
			}
		}
		if q.Weight < 0 {
			add("question %q has negative weight %v", q.ID, q.Weight)
		}
		if q.Weight == 0 {
			q.Weight = DefaultQuestionWeight
		}
		if q.MaxValue < 0 {
			add("question %q has negative max_value %d", q.ID, q.MaxValue)
		}
		if q.MaxValue == 0 {
			q.MaxValue = DefaultMaxAnswerValue
		}
		for raw, score := range q.OptionScores {
			if score < 0 || score > 100 {
				add("question %q option score for raw value %d is outside [0,100]", q.ID, raw)
			}
		}
	}

	for key, p := range c.Industries {
		if p.Key != "" && p.Key != key {
			add("industry %q declares mismatched key %q", key, p.Key)
		}
		if p.Key == "" {
			p.Key = key
			c.Industries[key] = p
		}
		sum := 0.0
		for d, w := range p.DimensionWeights {
			if !dims[d] {
				add("industry %q weights unknown dimension %q", key, d)
			}
			if w < 0 {
				add("industry %q has negative weight for %q", key, d)
			}
			sum += w
		}
		if sum < 1.0-WeightSumTolerance || sum > 1.0+WeightSumTolerance {
			add("industry %q dimension weights sum to %.4f, want 1.0 +/- %.2f", key, sum, WeightSumTolerance)
		}
		if p.BenchmarkAverage < 0 || p.BenchmarkAverage > 100 {
			add("industry %q benchmark average %.2f outside [0,100]", key, p.BenchmarkAverage)
		}
		if p.BenchmarkTopQuartile < 0 || p.BenchmarkTopQuartile > 100 {
			add("industry %q benchmark top quartile %.2f outside [0,100]", key, p.BenchmarkTopQuartile)
		}
		if p.BenchmarkTopQuartile < p.BenchmarkAverage {
			add("industry %q benchmark top quartile %.2f below average %.2f", key, p.BenchmarkTopQuartile, p.BenchmarkAverage)
		}
	}

	for key, a := range c.Activities {
		if a.Key != "" && a.Key != key {
			add("activity %q declares mismatched key %q", key, a.Key)
		}
		if a.Key == "" {
			a.Key = key
			c.Activities[key] = a
		}
		if a.ImpactWeight <= 0 {
			add("activity %q impact weight must be > 0", key)
		}
		if a.ROIMultiplier < 1 {
			add("activity %q roi multiplier must be >= 1", key)
		}
	}

	for key, s := range c.CompanySizes {
		if s.Key != "" && s.Key != key {
			add("company size %q declares mismatched key %q", key, s.Key)
		}
		if s.Key == "" {
			s.Key = key
			c.CompanySizes[key] = s
		}
		if s.TeamSize <= 0 {
			add("company size %q team size must be > 0", key)
		}
		if s.AvgCostPerPersonUSD <= 0 {
			add("company size %q avg cost per person must be > 0", key)
		}
	}

	seenTemplates := map[string]bool{}
	for i, t := range c.Recommendations {
		if t.ID == "" {
			add("recommendation %d has empty id", i)
			continue
		}
		if seenTemplates[t.ID] {
			add("duplicate recommendation id %q", t.ID)
		}
		seenTemplates[t.ID] = true

		targets := 0
		if t.Dimension != "" {
			targets++
			if !dims[t.Dimension] {
				add("recommendation %q references unknown dimension %q", t.ID, t.Dimension)
			}
		}
		if t.Activity != "" {
			targets++
			if _, ok := c.Activities[t.Activity]; !ok {
				add("recommendation %q references unknown activity %q", t.ID, t.Activity)
			}
		}
		if t.Industry != "" {
			targets++
			if _, ok := c.Industries[t.Industry]; !ok {
				add("recommendation %q references unknown industry %q", t.ID, t.Industry)
			}
		}
		if targets != 1 {
			add("recommendation %q must target exactly one of dimension, activity, industry", t.ID)
		}
		if t.Band.Min < 0 || t.Band.Max > 100 || t.Band.Min > t.Band.Max {
			add("recommendation %q band [%.1f,%.1f] invalid", t.ID, t.Band.Min, t.Band.Max)
		}
		if !validPriorities[t.Priority] {
			add("recommendation %q priority %q invalid", t.ID, t.Priority)
		}
		if strings.TrimSpace(t.Title) == "" {
			add("recommendation %q has empty title", t.ID)
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return &ValidationError{Problems: problems}
	}
	return nil
}
