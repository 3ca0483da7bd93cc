// Package engine implements the deterministic scoring and recommendation
// pipeline: raw Likert answers plus static configuration in, a bounded,
// explainable readiness result out.
//
// The pipeline is a pure, synchronous computation over immutable inputs. It
// performs no I/O, holds no state between invocations, and never mutates
// the shared catalog, so a single Engine is safe for any number of
// concurrent evaluations.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumenmetrics/readiness-engine/internal/config"
)

const tracerName = "github.com/lumenmetrics/readiness-engine/internal/engine"

// Engine evaluates assessments against one validated catalog. Construct it
// with the catalog it should use; it never reaches into ambient global
// state.
type Engine struct {
	cat    *config.Catalog
	tracer trace.Tracer
}

// New builds an Engine around a validated catalog. The catalog must already
// have passed config validation; New only refuses the obviously unusable.
func New(cat *config.Catalog) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("engine: nil catalog")
	}
	if len(cat.Dimensions) == 0 {
		return nil, errors.New("engine: catalog has no dimensions")
	}
	if err := validateTemplateBands(cat.Recommendations); err != nil {
		return nil, err
	}
	return &Engine{cat: cat, tracer: otel.Tracer(tracerName)}, nil
}

// validateTemplateBands checks every recommendation template's band against
// the fixed cut points for its target type. A band that straddles a cut
// point would fire for scores the band's wording no longer describes, so
// the mismatch is refused at construction rather than surfacing as an odd
// recommendation later.
func validateTemplateBands(templates []config.RecommendationTemplate) error {
	for _, tpl := range templates {
		var cuts []float64
		switch {
		case tpl.Dimension != "":
			cuts = []float64{DimensionBandLowMax, DimensionBandMidMax}
		case tpl.Activity != "":
			cuts = []float64{ActivityBandLowMax, ActivityBandMidMax}
		case tpl.Industry != "":
			cuts = []float64{OverallBandLowMax, OverallBandMidMax, OverallBandHighMax}
		}
		for _, cut := range cuts {
			if tpl.Band.Min < cut && tpl.Band.Max >= cut {
				return fmt.Errorf("engine: recommendation %q band [%.2f,%.2f] straddles the %.0f cut point",
					tpl.ID, tpl.Band.Min, tpl.Band.Max, cut)
			}
		}
	}
	return nil
}

// Evaluate runs the full pipeline for one assessment. It cannot fail on any
// input: missing data resolves to documented defaults and every arithmetic
// guard substitutes its fallback before dividing. The context is used for
// trace propagation only; no step blocks.
func (e *Engine) Evaluate(ctx context.Context, in Input) Result {
	_, span := e.tracer.Start(ctx, "engine.Evaluate", trace.WithAttributes(
		attribute.String("assessment.industry", in.IndustryKey),
		attribute.String("assessment.company_size", in.CompanySizeKey),
		attribute.Int("assessment.answers", len(in.Answers)),
		attribute.Int("assessment.activities", len(in.SelectedActivities)),
	))
	defer span.End()

	profile := e.cat.IndustryFor(in.IndustryKey)
	size := e.cat.CompanySizeFor(in.CompanySizeKey)

	dims := ScoreDimensions(in.Answers, e.cat)
	acts := ScoreActivities(in.Answers, in.SelectedActivities, e.cat)

	overall := ComposeOverall(dims, acts, profile)
	category, percentile := Classify(overall, profile)
	recs := SelectRecommendations(dims, acts, overall, in.IndustryKey, e.cat.Recommendations, in.MaxRecommendations)
	impact := EstimateImpact(overall, acts, size, e.cat.Activities)

	span.SetAttributes(
		attribute.Float64("assessment.overall_score", overall),
		attribute.String("assessment.category", string(category)),
	)

	return Result{
		OverallScore:       overall,
		DimensionScores:    dims,
		ActivityScores:     acts,
		ReadinessCategory:  category,
		PercentileEstimate: percentile,
		Recommendations:    recs,
		Impact:             impact,
		IndustryKey:        profile.Key,
		CompanySizeKey:     size.Key,
	}
}

// DegradedResult is the neutral fallback a boundary layer may return when
// the engine is unavailable (invalid configuration). All dimensions sit at
// 50 and the category is "Unavailable"; the Degraded flag keeps it
// distinguishable from a genuine mid-range outcome. It must never replace
// a real score.
func DegradedResult(dimensions []string) Result {
	dims := make(map[string]DimensionScore, len(dimensions))
	for _, d := range dimensions {
		dims[d] = DimensionScore{Dimension: d, Value: NeutralScore}
	}
	return Result{
		OverallScore:       NeutralScore,
		DimensionScores:    dims,
		ActivityScores:     map[string]ActivityScore{},
		ReadinessCategory:  CategoryUnavailable,
		PercentileEstimate: 0,
		Recommendations:    []Recommendation{},
		Impact:             ImpactEstimate{AdjustedMultiplier: 1, Disclaimer: ImpactDisclaimer},
		Degraded:           true,
	}
}
