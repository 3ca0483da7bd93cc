package engine

import (
	"sort"

	"github.com/lumenmetrics/readiness-engine/internal/config"
)

// ComposeOverall combines dimension and activity scores into the single
// overall score.
//
// The two-stage design is intentional: first a weighted capability blend,
// then a rescale relative to the industry benchmark so that matching the
// industry average lands near 50. The same raw capability therefore yields
// different relative scores across industries with different maturity
// baselines.
func ComposeOverall(dims map[string]DimensionScore, acts map[string]ActivityScore, profile config.IndustryProfile) float64 {
	// Dimension blend over all weighted dimensions. A missing dimension
	// score counts as 0 rather than being skipped: a team that answered
	// nothing for a dimension is scored weak in it, deliberately.
	// Accumulation runs in sorted key order; float sums must not depend on
	// map iteration order or identical inputs could diverge in the last bit.
	dimensionBlend := 0.0
	for _, dim := range sortedKeys(profile.DimensionWeights) {
		dimensionBlend += dims[dim].Value * profile.DimensionWeights[dim]
	}
	dimensionBlend = clamp01x100(dimensionBlend)

	activityBlend := composeActivityBlend(acts)

	raw := clamp01x100(dimensionBlend*DimensionBlendWeight + activityBlend*ActivityBlendWeight)

	if profile.BenchmarkAverage <= 0 {
		return raw
	}
	return clamp01x100(raw/profile.BenchmarkAverage*50 + 50)
}

func composeActivityBlend(acts map[string]ActivityScore) float64 {
	if len(acts) == 0 {
		return NeutralScore
	}
	weightedSum := 0.0
	weightTotal := 0.0
	for _, key := range sortedKeys(acts) {
		a := acts[key]
		weightedSum += a.Value * a.ImpactWeight
		weightTotal += a.ImpactWeight
	}
	if weightTotal == 0 {
		return NeutralScore
	}
	return clamp01x100(weightedSum / weightTotal)
}

// sortedKeys fixes the accumulation order for every float sum taken over a
// map in this package.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Classify maps the overall score to a readiness category and a coarse
// percentile estimate, using the industry's own benchmark thresholds where
// the profile carries them. The percentile is a four-step function of the
// same thresholds; no underlying population sample exists, so anything
// smoother would be false precision.
func Classify(overall float64, profile config.IndustryProfile) (ReadinessCategory, int) {
	leaderMin := profile.BenchmarkTopQuartile
	readyMin := profile.BenchmarkAverage
	if leaderMin <= 0 {
		leaderMin = FallbackLeaderMin
	}
	if readyMin <= 0 {
		readyMin = FallbackReadyMin
	}

	switch {
	case overall >= leaderMin:
		return CategoryLeader, PercentileLeader
	case overall >= readyMin:
		return CategoryReady, PercentileReady
	case overall >= CategoryDevelopingMin:
		return CategoryDeveloping, PercentileDeveloping
	default:
		return CategoryFoundational, PercentileFoundational
	}
}
