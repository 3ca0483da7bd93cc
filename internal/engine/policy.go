package engine

// Every policy constant in the pipeline is defined here, once. Earlier
// iterations of this system drifted because the same cut points and splits
// were repeated as literals at each call site.

const (
	// AnswerNotApplicable is the sentinel raw value for "not applicable".
	// Such answers are excluded from aggregation entirely, never treated
	// as zero.
	AnswerNotApplicable = -1

	// DimensionBlendWeight and ActivityBlendWeight form the fixed 70/30
	// composite split. Not configurable per industry.
	DimensionBlendWeight = 0.7
	ActivityBlendWeight  = 0.3

	// NeutralScore stands in when there is no signal: the activity blend
	// with no selected activities, and the per-activity default when an
	// activity has no configured questions.
	NeutralScore = 50.0

	// Activity readiness tier breakpoints.
	TierAdvancedMin   = 80.0
	TierProficientMin = 60.0
	TierBasicMin      = 40.0

	// Readiness category floor for "Developing"; below it is "Foundational".
	CategoryDevelopingMin = 40.0

	// Fallback classifier thresholds for profiles without benchmark data.
	FallbackLeaderMin = 80.0
	FallbackReadyMin  = 60.0

	// Coarse percentile steps matching the category thresholds. These are
	// not fitted to any population sample.
	PercentileLeader       = 90
	PercentileReady        = 65
	PercentileDeveloping   = 35
	PercentileFoundational = 15

	// Dimension recommendation bands: low < 40, mid 40-69, high >= 70.
	DimensionBandLowMax = 40.0
	DimensionBandMidMax = 70.0

	// Activity recommendation bands start "needs attention" earlier than
	// dimensions: low < 50, mid 50-69, high >= 70.
	ActivityBandLowMax = 50.0
	ActivityBandMidMax = 70.0

	// Industry (overall-score) bands: low < 40, mid 40-64, high 65-84,
	// top >= 85.
	OverallBandLowMax  = 40.0
	OverallBandMidMax  = 65.0
	OverallBandHighMax = 85.0

	// Relevance scoring for recommendation ranking.
	RelevanceBaseHigh      = 80.0
	RelevanceBaseMedium    = 60.0
	RelevanceBaseLow       = 40.0
	RelevanceAdjustmentMax = 15.0
	HealthyScoreThreshold  = 70.0

	// DefaultMaxRecommendations caps the output sequence.
	DefaultMaxRecommendations = 6

	// RevenueImpactRatio converts estimated labor savings into a
	// conservative revenue impact figure.
	RevenueImpactRatio = 3.0
)

// clamp01x100 bounds a score to [0,100]. Applied at the point where each
// score is computed, not only at the final output.
func clamp01x100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
