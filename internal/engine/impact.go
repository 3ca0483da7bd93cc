package engine

import "github.com/lumenmetrics/readiness-engine/internal/config"

// EstimateImpact derives the illustrative productivity projection.
//
// The theoretical multiplier is the impact-weighted average of the selected
// activities' static ROI multipliers, scaled toward 1.0 by overall/100: a
// team with low readiness is assumed to realize less of the theoretical
// gain. Labor savings follow from the company-size cost baseline, and the
// revenue figure is a fixed conservative multiple of those savings.
func EstimateImpact(
	overall float64,
	acts map[string]ActivityScore,
	size config.CompanySizeProfile,
	activities map[string]config.ActivityProfile,
) ImpactEstimate {
	theoretical := weightedMultiplier(acts, activities)
	adjusted := 1.0 + (theoretical-1.0)*(clamp01x100(overall)/100.0)

	baseline := float64(size.TeamSize) * size.AvgCostPerPersonUSD

	savings := 0.0
	if adjusted > 1.0 {
		savings = baseline * (adjusted - 1.0) / adjusted
	}

	return ImpactEstimate{
		AdjustedMultiplier:     adjusted,
		TeamSize:               size.TeamSize,
		LaborCostBaselineUSD:   baseline,
		AnnualLaborSavingsUSD:  savings,
		AnnualRevenueImpactUSD: savings * RevenueImpactRatio,
		Disclaimer:             ImpactDisclaimer,
	}
}

// weightedMultiplier averages the selected activities' ROI multipliers by
// impact weight. No selected activities, or activities the catalog has no
// multiplier for, contribute nothing; an empty selection yields the neutral
// multiplier 1.0 (no projected gain).
func weightedMultiplier(acts map[string]ActivityScore, activities map[string]config.ActivityProfile) float64 {
	weightedSum := 0.0
	weightTotal := 0.0
	for _, key := range sortedKeys(acts) {
		p, ok := activities[key]
		if !ok {
			continue
		}
		weightedSum += p.ROIMultiplier * acts[key].ImpactWeight
		weightTotal += acts[key].ImpactWeight
	}
	if weightTotal == 0 {
		return 1.0
	}
	return weightedSum / weightTotal
}
