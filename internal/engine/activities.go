package engine

import (
	"sort"

	"github.com/lumenmetrics/readiness-engine/internal/config"
)

// ScoreActivities aggregates answers into one ActivityScore per selected
// activity. Selection order and duplicates in the input do not matter; the
// output always contains exactly one entry per distinct selected key. An
// activity with no configured questions — including an activity key the
// catalog doesn't know at all — gets the neutral default score and the
// "moderate" tier. That is an explicit default, not an error.
func ScoreActivities(answers map[string]int, selected []string, cat *config.Catalog) map[string]ActivityScore {
	byActivity := cat.QuestionsByActivity()
	out := make(map[string]ActivityScore, len(selected))
	for _, key := range dedupeSorted(selected) {
		impactWeight := 1.0
		if p, ok := cat.Activities[key]; ok {
			impactWeight = p.ImpactWeight
		}

		questions := byActivity[key]
		if len(questions) == 0 {
			out[key] = ActivityScore{
				Activity:     key,
				Value:        NeutralScore,
				Tier:         TierModerate,
				ImpactWeight: impactWeight,
				Defaulted:    true,
			}
			continue
		}

		value, _ := weightedAverage(answers, questions)
		out[key] = ActivityScore{
			Activity:     key,
			Value:        value,
			Tier:         tierFor(value),
			ImpactWeight: impactWeight,
		}
	}
	return out
}

// tierFor maps an activity score onto its readiness tier. The numeric
// breakpoints are part of the contract; recommendation selection depends
// on them.
func tierFor(value float64) ReadinessTier {
	switch {
	case value >= TierAdvancedMin:
		return TierAdvanced
	case value >= TierProficientMin:
		return TierProficient
	case value >= TierBasicMin:
		return TierBasic
	default:
		return TierBeginner
	}
}

func dedupeSorted(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
