package engine

import (
	"sort"

	"github.com/lumenmetrics/readiness-engine/internal/config"
)

// SelectRecommendations filters the static catalog against the computed
// scores, ranks the candidates, and truncates to maxResults (0 means the
// policy default). Selection is deterministic: identical inputs always
// produce the identical ordered sequence, with catalog declaration order as
// the final tie-break.
func SelectRecommendations(
	dims map[string]DimensionScore,
	acts map[string]ActivityScore,
	overall float64,
	industryKey string,
	catalog []config.RecommendationTemplate,
	maxResults int,
) []Recommendation {
	if maxResults <= 0 {
		maxResults = DefaultMaxRecommendations
	}

	type candidate struct {
		rec   Recommendation
		order int
	}
	candidates := make([]candidate, 0, len(catalog))
	seen := map[string]bool{}

	for i, t := range catalog {
		assoc, source, applies := matchTemplate(t, dims, acts, overall, industryKey)
		if !applies || !t.Band.Contains(assoc) {
			continue
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		candidates = append(candidates, candidate{
			order: i,
			rec: Recommendation{
				ID:             t.ID,
				Title:          t.Title,
				Body:           t.Body,
				Priority:       Priority(t.Priority),
				RelevanceScore: relevanceScore(Priority(t.Priority), assoc),
				Source:         source,
				InvestmentHint: t.InvestmentHint,
				TimelineHint:   t.TimelineHint,
			},
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if pa, pb := priorityRank(a.rec.Priority), priorityRank(b.rec.Priority); pa != pb {
			return pa > pb
		}
		if a.rec.RelevanceScore != b.rec.RelevanceScore {
			return a.rec.RelevanceScore > b.rec.RelevanceScore
		}
		return a.order < b.order
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	out := make([]Recommendation, len(candidates))
	for i, c := range candidates {
		out[i] = c.rec
	}
	return out
}

// matchTemplate resolves the score a template is judged against. Dimension
// templates always have an associated score (missing dimensions score 0);
// activity templates apply only when the activity was selected; industry
// templates apply only to the matching industry key and are judged against
// the overall score.
func matchTemplate(
	t config.RecommendationTemplate,
	dims map[string]DimensionScore,
	acts map[string]ActivityScore,
	overall float64,
	industryKey string,
) (assoc float64, source string, applies bool) {
	switch {
	case t.Dimension != "":
		return dims[t.Dimension].Value, "dimension:" + t.Dimension, true
	case t.Activity != "":
		a, ok := acts[t.Activity]
		if !ok {
			return 0, "", false
		}
		return a.Value, "activity:" + t.Activity, true
	case t.Industry != "":
		if t.Industry != industryKey {
			return 0, "", false
		}
		return overall, "industry:" + t.Industry, true
	default:
		return 0, "", false
	}
}

// relevanceScore is the priority base adjusted by up to +/-15 depending on
// how far the associated score sits below the healthy threshold. The lower
// the underlying score, the more relevant the recommendation.
func relevanceScore(p Priority, assoc float64) float64 {
	base := RelevanceBaseLow
	switch p {
	case PriorityHigh:
		base = RelevanceBaseHigh
	case PriorityMedium:
		base = RelevanceBaseMedium
	}
	shortfall := (HealthyScoreThreshold - assoc) / HealthyScoreThreshold * RelevanceAdjustmentMax
	if shortfall > RelevanceAdjustmentMax {
		shortfall = RelevanceAdjustmentMax
	}
	if shortfall < -RelevanceAdjustmentMax {
		shortfall = -RelevanceAdjustmentMax
	}
	return base + shortfall
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
