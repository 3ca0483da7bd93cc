package engine

import "github.com/lumenmetrics/readiness-engine/internal/config"

// ScoreDimensions aggregates answers into one DimensionScore per catalog
// dimension. Every known dimension appears in the output, including
// dimensions with no answered questions, which score 0 by policy ("weak",
// not "excluded") with AnsweredQuestions left at zero so callers can tell
// the two apart.
func ScoreDimensions(answers map[string]int, cat *config.Catalog) map[string]DimensionScore {
	byDim := cat.QuestionsByDimension()
	out := make(map[string]DimensionScore, len(cat.Dimensions))
	for _, dim := range cat.Dimensions {
		value, answered := weightedAverage(answers, byDim[dim])
		out[dim] = DimensionScore{Dimension: dim, Value: value, AnsweredQuestions: answered}
	}
	return out
}

// weightedAverage computes the weighted 0-100 mean over the questions that
// have a usable answer. A zero weight total yields 0 without dividing.
func weightedAverage(answers map[string]int, questions []config.Question) (value float64, answered int) {
	weightedSum := 0.0
	weightTotal := 0.0
	for _, q := range questions {
		raw, ok := answers[q.ID]
		if !ok {
			continue
		}
		normalized, usable := normalizeAnswer(q, raw)
		if !usable {
			continue
		}
		weightedSum += normalized * q.Weight
		weightTotal += q.Weight
		answered++
	}
	if weightTotal == 0 {
		return 0, answered
	}
	return clamp01x100(weightedSum / weightTotal), answered
}

// normalizeAnswer maps a raw answer onto the 0-100 scale. The
// not-applicable sentinel and out-of-range values are excluded from
// aggregation rather than scored as zero. When the question carries an
// option-score map, raw values absent from the map are likewise excluded.
func normalizeAnswer(q config.Question, raw int) (float64, bool) {
	if raw == AnswerNotApplicable {
		return 0, false
	}
	if q.OptionScores != nil {
		s, ok := q.OptionScores[raw]
		if !ok {
			return 0, false
		}
		return clamp01x100(s), true
	}
	if raw < 0 || raw > q.MaxValue {
		return 0, false
	}
	if q.MaxValue == 0 {
		return 0, false
	}
	return clamp01x100(float64(raw) / float64(q.MaxValue) * 100), true
}
