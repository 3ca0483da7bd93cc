package engine

import (
	"fmt"
	"sort"
	"testing"

	"github.com/lumenmetrics/readiness-engine/internal/config"
)

func smallTeam() config.CompanySizeProfile {
	return config.CompanySizeProfile{Key: "small", TeamSize: 5, AvgCostPerPersonUSD: 65000}
}

func testActivities() map[string]config.ActivityProfile {
	return map[string]config.ActivityProfile{
		"seo":               {Key: "seo", ImpactWeight: 1.1, ROIMultiplier: 1.8},
		"content_marketing": {Key: "content_marketing", ImpactWeight: 1.3, ROIMultiplier: 2.2},
	}
}

func TestEstimateImpactKnownValue(t *testing.T) {
	acts := map[string]ActivityScore{
		"seo": {Activity: "seo", Value: 60, ImpactWeight: 1.1},
	}
	// theoretical = 1.8; adjusted = 1 + 0.8*0.5 = 1.4
	// baseline = 5 * 65000 = 325000
	// savings = 325000 * 0.4 / 1.4 = 92857.142857...
	est := EstimateImpact(50, acts, smallTeam(), testActivities())
	if !approx(est.AdjustedMultiplier, 1.4) {
		t.Fatalf("multiplier: got %v, want 1.4", est.AdjustedMultiplier)
	}
	if !approx(est.LaborCostBaselineUSD, 325000) {
		t.Fatalf("baseline: got %v, want 325000", est.LaborCostBaselineUSD)
	}
	want := 325000 * 0.4 / 1.4
	if !approx(est.AnnualLaborSavingsUSD, want) {
		t.Fatalf("savings: got %v, want %v", est.AnnualLaborSavingsUSD, want)
	}
	if !approx(est.AnnualRevenueImpactUSD, want*RevenueImpactRatio) {
		t.Fatalf("revenue: got %v, want %v", est.AnnualRevenueImpactUSD, want*RevenueImpactRatio)
	}
	if est.Disclaimer == "" {
		t.Fatal("impact estimate must carry the disclaimer")
	}
}

func TestEstimateImpactWeightedMultiplier(t *testing.T) {
	acts := map[string]ActivityScore{
		"seo":               {Activity: "seo", ImpactWeight: 1.1},
		"content_marketing": {Activity: "content_marketing", ImpactWeight: 1.3},
	}
	// (1.8*1.1 + 2.2*1.3) / 2.4 = 4.84/2.4 = 2.016666...
	got := weightedMultiplier(acts, testActivities())
	if !approx(got, 4.84/2.4) {
		t.Fatalf("multiplier: got %v, want %v", got, 4.84/2.4)
	}
}

// Like the blend sums, the multiplier average must accumulate in sorted
// key order so that identical selections always produce the bit-identical
// multiplier regardless of how the score map was built.
func TestWeightedMultiplierBitIdenticalAcrossMapRebuilds(t *testing.T) {
	keys := make([]string, 7)
	profiles := make(map[string]config.ActivityProfile, len(keys))
	for i := range keys {
		k := fmt.Sprintf("act%d", i)
		keys[i] = k
		profiles[k] = config.ActivityProfile{Key: k, ROIMultiplier: 1.1 + float64(i)*0.23}
	}

	buildActs := func(order []string) map[string]ActivityScore {
		acts := make(map[string]ActivityScore, len(order))
		for _, k := range order {
			i := float64(k[3] - '0')
			acts[k] = ActivityScore{Activity: k, ImpactWeight: 0.8 + i*0.31}
		}
		return acts
	}

	acts := buildActs(keys)
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	weightedSum, weightTotal := 0.0, 0.0
	for _, k := range sorted {
		weightedSum += profiles[k].ROIMultiplier * acts[k].ImpactWeight
		weightTotal += acts[k].ImpactWeight
	}
	want := weightedSum / weightTotal

	shuffled := []string{"act5", "act1", "act6", "act0", "act3", "act2", "act4"}
	for run := 0; run < 40; run++ {
		order := keys
		if run%2 == 1 {
			order = shuffled
		}
		if got := weightedMultiplier(buildActs(order), profiles); got != want {
			t.Fatalf("run %d: got %v, want %v", run, got, want)
		}
	}
}

func TestEstimateImpactNoActivities(t *testing.T) {
	est := EstimateImpact(80, nil, smallTeam(), testActivities())
	if !approx(est.AdjustedMultiplier, 1.0) {
		t.Fatalf("multiplier: got %v, want 1.0", est.AdjustedMultiplier)
	}
	if est.AnnualLaborSavingsUSD != 0 || est.AnnualRevenueImpactUSD != 0 {
		t.Fatalf("no activities must project no savings, got %+v", est)
	}
}

func TestEstimateImpactZeroReadinessRealizesNothing(t *testing.T) {
	acts := map[string]ActivityScore{
		"seo": {Activity: "seo", ImpactWeight: 1.1},
	}
	est := EstimateImpact(0, acts, smallTeam(), testActivities())
	if !approx(est.AdjustedMultiplier, 1.0) {
		t.Fatalf("multiplier: got %v, want 1.0", est.AdjustedMultiplier)
	}
	if est.AnnualLaborSavingsUSD != 0 {
		t.Fatalf("savings: got %v, want 0", est.AnnualLaborSavingsUSD)
	}
}

func TestEstimateImpactHigherReadinessNeverLowersSavings(t *testing.T) {
	acts := map[string]ActivityScore{
		"content_marketing": {Activity: "content_marketing", ImpactWeight: 1.3},
	}
	prev := -1.0
	for _, overall := range []float64{0, 25, 50, 75, 100} {
		est := EstimateImpact(overall, acts, smallTeam(), testActivities())
		if est.AnnualLaborSavingsUSD < prev {
			t.Fatalf("savings decreased at overall=%v", overall)
		}
		prev = est.AnnualLaborSavingsUSD
	}
}
