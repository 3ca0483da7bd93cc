package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
dimensions: [people_skills, process]
questions:
  - id: q1
    dimension: people_skills
    weight: 2
  - id: q2
    dimension: process
    activity: seo
    option_scores:
      0: 0
      1: 25
      2: 50
      3: 100
industries:
  b2b_saas:
    dimension_weights:
      people_skills: 0.4
      process: 0.6
    benchmark_average: 72
    benchmark_top_quartile: 86
activities:
  seo:
    impact_weight: 1.2
    roi_multiplier: 1.8
company_sizes:
  small:
    team_size: 5
    avg_cost_per_person_usd: 60000
recommendations:
  - id: r1
    dimension: process
    band: {min: 0, max: 39.99}
    priority: HIGH
    title: Fix the basics
    body: Start here.
`

func TestParseSampleCatalog(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(c.Questions) != 2 {
		t.Fatalf("questions: got %d, want 2", len(c.Questions))
	}
	if c.Questions[0].Weight != 2 {
		t.Fatalf("explicit weight lost: %v", c.Questions[0].Weight)
	}
	if c.Questions[1].Weight != DefaultQuestionWeight {
		t.Fatalf("default weight not applied: %v", c.Questions[1].Weight)
	}
	if c.Questions[1].OptionScores[3] != 100 {
		t.Fatalf("option scores not decoded: %v", c.Questions[1].OptionScores)
	}
	if c.Industries["b2b_saas"].BenchmarkAverage != 72 {
		t.Fatal("industry benchmark not decoded")
	}
	if c.Recommendations[0].Band.Max != 39.99 {
		t.Fatal("band not decoded")
	}
}

func TestParseRejectsInvalidCatalog(t *testing.T) {
	bad := `
dimensions: [a]
questions:
  - id: q1
    dimension: a
  - id: q1
    dimension: a
`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatal("expected validation error")
	}
}

// A catalog that decodes but fails validation is still returned: degraded
// mode needs its dimension list to shape the neutral fallback result.
func TestParseInvalidCatalogRetainsDecodedShape(t *testing.T) {
	bad := `
dimensions: [people_skills, process]
questions:
  - id: q1
    dimension: people_skills
  - id: q1
    dimension: process
`
	c, err := Parse([]byte(bad))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if c == nil {
		t.Fatal("decoded catalog dropped on validation failure")
	}
	if len(c.Dimensions) != 2 || c.Dimensions[0] != "people_skills" {
		t.Fatalf("dimensions not retained: %v", c.Dimensions)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("dimensions: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Dimensions) != 2 {
		t.Fatalf("dimensions: got %d, want 2", len(c.Dimensions))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
