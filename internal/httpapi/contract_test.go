package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/lumenmetrics/readiness-engine/internal/config"
	"github.com/lumenmetrics/readiness-engine/internal/engine"
	"github.com/lumenmetrics/readiness-engine/internal/resultstore"
)

func testCatalog(t *testing.T) *config.Catalog {
	t.Helper()
	c := &config.Catalog{
		Dimensions: []string{"people_skills", "process"},
		Questions: []config.Question{
			{ID: "q1", Dimension: "people_skills"},
			{ID: "q2", Dimension: "process"},
			{ID: "q3", Dimension: "process", Activity: "seo"},
		},
		Industries: map[string]config.IndustryProfile{
			"b2b_saas": {
				DimensionWeights:     map[string]float64{"people_skills": 0.5, "process": 0.5},
				BenchmarkAverage:     70,
				BenchmarkTopQuartile: 85,
			},
		},
		Activities: map[string]config.ActivityProfile{
			"seo": {ImpactWeight: 1.2, ROIMultiplier: 1.8},
		},
		CompanySizes: map[string]config.CompanySizeProfile{
			"small": {TeamSize: 5, AvgCostPerPersonUSD: 60000},
		},
		Recommendations: []config.RecommendationTemplate{
			{ID: "r1", Dimension: "process", Band: config.ScoreBand{Min: 0, Max: 39.99}, Priority: "HIGH", Title: "Document your process", Body: "Start with a runbook."},
		},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("test catalog invalid: %v", err)
	}
	return c
}

func newContractServer(t *testing.T) http.Handler {
	t.Helper()
	cat := testCatalog(t)
	eng, err := engine.New(cat)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	store, err := resultstore.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(Options{Engine: eng, Catalog: cat, Store: store})
}

func doJSON(t *testing.T, c *http.Client, method, url string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(blob)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("http do: %v", err)
	}
	return resp
}

func mustStatus(t *testing.T, resp *http.Response, want int) []byte {
	t.Helper()
	defer resp.Body.Close()
	blob, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(blob))
	}
	return blob
}

func TestContractAssessmentLifecycle(t *testing.T) {
	ts := httptest.NewServer(newContractServer(t))
	defer ts.Close()
	c := ts.Client()

	in := map[string]any{
		"answers":             map[string]int{"q1": 5},
		"industry_key":        "b2b_saas",
		"company_size_key":    "small",
		"selected_activities": []string{},
	}
	blob := mustStatus(t, doJSON(t, c, http.MethodPost, ts.URL+"/v1/assessments", in), 200)

	var created struct {
		OK           bool          `json:"ok"`
		AssessmentID string        `json:"assessment_id"`
		Result       engine.Result `json:"result"`
	}
	if err := json.Unmarshal(blob, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !created.OK || created.AssessmentID == "" {
		t.Fatalf("create response: %s", blob)
	}
	// people_skills 100, process 0, equal weights -> blend 50; no
	// activities -> neutral 50; benchmark 70 rescales to 85.71.
	want := 50.0/70.0*50.0 + 50.0
	if diff := created.Result.OverallScore - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("overall: got %v, want %v", created.Result.OverallScore, want)
	}
	if created.Result.ReadinessCategory != engine.CategoryLeader {
		t.Fatalf("category: got %q", created.Result.ReadinessCategory)
	}
	if created.Result.IndustryKey != "b2b_saas" {
		t.Fatalf("industry echo: got %q", created.Result.IndustryKey)
	}

	blob = mustStatus(t, doJSON(t, c, http.MethodGet, ts.URL+"/v1/assessments/"+created.AssessmentID, nil), 200)
	var fetched struct {
		AssessmentID string        `json:"assessment_id"`
		Result       engine.Result `json:"result"`
	}
	if err := json.Unmarshal(blob, &fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.AssessmentID != created.AssessmentID {
		t.Fatalf("fetched id %q, want %q", fetched.AssessmentID, created.AssessmentID)
	}
	if fetched.Result.OverallScore != created.Result.OverallScore {
		t.Fatal("stored result diverges from returned result")
	}

	blob = mustStatus(t, doJSON(t, c, http.MethodGet, ts.URL+"/v1/assessments?limit=10", nil), 200)
	var listed struct {
		Assessments []resultstore.Summary `json:"assessments"`
	}
	if err := json.Unmarshal(blob, &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Assessments) != 1 || listed.Assessments[0].AssessmentID != created.AssessmentID {
		t.Fatalf("listing wrong: %+v", listed.Assessments)
	}

	blob = mustStatus(t, doJSON(t, c, http.MethodGet, ts.URL+"/v1/health", nil), 200)
	var health struct {
		Status   string `json:"status"`
		Degraded bool   `json:"degraded"`
	}
	if err := json.Unmarshal(blob, &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "ok" || health.Degraded {
		t.Fatalf("health: %+v", health)
	}

	blob = mustStatus(t, doJSON(t, c, http.MethodGet, ts.URL+"/v1/config/status", nil), 200)
	var status struct {
		Degraded   bool     `json:"degraded"`
		Dimensions []string `json:"dimensions"`
		Questions  int      `json:"questions"`
	}
	if err := json.Unmarshal(blob, &status); err != nil {
		t.Fatal(err)
	}
	if status.Degraded || status.Questions != 3 || len(status.Dimensions) != 2 {
		t.Fatalf("config status: %s", blob)
	}
}

func TestContractEmptyBodyScoresDefaults(t *testing.T) {
	ts := httptest.NewServer(newContractServer(t))
	defer ts.Close()

	resp := doJSON(t, ts.Client(), http.MethodPost, ts.URL+"/v1/assessments", nil)
	blob := mustStatus(t, resp, 200)

	var created struct {
		Result engine.Result `json:"result"`
	}
	if err := json.Unmarshal(blob, &created); err != nil {
		t.Fatal(err)
	}
	if created.Result.IndustryKey != config.DefaultIndustryKey {
		t.Fatalf("industry fallback: got %q", created.Result.IndustryKey)
	}
	if created.Result.CompanySizeKey != config.DefaultCompanySizeKey {
		t.Fatalf("company size fallback: got %q", created.Result.CompanySizeKey)
	}
}

func TestContractDegradedMode(t *testing.T) {
	cat := testCatalog(t)
	h := NewServer(Options{
		Catalog:        cat,
		ConfigProblems: []string{`duplicate question id "q9"`},
	})
	ts := httptest.NewServer(h)
	defer ts.Close()
	c := ts.Client()

	blob := mustStatus(t, doJSON(t, c, http.MethodPost, ts.URL+"/v1/assessments", map[string]any{"answers": map[string]int{"q1": 5}}), 503)
	var degraded struct {
		OK       bool          `json:"ok"`
		Degraded bool          `json:"degraded"`
		Result   engine.Result `json:"result"`
	}
	if err := json.Unmarshal(blob, &degraded); err != nil {
		t.Fatal(err)
	}
	if degraded.OK || !degraded.Degraded {
		t.Fatalf("degraded response: %s", blob)
	}
	if !degraded.Result.Degraded || degraded.Result.ReadinessCategory != engine.CategoryUnavailable {
		t.Fatalf("degraded result: %+v", degraded.Result)
	}
	if degraded.Result.OverallScore != engine.NeutralScore {
		t.Fatalf("degraded overall: got %v", degraded.Result.OverallScore)
	}

	blob = mustStatus(t, doJSON(t, c, http.MethodGet, ts.URL+"/v1/health", nil), 200)
	var health struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(blob, &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "degraded" {
		t.Fatalf("health status: got %q", health.Status)
	}

	blob = mustStatus(t, doJSON(t, c, http.MethodGet, ts.URL+"/v1/config/status", nil), 200)
	var status struct {
		Degraded bool     `json:"degraded"`
		Problems []string `json:"problems"`
	}
	if err := json.Unmarshal(blob, &status); err != nil {
		t.Fatal(err)
	}
	if !status.Degraded || len(status.Problems) != 1 {
		t.Fatalf("config status: %s", blob)
	}
}
