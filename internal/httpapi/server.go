// Package httpapi exposes the scoring engine over a small JSON HTTP
// surface. Handlers stay thin: decode, evaluate, persist, encode. When the
// engine could not be constructed (invalid catalog) the server runs in
// degraded mode and answers every assessment with the neutral fallback
// result and a 503.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lumenmetrics/readiness-engine/internal/config"
	"github.com/lumenmetrics/readiness-engine/internal/engine"
	"github.com/lumenmetrics/readiness-engine/internal/resultstore"
)

type Server struct {
	eng   *engine.Engine
	cat   *config.Catalog
	store *resultstore.Store
	log   *zap.Logger

	// configProblems carries the validation problems that put the server
	// into degraded mode. Empty when the engine is healthy.
	configProblems []string
}

// Options configures optional collaborators. A nil Engine puts the server
// into degraded mode; a nil Store disables persistence; a nil Logger is
// replaced with a no-op logger.
type Options struct {
	Engine         *engine.Engine
	Catalog        *config.Catalog
	Store          *resultstore.Store
	Logger         *zap.Logger
	ConfigProblems []string
}

func NewServer(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		eng:            opts.Engine,
		cat:            opts.Catalog,
		store:          opts.Store,
		log:            log,
		configProblems: opts.ConfigProblems,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/assessments", s.handleAssessments)
	mux.HandleFunc("/v1/assessments/", s.handleAssessmentByID)
	mux.HandleFunc("/v1/health", s.handleHealth)
	mux.HandleFunc("/v1/config/status", s.handleConfigStatus)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAPIError(w http.ResponseWriter, err error) {
	var ae *Error
	if errors.As(err, &ae) {
		writeJSON(w, ae.Status, map[string]any{
			"ok": false,
			"error": map[string]any{
				"code":      ae.Code,
				"message":   ae.Message,
				"transient": ae.Transient,
			},
		})
		return
	}
	writeJSON(w, 500, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":      CodeInternal,
			"message":   err.Error(),
			"transient": true,
		},
	})
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		blob = []byte("{}")
	}
	return blob, nil
}

func parseInt(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return v
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) degraded() bool { return s.eng == nil }

// degradedPayload is the 503 body served while the catalog is invalid. The
// neutral result is included so clients can still render a placeholder.
func (s *Server) degradedPayload() map[string]any {
	var dims []string
	if s.cat != nil {
		dims = s.cat.Dimensions
	}
	return map[string]any{
		"ok":       false,
		"degraded": true,
		"result":   engine.DegradedResult(dims),
		"error": map[string]any{
			"code":      CodeUnavailable,
			"message":   "scoring engine unavailable: configuration invalid",
			"transient": true,
		},
	}
}

func (s *Server) handleAssessments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateAssessment(w, r)
	case http.MethodGet:
		s.handleListAssessments(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	if s.degraded() {
		writeJSON(w, http.StatusServiceUnavailable, s.degradedPayload())
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeAPIError(w, NewValidationJSONError(err))
		return
	}
	var in engine.Input
	if err := json.Unmarshal(blob, &in); err != nil {
		writeAPIError(w, NewValidationJSONError(err))
		return
	}

	result := s.eng.Evaluate(r.Context(), in)

	var id string
	if s.store != nil {
		id, err = s.store.Save(r.Context(), result)
		if err != nil {
			// Scoring succeeded; a failed archive write must not lose the
			// result. Return it without an id.
			s.log.Error("archive assessment", zap.Error(err))
			id = ""
		}
	}

	s.log.Info("assessment scored",
		zap.String("assessment_id", id),
		zap.String("industry", result.IndustryKey),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("category", string(result.ReadinessCategory)),
	)

	payload := map[string]any{"ok": true, "result": result}
	if id != "" {
		payload["assessment_id"] = id
	}
	writeJSON(w, 200, payload)
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeAPIError(w, newError(CodeUnavailable, "assessment archive disabled", false))
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	summaries, err := s.store.ListRecent(r.Context(), limit)
	if err != nil {
		writeAPIError(w, NewInternalError(err.Error()))
		return
	}
	writeJSON(w, 200, map[string]any{"assessments": summaries})
}

func (s *Server) handleAssessmentByID(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/assessments/")
	id = strings.TrimSuffix(id, "/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if s.store == nil {
		writeAPIError(w, newError(CodeUnavailable, "assessment archive disabled", false))
		return
	}
	rec, result, err := s.store.Get(r.Context(), id)
	if errors.Is(err, resultstore.ErrNotFound) {
		writeAPIError(w, newError(CodeNotFound, "assessment "+id+" not found", false))
		return
	}
	if err != nil {
		writeAPIError(w, NewInternalError(err.Error()))
		return
	}
	writeJSON(w, 200, map[string]any{
		"assessment_id": rec.AssessmentID,
		"created_at":    rec.CreatedAt,
		"result":        result,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	status := "ok"
	if s.degraded() {
		status = "degraded"
	}
	writeJSON(w, 200, map[string]any{
		"status":   status,
		"degraded": s.degraded(),
	})
}

func (s *Server) handleConfigStatus(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	payload := map[string]any{
		"degraded": s.degraded(),
	}
	if len(s.configProblems) > 0 {
		payload["problems"] = s.configProblems
	}
	if s.cat != nil {
		payload["dimensions"] = s.cat.Dimensions
		payload["questions"] = len(s.cat.Questions)
		payload["industries"] = len(s.cat.Industries)
		payload["activities"] = len(s.cat.Activities)
		payload["company_sizes"] = len(s.cat.CompanySizes)
		payload["recommendation_templates"] = len(s.cat.Recommendations)
	}
	writeJSON(w, 200, payload)
}
