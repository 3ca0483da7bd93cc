// Package resultstore archives completed assessment results in SQLite.
// Only finished OverallResults are persisted; in-progress answer state is
// deliberately not stored here.
package resultstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lumenmetrics/readiness-engine/internal/engine"
)

var ErrNotFound = errors.New("assessment not found")

const schema = `
CREATE TABLE IF NOT EXISTS assessments (
	assessment_id    TEXT PRIMARY KEY,
	industry_key     TEXT NOT NULL DEFAULT '',
	company_size_key TEXT NOT NULL DEFAULT '',
	overall_score    REAL NOT NULL,
	category         TEXT NOT NULL,
	degraded         INTEGER NOT NULL DEFAULT 0,
	result_json      TEXT NOT NULL,
	created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments (created_at);
`

// Store is a write-through archive of assessment results. SQLite runs in
// WAL mode on a single connection; concurrent callers serialize on the
// driver, which is plenty for an archive written once per assessment.
type Store struct {
	db *sqlx.DB
}

// Record is one persisted assessment row.
type Record struct {
	AssessmentID   string    `db:"assessment_id" json:"assessment_id"`
	IndustryKey    string    `db:"industry_key" json:"industry_key"`
	CompanySizeKey string    `db:"company_size_key" json:"company_size_key"`
	OverallScore   float64   `db:"overall_score" json:"overall_score"`
	Category       string    `db:"category" json:"category"`
	Degraded       bool      `db:"degraded" json:"degraded,omitempty"`
	ResultJSON     []byte    `db:"result_json" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Summary is the listing projection, without the full result payload.
type Summary struct {
	AssessmentID string    `db:"assessment_id" json:"assessment_id"`
	IndustryKey  string    `db:"industry_key" json:"industry_key"`
	OverallScore float64   `db:"overall_score" json:"overall_score"`
	Category     string    `db:"category" json:"category"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives a result and returns the generated assessment id.
func (s *Store) Save(ctx context.Context, res engine.Result) (string, error) {
	blob, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments
			(assessment_id, industry_key, company_size_key, overall_score, category, degraded, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.IndustryKey, res.CompanySizeKey, res.OverallScore,
		string(res.ReadinessCategory), res.Degraded, string(blob),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert assessment: %w", err)
	}
	return id, nil
}

// Get returns one archived assessment. The stored result round-trips
// unchanged via Result.
func (s *Store) Get(ctx context.Context, id string) (Record, engine.Result, error) {
	var row struct {
		AssessmentID   string  `db:"assessment_id"`
		IndustryKey    string  `db:"industry_key"`
		CompanySizeKey string  `db:"company_size_key"`
		OverallScore   float64 `db:"overall_score"`
		Category       string  `db:"category"`
		Degraded       bool    `db:"degraded"`
		ResultJSON     string  `db:"result_json"`
		CreatedAt      string  `db:"created_at"`
	}
	err := s.db.GetContext(ctx, &row, `
		SELECT assessment_id, industry_key, company_size_key, overall_score, category, degraded, result_json, created_at
		FROM assessments WHERE assessment_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, engine.Result{}, ErrNotFound
	}
	if err != nil {
		return Record{}, engine.Result{}, fmt.Errorf("select assessment: %w", err)
	}

	var res engine.Result
	if err := json.Unmarshal([]byte(row.ResultJSON), &res); err != nil {
		return Record{}, engine.Result{}, fmt.Errorf("unmarshal result: %w", err)
	}
	created, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	rec := Record{
		AssessmentID:   row.AssessmentID,
		IndustryKey:    row.IndustryKey,
		CompanySizeKey: row.CompanySizeKey,
		OverallScore:   row.OverallScore,
		Category:       row.Category,
		Degraded:       row.Degraded,
		ResultJSON:     []byte(row.ResultJSON),
		CreatedAt:      created,
	}
	return rec, res, nil
}

// ListRecent returns up to limit summaries, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []struct {
		AssessmentID string  `db:"assessment_id"`
		IndustryKey  string  `db:"industry_key"`
		OverallScore float64 `db:"overall_score"`
		Category     string  `db:"category"`
		CreatedAt    string  `db:"created_at"`
	}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT assessment_id, industry_key, overall_score, category, created_at
		FROM assessments ORDER BY created_at DESC, assessment_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	out := make([]Summary, 0, len(rows))
	for _, r := range rows {
		created, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
		out = append(out, Summary{
			AssessmentID: r.AssessmentID,
			IndustryKey:  r.IndustryKey,
			OverallScore: r.OverallScore,
			Category:     r.Category,
			CreatedAt:    created,
		})
	}
	return out, nil
}
