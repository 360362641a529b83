package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"finratio/pkg/core/engine"
)

// ReportRepo stores batch analysis reports keyed by request id.
//
// Schema assumption (managed elsewhere, e.g. migrations):
//
//	CREATE TABLE IF NOT EXISTS analysis_reports (
//	  request_id   UUID PRIMARY KEY,
//	  company_name TEXT,
//	  report_json  JSONB,
//	  created_at   TIMESTAMPTZ
//	);
type ReportRepo struct {
	db *DB
}

// NewReportRepo creates a repository over an open database.
func NewReportRepo(db *DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// ErrNotFound is returned by Load when no report exists for the id.
var ErrNotFound = errors.New("report not found")

// Save upserts the report as a JSONB blob. A single blob keeps the
// write path independent of the metric catalog shape; infinite values
// survive because AnalysisResult marshals them as strings.
func (r *ReportRepo) Save(ctx context.Context, requestID uuid.UUID, report *engine.BatchReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO analysis_reports (request_id, company_name, report_json, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (request_id)
		DO UPDATE SET
			company_name = EXCLUDED.company_name,
			report_json  = EXCLUDED.report_json,
			created_at   = EXCLUDED.created_at;
	`
	if _, err := r.db.Pool().Exec(ctx, query, requestID, report.CompanyName, payload, time.Now()); err != nil {
		return fmt.Errorf("failed to save report %s: %w", requestID, err)
	}
	return nil
}

// Load retrieves a stored report by request id.
func (r *ReportRepo) Load(ctx context.Context, requestID uuid.UUID) (*engine.BatchReport, error) {
	var payload []byte
	query := `SELECT report_json FROM analysis_reports WHERE request_id = $1;`
	err := r.db.Pool().QueryRow(ctx, query, requestID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", requestID, err)
	}

	var report engine.BatchReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", requestID, err)
	}
	return &report, nil
}
