package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/report"
)

const createReportsTable = `
	CREATE TABLE IF NOT EXISTS verification_reports (
		id           UUID PRIMARY KEY,
		architecture TEXT NOT NULL,
		fingerprint  TEXT NOT NULL,
		passed       BOOLEAN NOT NULL,
		summary      JSONB NOT NULL,
		results      JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_verification_reports_architecture
		ON verification_reports (architecture, created_at DESC)
`

// ReportRepository persists verification reports in PostgreSQL.
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createReportsTable); err != nil {
		return fmt.Errorf("failed to create verification_reports: %w", err)
	}
	return nil
}

// Save inserts rep, assigning an ID when it has none.
func (r *ReportRepository) Save(ctx context.Context, rep *report.Report) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}

	summaryJSON, err := json.Marshal(rep.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	resultsJSON, err := json.Marshal(rep.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	query := `
		INSERT INTO verification_reports (id, architecture, fingerprint, passed, summary, results)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	var createdAt time.Time
	err = r.db.QueryRowContext(ctx, query,
		rep.ID,
		rep.Architecture,
		rep.Fingerprint,
		rep.Passed(),
		summaryJSON,
		resultsJSON,
	).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	rep.CreatedAt = createdAt
	return nil
}

func (r *ReportRepository) Get(ctx context.Context, id string) (*report.Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrReportNotFound
	}

	query := `
		SELECT id, architecture, fingerprint, summary, results, created_at
		FROM verification_reports
		WHERE id = $1
	`
	var (
		rep                      report.Report
		summaryJSON, resultsJSON []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rep.ID,
		&rep.Architecture,
		&rep.Fingerprint,
		&summaryJSON,
		&resultsJSON,
		&rep.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if err := json.Unmarshal(summaryJSON, &rep.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	if err := json.Unmarshal(resultsJSON, &rep.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	if rep.Results == nil {
		rep.Results = []domain.NamedResult{}
	}
	return &rep, nil
}

// ReportHeader is the list view of a stored report.
type ReportHeader struct {
	ID           string         `json:"id"`
	Architecture string         `json:"architecture"`
	Passed       bool           `json:"passed"`
	Summary      report.Summary `json:"summary"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ListByArchitecture returns the newest reports first.
func (r *ReportRepository) ListByArchitecture(ctx context.Context, architecture string, limit int) ([]ReportHeader, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, architecture, passed, summary, created_at
		FROM verification_reports
		WHERE architecture = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, architecture, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	out := []ReportHeader{}
	for rows.Next() {
		var (
			h           ReportHeader
			summaryJSON []byte
		)
		if err := rows.Scan(&h.ID, &h.Architecture, &h.Passed, &summaryJSON, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		if err := json.Unmarshal(summaryJSON, &h.Summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	return out, nil
}
