package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sera-tools/sera-atlas/pkg/models/store"
	svcreport "github.com/sera-tools/sera-atlas/pkg/services/report"
	"github.com/sera-tools/sera-atlas/pkg/store/duckdb"
)

// Store persists feasibility reports in DuckDB. The report document is kept
// as a single JSON column; records are write-once.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

func (s *Store) Save(ctx context.Context, record store.ReportRecord) error {
	data, err := json.Marshal(record.Data)
	if err != nil {
		return fmt.Errorf("marshal report data: %w", err)
	}

	query := `
		INSERT INTO feasibility_reports (
			report_id, user_id, session_id, report_type, format, data, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	tx := duckdb.GetTransaction(ctx)
	if tx != nil {
		_, err = tx.ExecContext(ctx, query,
			record.ReportID, record.UserID, record.SessionID,
			record.ReportType, record.Format, data, record.CreatedAt)
	} else {
		_, err = s.db.ExecContext(ctx, query,
			record.ReportID, record.UserID, record.SessionID,
			record.ReportType, record.Format, data, record.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("insert report %s: %w", record.ReportID, err)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, reportID string) (*store.ReportRecord, error) {
	query := `
		SELECT report_id, user_id, session_id, report_type, format, data, created_at
		FROM feasibility_reports
		WHERE report_id = ?`

	row := s.db.QueryRowContext(ctx, query, reportID)

	var record store.ReportRecord
	var data []byte
	err := row.Scan(
		&record.ReportID, &record.UserID, &record.SessionID,
		&record.ReportType, &record.Format, &data, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &svcreport.NotFoundError{ReportID: reportID}
	}
	if err != nil {
		return nil, fmt.Errorf("query report %s: %w", reportID, err)
	}

	if err := json.Unmarshal(data, &record.Data); err != nil {
		return nil, fmt.Errorf("unmarshal report data for %s: %w", reportID, err)
	}
	return &record, nil
}
