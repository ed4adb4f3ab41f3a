package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sera-tools/sera-atlas/pkg/models/domain"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
	svcreport "github.com/sera-tools/sera-atlas/pkg/services/report"
	"github.com/sera-tools/sera-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() store.ReportRecord {
	return store.ReportRecord{
		ReportID:   "RPT-1717243200000-abc123def",
		UserID:     "user-1",
		SessionID:  "sess-1",
		ReportType: "comprehensive",
		Format:     "pdf",
		Data: domain.Report{
			ReportID: "RPT-1717243200000-abc123def",
			Metadata: domain.ReportMetadata{
				Title:      "Kapsamlı Sera Yatırım Fizibilite Raporu",
				ReportType: "comprehensive",
				Version:    "1.0",
			},
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()
	record := testRecord()

	t.Run("inserts a row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		data, err := json.Marshal(record.Data)
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO feasibility_reports").
			WithArgs(record.ReportID, record.UserID, record.SessionID,
				record.ReportType, record.Format, data, record.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Save(ctx, record))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("joins an ambient transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		data, err := json.Marshal(record.Data)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO feasibility_reports").
			WithArgs(record.ReportID, record.UserID, record.SessionID,
				record.ReportType, record.Format, data, record.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		txCtx := duckdb.WithTransaction(ctx, tx)
		require.NoError(t, s.Save(txCtx, record))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps insert failures", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO feasibility_reports").
			WillReturnError(sql.ErrConnDone)

		err = s.Save(ctx, record)
		require.Error(t, err)
		assert.Contains(t, err.Error(), record.ReportID)
	})
}

func TestStore_FindByID(t *testing.T) {
	ctx := context.Background()
	record := testRecord()
	columns := []string{"report_id", "user_id", "session_id", "report_type", "format", "data", "created_at"}

	t.Run("decodes the stored document", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		data, err := json.Marshal(record.Data)
		require.NoError(t, err)

		mock.ExpectQuery("SELECT (.+) FROM feasibility_reports").
			WithArgs(record.ReportID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				record.ReportID, record.UserID, record.SessionID,
				record.ReportType, record.Format, data, record.CreatedAt))

		got, err := s.FindByID(ctx, record.ReportID)
		require.NoError(t, err)
		assert.Equal(t, record, *got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss yields NotFoundError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectQuery("SELECT (.+) FROM feasibility_reports").
			WithArgs("RPT-missing").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err = s.FindByID(ctx, "RPT-missing")
		var notFound *svcreport.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "RPT-missing", notFound.ReportID)
	})

	t.Run("corrupt document is an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectQuery("SELECT (.+) FROM feasibility_reports").
			WithArgs(record.ReportID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				record.ReportID, record.UserID, record.SessionID,
				record.ReportType, record.Format, []byte("{not json"), record.CreatedAt))

		_, err = s.FindByID(ctx, record.ReportID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal report data")
	})
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
