package store

import (
	"time"

	"github.com/sera-tools/sera-atlas/pkg/models/domain"
)

// ReportRecord is the persisted form of a generated report.
type ReportRecord struct {
	ReportID   string
	UserID     string
	SessionID  string
	ReportType string
	Format     string
	Data       domain.Report
	CreatedAt  time.Time
}
