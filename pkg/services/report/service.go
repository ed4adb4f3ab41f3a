package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sera-tools/sera-atlas/pkg/models/api"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
)

// Store persists generated reports. Implementations must treat records as
// write-once; FindByID returns a *NotFoundError when no record exists.
type Store interface {
	Save(ctx context.Context, record store.ReportRecord) error
	FindByID(ctx context.Context, reportID string) (*store.ReportRecord, error)
}

// Generator runs the full generation pipeline: validation, synthesis,
// persistence. Either the record is fully built and saved or nothing is
// written.
type Generator struct {
	analyzer *Analyzer
	ids      *IDGenerator
	store    Store
	clock    Clock
}

func NewGenerator(rules Rules, reportStore Store, clock Clock) *Generator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Generator{
		analyzer: NewAnalyzer(rules, clock),
		ids:      NewIDGenerator(clock),
		store:    reportStore,
		clock:    clock,
	}
}

func (g *Generator) Generate(ctx context.Context, req api.GenerateReportRequest) (*store.ReportRecord, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	reportID := g.ids.NewReportID()
	rpt := g.analyzer.Synthesize(*req.AnalysisData, req.ReportType, reportID)

	record := store.ReportRecord{
		ReportID:   reportID,
		UserID:     req.UserID,
		SessionID:  req.SessionID,
		ReportType: req.ReportType,
		Format:     req.Format,
		Data:       rpt,
		CreatedAt:  g.clock.Now(),
	}

	if err := g.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save report %s: %w", reportID, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("report_id", reportID).
		Str("report_type", req.ReportType).
		Str("user_id", req.UserID).
		Msg("report generated")

	return &record, nil
}

// Fetch retrieves a stored report after a shallow id check. Only the prefix
// is validated; the store decides whether the rest of the id resolves.
func (g *Generator) Fetch(ctx context.Context, reportID string) (*store.ReportRecord, error) {
	if !strings.HasPrefix(reportID, ReportIDPrefix) {
		return nil, &InvalidIdentifierError{ID: reportID}
	}
	return g.store.FindByID(ctx, reportID)
}
