package render

import (
	"encoding/json"
	"time"

	"github.com/sera-tools/sera-atlas/pkg/models/domain"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
	"github.com/sera-tools/sera-atlas/pkg/services/report"
)

// JSONRenderer passes the stored report through verbatim, stamping the
// download time on every call. Output is therefore not byte-stable across
// repeated downloads; everything except downloadedAt is.
type JSONRenderer struct {
	clock report.Clock
}

func NewJSONRenderer(clock report.Clock) *JSONRenderer {
	if clock == nil {
		clock = report.SystemClock{}
	}
	return &JSONRenderer{clock: clock}
}

type jsonDocument struct {
	domain.Report
	DownloadedAt time.Time `json:"downloadedAt"`
}

func (r *JSONRenderer) Render(record store.ReportRecord) ([]byte, error) {
	doc := jsonDocument{
		Report:       record.Data,
		DownloadedAt: r.clock.Now().UTC(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

func (r *JSONRenderer) ContentType() string { return "application/json; charset=utf-8" }

func (r *JSONRenderer) Extension() string { return "json" }
