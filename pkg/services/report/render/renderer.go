package render

import (
	"github.com/sera-tools/sera-atlas/pkg/models/store"
	"github.com/sera-tools/sera-atlas/pkg/services/report"
)

// Download formats accepted at the API boundary. "pdf" is served as a
// printable HTML document; a true PDF engine is a separate collaborator.
const (
	FormatPDF   = "pdf"
	FormatJSON  = "json"
	FormatExcel = "excel"
)

// Renderer serializes a stored report into one output format.
type Renderer interface {
	Render(record store.ReportRecord) ([]byte, error)
	ContentType() string
	Extension() string
}

// Registry dispatches the closed format set to its renderer. Unknown formats
// are rejected here, before any rendering work.
type Registry struct {
	clock report.Clock
}

func NewRegistry(clock report.Clock) *Registry {
	if clock == nil {
		clock = report.SystemClock{}
	}
	return &Registry{clock: clock}
}

func (r *Registry) ForFormat(format string) (Renderer, error) {
	switch format {
	case FormatPDF:
		return NewHTMLRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(r.clock), nil
	case FormatExcel:
		return NewCSVRenderer(), nil
	default:
		return nil, &report.UnsupportedFormatError{Format: format}
	}
}
