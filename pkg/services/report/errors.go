package report

import "fmt"

// ValidationError reports a generation request with missing required fields.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("eksik alanlar: %v", e.Missing)
}

// InvalidIdentifierError reports a report id that does not carry the
// expected prefix.
type InvalidIdentifierError struct {
	ID string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("geçersiz rapor kimliği: %q", e.ID)
}

// NotFoundError reports a lookup for a report id with no stored record.
type NotFoundError struct {
	ReportID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("rapor bulunamadı: %s", e.ReportID)
}

// UnsupportedFormatError reports a download format outside the closed set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("desteklenmeyen format: %q", e.Format)
}
