package report

import "github.com/sera-tools/sera-atlas/pkg/models/api"

// ValidateRequest checks the required fields of a generation request.
// reportType is deliberately not validated; unknown values fall back to the
// generic report title during synthesis.
func ValidateRequest(req api.GenerateReportRequest) error {
	var missing []string
	if req.SessionID == "" {
		missing = append(missing, "sessionId")
	}
	if req.UserID == "" {
		missing = append(missing, "userId")
	}
	if req.AnalysisData == nil {
		missing = append(missing, "analysisData")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
