package api

import "github.com/sera-tools/sera-atlas/pkg/models/domain"

// GenerateReportRequest is the body of POST /api/v1/reports.
type GenerateReportRequest struct {
	SessionID    string                `json:"sessionId"`
	UserID       string                `json:"userId"`
	ReportType   string                `json:"reportType"`
	Format       string                `json:"format"`
	AnalysisData *domain.AnalysisInput `json:"analysisData"`
}

type GenerateReportResponse struct {
	Success     bool           `json:"success"`
	ReportID    string         `json:"reportId,omitempty"`
	DownloadURL string         `json:"downloadUrl,omitempty"`
	ReportData  *domain.Report `json:"reportData,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// ErrorResponse is the JSON envelope returned for download errors.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
