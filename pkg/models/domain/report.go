package domain

import "time"

// Report is the fully synthesized feasibility report. It is assembled once
// by the analyzer and never mutated afterwards.
type Report struct {
	ReportID             string                `json:"reportId"`
	Metadata             ReportMetadata        `json:"metadata"`
	Analysis             AnalysisInput         `json:"analysis"`
	Recommendations      Recommendations       `json:"recommendations"`
	FinancialProjections *FinancialProjections `json:"financialProjections"`
	RiskAssessment       RiskAssessment        `json:"riskAssessment"`
	ImplementationPlan   ImplementationPlan    `json:"implementationPlan"`
	Appendix             Appendix              `json:"appendix"`
}

type ReportMetadata struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generatedAt"`
	ReportType  string    `json:"reportType"`
	Version     string    `json:"version"`
	Summary     string    `json:"summary"`
}

type Recommendations struct {
	Strategic   []string `json:"strategic"`
	Operational []string `json:"operational"`
	Financial   []string `json:"financial"`
	Technical   []string `json:"technical"`
}

// FinancialProjections covers a fixed multi-year horizon. BreakEvenYear is the
// 1-based index of the first year with positive cumulative profit, or 0 when
// the investment does not break even within the horizon.
type FinancialProjections struct {
	ProjectionPeriodYears int                `json:"projectionPeriodYears"`
	TotalProjectedProfit  float64            `json:"totalProjectedProfit"`
	BreakEvenYear         int                `json:"breakEvenYear"`
	YearlyProjections     []YearlyProjection `json:"yearlyProjections"`
}

type YearlyProjection struct {
	Year             int     `json:"year"`
	Revenue          float64 `json:"revenue"`
	Costs            float64 `json:"costs"`
	Profit           float64 `json:"profit"`
	CumulativeProfit float64 `json:"cumulativeProfit"`
}

type RiskAssessment struct {
	OverallRiskLevel   string       `json:"overallRiskLevel"`
	RiskFactors        []RiskFactor `json:"riskFactors"`
	RiskMitigationPlan []string     `json:"riskMitigationPlan"`
}

type RiskFactor struct {
	Category    string `json:"category"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

type ImplementationPlan struct {
	TotalDuration string   `json:"totalDuration"`
	Phases        []Phase  `json:"phases"`
	CriticalPath  []string `json:"criticalPath"`
	KeyMilestones []string `json:"keyMilestones"`
}

type Phase struct {
	Phase    int      `json:"phase"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Tasks    []string `json:"tasks"`
	Budget   float64  `json:"budget"`
}

type Appendix struct {
	TechnicalSpecifications TechnicalSpecifications `json:"technicalSpecifications"`
	EquipmentList           []string                `json:"equipmentList"`
	Suppliers               []string                `json:"suppliers"`
	Certifications          []string                `json:"certifications"`
	Contact                 ContactInfo             `json:"contact"`
}

type TechnicalSpecifications struct {
	GreenhouseSize string `json:"greenhouseSize"`
	HeightRange    string `json:"heightRange"`
	Glazing        string `json:"glazing"`
	Structure      string `json:"structure"`
	Foundation     string `json:"foundation"`
}

type ContactInfo struct {
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Risk severity levels used by the assessor.
const (
	RiskLow    = "Düşük"
	RiskMedium = "Orta"
	RiskHigh   = "Yüksek"
)
