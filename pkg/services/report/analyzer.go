package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sera-tools/sera-atlas/pkg/models/domain"
)

// Analyzer synthesizes a feasibility report from raw analysis figures. It is
// a pure function of its inputs: no shared state, safe for concurrent use.
type Analyzer struct {
	rules Rules
	clock Clock
}

func NewAnalyzer(rules Rules, clock Clock) *Analyzer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Analyzer{rules: rules, clock: clock}
}

// Synthesize assembles the complete report for the given analysis input.
// The report is never mutated after this call returns.
func (a *Analyzer) Synthesize(input domain.AnalysisInput, reportType, reportID string) domain.Report {
	title, ok := a.rules.Titles[reportType]
	if !ok {
		title = a.rules.FallbackTitle
	}

	return domain.Report{
		ReportID: reportID,
		Metadata: domain.ReportMetadata{
			Title:       title,
			GeneratedAt: a.clock.Now(),
			ReportType:  reportType,
			Version:     a.rules.ReportVersion,
			Summary:     a.buildExecutiveSummary(input),
		},
		Analysis:             input,
		Recommendations:      a.buildRecommendations(input),
		FinancialProjections: a.buildProjections(input.ROI),
		RiskAssessment:       a.buildRiskAssessment(input),
		ImplementationPlan:   a.buildImplementationPlan(input.ROI),
		Appendix:             a.buildAppendix(input),
	}
}

// Verdict returns the executive-summary bucket for the input. Missing ROI or
// climate blocks compare as zero.
func (a *Analyzer) Verdict(input domain.AnalysisInput) string {
	roi := roiPercentage(input)
	score := climateScore(input)
	for _, rule := range a.rules.SummaryRules {
		if roi > rule.MinROI && score > rule.MinClimateScore {
			return rule.Verdict
		}
	}
	return a.rules.FallbackVerdict
}

func (a *Analyzer) buildExecutiveSummary(input domain.AnalysisInput) string {
	roiText := "N/A"
	if input.ROI != nil {
		roiText = fmt.Sprintf("%%%.1f", input.ROI.ROIPercentage)
	}
	climateText := "N/A"
	if input.Climate != nil {
		climateText = fmt.Sprintf("%.0f/100", input.Climate.ClimateScore)
	}
	return fmt.Sprintf("%s (ROI: %s, İklim Skoru: %s)", a.Verdict(input), roiText, climateText)
}

func (a *Analyzer) buildRecommendations(input domain.AnalysisInput) domain.Recommendations {
	buckets := map[string]*[]string{}
	recs := domain.Recommendations{
		Strategic:   []string{},
		Operational: []string{},
		Financial:   []string{},
		Technical:   []string{},
	}
	buckets[CategoryStrategic] = &recs.Strategic
	buckets[CategoryOperational] = &recs.Operational
	buckets[CategoryFinancial] = &recs.Financial
	buckets[CategoryTechnical] = &recs.Technical

	for _, rule := range a.rules.Recommendations {
		if rule.When != nil && !rule.When(input) {
			continue
		}
		bucket, ok := buckets[rule.Category]
		if !ok {
			continue
		}
		*bucket = append(*bucket, rule.Items...)
	}
	return recs
}

// buildProjections projects revenue and costs over the configured horizon.
// Yearly figures are rounded before accumulation, so the cumulative column
// carries the rounded running total rather than a display-time rounding of
// the exact sum.
func (a *Analyzer) buildProjections(roi *domain.ROIFigures) *domain.FinancialProjections {
	if roi == nil {
		return nil
	}

	years := a.rules.ProjectionYears
	projections := make([]domain.YearlyProjection, 0, years)

	var cumulative, total float64
	for year := 1; year <= years; year++ {
		growth := math.Pow(1+a.rules.RevenueGrowthRate, float64(year-1))
		inflation := math.Pow(1+a.rules.CostInflationRate, float64(year-1))

		revenue := math.Round(roi.AnnualRevenue * growth)
		costs := math.Round(roi.AnnualCosts * inflation)
		profit := revenue - costs

		if year == 1 {
			cumulative = math.Round(profit - roi.InitialInvestment)
		} else {
			cumulative += math.Round(profit)
		}
		total += profit

		projections = append(projections, domain.YearlyProjection{
			Year:             year,
			Revenue:          revenue,
			Costs:            costs,
			Profit:           profit,
			CumulativeProfit: cumulative,
		})
	}

	breakEven := 0
	for i := range projections {
		if projections[i].CumulativeProfit > 0 {
			breakEven = i + 1
			break
		}
	}

	return &domain.FinancialProjections{
		ProjectionPeriodYears: years,
		TotalProjectedProfit:  total,
		BreakEvenYear:         breakEven,
		YearlyProjections:     projections,
	}
}

func (a *Analyzer) buildRiskAssessment(input domain.AnalysisInput) domain.RiskAssessment {
	factors := make([]domain.RiskFactor, 0, len(a.rules.Risks))
	for _, rule := range a.rules.Risks {
		if rule.When != nil && !rule.When(input) {
			continue
		}
		factors = append(factors, rule.Factor)
	}

	return domain.RiskAssessment{
		OverallRiskLevel:   OverallRiskLevel(factors),
		RiskFactors:        factors,
		RiskMitigationPlan: append([]string{}, a.rules.MitigationPlan...),
	}
}

// OverallRiskLevel aggregates factor severities: two or more high factors
// mean a high overall level; one high factor or three medium factors mean a
// medium level.
func OverallRiskLevel(factors []domain.RiskFactor) string {
	var high, medium int
	for _, f := range factors {
		switch f.Level {
		case domain.RiskHigh:
			high++
		case domain.RiskMedium:
			medium++
		}
	}
	switch {
	case high >= 2:
		return domain.RiskHigh
	case high >= 1 || medium >= 3:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func (a *Analyzer) buildImplementationPlan(roi *domain.ROIFigures) domain.ImplementationPlan {
	var investment float64
	if roi != nil {
		investment = roi.InitialInvestment
	}

	phases := make([]domain.Phase, 0, len(a.rules.Phases))
	for i, tpl := range a.rules.Phases {
		phases = append(phases, domain.Phase{
			Phase:    i + 1,
			Title:    tpl.Title,
			Duration: tpl.Duration,
			Tasks:    append([]string{}, tpl.Tasks...),
			Budget:   investment * tpl.BudgetShare,
		})
	}

	return domain.ImplementationPlan{
		TotalDuration: a.rules.TotalDuration,
		Phases:        phases,
		CriticalPath:  append([]string{}, a.rules.CriticalPath...),
		KeyMilestones: append([]string{}, a.rules.KeyMilestones...),
	}
}

func (a *Analyzer) buildAppendix(input domain.AnalysisInput) domain.Appendix {
	equipment := []string{}
	if input.Equipment != nil && input.Equipment.RecommendedSystems != nil {
		equipment = append(equipment, input.Equipment.RecommendedSystems...)
	}

	return domain.Appendix{
		TechnicalSpecifications: domain.TechnicalSpecifications{
			GreenhouseSize: strconv.FormatFloat(input.Size, 'f', -1, 64) + " m²",
			HeightRange:    a.rules.HeightRange,
			Glazing:        a.rules.Glazing,
			Structure:      a.rules.Structure,
			Foundation:     a.rules.Foundation,
		},
		EquipmentList:  equipment,
		Suppliers:      append([]string{}, a.rules.Suppliers...),
		Certifications: append([]string{}, a.rules.Certifications...),
		Contact:        a.rules.Contact,
	}
}
