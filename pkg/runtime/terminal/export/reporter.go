package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/sera-tools/sera-atlas/pkg/models/domain"
)

type TableConfig struct {
	CategoryWidth int
	MetricWidth   int
	ValueWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		CategoryWidth: 14,
		MetricWidth:   32,
		ValueWidth:    24,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(category string, metric string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*v |",
				c.config.CategoryWidth, category,
				c.config.MetricWidth, metric,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.CategoryWidth+2),
				strings.Repeat("-", c.config.MetricWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `
{{.Metadata.Title}}
Rapor No: {{.ReportID}}
Tarih: {{.Metadata.GeneratedAt.Format "2006-01-02"}}

{{.Metadata.Summary}}

{{with .FinancialProjections}}{{separator}}
{{formatRow "Yıl" "Kar" "Kümülatif Kar"}}
{{separator}}
{{range .YearlyProjections}}{{formatRow (printf "%d" .Year) (printf "%.0f TL" .Profit) (printf "%.0f TL" .CumulativeProfit)}}
{{end}}{{separator}}
Toplam Öngörülen Kar: {{printf "%.0f" .TotalProjectedProfit}} TL
{{if .BreakEvenYear}}Başabaş Yılı: {{.BreakEvenYear}}{{else}}Başabaş noktasına ulaşılamıyor{{end}}
{{end}}
Genel Risk Seviyesi: {{.RiskAssessment.OverallRiskLevel}}
{{range .RiskAssessment.RiskFactors}}
- [{{.Level}}] {{.Category}}: {{.Description}}
  Önlem: {{.Mitigation}}
{{end}}
Uygulama Süresi: {{.ImplementationPlan.TotalDuration}}
{{range .ImplementationPlan.Phases}}
Faz {{.Phase}}: {{.Title}} ({{.Duration}}) - Bütçe: {{printf "%.0f" .Budget}} TL
{{end}}
`
	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
