package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/sera-tools/sera-atlas/pkg/models/store"
)

// HTMLRenderer produces the self-contained printable document served for the
// "pdf" format. Output depends only on the stored record, so repeated
// renders are byte-identical.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return formatNumber(v) + " TL"
		},
		"number": formatNumber,
		"trDate": formatTurkishDate,
	}
	return &HTMLRenderer{
		tmpl: template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate)),
	}
}

func (r *HTMLRenderer) Render(record store.ReportRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, record.Data); err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Extension() string { return "html" }

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

func formatTurkishDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + turkishMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

const reportTemplate = `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<title>{{.Metadata.Title}}</title>
<style>
body { font-family: Arial, sans-serif; color: #1f2937; margin: 40px; }
h1 { color: #166534; border-bottom: 2px solid #166534; padding-bottom: 8px; }
h2 { color: #166534; margin-top: 32px; }
.meta { color: #6b7280; font-size: 14px; }
.cards { display: flex; gap: 16px; flex-wrap: wrap; margin: 16px 0; }
.card { border: 1px solid #d1d5db; border-radius: 8px; padding: 16px; min-width: 200px; }
.card h3 { margin-top: 0; font-size: 15px; color: #374151; }
.card p { margin: 4px 0; font-size: 14px; }
table { border-collapse: collapse; width: 100%; margin: 12px 0; }
th, td { border: 1px solid #d1d5db; padding: 8px; text-align: left; font-size: 14px; }
th { background: #f0fdf4; }
.summary { background: #f0fdf4; border-left: 4px solid #166534; padding: 12px 16px; }
@media print { body { margin: 12mm; } }
</style>
</head>
<body>
<h1>{{.Metadata.Title}}</h1>
<p class="meta">Rapor No: {{.ReportID}} &middot; Tarih: {{trDate .Metadata.GeneratedAt}} &middot; Versiyon: {{.Metadata.Version}}</p>

<h2>Yönetici Özeti</h2>
<div class="summary">{{.Metadata.Summary}}</div>

<h2>Temel Göstergeler</h2>
<div class="cards">
<div class="card"><h3>Finansal</h3>
{{with .Analysis.ROI}}
<p>İlk Yatırım: {{money .InitialInvestment}}</p>
<p>Yıllık Gelir: {{money .AnnualRevenue}}</p>
<p>Yıllık Gider: {{money .AnnualCosts}}</p>
<p>Net Kar: {{money .NetProfit}}</p>
<p>ROI: %{{number .ROIPercentage}}</p>
{{else}}<p>Veri yok</p>{{end}}
</div>
<div class="card"><h3>İklim</h3>
{{with .Analysis.Climate}}
<p>İklim Skoru: {{number .ClimateScore}}/100</p>
<p>Ortalama Sıcaklık: {{number .Temperature}} °C</p>
<p>Güneşli Gün: {{.SunshineDays}}</p>
<p>Nem: %{{number .Humidity}}</p>
{{else}}<p>Veri yok</p>{{end}}
</div>
<div class="card"><h3>Ekipman</h3>
{{with .Analysis.Equipment}}
<p>Teknoloji Seviyesi: {{.TechnologyLevel}}</p>
<p>m² Maliyeti: {{money .CostPerM2}}</p>
<p>Toplam Ekipman: {{money .TotalEquipmentCost}}</p>
{{else}}<p>Veri yok</p>{{end}}
</div>
</div>

<h2>Öneriler</h2>
<h3>Stratejik</h3>
<ul>{{range .Recommendations.Strategic}}<li>{{.}}</li>{{end}}</ul>
<h3>Operasyonel</h3>
<ul>{{range .Recommendations.Operational}}<li>{{.}}</li>{{end}}</ul>
<h3>Finansal</h3>
<ul>{{range .Recommendations.Financial}}<li>{{.}}</li>{{end}}</ul>
<h3>Teknik</h3>
<ul>{{range .Recommendations.Technical}}<li>{{.}}</li>{{end}}</ul>

{{with .FinancialProjections}}
<h2>{{.ProjectionPeriodYears}} Yıllık Finansal Projeksiyon</h2>
<table>
<tr><th>Yıl</th><th>Gelir</th><th>Gider</th><th>Kar</th><th>Kümülatif Kar</th></tr>
{{range .YearlyProjections}}
<tr><td>{{.Year}}</td><td>{{money .Revenue}}</td><td>{{money .Costs}}</td><td>{{money .Profit}}</td><td>{{money .CumulativeProfit}}</td></tr>
{{end}}
</table>
<p>Toplam Öngörülen Kar: {{money .TotalProjectedProfit}}{{if .BreakEvenYear}} &middot; Başabaş Yılı: {{.BreakEvenYear}}. yıl{{else}} &middot; Projeksiyon dönemi içinde başabaş noktasına ulaşılamıyor{{end}}</p>
{{end}}

<h2>Risk Değerlendirmesi</h2>
<p>Genel Risk Seviyesi: <strong>{{.RiskAssessment.OverallRiskLevel}}</strong></p>
<table>
<tr><th>Kategori</th><th>Seviye</th><th>Açıklama</th><th>Önlem</th></tr>
{{range .RiskAssessment.RiskFactors}}
<tr><td>{{.Category}}</td><td>{{.Level}}</td><td>{{.Description}}</td><td>{{.Mitigation}}</td></tr>
{{end}}
</table>
<h3>Risk Azaltma Planı</h3>
<ul>{{range .RiskAssessment.RiskMitigationPlan}}<li>{{.}}</li>{{end}}</ul>

<h2>Uygulama Planı ({{.ImplementationPlan.TotalDuration}})</h2>
{{range .ImplementationPlan.Phases}}
<div class="card">
<h3>Faz {{.Phase}}: {{.Title}} ({{.Duration}})</h3>
<p>Bütçe: {{money .Budget}}</p>
<ul>{{range .Tasks}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}
<h3>Kritik Yol</h3>
<ul>{{range .ImplementationPlan.CriticalPath}}<li>{{.}}</li>{{end}}</ul>
<h3>Önemli Kilometre Taşları</h3>
<ul>{{range .ImplementationPlan.KeyMilestones}}<li>{{.}}</li>{{end}}</ul>

<h2>Ek Bilgiler</h2>
<table>
<tr><th>Sera Büyüklüğü</th><td>{{.Appendix.TechnicalSpecifications.GreenhouseSize}}</td></tr>
<tr><th>Yükseklik</th><td>{{.Appendix.TechnicalSpecifications.HeightRange}}</td></tr>
<tr><th>Örtü</th><td>{{.Appendix.TechnicalSpecifications.Glazing}}</td></tr>
<tr><th>Konstrüksiyon</th><td>{{.Appendix.TechnicalSpecifications.Structure}}</td></tr>
<tr><th>Temel</th><td>{{.Appendix.TechnicalSpecifications.Foundation}}</td></tr>
</table>
{{if .Appendix.EquipmentList}}
<h3>Önerilen Ekipmanlar</h3>
<ul>{{range .Appendix.EquipmentList}}<li>{{.}}</li>{{end}}</ul>
{{end}}
<h3>Tedarikçiler</h3>
<ul>{{range .Appendix.Suppliers}}<li>{{.}}</li>{{end}}</ul>
<h3>Sertifikalar</h3>
<ul>{{range .Appendix.Certifications}}<li>{{.}}</li>{{end}}</ul>
<p class="meta">{{.Appendix.Contact.Company}} &middot; {{.Appendix.Contact.Phone}} &middot; {{.Appendix.Contact.Email}}</p>
</body>
</html>
`
