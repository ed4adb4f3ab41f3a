package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sera-tools/sera-atlas/pkg/models/domain"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
	"github.com/sera-tools/sera-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func testRecord(t *testing.T) store.ReportRecord {
	t.Helper()

	clock := fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	analyzer := report.NewAnalyzer(report.DefaultRules(), clock)

	input := domain.AnalysisInput{
		Location: "Antalya",
		Size:     5000,
		ROI: &domain.ROIFigures{
			InitialInvestment: 900000,
			AnnualRevenue:     425000,
			AnnualCosts:       275000,
			NetProfit:         150000,
			ROIPercentage:     16.7,
			PaybackPeriod:     6,
		},
		Climate: &domain.ClimateFigures{
			Location:     "Antalya",
			ClimateScore: 95,
			Temperature:  18.7,
			SunshineDays: 300,
			Humidity:     64,
		},
		Equipment: &domain.EquipmentFigures{
			TechnologyLevel:    "orta",
			CostPerM2:          85,
			TotalEquipmentCost: 425000,
		},
	}

	reportID := "RPT-1717243200000-abc123def"
	return store.ReportRecord{
		ReportID:   reportID,
		UserID:     "user-1",
		SessionID:  "sess-1",
		ReportType: "comprehensive",
		Format:     "pdf",
		Data:       analyzer.Synthesize(input, "comprehensive", reportID),
		CreatedAt:  clock.t,
	}
}

func TestHTMLRenderer(t *testing.T) {
	record := testRecord(t)
	r := NewHTMLRenderer()

	first, err := r.Render(record)
	require.NoError(t, err)
	second, err := r.Render(record)
	require.NoError(t, err)

	t.Run("byte identical across calls", func(t *testing.T) {
		assert.Equal(t, first, second)
	})

	html := string(first)

	t.Run("includes report id and localized date", func(t *testing.T) {
		assert.Contains(t, html, record.ReportID)
		assert.Contains(t, html, "1 Haziran 2025")
	})

	t.Run("renders all recommendation categories even when empty", func(t *testing.T) {
		// 16.7% ROI fires no strategic rule; climate 95 does.
		for _, heading := range []string{"Stratejik", "Operasyonel", "Finansal", "Teknik"} {
			assert.Contains(t, html, "<h3>"+heading+"</h3>")
		}

		weak := record
		weak.Data.Recommendations.Strategic = []string{}
		out, err := r.Render(weak)
		require.NoError(t, err)
		assert.Contains(t, string(out), "<h3>Stratejik</h3>\n<ul></ul>")
	})

	t.Run("carries the metric cards", func(t *testing.T) {
		assert.Contains(t, html, "İlk Yatırım: 900000 TL")
		assert.Contains(t, html, "İklim Skoru: 95/100")
		assert.Contains(t, html, "Teknoloji Seviyesi: orta")
	})

	t.Run("content type and extension", func(t *testing.T) {
		assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
		assert.Equal(t, "html", r.Extension())
	})
}

func TestCSVRenderer(t *testing.T) {
	record := testRecord(t)
	r := NewCSVRenderer()

	first, err := r.Render(record)
	require.NoError(t, err)
	second, err := r.Render(record)
	require.NoError(t, err)

	t.Run("byte identical across calls", func(t *testing.T) {
		assert.Equal(t, first, second)
	})

	lines := strings.Split(strings.TrimRight(string(first), "\n"), "\n")

	t.Run("header plus twelve metric rows", func(t *testing.T) {
		require.Len(t, lines, 13)
		assert.Equal(t, "Kategori,Metrik,Değer,Birim", lines[0])
	})

	t.Run("values and units match per row", func(t *testing.T) {
		assert.Contains(t, lines, "Finansal,İlk Yatırım,900000,TL")
		assert.Contains(t, lines, "Finansal,Yatırım Getirisi,16.7,%")
		assert.Contains(t, lines, "İklim,Güneşli Gün Sayısı,300,gün")
		assert.Contains(t, lines, "Ekipman,m² Başına Maliyet,85,TL/m²")
	})

	t.Run("missing blocks keep the row layout", func(t *testing.T) {
		sparse := record
		sparse.Data.Analysis = domain.AnalysisInput{Location: "Ankara"}
		out, err := r.Render(sparse)
		require.NoError(t, err)

		sparseLines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
		require.Len(t, sparseLines, 13)
		assert.Contains(t, sparseLines, "Finansal,İlk Yatırım,N/A,-")
	})

	t.Run("content type and extension", func(t *testing.T) {
		assert.Equal(t, "text/csv; charset=utf-8", r.ContentType())
		assert.Equal(t, "csv", r.Extension())
	})
}

func TestJSONRenderer(t *testing.T) {
	record := testRecord(t)

	t.Run("stamps downloadedAt on every call", func(t *testing.T) {
		t1 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		t2 := time.Date(2025, 6, 3, 17, 30, 0, 0, time.UTC)

		out1, err := NewJSONRenderer(fixedClock{t: t1}).Render(record)
		require.NoError(t, err)
		out2, err := NewJSONRenderer(fixedClock{t: t2}).Render(record)
		require.NoError(t, err)

		assert.NotEqual(t, out1, out2)

		var doc1, doc2 map[string]interface{}
		require.NoError(t, json.Unmarshal(out1, &doc1))
		require.NoError(t, json.Unmarshal(out2, &doc2))

		assert.Equal(t, t1.Format(time.RFC3339), doc1["downloadedAt"])
		assert.Equal(t, t2.Format(time.RFC3339), doc2["downloadedAt"])

		// Everything except the stamp is identical.
		delete(doc1, "downloadedAt")
		delete(doc2, "downloadedAt")
		assert.Equal(t, doc1, doc2)
	})

	t.Run("passes the report through", func(t *testing.T) {
		out, err := NewJSONRenderer(fixedClock{t: time.Now()}).Render(record)
		require.NoError(t, err)

		var doc struct {
			ReportID string `json:"reportId"`
			Metadata struct {
				Title string `json:"title"`
			} `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal(out, &doc))
		assert.Equal(t, record.ReportID, doc.ReportID)
		assert.Equal(t, "Kapsamlı Sera Yatırım Fizibilite Raporu", doc.Metadata.Title)
	})

	t.Run("content type and extension", func(t *testing.T) {
		r := NewJSONRenderer(nil)
		assert.Equal(t, "application/json; charset=utf-8", r.ContentType())
		assert.Equal(t, "json", r.Extension())
	})
}

func TestRegistry_ForFormat(t *testing.T) {
	registry := NewRegistry(nil)

	tests := []struct {
		format    string
		renderer  interface{}
		extension string
	}{
		{FormatPDF, &HTMLRenderer{}, "html"},
		{FormatJSON, &JSONRenderer{}, "json"},
		{FormatExcel, &CSVRenderer{}, "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := registry.ForFormat(tt.format)
			require.NoError(t, err)
			assert.IsType(t, tt.renderer, r)
			assert.Equal(t, tt.extension, r.Extension())
		})
	}

	t.Run("unknown formats are rejected", func(t *testing.T) {
		for _, format := range []string{"xml", "docx", ""} {
			_, err := registry.ForFormat(format)
			var unsupported *report.UnsupportedFormatError
			assert.ErrorAs(t, err, &unsupported)
		}
	})
}
