package render

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/sera-tools/sera-atlas/pkg/models/domain"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
)

// CSVRenderer emits the fixed metric table consumed by spreadsheet imports:
// a header row followed by 12 metric rows (5 financial, 4 climate,
// 3 equipment). Metrics whose analysis block is missing render as "N/A" so
// the row layout never shifts.
type CSVRenderer struct{}

func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

func (r *CSVRenderer) Render(record store.ReportRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Kategori", "Metrik", "Değer", "Birim"}); err != nil {
		return nil, err
	}
	for _, row := range metricRows(record.Data.Analysis) {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (r *CSVRenderer) Extension() string { return "csv" }

func metricRows(a domain.AnalysisInput) [][]string {
	rows := make([][]string, 0, 12)

	financial := func(metric, value, unit string) {
		rows = append(rows, []string{"Finansal", metric, value, unit})
	}
	if roi := a.ROI; roi != nil {
		financial("İlk Yatırım", formatNumber(roi.InitialInvestment), "TL")
		financial("Yıllık Gelir", formatNumber(roi.AnnualRevenue), "TL")
		financial("Yıllık Gider", formatNumber(roi.AnnualCosts), "TL")
		financial("Net Kar", formatNumber(roi.NetProfit), "TL")
		financial("Yatırım Getirisi", formatNumber(roi.ROIPercentage), "%")
	} else {
		for _, metric := range []string{"İlk Yatırım", "Yıllık Gelir", "Yıllık Gider", "Net Kar", "Yatırım Getirisi"} {
			financial(metric, "N/A", "-")
		}
	}

	climate := func(metric, value, unit string) {
		rows = append(rows, []string{"İklim", metric, value, unit})
	}
	if c := a.Climate; c != nil {
		climate("İklim Skoru", formatNumber(c.ClimateScore), "puan")
		climate("Ortalama Sıcaklık", formatNumber(c.Temperature), "°C")
		climate("Güneşli Gün Sayısı", strconv.Itoa(c.SunshineDays), "gün")
		climate("Nem Oranı", formatNumber(c.Humidity), "%")
	} else {
		for _, metric := range []string{"İklim Skoru", "Ortalama Sıcaklık", "Güneşli Gün Sayısı", "Nem Oranı"} {
			climate(metric, "N/A", "-")
		}
	}

	equipment := func(metric, value, unit string) {
		rows = append(rows, []string{"Ekipman", metric, value, unit})
	}
	if e := a.Equipment; e != nil {
		equipment("m² Başına Maliyet", formatNumber(e.CostPerM2), "TL/m²")
		equipment("Toplam Ekipman Maliyeti", formatNumber(e.TotalEquipmentCost), "TL")
		equipment("Teknoloji Seviyesi", e.TechnologyLevel, "-")
	} else {
		for _, metric := range []string{"m² Başına Maliyet", "Toplam Ekipman Maliyeti", "Teknoloji Seviyesi"} {
			equipment(metric, "N/A", "-")
		}
	}

	return rows
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
