package report

import "github.com/sera-tools/sera-atlas/pkg/models/domain"

// Recommendation categories.
const (
	CategoryStrategic   = "strategic"
	CategoryOperational = "operational"
	CategoryFinancial   = "financial"
	CategoryTechnical   = "technical"
)

// SummaryRule buckets an analysis by ROI percentage and climate score.
// Rules are evaluated in order; the first match wins.
type SummaryRule struct {
	MinROI          float64
	MinClimateScore float64
	Verdict         string
}

// RecommendationRule appends Items to the given category when the predicate
// holds. A nil predicate always fires. Rules are applied independently, in
// declaration order.
type RecommendationRule struct {
	Category string
	When     func(domain.AnalysisInput) bool
	Items    []string
}

// RiskRule contributes a risk factor when the predicate holds. A nil
// predicate always fires.
type RiskRule struct {
	When   func(domain.AnalysisInput) bool
	Factor domain.RiskFactor
}

// PhaseTemplate describes one implementation phase. BudgetShare is the
// fraction of the initial investment allotted to the phase; the shares of a
// rule set sum to 1.0.
type PhaseTemplate struct {
	Title       string
	Duration    string
	Tasks       []string
	BudgetShare float64
}

// Rules holds every lookup table and threshold the analyzer consults.
// Alternate rule sets can be injected wholesale, there is no package-level
// state.
type Rules struct {
	Titles        map[string]string
	FallbackTitle string
	ReportVersion string

	SummaryRules    []SummaryRule
	FallbackVerdict string

	ProjectionYears   int
	RevenueGrowthRate float64
	CostInflationRate float64

	Recommendations []RecommendationRule
	Risks           []RiskRule
	MitigationPlan  []string

	Phases        []PhaseTemplate
	TotalDuration string
	CriticalPath  []string
	KeyMilestones []string

	HeightRange string
	Glazing     string
	Structure   string
	Foundation  string

	Suppliers      []string
	Certifications []string
	Contact        domain.ContactInfo
}

func roiPercentage(a domain.AnalysisInput) float64 {
	if a.ROI == nil {
		return 0
	}
	return a.ROI.ROIPercentage
}

func climateScore(a domain.AnalysisInput) float64 {
	if a.Climate == nil {
		return 0
	}
	return a.Climate.ClimateScore
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		Titles: map[string]string{
			"comprehensive": "Kapsamlı Sera Yatırım Fizibilite Raporu",
			"roi":           "Yatırım Getirisi (ROI) Analiz Raporu",
			"climate":       "İklim Uygunluk Analiz Raporu",
			"equipment":     "Ekipman ve Teknoloji Analiz Raporu",
			"market":        "Pazar Analizi Raporu",
			"layout":        "Sera Yerleşim Planı Raporu",
		},
		FallbackTitle: "Sera Analizi Raporu",
		ReportVersion: "1.0",

		SummaryRules: []SummaryRule{
			{MinROI: 25, MinClimateScore: 90, Verdict: "Yüksek Potansiyelli - Önerilen Yatırım"},
			{MinROI: 15, MinClimateScore: 80, Verdict: "Orta-Yüksek Potansiyelli - Kabul Edilebilir Risk"},
			{MinROI: 10, MinClimateScore: 70, Verdict: "Orta Potansiyelli - Dikkatli Değerlendirme Gerekli"},
		},
		FallbackVerdict: "Düşük Potansiyelli - Alternatif Seçenekler Değerlendirilmeli",

		ProjectionYears:   5,
		RevenueGrowthRate: 0.05,
		CostInflationRate: 0.03,

		Recommendations: []RecommendationRule{
			{
				Category: CategoryStrategic,
				When:     func(a domain.AnalysisInput) bool { return roiPercentage(a) > 20 },
				Items: []string{
					"Yatırımı hızlandırın - yüksek getiri potansiyeli mevcut",
					"Kapasite artırımı için ek alan imkanlarını değerlendirin",
				},
			},
			{
				Category: CategoryStrategic,
				When:     func(a domain.AnalysisInput) bool { return climateScore(a) > 90 },
				Items: []string{
					"Yıl boyu üretim planlaması yapın",
					"Premium ürün segmentine odaklanın",
				},
			},
			{
				Category: CategoryOperational,
				Items: []string{
					"Deneyimli sera operatörü istihdam edin",
					"Kalite kontrol sistemi kurun",
					"Pazarlama ve satış ağı oluşturun",
				},
			},
			{
				Category: CategoryFinancial,
				When: func(a domain.AnalysisInput) bool {
					return a.ROI != nil && a.ROI.PaybackPeriod < 3
				},
				Items: []string{
					"Kredi kullanımını değerlendirin - geri ödeme süresi kısa",
				},
			},
			{
				Category: CategoryFinancial,
				Items: []string{
					"Nakit akışı planlaması yapın",
					"Risk yönetimi için %10-15 rezerv ayırın",
				},
			},
			{
				Category: CategoryTechnical,
				When: func(a domain.AnalysisInput) bool {
					return a.Equipment != nil && a.Equipment.TechnologyLevel == "ileri"
				},
				Items: []string{
					"IoT sensörleri ile uzaktan izleme sistemi kurun",
					"Otomasyon seviyesini kademeli olarak artırın",
				},
			},
			{
				Category: CategoryTechnical,
				Items: []string{
					"Düzenli bakım programı oluşturun",
					"Enerji verimliliği önlemleri alın",
				},
			},
		},

		Risks: []RiskRule{
			{
				Factor: domain.RiskFactor{
					Category:    "Pazar Riski",
					Level:       domain.RiskMedium,
					Description: "Ürün fiyatlarında mevsimsel dalgalanma riski",
					Mitigation:  "Sözleşmeli üretim ve ürün çeşitlendirmesi",
				},
			},
			{
				When: func(a domain.AnalysisInput) bool { return climateScore(a) < 80 },
				Factor: domain.RiskFactor{
					Category:    "İklim Riski",
					Level:       domain.RiskHigh,
					Description: "İklim koşulları üretim verimini olumsuz etkileyebilir",
					Mitigation:  "İklim kontrol sistemleri ve tarım sigortası",
				},
			},
			{
				When: func(a domain.AnalysisInput) bool { return roiPercentage(a) < 15 },
				Factor: domain.RiskFactor{
					Category:    "Finansal Risk",
					Level:       domain.RiskHigh,
					Description: "Yatırım getirisi beklenenin altında kalabilir",
					Mitigation:  "Maliyet optimizasyonu ve ek gelir kaynakları",
				},
			},
			{
				Factor: domain.RiskFactor{
					Category:    "Operasyonel Risk",
					Level:       domain.RiskMedium,
					Description: "Deneyimli personel bulma zorluğu",
					Mitigation:  "Eğitim programları ve danışmanlık desteği",
				},
			},
		},
		MitigationPlan: []string{
			"Kapsamlı sigorta poliçesi yaptırın",
			"Sözleşmeli üretim anlaşmaları yapın",
			"Acil durum fonu oluşturun",
			"Teknik danışmanlık hizmeti alın",
			"Düzenli risk değerlendirmesi yapın",
		},

		Phases: []PhaseTemplate{
			{
				Title:    "Ön İzin ve Ruhsat İşlemleri",
				Duration: "2-3 ay",
				Tasks: []string{
					"İmar durumu ve tarımsal izinlerin alınması",
					"Zemin etüdü ve proje onayı",
					"Elektrik ve su bağlantı başvuruları",
				},
				BudgetShare: 0.15,
			},
			{
				Title:    "Sera İnşaatı",
				Duration: "4-6 ay",
				Tasks: []string{
					"Temel ve altyapı çalışmaları",
					"Çelik konstrüksiyon montajı",
					"Örtü malzemesi kaplama",
				},
				BudgetShare: 0.50,
			},
			{
				Title:    "Ekipman Kurulumu",
				Duration: "2-3 ay",
				Tasks: []string{
					"İklimlendirme sistemlerinin montajı",
					"Sulama ve gübreleme otomasyonu",
					"Kontrol sistemlerinin devreye alınması",
				},
				BudgetShare: 0.25,
			},
			{
				Title:    "Operasyon Başlangıcı",
				Duration: "1-2 ay",
				Tasks: []string{
					"Personel alımı ve eğitimi",
					"Deneme üretimi",
					"Tam kapasite üretime geçiş",
				},
				BudgetShare: 0.10,
			},
		},
		TotalDuration: "9-14 ay",
		CriticalPath: []string{
			"Ruhsat onayı",
			"Sera inşaatının tamamlanması",
			"İklimlendirme sistemlerinin devreye alınması",
		},
		KeyMilestones: []string{
			"İnşaat ruhsatının alınması",
			"Konstrüksiyon montajının bitmesi",
			"İlk fidelerin dikilmesi",
			"İlk hasat",
		},

		HeightRange: "4-6 m",
		Glazing:     "Polikarbonat veya cam örtü",
		Structure:   "Galvanizli çelik konstrüksiyon",
		Foundation:  "Betonarme temel",

		Suppliers: []string{
			"Sera Yapı Sistemleri A.Ş.",
			"GreenTech Sera Ekipmanları",
			"Anadolu Tarım Teknolojileri",
		},
		Certifications: []string{
			"ISO 9001",
			"CE",
			"TSE",
			"GlobalGAP",
		},
		Contact: domain.ContactInfo{
			Company: "Sera Atlas Danışmanlık",
			Phone:   "+90 212 000 00 00",
			Email:   "destek@sera-atlas.com.tr",
		},
	}
}
