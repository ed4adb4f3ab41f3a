package domain

// AnalysisInput carries the raw figures produced by the upstream analysis
// modules. Blocks that were not computed upstream are nil.
type AnalysisInput struct {
	Location  string            `json:"location"`
	Size      float64           `json:"size"`
	CropType  string            `json:"cropType,omitempty"`
	ROI       *ROIFigures       `json:"roi,omitempty"`
	Climate   *ClimateFigures   `json:"climate,omitempty"`
	Equipment *EquipmentFigures `json:"equipment,omitempty"`
}

type ROIFigures struct {
	InitialInvestment float64 `json:"initial_investment"`
	AnnualRevenue     float64 `json:"annual_revenue"`
	AnnualCosts       float64 `json:"annual_costs"`
	NetProfit         float64 `json:"net_profit"`
	ROIPercentage     float64 `json:"roi_percentage"`
	PaybackPeriod     float64 `json:"payback_period"`
	Profitability     string  `json:"profitability"`
}

type ClimateFigures struct {
	Location     string  `json:"location"`
	ClimateScore float64 `json:"climate_score"`
	Temperature  float64 `json:"temperature"`
	SunshineDays int     `json:"sunshine_days"`
	Humidity     float64 `json:"humidity"`
	Suitability  string  `json:"suitability"`
}

type EquipmentFigures struct {
	TechnologyLevel    string   `json:"technology_level"`
	CostPerM2          float64  `json:"cost_per_m2"`
	AutomationLevel    string   `json:"automation_level"`
	Efficiency         float64  `json:"efficiency"`
	TotalEquipmentCost float64  `json:"total_equipment_cost"`
	RecommendedSystems []string `json:"recommended_systems,omitempty"`
}
