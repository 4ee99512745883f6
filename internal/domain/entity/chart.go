package entity

// CategoryShare é uma fatia do gráfico de distribuição por subcategoria.
type CategoryShare struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage int     `json:"percentage"`
}

// PeriodPoint is a single point of a chart-ready period series. Value carries
// the original amount (tooltip/export); DisplayValue carries the amount after
// the visibility floor is applied.
type PeriodPoint struct {
	PeriodKey    string  `json:"period"`
	Label        string  `json:"name"`
	Value        float64 `json:"value"`
	DisplayValue float64 `json:"display_value"`
}

// ComparisonPoint é um ponto da série mesclada de dois territórios.
type ComparisonPoint struct {
	PeriodKey string  `json:"period"`
	Label     string  `json:"name"`
	ValueA    float64 `json:"value_a"`
	ValueB    float64 `json:"value_b"`
	DisplayA  float64 `json:"display_a"`
	DisplayB  float64 `json:"display_b"`
}

// ComparisonSide carrega o resultado de um dos lados de uma comparação.
type ComparisonSide struct {
	Filters       SearchFilters      `json:"filters"`
	TerritoryName string             `json:"territory_name"`
	TotalGazettes int                `json:"total_gazettes"`
	TotalInvested float64            `json:"total_invested"`
	MonthlySeries map[string]float64 `json:"monthly_series"`
	Gazettes      []Gazette          `json:"gazettes,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// ComparisonResult é o resultado completo de uma comparação entre territórios.
type ComparisonResult struct {
	SideA  ComparisonSide    `json:"side_a"`
	SideB  ComparisonSide    `json:"side_b"`
	Merged []ComparisonPoint `json:"merged"`
}
