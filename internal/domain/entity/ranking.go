package entity

// MunicipalityStatistics agrega as estatísticas calculadas para um município.
type MunicipalityStatistics struct {
	TotalGazettes      int                `json:"total_gazettes"`
	DateRange          DateRange          `json:"date_range"`
	TotalEntities      int                `json:"total_entities"`
	EntityCountsByType map[string]int     `json:"entity_counts_by_type,omitempty"`
	TopEntities        map[string]int     `json:"top_entities,omitempty"`
	TotalInvested      float64            `json:"total_invested"`
	TopCategories      map[string]float64 `json:"top_categories,omitempty"`
}

// DateRange delimita o intervalo de datas coberto por uma análise.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MunicipalityData é a entrada de um município dentro da resposta de ranking.
type MunicipalityData struct {
	TotalGazettes int                    `json:"total_gazettes"`
	TotalInvested float64                `json:"total_invested"`
	TopCategories map[string]float64     `json:"top_categories,omitempty"`
	Statistics    MunicipalityStatistics `json:"statistics"`
}

// PublicationRank is a ranking entry ordered by publication count.
// Rank é atribuído pelo backend; o cliente nunca o recalcula.
type PublicationRank struct {
	TerritoryID string `json:"territory_id"`
	Total       int    `json:"total"`
	Rank        int    `json:"rank"`
}

// CategoryValue é um par categoria/valor usado nos rankings por investimento.
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// InvestmentRank is a ranking entry ordered by total invested amount.
type InvestmentRank struct {
	TerritoryID   string          `json:"territory_id"`
	TotalInvested float64         `json:"total_invested"`
	TopCategories []CategoryValue `json:"top_categories,omitempty"`
	Rank          int             `json:"rank"`
}

// Rankings agrupa as ordenações retornadas pelo backend.
type Rankings struct {
	ByPublications      []PublicationRank `json:"by_publications"`
	ByInvestment        []InvestmentRank  `json:"by_investment,omitempty"`
	TotalMunicipalities int               `json:"total_municipalities"`
}

// RankingResponse é a resposta de GET /api/ranking e POST /api/v1/ranking/state.
type RankingResponse struct {
	Municipalities map[string]MunicipalityData `json:"municipalities"`
	Rankings       Rankings                    `json:"rankings"`
}

// StateRankingRequest é o corpo de POST /api/v1/ranking/state.
type StateRankingRequest struct {
	StateCode    string   `json:"state_code"`
	TerritoryIDs []string `json:"territory_ids"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Keywords     []string `json:"keywords"`
}
