package entity

// AnalysisMeta descreve o contexto de uma análise gerada pelo backend.
type AnalysisMeta struct {
	SourceTerritory string `json:"source_territory"`
	Period          string `json:"period"`
	SearchKeywords  string `json:"search_keywords"`
	GeneratedAt     string `json:"generated_at"`
	DateRangeStart  string `json:"date_range_start,omitempty"`
	DateRangeEnd    string `json:"date_range_end,omitempty"`
}

// AnalysisData carrega os agregados produzidos pelo pipeline de análise:
// total investido, investimentos por categoria e as séries por período.
type AnalysisData struct {
	TotalInvested          float64              `json:"total_invested"`
	InvestmentsByCategory  map[string]float64   `json:"investments_by_category"`
	InvestmentsByPeriod    map[string]float64   `json:"investments_by_period,omitempty"`
	PublicationsByPeriod   map[string]float64   `json:"publications_by_period,omitempty"`
	PeriodGrouping         string               `json:"period_grouping,omitempty"`
	TotalEntities          int                  `json:"total_entities,omitempty"`
	TotalGazettes          int                  `json:"total_gazettes,omitempty"`
	QualitativeAnalysis    *QualitativeAnalysis `json:"qualitative_analysis,omitempty"`
	EntityCountsByType     map[string]int       `json:"entity_counts_by_type,omitempty"`
	AverageInvestedGazette float64              `json:"average_invested_per_gazette,omitempty"`
}

// QualitativeAnalysis é o resultado da análise qualitativa por IA (Gemini).
type QualitativeAnalysis struct {
	ResumoObjeto  string `json:"resumo_objeto,omitempty"`
	Justificativa string `json:"justificativa,omitempty"`
	Fornecedor    string `json:"fornecedor,omitempty"`
	MarcaModelo   string `json:"marca_modelo,omitempty"`
	RawAnalysis   string `json:"raw_analysis,omitempty"`
	Error         string `json:"error,omitempty"`
}

// AnalysisResponse é o payload completo do endpoint GET /analyze e também o
// formato dos arquivos listados em /data_output.
type AnalysisResponse struct {
	Meta     AnalysisMeta `json:"meta"`
	Data     AnalysisData `json:"data"`
	Gazettes []Gazette    `json:"gazettes,omitempty"`
}

// GazetteAnalysis é um item da listagem paginada de GET /api/search.
type GazetteAnalysis struct {
	TerritoryID   string             `json:"territory_id"`
	TerritoryName string             `json:"territory_name,omitempty"`
	AnalysisDate  string             `json:"analysis_date,omitempty"`
	Data          map[string]float64 `json:"data,omitempty"`
}

// PaginatedAnalyses é a resposta paginada de GET /api/search.
type PaginatedAnalyses struct {
	Data       []GazetteAnalysis `json:"data"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// DataOutputFile é um arquivo de análise listado por GET /data_output.
type DataOutputFile struct {
	Modified float64          `json:"modified"`
	Data     AnalysisResponse `json:"data"`
}

// DataOutputListing é a resposta de GET /data_output.
type DataOutputListing struct {
	Files []DataOutputFile `json:"files"`
}
