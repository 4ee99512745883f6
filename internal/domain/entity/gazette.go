package entity

// Gazette represents a single official publication record for a territory.
type Gazette struct {
	TerritoryID    string   `json:"territory_id"`
	TerritoryName  string   `json:"territory_name"`
	Date           string   `json:"date"`
	URL            string   `json:"url"`
	TxtURL         string   `json:"txt_url,omitempty"`
	Edition        string   `json:"edition,omitempty"`
	IsExtraEdition bool     `json:"is_extra_edition,omitempty"`
	Excerpts       []string `json:"excerpts,omitempty"`
	ScrapedAt      string   `json:"scraped_at,omitempty"`
	StateCode      string   `json:"state_code,omitempty"`
}

// SearchResponse é a resposta do endpoint de busca de diários (GET /api/v1/gazettes).
type SearchResponse struct {
	TotalGazettes int       `json:"total_gazettes"`
	Gazettes      []Gazette `json:"gazettes"`
}

// SearchFilters contains the user-provided filters for a gazette search.
type SearchFilters struct {
	Municipality string `json:"municipio,omitempty"`
	Category     string `json:"categoria,omitempty"`
	TerritoryID  string `json:"territory_id,omitempty"`
	Since        string `json:"published_since,omitempty"`
	Until        string `json:"published_until,omitempty"`
	Querystring  string `json:"querystring,omitempty"`
	Size         int    `json:"size,omitempty"`
}

// SaveSearchResult é a resposta do endpoint POST /api/v1/save_search.
type SaveSearchResult struct {
	Status   string `json:"status"`
	Filename string `json:"filename,omitempty"`
	Message  string `json:"message,omitempty"`
}
