package entity

import "time"

// SearchSnapshot é o snapshot local de conveniência da última busca.
// Não é fonte de verdade: pode estar ausente ou desatualizado.
type SearchSnapshot struct {
	Analysis AnalysisResponse `json:"analysis"`
	SavedAt  time.Time        `json:"saved_at"`
}

// ComparisonSnapshot é o snapshot local da última comparação.
type ComparisonSnapshot struct {
	Comparison ComparisonResult `json:"comparison"`
	SavedAt    time.Time        `json:"saved_at"`
}
