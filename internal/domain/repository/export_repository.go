package repository

import (
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportAnalysisToCSV(analysis *entity.AnalysisResponse, filename string, outputDir string) (string, error)
	ExportAnalysisToJSON(analysis *entity.AnalysisResponse, filename string, outputDir string) (string, error)
	ExportAnalysisToPDF(analysis *entity.AnalysisResponse, filename string, outputDir string) (string, error)

	// Ranking
	ExportRankingToCSV(ranking *entity.RankingResponse, filename, outputDir string) (string, error)
	ExportRankingToJSON(ranking *entity.RankingResponse, filename, outputDir string) (string, error)
	ExportRankingToPDF(ranking *entity.RankingResponse, filename, outputDir string) (string, error)

	// Comparison
	ExportComparisonToCSV(comparison *entity.ComparisonResult, filename, outputDir string) (string, error)
	ExportComparisonToJSON(comparison *entity.ComparisonResult, filename, outputDir string) (string, error)
	ExportComparisonToPDF(comparison *entity.ComparisonResult, filename, outputDir string) (string, error)
}
