package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

func sampleAnalysis() *entity.AnalysisResponse {
	return &entity.AnalysisResponse{
		Meta: entity.AnalysisMeta{
			SourceTerritory: "Goiânia",
			Period:          "2023-01-01 a 2023-12-31",
			SearchKeywords:  "robótica educacional tecnologia ensino",
			GeneratedAt:     "2023-12-31T23:59:59Z",
		},
		Data: entity.AnalysisData{
			TotalInvested: 80000,
			InvestmentsByCategory: map[string]float64{
				"Software": 50000,
				"Robótica": 30000,
			},
			InvestmentsByPeriod: map[string]float64{
				"2023-01": 30000,
				"2023-02": 50000,
			},
			PeriodGrouping: "month",
			TotalGazettes:  12,
		},
	}
}

func TestExportAnalysisToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportAnalysisToJSON(sampleAnalysis(), "analise", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.AnalysisResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Goiânia", decoded.Meta.SourceTerritory)
	assert.Equal(t, 80000.0, decoded.Data.TotalInvested)
}

func TestExportAnalysisToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportAnalysisToCSV(sampleAnalysis(), "analise", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Goiânia")
	assert.Contains(t, content, "R$ 80.000,00")
	assert.Contains(t, content, "2023-01")
}

func TestExportAnalysisToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportAnalysisToPDF(sampleAnalysis(), "analise", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportRankingToCSV(t *testing.T) {
	repo := NewExportRepository()
	ranking := &entity.RankingResponse{
		Rankings: entity.Rankings{
			ByInvestment: []entity.InvestmentRank{
				{TerritoryID: "5208707", TotalInvested: 80000, Rank: 1},
				{TerritoryID: "5201405", TotalInvested: 20000, Rank: 2},
			},
			ByPublications: []entity.PublicationRank{
				{TerritoryID: "5208707", Total: 42, Rank: 1},
			},
			TotalMunicipalities: 2,
		},
	}

	path, err := repo.ExportRankingToCSV(ranking, "ranking", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Goiânia")
	assert.Contains(t, content, "Aparecida de Goiânia")
	assert.Contains(t, content, "42")
}

func TestExportComparisonToCSV(t *testing.T) {
	repo := NewExportRepository()
	comparison := &entity.ComparisonResult{
		SideA: entity.ComparisonSide{TerritoryName: "Goiânia", TotalInvested: 5000, TotalGazettes: 3},
		SideB: entity.ComparisonSide{TerritoryName: "Aparecida de Goiânia", TotalInvested: 2000, TotalGazettes: 1},
		Merged: []entity.ComparisonPoint{
			{PeriodKey: "2023-01", Label: "Jan/23", ValueA: 5000, ValueB: 2000},
		},
	}

	path, err := repo.ExportComparisonToCSV(comparison, "comparacao", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Jan/23")
	assert.Contains(t, content, "5000.00")
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "texto puro", cleanRichTags("[red]texto[/red] \x1B[31mpuro\x1B[0m"))
}
