package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

func TestSearchSnapshotRoundTrip(t *testing.T) {
	repo, err := NewSnapshotRepository(t.TempDir())
	require.NoError(t, err)

	savedAt := time.Date(2023, 6, 1, 10, 30, 0, 0, time.UTC)
	original := &entity.SearchSnapshot{
		Analysis: entity.AnalysisResponse{
			Meta: entity.AnalysisMeta{SourceTerritory: "Goiânia"},
			Data: entity.AnalysisData{TotalInvested: 80000},
		},
		SavedAt: savedAt,
	}

	require.NoError(t, repo.SaveSearch(original))

	loaded, err := repo.LoadSearch()
	require.NoError(t, err)
	assert.Equal(t, "Goiânia", loaded.Analysis.Meta.SourceTerritory)
	assert.Equal(t, 80000.0, loaded.Analysis.Data.TotalInvested)
	assert.True(t, loaded.SavedAt.Equal(savedAt))
}

func TestLoadSearchMissing(t *testing.T) {
	repo, err := NewSnapshotRepository(t.TempDir())
	require.NoError(t, err)

	_, err = repo.LoadSearch()
	assert.Error(t, err)
}

func TestComparisonSnapshotRoundTrip(t *testing.T) {
	repo, err := NewSnapshotRepository(t.TempDir())
	require.NoError(t, err)

	original := &entity.ComparisonSnapshot{
		Comparison: entity.ComparisonResult{
			SideA: entity.ComparisonSide{TerritoryName: "Goiânia", TotalInvested: 5000},
			SideB: entity.ComparisonSide{TerritoryName: "Aparecida de Goiânia", TotalInvested: 3000},
		},
		SavedAt: time.Now().UTC(),
	}

	require.NoError(t, repo.SaveComparison(original))

	loaded, err := repo.LoadComparison()
	require.NoError(t, err)
	assert.Equal(t, "Goiânia", loaded.Comparison.SideA.TerritoryName)
	assert.Equal(t, 3000.0, loaded.Comparison.SideB.TotalInvested)
}
