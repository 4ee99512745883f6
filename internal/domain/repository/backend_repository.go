package repository

import (
	"context"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

// BackendRepository defines the interface for the P.I.T.E.R backend API.
type BackendRepository interface {
	// Gazette Operations
	SearchGazettes(ctx context.Context, filters entity.SearchFilters) (*entity.SearchResponse, error)
	SaveSearchResults(ctx context.Context, gazettes []entity.Gazette, filters entity.SearchFilters) (*entity.SaveSearchResult, error)

	// Analysis Operations
	AnalyzeInvestments(ctx context.Context, territoryID, since, until string, keywords []string) (*entity.AnalysisResponse, error)
	SearchAnalyses(ctx context.Context, filters entity.SearchFilters, page, pageSize int) (*entity.PaginatedAnalyses, error)

	// Ranking Operations
	GetRanking(ctx context.Context) (*entity.RankingResponse, error)
	GetStateRanking(ctx context.Context, req entity.StateRankingRequest) (*entity.RankingResponse, error)

	// Misc Operations
	ListDataOutput(ctx context.Context) (*entity.DataOutputListing, error)
	CheckHealth(ctx context.Context) error
}
