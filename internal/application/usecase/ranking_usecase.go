package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/service"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

// RankingUseCase handles the municipality ranking views.
type RankingUseCase struct {
	backendRepo repository.BackendRepository
	exportRepo  repository.ExportRepository
	console     types.ConsoleInterface
}

// NewRankingUseCase creates a new ranking use case.
func NewRankingUseCase(
	backendRepo repository.BackendRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *RankingUseCase {
	return &RankingUseCase{
		backendRepo: backendRepo,
		exportRepo:  exportRepo,
		console:     console,
	}
}

// RunRanking busca o ranking geral, ou o recorte estadual quando --state é
// informado, e exibe pódio e tabelas completas.
func (uc *RankingUseCase) RunRanking(ctx context.Context, args *types.CLIArgs) error {
	if args.Since != "" && args.Until != "" && args.Since > args.Until {
		return types.ErrInvalidDateRange
	}

	status := uc.console.Status("Consultando ranking de municípios...")

	var (
		ranking *entity.RankingResponse
		err     error
	)

	if args.State != "" {
		ranking, err = uc.fetchStateRanking(ctx, args)
	} else {
		ranking, err = uc.backendRepo.GetRanking(ctx)
	}

	status.Stop()
	if err != nil {
		return err
	}

	uc.displayRanking(ranking)
	uc.exportRanking(ranking, args)

	return nil
}

func (uc *RankingUseCase) fetchStateRanking(ctx context.Context, args *types.CLIArgs) (*entity.RankingResponse, error) {
	state, ok := entity.FindMunicipality(args.State)
	if !ok {
		for _, s := range entity.States {
			needle := strings.ToLower(strings.TrimSpace(args.State))
			if needle == s.Slug || needle == strings.ToLower(s.Name) || needle == s.IBGECode {
				state, ok = s, true
				break
			}
		}
	}
	if !ok {
		return nil, types.ErrUnknownMunicipality
	}

	territoryIDs := make([]string, 0, len(entity.Municipalities))
	for _, m := range entity.Municipalities {
		territoryIDs = append(territoryIDs, m.IBGECode)
	}

	keywords := make([]string, 0)
	for _, category := range entity.Categories {
		keywords = append(keywords, strings.Fields(category.Querystring)...)
	}

	return uc.backendRepo.GetStateRanking(ctx, entity.StateRankingRequest{
		StateCode:    state.IBGECode,
		TerritoryIDs: territoryIDs,
		StartDate:    args.Since,
		EndDate:      args.Until,
		Keywords:     dedupe(keywords),
	})
}

func (uc *RankingUseCase) displayRanking(ranking *entity.RankingResponse) {
	uc.console.LogInfo("Municípios monitorados: %d", ranking.Rankings.TotalMunicipalities)

	// Pódio com as três primeiras posições por investimento.
	byInvestment := make([]entity.InvestmentRank, len(ranking.Rankings.ByInvestment))
	copy(byInvestment, ranking.Rankings.ByInvestment)
	sort.Slice(byInvestment, func(i, j int) bool {
		return byInvestment[i].Rank < byInvestment[j].Rank
	})

	podium := make([]types.PodiumEntry, 0, service.PodiumTopN)
	for _, entry := range byInvestment {
		if len(podium) == service.PodiumTopN {
			break
		}
		podium = append(podium, types.PodiumEntry{
			Rank:  entry.Rank,
			Name:  entity.MunicipalityName(entry.TerritoryID),
			Value: entry.TotalInvested,
		})
	}
	uc.console.DisplayPodium(podium)

	if len(byInvestment) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Posição")
		table.AddColumn("Município")
		table.AddColumn("Total Investido")
		table.AddColumn("Principais Categorias")
		for _, entry := range byInvestment {
			categories := make([]string, 0, len(entry.TopCategories))
			for _, cv := range entry.TopCategories {
				categories = append(categories, cv.Category)
			}
			table.AddRow(
				entry.Rank,
				entity.MunicipalityName(entry.TerritoryID),
				service.FormatBRL(entry.TotalInvested),
				strings.Join(categories, ", "),
			)
		}
		uc.console.Print(table.Render())
	}

	if len(ranking.Rankings.ByPublications) > 0 {
		byPublications := make([]entity.PublicationRank, len(ranking.Rankings.ByPublications))
		copy(byPublications, ranking.Rankings.ByPublications)
		sort.Slice(byPublications, func(i, j int) bool {
			return byPublications[i].Rank < byPublications[j].Rank
		})

		table := uc.console.CreateTable()
		table.AddColumn("Posição")
		table.AddColumn("Município")
		table.AddColumn("Publicações")
		for _, entry := range byPublications {
			table.AddRow(entry.Rank, entity.MunicipalityName(entry.TerritoryID), entry.Total)
		}
		uc.console.Print(table.Render())
	}
}

func (uc *RankingUseCase) exportRanking(ranking *entity.RankingResponse, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportRankingToCSV(ranking, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export ranking to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported ranking to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportRankingToJSON(ranking, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export ranking to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported ranking to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportRankingToPDF(ranking, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export ranking to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported ranking to PDF: %s", pdfPath)
			}
		}
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
