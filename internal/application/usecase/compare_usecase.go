package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/service"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

// CompareUseCase handles side-by-side comparison of two municipalities.
type CompareUseCase struct {
	backendRepo  repository.BackendRepository
	exportRepo   repository.ExportRepository
	snapshotRepo repository.SnapshotRepository
	console      types.ConsoleInterface
}

// NewCompareUseCase creates a new comparison use case.
func NewCompareUseCase(
	backendRepo repository.BackendRepository,
	exportRepo repository.ExportRepository,
	snapshotRepo repository.SnapshotRepository,
	console types.ConsoleInterface,
) *CompareUseCase {
	return &CompareUseCase{
		backendRepo:  backendRepo,
		exportRepo:   exportRepo,
		snapshotRepo: snapshotRepo,
		console:      console,
	}
}

// RunComparison busca os diários dos dois municípios em paralelo, extrai os
// valores investidos dos excertos e exibe as séries mescladas. A falha de um
// lado não derruba a comparação: aquele lado aparece zerado com o erro
// registrado.
func (uc *CompareUseCase) RunComparison(ctx context.Context, args *types.CLIArgs) error {
	if args.Category == "" {
		return types.ErrCategoryRequired
	}
	category, ok := entity.FindCategory(args.Category)
	if !ok {
		return types.ErrUnknownCategory
	}

	if args.Municipality == "" || args.CompareWith == "" {
		return types.ErrMunicipalityRequired
	}
	municipalityA, ok := entity.FindMunicipality(args.Municipality)
	if !ok {
		return types.ErrUnknownMunicipality
	}
	municipalityB, ok := entity.FindMunicipality(args.CompareWith)
	if !ok {
		return types.ErrUnknownMunicipality
	}
	if municipalityA.IBGECode == municipalityB.IBGECode {
		return types.ErrSameTerritory
	}

	if args.Since != "" && args.Until != "" && args.Since > args.Until {
		return types.ErrInvalidDateRange
	}

	size := args.Size
	if size <= 0 {
		size = DefaultSearchSize
	}

	status := uc.console.Status("Comparando municípios...")

	sides := [2]entity.ComparisonSide{}
	municipalities := [2]entity.Municipality{municipalityA, municipalityB}

	var wg sync.WaitGroup
	for i := range municipalities {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sides[i] = uc.fetchSide(ctx, municipalities[i], category, args.Since, args.Until, size)
		}(i)
	}
	wg.Wait()

	status.Stop()

	// Extração dos valores monetários diário a diário, com barra de progresso.
	if total := len(sides[0].Gazettes) + len(sides[1].Gazettes); total > 0 {
		bar := uc.console.ProgressWithTotal(total)
		for i := range sides {
			uc.extractSide(&sides[i], bar)
		}
		bar.Stop()
	}

	result := &entity.ComparisonResult{
		SideA:  sides[0],
		SideB:  sides[1],
		Merged: service.MergeSeries(sides[0].MonthlySeries, sides[1].MonthlySeries, service.GroupByMonth),
	}

	uc.displayComparison(result)

	if err := uc.snapshotRepo.SaveComparison(&entity.ComparisonSnapshot{
		Comparison: *result,
		SavedAt:    time.Now().UTC(),
	}); err != nil {
		uc.console.LogWarning("Não foi possível gravar o snapshot local: %s", err)
	}

	uc.exportComparison(result, args)

	return nil
}

func (uc *CompareUseCase) fetchSide(
	ctx context.Context,
	municipality entity.Municipality,
	category entity.Category,
	since, until string,
	size int,
) entity.ComparisonSide {
	filters := entity.SearchFilters{
		Municipality: municipality.Slug,
		Category:     category.Slug,
		TerritoryID:  municipality.IBGECode,
		Since:        since,
		Until:        until,
		Querystring:  category.Querystring,
		Size:         size,
	}

	side := entity.ComparisonSide{
		Filters:       filters,
		TerritoryName: municipality.Name,
		MonthlySeries: map[string]float64{},
	}

	response, err := uc.backendRepo.SearchGazettes(ctx, filters)
	if err != nil {
		side.Error = err.Error()
		return side
	}

	side.TotalGazettes = response.TotalGazettes
	side.Gazettes = response.Gazettes

	return side
}

// extractSide acumula a série mensal de um lado da comparação, avançando a
// barra a cada diário processado.
func (uc *CompareUseCase) extractSide(side *entity.ComparisonSide, bar types.ProgressHandle) {
	for _, gazette := range side.Gazettes {
		monthly := service.ExtractMonthlyInvestments([]entity.Gazette{gazette})
		for month, value := range monthly {
			side.MonthlySeries[month] += value
			side.TotalInvested += value
		}
		bar.Increment()
	}
}

func (uc *CompareUseCase) displayComparison(result *entity.ComparisonResult) {
	for _, side := range []entity.ComparisonSide{result.SideA, result.SideB} {
		if side.Error != "" {
			uc.console.LogWarning("Falha ao consultar %s: %s", side.TerritoryName, side.Error)
		}
	}

	table := uc.console.CreateTable()
	table.AddColumn("Município")
	table.AddColumn("Diários")
	table.AddColumn("Total Extraído")
	for _, side := range []entity.ComparisonSide{result.SideA, result.SideB} {
		table.AddRow(side.TerritoryName, side.TotalGazettes, service.FormatBRL(side.TotalInvested))
	}
	uc.console.Print(table.Render())

	bars := make([]types.ComparisonBar, 0, len(result.Merged))
	for _, point := range result.Merged {
		bars = append(bars, types.ComparisonBar{
			Label:    point.Label,
			ValueA:   point.ValueA,
			ValueB:   point.ValueB,
			DisplayA: point.DisplayA,
			DisplayB: point.DisplayB,
		})
	}
	uc.console.DisplayComparisonBars(result.SideA.TerritoryName, result.SideB.TerritoryName, bars)
}

func (uc *CompareUseCase) exportComparison(result *entity.ComparisonResult, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportComparisonToCSV(result, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export comparison to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported comparison to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportComparisonToJSON(result, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export comparison to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported comparison to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportComparisonToPDF(result, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export comparison to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported comparison to PDF: %s", pdfPath)
			}
		}
	}
}
