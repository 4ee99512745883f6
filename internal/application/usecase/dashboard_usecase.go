package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/service"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

// DefaultSearchSize é o tamanho padrão da página de busca de diários.
const DefaultSearchSize = 50

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	backendRepo  repository.BackendRepository
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	snapshotRepo repository.SnapshotRepository
	console      types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	backendRepo repository.BackendRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	snapshotRepo repository.SnapshotRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		backendRepo:  backendRepo,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		snapshotRepo: snapshotRepo,
		console:      console,
	}
}

// ResolveFilters valida os argumentos da CLI e resolve município e categoria
// contra o catálogo, produzindo os filtros prontos para a busca.
func (uc *DashboardUseCase) ResolveFilters(args *types.CLIArgs) (entity.SearchFilters, error) {
	if args.Municipality == "" {
		return entity.SearchFilters{}, types.ErrMunicipalityRequired
	}
	if args.Category == "" {
		return entity.SearchFilters{}, types.ErrCategoryRequired
	}

	municipality, ok := entity.FindMunicipality(args.Municipality)
	if !ok {
		return entity.SearchFilters{}, types.ErrUnknownMunicipality
	}
	category, ok := entity.FindCategory(args.Category)
	if !ok {
		return entity.SearchFilters{}, types.ErrUnknownCategory
	}

	if args.Since != "" && args.Until != "" && args.Since > args.Until {
		return entity.SearchFilters{}, types.ErrInvalidDateRange
	}

	size := args.Size
	if size <= 0 {
		size = DefaultSearchSize
	}

	return entity.SearchFilters{
		Municipality: municipality.Slug,
		Category:     category.Slug,
		TerritoryID:  municipality.IBGECode,
		Since:        args.Since,
		Until:        args.Until,
		Querystring:  category.Querystring,
		Size:         size,
	}, nil
}

// RunDashboard executa o fluxo principal: busca de diários, análise de
// investimentos, renderização dos gráficos no terminal e exportação opcional.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	filters, err := uc.ResolveFilters(args)
	if err != nil {
		return err
	}

	status := uc.console.Status("Buscando diários oficiais...")

	searchResult, err := uc.backendRepo.SearchGazettes(ctx, filters)
	if err != nil {
		status.Stop()
		return err
	}

	// Persistência no backend é conveniência: falha não interrompe o fluxo.
	if len(searchResult.Gazettes) > 0 {
		if saved, err := uc.backendRepo.SaveSearchResults(ctx, searchResult.Gazettes, filters); err != nil {
			uc.console.LogWarning("Não foi possível salvar a busca no backend: %s", err)
		} else if saved.Status == "saved" && saved.Filename != "" {
			uc.console.LogInfo("Busca salva no backend: %s", saved.Filename)
		}
	}

	status.Update("Analisando investimentos...")

	keywords := strings.Fields(filters.Querystring)
	analysis, err := uc.backendRepo.AnalyzeInvestments(ctx, filters.TerritoryID, filters.Since, filters.Until, keywords)
	if err != nil {
		status.Stop()
		return err
	}

	status.Stop()

	uc.displayAnalysis(searchResult, analysis)

	// Snapshot local da última busca, também best-effort.
	if err := uc.snapshotRepo.SaveSearch(&entity.SearchSnapshot{
		Analysis: *analysis,
		SavedAt:  time.Now().UTC(),
	}); err != nil {
		uc.console.LogWarning("Não foi possível gravar o snapshot local: %s", err)
	}

	uc.exportAnalysis(analysis, args)

	return nil
}

func (uc *DashboardUseCase) displayAnalysis(searchResult *entity.SearchResponse, analysis *entity.AnalysisResponse) {
	table := uc.console.CreateTable()
	table.AddColumn("Território")
	table.AddColumn("Período")
	table.AddColumn("Diários")
	table.AddColumn("Total Investido")
	table.AddRow(
		analysis.Meta.SourceTerritory,
		analysis.Meta.Period,
		searchResult.TotalGazettes,
		service.FormatBRL(analysis.Data.TotalInvested),
	)
	uc.console.Print(table.Render())

	if len(searchResult.Gazettes) > 0 {
		uc.displayGazettes(searchResult.Gazettes)
	}

	shares := service.AggregateCategories(analysis.Data.InvestmentsByCategory, service.PieTopN)
	rows := make([]types.CategoryRow, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, types.CategoryRow{Name: share.Name, Value: share.Value, Percentage: share.Percentage})
	}
	uc.console.DisplayCategoryBreakdown(rows)

	grouping := service.Grouping(analysis.Data.PeriodGrouping)
	if grouping == "" {
		grouping = service.GroupByMonth
	}
	points := service.BuildPeriodSeries(analysis.Data.InvestmentsByPeriod, grouping)
	bars := make([]types.PeriodBar, 0, len(points))
	for _, point := range points {
		bars = append(bars, types.PeriodBar{Label: point.Label, Value: point.Value, Display: point.DisplayValue})
	}
	uc.console.DisplayPeriodBars(bars)

	if qa := analysis.Data.QualitativeAnalysis; qa != nil {
		if qa.Error != "" {
			uc.console.LogWarning("Análise qualitativa indisponível: %s", qa.Error)
		} else {
			uc.console.Println()
			uc.console.LogInfo("Análise qualitativa (IA)")
			if qa.ResumoObjeto != "" {
				uc.console.Printf("  Objeto: %s\n", qa.ResumoObjeto)
			}
			if qa.Justificativa != "" {
				uc.console.Printf("  Justificativa: %s\n", qa.Justificativa)
			}
			if qa.Fornecedor != "" {
				uc.console.Printf("  Fornecedor: %s\n", qa.Fornecedor)
			}
			if qa.MarcaModelo != "" {
				uc.console.Printf("  Marca/Modelo: %s\n", qa.MarcaModelo)
			}
		}
	}
}

// displayGazettes lista cada diário encontrado na busca: data de publicação,
// edição e o link para o documento original.
func (uc *DashboardUseCase) displayGazettes(gazettes []entity.Gazette) {
	table := uc.console.CreateTable()
	table.AddColumn("Data")
	table.AddColumn("Edição")
	table.AddColumn("URL")
	for _, gazette := range gazettes {
		edition := gazette.Edition
		if edition == "" {
			edition = "-"
		}
		if gazette.IsExtraEdition {
			edition += " (extra)"
		}
		table.AddRow(gazette.Date, edition, gazette.URL)
	}
	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) exportAnalysis(analysis *entity.AnalysisResponse, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportAnalysisToCSV(analysis, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportAnalysisToJSON(analysis, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportAnalysisToPDF(analysis, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		}
	}
}

// RunList exibe a listagem paginada de análises já processadas pelo backend.
func (uc *DashboardUseCase) RunList(ctx context.Context, args *types.CLIArgs) error {
	var filters entity.SearchFilters
	if args.Municipality != "" {
		municipality, ok := entity.FindMunicipality(args.Municipality)
		if !ok {
			return types.ErrUnknownMunicipality
		}
		filters.TerritoryID = municipality.IBGECode
	}
	if args.Category != "" {
		category, ok := entity.FindCategory(args.Category)
		if !ok {
			return types.ErrUnknownCategory
		}
		filters.Category = category.Slug
	}
	filters.Since = args.Since
	filters.Until = args.Until

	page := args.Page
	if page <= 0 {
		page = 1
	}
	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	status := uc.console.Status("Consultando análises...")
	result, err := uc.backendRepo.SearchAnalyses(ctx, filters, page, pageSize)
	status.Stop()
	if err != nil {
		return err
	}

	if len(result.Data) == 0 {
		uc.console.LogWarning("Nenhuma análise encontrada para os filtros informados")
		return nil
	}

	table := uc.console.CreateTable()
	table.AddColumn("Município")
	table.AddColumn("Data da Análise")
	table.AddColumn("Total Investido")
	for _, item := range result.Data {
		name := item.TerritoryName
		if name == "" {
			name = entity.MunicipalityName(item.TerritoryID)
		}
		table.AddRow(name, item.AnalysisDate, service.FormatBRL(item.Data["total_invested"]))
	}
	uc.console.Print(table.Render())
	uc.console.LogInfo("Página %d de %d (%d análises no total)", result.Page, result.TotalPages, result.Total)

	return nil
}

// RunDataOutput lista os arquivos de análise disponíveis no backend, do mais
// recente para o mais antigo, e renderiza a análise mais recente como se
// tivesse acabado de ser produzida.
func (uc *DashboardUseCase) RunDataOutput(ctx context.Context) error {
	status := uc.console.Status("Listando arquivos de análise...")
	listing, err := uc.backendRepo.ListDataOutput(ctx)
	status.Stop()
	if err != nil {
		return err
	}

	// O backend também lista arquivos sem payload de análise; esses ficam de
	// fora tanto da tabela quanto da renderização.
	files := make([]entity.DataOutputFile, 0, len(listing.Files))
	for _, file := range listing.Files {
		if hasAnalysisPayload(file.Data.Data) {
			files = append(files, file)
		}
	}

	if len(files) == 0 {
		uc.console.LogWarning("Nenhum arquivo de análise disponível no backend")
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified > files[j].Modified
	})

	table := uc.console.CreateTable()
	table.AddColumn("Modificado em")
	table.AddColumn("Território")
	table.AddColumn("Período")
	table.AddColumn("Total Investido")
	for _, file := range files {
		modified := time.Unix(int64(file.Modified), 0).UTC().Format("2006-01-02 15:04")
		table.AddRow(
			modified,
			file.Data.Meta.SourceTerritory,
			file.Data.Meta.Period,
			service.FormatBRL(file.Data.Data.TotalInvested),
		)
	}
	uc.console.Print(table.Render())

	newest := files[0].Data
	totalGazettes := newest.Data.TotalGazettes
	if totalGazettes == 0 {
		totalGazettes = len(newest.Gazettes)
	}

	uc.console.LogInfo("Análise mais recente: %s", newest.Meta.SourceTerritory)
	uc.displayAnalysis(&entity.SearchResponse{
		TotalGazettes: totalGazettes,
		Gazettes:      newest.Gazettes,
	}, &newest)

	return nil
}

// hasAnalysisPayload separa arquivos de análise reais dos que o backend lista
// com o bloco de dados vazio.
func hasAnalysisPayload(data entity.AnalysisData) bool {
	return data.TotalInvested > 0 ||
		len(data.InvestmentsByCategory) > 0 ||
		len(data.InvestmentsByPeriod) > 0 ||
		data.TotalGazettes > 0
}

// RunHealthCheck verifica a disponibilidade do backend.
func (uc *DashboardUseCase) RunHealthCheck(ctx context.Context) error {
	status := uc.console.Status("Verificando o backend...")
	err := uc.backendRepo.CheckHealth(ctx)
	status.Stop()

	if err != nil {
		uc.console.LogError("Backend indisponível: %s", err)
		return err
	}

	uc.console.LogSuccess("Backend saudável e respondendo")
	return nil
}
