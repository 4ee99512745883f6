package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/service"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Funções de Exportação do Relatório de Análise ---

func (r *ExportRepositoryImpl) ExportAnalysisToCSV(analysis *entity.AnalysisResponse, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Território", "Período", "Palavras-chave", "Gerado em",
		"Total Investido", "Total de Diários", "Investimento por Categoria",
	}
	writer.Write(headers)

	categoriesData := ""
	for _, name := range sortedKeys(analysis.Data.InvestmentsByCategory) {
		categoriesData += fmt.Sprintf("%s: %s\n", name, service.FormatBRL(analysis.Data.InvestmentsByCategory[name]))
	}

	record := []string{
		analysis.Meta.SourceTerritory,
		analysis.Meta.Period,
		analysis.Meta.SearchKeywords,
		analysis.Meta.GeneratedAt,
		service.FormatBRL(analysis.Data.TotalInvested),
		fmt.Sprintf("%d", analysis.Data.TotalGazettes),
		strings.TrimSpace(categoriesData),
	}
	writer.Write(record)

	// Série mensal em bloco separado para facilitar a importação em planilhas.
	if len(analysis.Data.InvestmentsByPeriod) > 0 {
		writer.Write(nil)
		writer.Write([]string{"Período", "Investimento"})
		for _, key := range sortedKeys(analysis.Data.InvestmentsByPeriod) {
			writer.Write([]string{key, fmt.Sprintf("%.2f", analysis.Data.InvestmentsByPeriod[key])})
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportAnalysisToJSON(analysis *entity.AnalysisResponse, filename, outputDir string) (string, error) {
	return writeJSON(analysis, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportAnalysisToPDF(analysis *entity.AnalysisResponse, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF()

	pdf.AddPage()
	drawHeader(pdf, tr, "Relatório de Investimentos em Tecnologia Educacional",
		fmt.Sprintf("Território: %s", analysis.Meta.SourceTerritory))

	infoStr := fmt.Sprintf("Período analisado: %s\nPalavras-chave: %s\nGerado em: %s",
		analysis.Meta.Period, analysis.Meta.SearchKeywords, analysis.Meta.GeneratedAt)
	drawSection("Informações da Pesquisa", infoStr)

	summaryStr := fmt.Sprintf("Total investido: %s\nDiários analisados: %d",
		service.FormatBRL(analysis.Data.TotalInvested), analysis.Data.TotalGazettes)
	if analysis.Data.AverageInvestedGazette > 0 {
		summaryStr += fmt.Sprintf("\nMédia por diário: %s", service.FormatBRL(analysis.Data.AverageInvestedGazette))
	}
	drawSection("Resumo Financeiro", summaryStr)

	categoriesStr := ""
	for _, share := range service.AggregateCategories(analysis.Data.InvestmentsByCategory, 0) {
		categoriesStr += fmt.Sprintf("%s: %s (%d%%)\n", share.Name, service.FormatBRL(share.Value), share.Percentage)
	}
	drawSection("Investimento por Subcategoria", strings.TrimSpace(categoriesStr))

	periodStr := ""
	grouping := service.Grouping(analysis.Data.PeriodGrouping)
	if grouping == "" {
		grouping = service.GroupByMonth
	}
	for _, point := range service.BuildPeriodSeries(analysis.Data.InvestmentsByPeriod, grouping) {
		periodStr += fmt.Sprintf("%s: %s\n", point.Label, service.FormatBRL(point.Value))
	}
	drawSection("Evolução por Período", strings.TrimSpace(periodStr))

	if qa := analysis.Data.QualitativeAnalysis; qa != nil && qa.Error == "" {
		qaStr := ""
		if qa.ResumoObjeto != "" {
			qaStr += fmt.Sprintf("Objeto: %s\n\n", qa.ResumoObjeto)
		}
		if qa.Justificativa != "" {
			qaStr += fmt.Sprintf("Justificativa: %s\n\n", qa.Justificativa)
		}
		if qa.Fornecedor != "" {
			qaStr += fmt.Sprintf("Fornecedor: %s\n\n", qa.Fornecedor)
		}
		if qa.MarcaModelo != "" {
			qaStr += fmt.Sprintf("Marca/Modelo: %s\n\n", qa.MarcaModelo)
		}
		if qaStr == "" {
			qaStr = qa.RawAnalysis
		}
		drawSection("Análise Qualitativa (IA)", strings.TrimSpace(qaStr))
	}

	drawFooter(pdf, tr, 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções de Exportação do Ranking ---

func (r *ExportRepositoryImpl) ExportRankingToCSV(ranking *entity.RankingResponse, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Posição", "Município", "Total Investido", "Principais Categorias"})
	for _, entry := range ranking.Rankings.ByInvestment {
		categories := ""
		for _, cv := range entry.TopCategories {
			categories += fmt.Sprintf("%s: %s\n", cv.Category, service.FormatBRL(cv.Value))
		}
		writer.Write([]string{
			fmt.Sprintf("%d", entry.Rank),
			entity.MunicipalityName(entry.TerritoryID),
			service.FormatBRL(entry.TotalInvested),
			strings.TrimSpace(categories),
		})
	}

	writer.Write(nil)
	writer.Write([]string{"Posição", "Município", "Total de Publicações"})
	for _, entry := range ranking.Rankings.ByPublications {
		writer.Write([]string{
			fmt.Sprintf("%d", entry.Rank),
			entity.MunicipalityName(entry.TerritoryID),
			fmt.Sprintf("%d", entry.Total),
		})
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportRankingToJSON(ranking *entity.RankingResponse, filename, outputDir string) (string, error) {
	return writeJSON(ranking, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportRankingToPDF(ranking *entity.RankingResponse, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF()

	pdf.AddPage()
	drawHeader(pdf, tr, "Ranking de Municípios",
		fmt.Sprintf("Municípios monitorados: %d", ranking.Rankings.TotalMunicipalities))

	investedStr := ""
	for _, entry := range ranking.Rankings.ByInvestment {
		investedStr += fmt.Sprintf("%dº %s: %s\n",
			entry.Rank, entity.MunicipalityName(entry.TerritoryID), service.FormatBRL(entry.TotalInvested))
	}
	drawSection("Por Investimento", strings.TrimSpace(investedStr))

	publicationsStr := ""
	for _, entry := range ranking.Rankings.ByPublications {
		publicationsStr += fmt.Sprintf("%dº %s: %d publicações\n",
			entry.Rank, entity.MunicipalityName(entry.TerritoryID), entry.Total)
	}
	drawSection("Por Publicações", strings.TrimSpace(publicationsStr))

	drawFooter(pdf, tr, 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções de Exportação da Comparação ---

func (r *ExportRepositoryImpl) ExportComparisonToCSV(comparison *entity.ComparisonResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{
		"Período",
		comparison.SideA.TerritoryName,
		comparison.SideB.TerritoryName,
	})
	for _, point := range comparison.Merged {
		writer.Write([]string{
			point.Label,
			fmt.Sprintf("%.2f", point.ValueA),
			fmt.Sprintf("%.2f", point.ValueB),
		})
	}

	writer.Write(nil)
	writer.Write([]string{"Município", "Total Investido", "Total de Diários"})
	for _, side := range []entity.ComparisonSide{comparison.SideA, comparison.SideB} {
		writer.Write([]string{
			side.TerritoryName,
			service.FormatBRL(side.TotalInvested),
			fmt.Sprintf("%d", side.TotalGazettes),
		})
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportComparisonToJSON(comparison *entity.ComparisonResult, filename, outputDir string) (string, error) {
	return writeJSON(comparison, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportComparisonToPDF(comparison *entity.ComparisonResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF()

	pdf.AddPage()
	drawHeader(pdf, tr, "Comparativo entre Municípios",
		fmt.Sprintf("%s × %s", comparison.SideA.TerritoryName, comparison.SideB.TerritoryName))

	for _, side := range []entity.ComparisonSide{comparison.SideA, comparison.SideB} {
		sideStr := fmt.Sprintf("Total investido: %s\nDiários encontrados: %d",
			service.FormatBRL(side.TotalInvested), side.TotalGazettes)
		if side.Error != "" {
			sideStr += fmt.Sprintf("\nFalha na consulta: %s", side.Error)
		}
		drawSection(side.TerritoryName, sideStr)
	}

	mergedStr := ""
	for _, point := range comparison.Merged {
		mergedStr += fmt.Sprintf("%s: %s | %s\n",
			point.Label, service.FormatBRL(point.ValueA), service.FormatBRL(point.ValueB))
	}
	drawSection("Evolução Mensal", strings.TrimSpace(mergedStr))

	drawFooter(pdf, tr, 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Helpers ---

// newReportPDF prepara o documento A4 e um desenhador de seções com a
// identidade visual compartilhada pelos relatórios.
func newReportPDF() (*gofpdf.Fpdf, func(string) string, func(title, content string)) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(cleanRichTags(content)), "", "L", false)
		pdf.Ln(8)
	}

	return pdf, tr, drawSection
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, title, subtitle string) {
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(50, 50, 50)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  %s", subtitle)), "", 1, "L", true, 0, "")
	pdf.Ln(10)
}

func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, page int) {
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Gerado por P.I.T.E.R Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d", page)), "", 0, "R", false, 0, "")
}

func writeJSON(data interface{}, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
