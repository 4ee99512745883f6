package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/service"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightBlue  = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso para o total de diários a
// processar.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Extraindo valores dos diários").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false). // Manter a barra após concluir
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPeriodBars exibe a evolução do investimento por período como um
// gráfico de barras. A largura de cada barra segue o valor de exibição (já
// com o piso de visibilidade); o rótulo mostra sempre o valor real.
func (c *Console) DisplayPeriodBars(points []types.PeriodBar) {
	maxDisplay := 0.0
	for _, p := range points {
		if p.Display > maxDisplay {
			maxDisplay = p.Display
		}
	}

	if maxDisplay == 0 {
		pterm.Warning.Println("Nenhum investimento encontrado para o período")
		return
	}

	tableData := pterm.TableData{
		{"Período", "Investimento", ""},
	}

	for _, p := range points {
		barLength := int((p.Display / maxDisplay) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		if p.Value > 0 && p.Display > p.Value {
			// Barra elevada ao piso de visibilidade
			barColor = pterm.FgGray.Sprint(bar)
		}

		tableData = append(tableData, []string{
			p.Label,
			service.FormatBRL(p.Value),
			barColor,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Evolução do Investimento").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayCategoryBreakdown exibe a distribuição por subcategoria com valor e
// percentual de cada fatia.
func (c *Console) DisplayCategoryBreakdown(rows []types.CategoryRow) {
	if len(rows) == 0 {
		pterm.Warning.Println("Nenhuma categoria com investimento no período")
		return
	}

	tableData := pterm.TableData{
		{"Subcategoria", "Investimento", "Participação", ""},
	}

	for _, row := range rows {
		barLength := row.Percentage * 40 / 100
		bar := pterm.FgMagenta.Sprint(strings.Repeat("█", barLength))

		tableData = append(tableData, []string{
			row.Name,
			service.FormatBRL(row.Value),
			fmt.Sprintf("%d%%", row.Percentage),
			bar,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Distribuição por Subcategoria").WithBoxStyle(pterm.NewStyle(pterm.FgMagenta)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayComparisonBars exibe as séries de dois territórios lado a lado.
func (c *Console) DisplayComparisonBars(nameA, nameB string, points []types.ComparisonBar) {
	maxDisplay := 0.0
	for _, p := range points {
		if p.DisplayA > maxDisplay {
			maxDisplay = p.DisplayA
		}
		if p.DisplayB > maxDisplay {
			maxDisplay = p.DisplayB
		}
	}

	if maxDisplay == 0 {
		pterm.Warning.Println("Nenhum investimento encontrado em nenhum dos municípios")
		return
	}

	tableData := pterm.TableData{
		{"Período", nameA, "", nameB, ""},
	}

	for _, p := range points {
		barA := pterm.FgCyan.Sprint(strings.Repeat("█", int((p.DisplayA/maxDisplay)*30)))
		barB := pterm.FgYellow.Sprint(strings.Repeat("█", int((p.DisplayB/maxDisplay)*30)))

		tableData = append(tableData, []string{
			p.Label,
			service.FormatCompactBRL(p.ValueA),
			barA,
			service.FormatCompactBRL(p.ValueB),
			barB,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(fmt.Sprintf("%s × %s", nameA, nameB)).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayPodium exibe o pódio dos municípios com maior investimento.
func (c *Console) DisplayPodium(entries []types.PodiumEntry) {
	if len(entries) == 0 {
		pterm.Warning.Println("Ranking vazio")
		return
	}

	medals := map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

	tableData := pterm.TableData{
		{"", "Município", "Total Investido"},
	}

	for _, entry := range entries {
		medal, ok := medals[entry.Rank]
		if !ok {
			medal = fmt.Sprintf("%dº", entry.Rank)
		}
		tableData = append(tableData, []string{
			medal,
			entry.Name,
			service.FormatBRL(entry.Value),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Pódio de Investimentos").WithBoxStyle(pterm.NewStyle(pterm.FgYellow)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
