package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface

	DisplayPeriodBars(points []PeriodBar)
	DisplayCategoryBreakdown(rows []CategoryRow)
	DisplayComparisonBars(nameA, nameB string, points []ComparisonBar)
	DisplayPodium(entries []PodiumEntry)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// PeriodBar representa o investimento em um período, usado nos gráficos de
// barras. Display carrega o valor já com o piso de visibilidade aplicado;
// Value mantém o valor real para o rótulo.
type PeriodBar struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display float64 `json:"display"`
}

// CategoryRow representa a fatia de uma categoria na distribuição de
// investimentos.
type CategoryRow struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage int     `json:"percentage"`
}

// ComparisonBar representa um período com os valores de dois territórios lado
// a lado.
type ComparisonBar struct {
	Label    string  `json:"label"`
	ValueA   float64 `json:"value_a"`
	ValueB   float64 `json:"value_b"`
	DisplayA float64 `json:"display_a"`
	DisplayB float64 `json:"display_b"`
}

// PodiumEntry representa uma posição no pódio de municípios.
type PodiumEntry struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
