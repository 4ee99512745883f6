package service

import (
	"math"
	"sort"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

// Limites de truncamento usados pelos gráficos.
const (
	PieTopN    = 6
	PodiumTopN = 3
)

// OtherBucket é o rótulo do balde residual que nunca entra na distribuição.
const OtherBucket = "Outros"

// AggregateCategories reduz um mapa categoria → valor para as fatias do
// gráfico de distribuição: descarta valores não positivos e o balde "Outros",
// calcula o percentual de cada categoria sobre a soma das retidas e devolve
// as topN maiores em ordem decrescente de valor.
//
// Quando a soma das retidas é zero o resultado é vazio: o gráfico renderiza o
// estado vazio em vez de dividir por zero.
func AggregateCategories(values map[string]float64, topN int) []entity.CategoryShare {
	retained := make([]entity.CategoryShare, 0, len(values))
	var sum float64

	for name, value := range values {
		if value <= 0 || name == OtherBucket {
			continue
		}
		retained = append(retained, entity.CategoryShare{Name: name, Value: value})
		sum += value
	}

	if sum == 0 {
		return nil
	}

	for i := range retained {
		retained[i].Percentage = int(math.Round(retained[i].Value / sum * 100))
	}

	// Nome como desempate para manter a saída determinística.
	sort.Slice(retained, func(i, j int) bool {
		if retained[i].Value != retained[j].Value {
			return retained[i].Value > retained[j].Value
		}
		return retained[i].Name < retained[j].Name
	})

	if topN > 0 && len(retained) > topN {
		retained = retained[:topN]
	}

	return retained
}
