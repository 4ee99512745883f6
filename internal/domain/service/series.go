package service

import (
	"sort"
	"strings"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

// Grouping é a granularidade de agrupamento temporal de uma série.
type Grouping string

const (
	GroupByMonth Grouping = "month"
	GroupByYear  Grouping = "year"
)

// VisibilityFloorRatio: valores positivos abaixo desta fração do máximo da
// série são exibidos no piso para não sumirem ao lado das barras maiores.
const VisibilityFloorRatio = 0.05

// Abreviações pt-BR de três letras, indexadas pelo componente MM da chave.
var monthNames = map[string]string{
	"01": "Jan", "02": "Fev", "03": "Mar", "04": "Abr",
	"05": "Mai", "06": "Jun", "07": "Jul", "08": "Ago",
	"09": "Set", "10": "Out", "11": "Nov", "12": "Dez",
}

// PeriodLabel converte uma chave de período em rótulo de eixo: "2023-04"
// vira "Abr/23" no agrupamento mensal; chaves anuais são usadas como estão.
func PeriodLabel(key string, grouping Grouping) string {
	if grouping != GroupByMonth || !strings.Contains(key, "-") {
		return key
	}
	parts := strings.SplitN(key, "-", 2)
	year, month := parts[0], parts[1]
	name, ok := monthNames[month]
	if !ok {
		name = month
	}
	if len(year) >= 4 {
		year = year[2:4]
	}
	return name + "/" + year
}

// BuildPeriodSeries converte um mapa período → valor em uma série ordenada
// pronta para o gráfico de barras, com o piso de visibilidade já aplicado.
// A ordenação é pela chave bruta: lexicográfica equivale a cronológica para
// chaves zero-padded ("YYYY-MM" e "YYYY").
func BuildPeriodSeries(values map[string]float64, grouping Grouping) []entity.PeriodPoint {
	if len(values) == 0 {
		return nil
	}

	points := make([]entity.PeriodPoint, 0, len(values))
	for key, value := range values {
		points = append(points, entity.PeriodPoint{
			PeriodKey:    key,
			Label:        PeriodLabel(key, grouping),
			Value:        value,
			DisplayValue: value,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].PeriodKey < points[j].PeriodKey
	})

	ApplyVisibilityFloor(points, SeriesMax(points))
	return points
}

// SeriesMax devolve o maior valor original da série.
func SeriesMax(points []entity.PeriodPoint) float64 {
	var max float64
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// ApplyVisibilityFloor eleva, apenas para exibição, valores estritamente
// positivos abaixo de 5% do máximo informado; zeros permanecem zero e o valor
// original fica preservado em Value. Reaplicar com o mesmo máximo não altera a
// série.
func ApplyVisibilityFloor(points []entity.PeriodPoint, max float64) {
	if max <= 0 {
		return
	}
	floor := max * VisibilityFloorRatio
	for i := range points {
		if points[i].DisplayValue > 0 && points[i].DisplayValue < floor {
			points[i].DisplayValue = floor
		}
	}
}

// MergeSeries mescla as séries de dois territórios: união das chaves de
// período, zero para chaves ausentes e piso de visibilidade aplicado por lado
// usando o máximo combinado.
func MergeSeries(a, b map[string]float64, grouping Grouping) []entity.ComparisonPoint {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	if len(keys) == 0 {
		return nil
	}

	var max float64
	for _, v := range a {
		if v > max {
			max = v
		}
	}
	for _, v := range b {
		if v > max {
			max = v
		}
	}

	merged := make([]entity.ComparisonPoint, 0, len(keys))
	for key := range keys {
		merged = append(merged, entity.ComparisonPoint{
			PeriodKey: key,
			Label:     PeriodLabel(key, grouping),
			ValueA:    a[key],
			ValueB:    b[key],
			DisplayA:  floorValue(a[key], max),
			DisplayB:  floorValue(b[key], max),
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].PeriodKey < merged[j].PeriodKey
	})

	return merged
}

func floorValue(value, max float64) float64 {
	if max <= 0 || value <= 0 {
		return value
	}
	if floor := max * VisibilityFloorRatio; value < floor {
		return floor
	}
	return value
}
