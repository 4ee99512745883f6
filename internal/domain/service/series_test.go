package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

func TestBuildPeriodSeries(t *testing.T) {
	t.Run("monthly labels and chronological order", func(t *testing.T) {
		series := BuildPeriodSeries(map[string]float64{
			"2023-03": 50000,
			"2023-01": 100,
			"2023-02": 0,
		}, GroupByMonth)

		require.Len(t, series, 3)
		assert.Equal(t, "Jan/23", series[0].Label)
		assert.Equal(t, "Fev/23", series[1].Label)
		assert.Equal(t, "Mar/23", series[2].Label)

		for i := 1; i < len(series); i++ {
			assert.LessOrEqual(t, series[i-1].PeriodKey, series[i].PeriodKey)
		}
	})

	t.Run("visibility floor keeps original value for tooltip", func(t *testing.T) {
		series := BuildPeriodSeries(map[string]float64{
			"2023-01": 100,
			"2023-02": 0,
			"2023-03": 50000,
		}, GroupByMonth)

		require.Len(t, series, 3)
		assert.Equal(t, 100.0, series[0].Value)
		assert.Equal(t, 2500.0, series[0].DisplayValue)
		assert.Equal(t, 0.0, series[1].DisplayValue)
		assert.Equal(t, 50000.0, series[2].DisplayValue)
	})

	t.Run("yearly keys used as-is", func(t *testing.T) {
		series := BuildPeriodSeries(map[string]float64{
			"2022": 1000,
			"2023": 2000,
		}, GroupByYear)

		require.Len(t, series, 2)
		assert.Equal(t, "2022", series[0].Label)
		assert.Equal(t, "2023", series[1].Label)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, BuildPeriodSeries(nil, GroupByMonth))
	})
}

func TestApplyVisibilityFloorIdempotent(t *testing.T) {
	points := []entity.PeriodPoint{
		{PeriodKey: "2023-01", Value: 100, DisplayValue: 100},
		{PeriodKey: "2023-02", Value: 0, DisplayValue: 0},
		{PeriodKey: "2023-03", Value: 3000, DisplayValue: 3000},
		{PeriodKey: "2023-04", Value: 50000, DisplayValue: 50000},
	}
	max := SeriesMax(points)

	ApplyVisibilityFloor(points, max)
	first := make([]entity.PeriodPoint, len(points))
	copy(first, points)

	ApplyVisibilityFloor(points, max)
	assert.Equal(t, first, points)

	// Valores no piso ou acima ficam intocados.
	assert.Equal(t, 3000.0, points[2].DisplayValue)
	assert.Equal(t, 50000.0, points[3].DisplayValue)
}

func TestMergeSeries(t *testing.T) {
	t.Run("unions keys with zero defaults", func(t *testing.T) {
		merged := MergeSeries(
			map[string]float64{"2023-01": 1000, "2023-02": 2000},
			map[string]float64{"2023-02": 500, "2023-03": 4000},
			GroupByMonth,
		)

		require.Len(t, merged, 3)
		assert.Equal(t, "2023-01", merged[0].PeriodKey)
		assert.Equal(t, 1000.0, merged[0].ValueA)
		assert.Equal(t, 0.0, merged[0].ValueB)
		assert.Equal(t, 2000.0, merged[1].ValueA)
		assert.Equal(t, 500.0, merged[1].ValueB)
		assert.Equal(t, 4000.0, merged[2].ValueB)
	})

	t.Run("floor uses the combined max", func(t *testing.T) {
		merged := MergeSeries(
			map[string]float64{"2023-01": 100},
			map[string]float64{"2023-01": 100000},
			GroupByMonth,
		)

		require.Len(t, merged, 1)
		assert.Equal(t, 100.0, merged[0].ValueA)
		assert.Equal(t, 5000.0, merged[0].DisplayA)
		assert.Equal(t, 100000.0, merged[0].DisplayB)
	})

	t.Run("both empty yields nil", func(t *testing.T) {
		assert.Nil(t, MergeSeries(nil, nil, GroupByMonth))
	})
}
