package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

func TestExtractAmounts(t *testing.T) {
	t.Run("amount near a keyword is extracted", func(t *testing.T) {
		text := "Contratação de licença de software no valor de R$ 1.234,56 conforme edital."
		assert.Equal(t, 1234.56, ExtractAmounts(text))
	})

	t.Run("amount without contextual keyword is discarded", func(t *testing.T) {
		padding := strings.Repeat("x", ContextWindow+10)
		text := padding + " pagamento de R$ 1.234,56 referente a obras " + padding + " software"
		assert.Equal(t, 0.0, ExtractAmounts(text))
	})

	t.Run("values below the plausibility floor are discarded", func(t *testing.T) {
		text := "aquisição de software por R$ 50,00"
		assert.Equal(t, 0.0, ExtractAmounts(text))
	})

	t.Run("values above the plausibility ceiling are discarded", func(t *testing.T) {
		text := "plataforma de tecnologia orçada em R$ 999.999.999,00"
		assert.Equal(t, 0.0, ExtractAmounts(text))
	})

	t.Run("keyword matching is case-insensitive", func(t *testing.T) {
		text := "ROBÓTICA educacional: investimento de R$ 10.000,00"
		assert.Equal(t, 10000.0, ExtractAmounts(text))
	})

	t.Run("multiple plausible amounts are summed", func(t *testing.T) {
		text := "software R$ 1.000,00 e robótica R$ 2.500,50"
		assert.Equal(t, 3500.5, ExtractAmounts(text))
	})

	t.Run("empty text yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ExtractAmounts(""))
	})
}

func TestExtractMonthlyInvestments(t *testing.T) {
	gazettes := []entity.Gazette{
		{
			Date:     "2023-01-15",
			Excerpts: []string{"compra de software por R$ 1.000,00"},
		},
		{
			Date:     "2023-01-20",
			Excerpts: []string{"kits de robótica por R$ 2.000,00"},
		},
		{
			Date:     "2023-02-03",
			Excerpts: []string{"tecnologia educacional: R$ 500,00", "sem valores aqui"},
		},
		{
			Date:     "2023-03-01",
			Excerpts: []string{"pavimentação asfáltica por R$ 9.000,00"},
		},
	}

	monthly := ExtractMonthlyInvestments(gazettes)

	require.Len(t, monthly, 2)
	assert.Equal(t, 3000.0, monthly["2023-01"])
	assert.Equal(t, 500.0, monthly["2023-02"])
	assert.NotContains(t, monthly, "2023-03")
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{999.9, "R$ 999,90"},
		{-250.5, "-R$ 250,50"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBRL(tc.value))
	}
}

func TestFormatCompactBRL(t *testing.T) {
	assert.Equal(t, "R$ 1,5M", FormatCompactBRL(1_500_000))
	assert.Equal(t, "R$ 230,0K", FormatCompactBRL(230_000))
	assert.Equal(t, "R$ 999,00", FormatCompactBRL(999))
}
