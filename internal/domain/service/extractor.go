package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

// Limites de plausibilidade para valores extraídos de texto livre: filtram
// ruído de OCR e números sem relação com contratações.
const (
	MinPlausibleAmount = 100
	MaxPlausibleAmount = 100_000_000
)

// ContextWindow é o raio, em caracteres, inspecionado ao redor de cada valor
// monetário em busca de uma palavra-chave do domínio.
const ContextWindow = 500

// Notação monetária brasileira: "R$ 1.234,56" (ponto como separador de
// milhar, vírgula como decimal).
var currencyPattern = regexp.MustCompile(`R\$\s*([\d.]+,\d{2})`)

// Palavras que ancoram um valor ao domínio de tecnologia educacional. A
// comparação é case-insensitive.
var contextKeywords = []string{
	"software",
	"aplicativo",
	"tecnologia",
	"digital",
	"educação",
	"robótica",
	"educacional",
	"ensino",
}

// ExtractAmounts varre um texto e devolve a soma dos valores monetários
// plausíveis encontrados próximos a uma palavra-chave do domínio. É uma
// heurística: falsos positivos e negativos são esperados.
func ExtractAmounts(text string) float64 {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)
	var total float64

	for _, match := range currencyPattern.FindAllStringSubmatchIndex(text, -1) {
		raw := text[match[2]:match[3]]
		value, err := parseBrazilianAmount(raw)
		if err != nil {
			continue
		}
		if value < MinPlausibleAmount || value > MaxPlausibleAmount {
			continue
		}
		if !hasKeywordNearby(lower, match[0], match[1]) {
			continue
		}
		total += value
	}

	return total
}

// ExtractMonthlyInvestments acumula, por mês de publicação (YYYY-MM), os
// valores extraídos dos excertos de cada diário.
func ExtractMonthlyInvestments(gazettes []entity.Gazette) map[string]float64 {
	monthly := make(map[string]float64)

	for _, gazette := range gazettes {
		var sum float64
		for _, excerpt := range gazette.Excerpts {
			sum += ExtractAmounts(excerpt)
		}
		if sum == 0 {
			continue
		}
		if len(gazette.Date) < 7 {
			continue
		}
		monthly[gazette.Date[:7]] += sum
	}

	return monthly
}

// parseBrazilianAmount converte "1.234,56" em 1234.56.
func parseBrazilianAmount(raw string) (float64, error) {
	normalized := strings.ReplaceAll(raw, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return strconv.ParseFloat(normalized, 64)
}

func hasKeywordNearby(lowerText string, start, end int) bool {
	from := start - ContextWindow
	if from < 0 {
		from = 0
	}
	to := end + ContextWindow
	if to > len(lowerText) {
		to = len(lowerText)
	}
	window := lowerText[from:to]

	for _, keyword := range contextKeywords {
		if strings.Contains(window, keyword) {
			return true
		}
	}
	return false
}
