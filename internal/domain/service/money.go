package service

import (
	"fmt"
	"strings"
)

// FormatBRL formata um valor no padrão monetário brasileiro: "R$ 1.234,56".
func FormatBRL(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	whole := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(whole, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	formatted := "R$ " + strings.Join(groups, ".") + "," + decPart
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatCompactBRL abrevia valores grandes para rótulos de gráfico:
// "R$ 1,5M", "R$ 230,0K".
func FormatCompactBRL(value float64) string {
	switch {
	case value >= 1_000_000:
		return strings.Replace(fmt.Sprintf("R$ %.1fM", value/1_000_000), ".", ",", 1)
	case value >= 1_000:
		return strings.Replace(fmt.Sprintf("R$ %.1fK", value/1_000), ".", ",", 1)
	default:
		return FormatBRL(value)
	}
}
