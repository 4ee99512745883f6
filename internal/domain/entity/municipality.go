package entity

import "strings"

// Municipality é uma entrada do catálogo de municípios suportados.
type Municipality struct {
	IBGECode  string
	Name      string
	Slug      string
	StateCode string
}

// Category é uma categoria tecnológica pesquisável e sua querystring associada.
type Category struct {
	Slug        string
	Label       string
	Querystring string
}

// Catálogo fixo, espelhando o escopo atual da plataforma (municípios de Goiás).
var Municipalities = []Municipality{
	{IBGECode: "5208707", Name: "Goiânia", Slug: "goiania", StateCode: "GO"},
	{IBGECode: "5201405", Name: "Aparecida de Goiânia", Slug: "aparecida-de-goiania", StateCode: "GO"},
}

// States são as UFs suportadas, identificadas pelo prefixo IBGE de dois dígitos.
var States = []Municipality{
	{IBGECode: "52", Name: "Goiás", Slug: "goias", StateCode: "GO"},
}

var Categories = []Category{
	{Slug: "robotica", Label: "Robótica Educacional", Querystring: "robótica educacional tecnologia ensino"},
	{Slug: "software", Label: "Software e Aplicativos", Querystring: "software aplicativo tecnologia digital educação"},
}

// FindMunicipality resolve um município por slug, nome ou código IBGE.
func FindMunicipality(key string) (Municipality, bool) {
	needle := strings.ToLower(strings.TrimSpace(key))
	for _, m := range Municipalities {
		if needle == m.Slug || needle == strings.ToLower(m.Name) || needle == m.IBGECode {
			return m, true
		}
	}
	return Municipality{}, false
}

// FindCategory resolve uma categoria por slug ou rótulo.
func FindCategory(key string) (Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(key))
	for _, c := range Categories {
		if needle == c.Slug || needle == strings.ToLower(c.Label) {
			return c, true
		}
	}
	return Category{}, false
}

// MunicipalityName devolve o nome para exibição de um território, ou o
// próprio código quando o território não está no catálogo.
func MunicipalityName(territoryID string) string {
	for _, m := range Municipalities {
		if m.IBGECode == territoryID {
			return m.Name
		}
	}
	for _, s := range States {
		if s.IBGECode == territoryID {
			return s.Name
		}
	}
	return territoryID
}
