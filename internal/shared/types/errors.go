package types

import "errors"

var (
	ErrMunicipalityRequired = errors.New("a municipality is required. Use --municipality to pick one")
	ErrCategoryRequired     = errors.New("a category is required. Use --category to pick one")
	ErrUnknownMunicipality  = errors.New("municipality not found in the catalog")
	ErrUnknownCategory      = errors.New("category not found in the catalog")
	ErrSameTerritory        = errors.New("comparison requires two distinct municipalities")
	ErrInvalidDateRange     = errors.New("the start date must not be after the end date")
)
