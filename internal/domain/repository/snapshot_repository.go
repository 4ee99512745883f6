package repository

import (
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
)

// SnapshotRepository persists the latest results locally as a convenience
// cache. All operations are best-effort.
type SnapshotRepository interface {
	SaveSearch(snapshot *entity.SearchSnapshot) error
	LoadSearch() (*entity.SearchSnapshot, error)

	SaveComparison(snapshot *entity.ComparisonSnapshot) error
	LoadComparison() (*entity.ComparisonSnapshot, error)
}
