package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
)

const (
	searchFile     = "latest_search.json"
	comparisonFile = "latest_comparison.json"
)

// SnapshotRepositoryImpl persiste os últimos resultados em arquivos JSON no
// diretório de cache do usuário.
type SnapshotRepositoryImpl struct {
	dir string
}

// NewSnapshotRepository cria o repositório de snapshots; dir vazio usa
// <user-cache>/piter-dashboard.
func NewSnapshotRepository(dir string) (repository.SnapshotRepository, error) {
	if dir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user cache dir: %w", err)
		}
		dir = filepath.Join(cacheDir, "piter-dashboard")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &SnapshotRepositoryImpl{dir: dir}, nil
}

func (r *SnapshotRepositoryImpl) SaveSearch(snap *entity.SearchSnapshot) error {
	return r.write(searchFile, snap)
}

func (r *SnapshotRepositoryImpl) LoadSearch() (*entity.SearchSnapshot, error) {
	var snap entity.SearchSnapshot
	if err := r.read(searchFile, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *SnapshotRepositoryImpl) SaveComparison(snap *entity.ComparisonSnapshot) error {
	return r.write(comparisonFile, snap)
}

func (r *SnapshotRepositoryImpl) LoadComparison() (*entity.ComparisonSnapshot, error) {
	var snap entity.ComparisonSnapshot
	if err := r.read(comparisonFile, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *SnapshotRepositoryImpl) write(name string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepositoryImpl) read(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return nil
}
