package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

// Variável de ambiente que seleciona o backend e o fallback de
// desenvolvimento local.
const (
	APIURLEnvVar  = "PITER_API_URL"
	DefaultAPIURL = "http://localhost:8001"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// ResolveAPIURL determina a URL base do backend: arquivo de configuração,
// depois variável de ambiente (um .env no diretório atual é carregado, se
// existir), por fim o endereço de desenvolvimento local.
func ResolveAPIURL(cfg *types.Config) string {
	if cfg != nil && cfg.APIURL != "" {
		return cfg.APIURL
	}

	// Best-effort: ausência de .env não é erro.
	_ = godotenv.Load()

	if fromEnv := os.Getenv(APIURLEnvVar); fromEnv != "" {
		return fromEnv
	}
	return DefaultAPIURL
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}
