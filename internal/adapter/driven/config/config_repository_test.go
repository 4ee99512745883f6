package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	repo := NewConfigRepository()

	t.Run("toml", func(t *testing.T) {
		path := writeTempConfig(t, "piter.toml", `
api_url = "http://backend:9000"
municipality = "goiania"
category = "robotica"
report_type = ["csv", "pdf"]
`)
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "http://backend:9000", cfg.APIURL)
		assert.Equal(t, "goiania", cfg.Municipality)
		assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempConfig(t, "piter.yaml", `
municipality: aparecida
since: "2023-01-01"
until: "2023-12-31"
`)
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "aparecida", cfg.Municipality)
		assert.Equal(t, "2023-01-01", cfg.Since)
	})

	t.Run("json", func(t *testing.T) {
		path := writeTempConfig(t, "piter.json", `{"category": "software", "size": 100}`)
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "software", cfg.Category)
		assert.Equal(t, 100, cfg.Size)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempConfig(t, "piter.ini", "municipality=goiania")
		_, err := repo.LoadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestResolveAPIURL(t *testing.T) {
	t.Run("config file wins", func(t *testing.T) {
		url := ResolveAPIURL(&types.Config{APIURL: "http://cfg:1234"})
		assert.Equal(t, "http://cfg:1234", url)
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(APIURLEnvVar, "http://env:5678")
		assert.Equal(t, "http://env:5678", ResolveAPIURL(nil))
	})

	t.Run("local development fallback", func(t *testing.T) {
		t.Setenv(APIURLEnvVar, "")
		assert.Equal(t, DefaultAPIURL, ResolveAPIURL(nil))
	})
}
