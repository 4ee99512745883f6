package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piter-transparencia/piter-dashboard-go/internal/adapter/driven/config"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

// fakeConfigurer registra a URL aplicada ao backend.
type fakeConfigurer struct {
	baseURL string
}

func (f *fakeConfigurer) SetBaseURL(baseURL string) {
	f.baseURL = baseURL
}

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergeConfigFileAppliesAPIURL(t *testing.T) {
	path := writeTempConfig(t, "piter.toml", `
api_url = "http://piter.example.org:8001"
municipality = "goiania"
category = "software"
`)

	app := NewCLIApp("test")
	app.SetConfigRepository(config.NewConfigRepository())
	configurer := &fakeConfigurer{}
	app.SetBackendConfigurer(configurer)

	args := &types.CLIArgs{ConfigFile: path}
	require.NoError(t, app.mergeConfigFile(args))

	assert.Equal(t, "http://piter.example.org:8001", configurer.baseURL)
	assert.Equal(t, "goiania", args.Municipality)
	assert.Equal(t, "software", args.Category)
}

func TestMergeConfigFileFlagsTakePrecedence(t *testing.T) {
	path := writeTempConfig(t, "piter.toml", `
municipality = "goiania"
category = "software"
since = "2023-01-01"
`)

	app := NewCLIApp("test")
	app.SetConfigRepository(config.NewConfigRepository())

	args := &types.CLIArgs{
		ConfigFile:   path,
		Municipality: "aparecida-de-goiania",
	}
	require.NoError(t, app.mergeConfigFile(args))

	assert.Equal(t, "aparecida-de-goiania", args.Municipality)
	assert.Equal(t, "software", args.Category)
	assert.Equal(t, "2023-01-01", args.Since)
}

func TestMergeConfigFileWithoutConfigurer(t *testing.T) {
	path := writeTempConfig(t, "piter.json", `{"api_url": "http://localhost:9001"}`)

	app := NewCLIApp("test")
	app.SetConfigRepository(config.NewConfigRepository())

	// Sem configurer registrado a URL do arquivo é simplesmente ignorada.
	require.NoError(t, app.mergeConfigFile(&types.CLIArgs{ConfigFile: path}))
}
