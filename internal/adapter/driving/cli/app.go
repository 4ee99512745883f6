package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piter-transparencia/piter-dashboard-go/internal/application/usecase"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
	"github.com/piter-transparencia/piter-dashboard-go/pkg/version"
)

// BackendConfigurer permite redirecionar o backend depois que o arquivo de
// configuração foi lido, já que os repositórios são montados antes do parse
// das flags.
type BackendConfigurer interface {
	SetBaseURL(baseURL string)
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd           *cobra.Command
	dashboardUseCase  *usecase.DashboardUseCase
	rankingUseCase    *usecase.RankingUseCase
	compareUseCase    *usecase.CompareUseCase
	configRepo        repository.ConfigRepository
	backendConfigurer BackendConfigurer
	version           string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "piter",
		Short:   "P.I.T.E.R - Painel de Investimentos em Tecnologia Educacional",
		Version: formattedVersion, // Use a versão formatada
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "P.I.T.E.R Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("municipality", "m", "", "Municipality to analyze (slug, name or IBGE code, e.g. goiania)")
	rootCmd.PersistentFlags().StringP("category", "c", "", "Technology category to search: robotica, software")
	rootCmd.PersistentFlags().StringP("since", "s", "", "Start of the publication date range (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringP("until", "u", "", "End of the publication date range (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Int("size", 0, "Maximum number of gazettes to fetch per search")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("ranking", false, "Display the municipality investment ranking")
	rootCmd.PersistentFlags().String("state", "", "Restrict the ranking to a state (e.g. goias or 52)")
	rootCmd.PersistentFlags().String("compare-with", "", "Compare the selected municipality with another one")
	rootCmd.PersistentFlags().Bool("data-output", false, "List the analysis files available on the backend")
	rootCmd.PersistentFlags().Bool("list", false, "List processed analyses with pagination")
	rootCmd.PersistentFlags().Int("page", 1, "Page number for --list")
	rootCmd.PersistentFlags().Int("page-size", 10, "Page size for --list")
	rootCmd.PersistentFlags().Bool("health", false, "Check backend availability and exit")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	municipality, _ := app.rootCmd.Flags().GetString("municipality")
	category, _ := app.rootCmd.Flags().GetString("category")
	since, _ := app.rootCmd.Flags().GetString("since")
	until, _ := app.rootCmd.Flags().GetString("until")
	size, _ := app.rootCmd.Flags().GetInt("size")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	ranking, _ := app.rootCmd.Flags().GetBool("ranking")
	state, _ := app.rootCmd.Flags().GetString("state")
	compareWith, _ := app.rootCmd.Flags().GetString("compare-with")
	dataOutput, _ := app.rootCmd.Flags().GetBool("data-output")
	list, _ := app.rootCmd.Flags().GetBool("list")
	page, _ := app.rootCmd.Flags().GetInt("page")
	pageSize, _ := app.rootCmd.Flags().GetInt("page-size")
	health, _ := app.rootCmd.Flags().GetBool("health")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		Municipality: municipality,
		Category:     category,
		Since:        since,
		Until:        until,
		State:        state,
		Size:         size,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		Ranking:      ranking,
		CompareWith:  compareWith,
		DataOutput:   dataOutput,
		List:         list,
		Health:       health,
		Page:         page,
		PageSize:     pageSize,
	}

	return args, nil
}

// mergeConfigFile preenche argumentos ausentes com os valores do arquivo de
// configuração. Flags explícitas têm precedência.
func (app *CLIApp) mergeConfigFile(args *types.CLIArgs) error {
	if args.ConfigFile == "" || app.configRepo == nil {
		return nil
	}

	cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if cfg.APIURL != "" && app.backendConfigurer != nil {
		app.backendConfigurer.SetBaseURL(cfg.APIURL)
	}

	if args.Municipality == "" {
		args.Municipality = cfg.Municipality
	}
	if args.Category == "" {
		args.Category = cfg.Category
	}
	if args.Since == "" {
		args.Since = cfg.Since
	}
	if args.Until == "" {
		args.Until = cfg.Until
	}
	if args.Size == 0 {
		args.Size = cfg.Size
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(cfg.ReportType) > 0 && !app.rootCmd.Flags().Changed("report-type") {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" && !app.rootCmd.Flags().Changed("dir") {
		absDir, err := filepath.Abs(cfg.Dir)
		if err != nil {
			return err
		}
		args.Dir = absDir
	}

	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go checkLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if err := app.mergeConfigFile(cliArgs); err != nil {
		return err
	}

	ctx := context.Background()

	// Modos exclusivos, na ordem de precedência
	switch {
	case cliArgs.Health:
		return app.dashboardUseCase.RunHealthCheck(ctx)
	case cliArgs.DataOutput:
		return app.dashboardUseCase.RunDataOutput(ctx)
	case cliArgs.List:
		return app.dashboardUseCase.RunList(ctx, cliArgs)
	case cliArgs.Ranking || cliArgs.State != "":
		return app.rankingUseCase.RunRanking(ctx, cliArgs)
	case cliArgs.CompareWith != "":
		return app.compareUseCase.RunComparison(ctx, cliArgs)
	default:
		return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
	}
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetRankingUseCase sets the ranking use case for the CLI app.
func (app *CLIApp) SetRankingUseCase(useCase *usecase.RankingUseCase) {
	app.rankingUseCase = useCase
}

// SetCompareUseCase sets the comparison use case for the CLI app.
func (app *CLIApp) SetCompareUseCase(useCase *usecase.CompareUseCase) {
	app.compareUseCase = useCase
}

// SetConfigRepository sets the configuration repository for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetBackendConfigurer sets the backend configurer for the CLI app.
func (app *CLIApp) SetBackendConfigurer(configurer BackendConfigurer) {
	app.backendConfigurer = configurer
}
