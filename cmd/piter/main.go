package main

import (
	"fmt"
	"os"

	"github.com/piter-transparencia/piter-dashboard-go/internal/adapter/driven/backend"
	"github.com/piter-transparencia/piter-dashboard-go/internal/adapter/driven/config"
	"github.com/piter-transparencia/piter-dashboard-go/internal/adapter/driven/export"
	"github.com/piter-transparencia/piter-dashboard-go/internal/adapter/driven/snapshot"
	"github.com/piter-transparencia/piter-dashboard-go/internal/adapter/driving/cli"
	"github.com/piter-transparencia/piter-dashboard-go/internal/application/usecase"
	"github.com/piter-transparencia/piter-dashboard-go/pkg/console"
	"github.com/piter-transparencia/piter-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	backendRepo := backend.NewBackendRepository(config.ResolveAPIURL(nil), backend.NewResultCache(backend.DefaultCacheTTL))
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	snapshotRepo, err := snapshot.NewSnapshotRepository("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Inicializa os casos de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		backendRepo,
		exportRepo,
		configRepo,
		snapshotRepo,
		consoleImpl,
	)
	rankingUseCase := usecase.NewRankingUseCase(backendRepo, exportRepo, consoleImpl)
	compareUseCase := usecase.NewCompareUseCase(backendRepo, exportRepo, snapshotRepo, consoleImpl)

	// Define os casos de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)
	app.SetRankingUseCase(rankingUseCase)
	app.SetCompareUseCase(compareUseCase)
	app.SetConfigRepository(configRepo)
	app.SetBackendConfigurer(backendRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
