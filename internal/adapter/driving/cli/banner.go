package cli

import (
	"fmt"

	"github.com/piter-transparencia/piter-dashboard-go/pkg/console"
	"github.com/piter-transparencia/piter-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$  /$$$$$$ /$$$$$$$$ /$$$$$$$$ /$$$$$$$
        | $$__  $$|_  $$_/|__  $$__/| $$_____/| $$__  $$
        | $$  \ $$  | $$     | $$   | $$      | $$  \ $$
        | $$$$$$$/  | $$     | $$   | $$$$$   | $$$$$$$/
        | $$____/   | $$     | $$   | $$__/   | $$__  $$
        | $$        | $$     | $$   | $$      | $$  \ $$
        | $$       /$$$$$$   | $$   | $$$$$$$$| $$  | $$
        |__/      |______/   |__/   |________/|__/  |__/
        `
	fmt.Println(console.BrightGreen(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(console.BrightBlue(fmt.Sprintf("Painel de Investimentos em Tecnologia Educacional (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}
