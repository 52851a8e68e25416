package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	gameinadapter "mindrng/internal/modules/game/adapter/in"
	gameoutadapter "mindrng/internal/modules/game/adapter/out"
	gameservice "mindrng/internal/modules/game/service"
	gameusecase "mindrng/internal/modules/game/usecase"
	"mindrng/internal/platform/clock"
	"mindrng/internal/platform/config"
	uiapp "mindrng/internal/ui/app"
)

type App struct {
	GameCLI gameinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	projector, err := gameoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}

	gameUC := gameusecase.NewInteractor(
		gameservice.NewGameService(clk, gameoutadapter.NewRNGSource(clk)),
		gameoutadapter.NewFileHistoryStore(cfg.SessionFile),
		gameoutadapter.NewFileCSVExporter(),
		projector,
		gameoutadapter.NewYAMLSettingsStore(cfg.SettingsPath),
		clk,
		cfg.ExportDir,
	)

	return &App{GameCLI: gameinadapter.NewCLIHandler(gameUC)}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.GameCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
