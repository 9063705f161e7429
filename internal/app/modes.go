package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"principles/internal/card"
	"principles/internal/tui/controller"
	"principles/internal/tui/design"
	"principles/internal/tui/model"
	"principles/pkg/logging"
)

// runCLIMode prints the card the deck would open on.
func runCLIMode(_ context.Context, config *Config, services *Services) error {
	logging.Debug("CLI", "Running in no-TUI mode.")
	unit := services.Renderer.Project(services.Deck.State().Index)
	_, err := fmt.Fprintln(config.stdout(), FormatUnit(unit))
	return err
}

// FormatUnit renders a card as plain text.
func FormatUnit(u card.Unit) string {
	if u.Kind == card.KindEnd {
		return u.Headline()
	}
	return fmt.Sprintf("[%s] %s", u.ProgressLabel(), u.Headline())
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(true)

	logChan := logging.InitForTUI(logLevel(config))
	defer logging.CloseTUIChannel()

	pc := config.PrinciplesConfig
	m := model.InitialModel(model.Deps{
		Deck:           services.Deck,
		Scheduler:      services.Scheduler,
		Renderer:       services.Renderer,
		Session:        services.Session,
		Share:          services.Share,
		Templates:      services.Templates,
		Tip:            services.Tip,
		TipTarget:      model.TipTarget{Address: services.TipTarget.Address, FID: services.TipTarget.FID},
		TipSelection:   services.NewTipSelection(pc.Tip.DefaultPreset),
		Haptics:        services.Haptics,
		Links:          services.Links,
		AttributionURL: pc.App.AttributionURL,
		Author:         pc.App.Author,
		UnitsPerCell:   pc.Gesture.UnitsPerCell,
		StatusDuration: pc.UI.StatusDuration,
		DebugMode:      config.Debug,
		LogChannel:     logChan,
	})

	p := controller.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	services.Deck.Close()
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
