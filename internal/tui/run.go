package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/weather-orbit/internal/controller"
)

// Run starts the controller and blocks until the user quits or ctx is done.
func Run(ctx context.Context, ctrl *controller.Controller) error {
	p := tea.NewProgram(newModel(ctrl),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// Send blocks until the program reads the message, and subscribers run on
	// the dispatching goroutine, which may be the UI goroutine itself.
	ctrl.Subscribe(func(s controller.State) {
		go p.Send(stateMsg(s))
	})
	ctrl.Start()

	_, err := p.Run()
	return err
}
