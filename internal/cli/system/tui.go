package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tripweaver/internal/cli"
	"github.com/julianstephens/tripweaver/internal/request"
	"github.com/julianstephens/tripweaver/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	draft := request.NewDraft(ctx.Config.DataSource, ctx.Config.ShowExplanation)

	p := tea.NewProgram(tui.NewModel(ctx.NewController(), draft), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
