package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/prefs"
	"github.com/videotube/vtx/internal/shared"
	"github.com/videotube/vtx/internal/ui"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/vtx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	if repo, db, err := r.openPrefs(); err == nil {
		if theme, err := repo.Theme(); err == nil {
			ui.UseDarkTheme(theme == prefs.ThemeDark)
		}
		db.Close()
	}

	r.coord.Start()
	defer r.coord.Stop()
	r.refresher.Start(ctx)
	defer r.refresher.Stop()

	model := ui.NewModel(ctx, r.svc, r.boot, r.coord, r.videos, r.likes)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
