package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/prefs"
	"github.com/videotube/vtx/internal/shared"
)

// SetupDatabase initializes the preference database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := shared.LoadConfig(configPath)
		if err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
		} else {
			config = loaded
		}
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return nil
}

// SetupConfig writes a config.toml from the embedded template.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", configPath)
	return r.writePlain("✓ Created %s; edit server.base_url before connecting\n", configPath)
}

// openPrefs opens the preference database from the runner's config.
func (r *Runner) openPrefs() (*prefs.Repository, *sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database (run 'vtx setup database'): %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	return prefs.NewRepository(db), db, nil
}

// ThemeShow prints the persisted display theme.
func (r *Runner) ThemeShow(ctx context.Context, cmd *cli.Command) error {
	repo, db, err := r.openPrefs()
	if err != nil {
		return err
	}
	defer db.Close()

	theme, err := repo.Theme()
	if err != nil {
		return err
	}
	return r.writePlain("%s\n", theme)
}

// ThemeSet stores a display theme.
func (r *Runner) ThemeSet(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: theme name (light or dark)", shared.ErrMissingArgument)
	}

	repo, db, err := r.openPrefs()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.SetTheme(prefs.Theme(name)); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	return r.writePlain("✓ Theme set to %s\n", name)
}

// ThemeToggle flips between light and dark.
func (r *Runner) ThemeToggle(ctx context.Context, cmd *cli.Command) error {
	repo, db, err := r.openPrefs()
	if err != nil {
		return err
	}
	defer db.Close()

	theme, err := repo.ToggleTheme()
	if err != nil {
		return err
	}
	return r.writePlain("✓ Theme is now %s\n", theme)
}
