package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var jar http.CookieJar
	if config.Session.CookiePath != "" {
		persistentJar, err := api.NewPersistentJar(config.Session.CookiePath)
		if err != nil {
			logger.Warn("failed to load cookie file, using in-memory jar", "error", err)
		} else {
			jar = persistentJar
		}
	}

	client, err := api.NewClient(config.Server.BaseURL, api.Options{
		Jar:            jar,
		Timeout:        config.Server.Timeout(),
		RequestsPerSec: config.Server.RequestsPerSec,
		Burst:          config.Server.Burst,
		Logger:         logger,
	})
	if err != nil {
		logger.Fatalf("failed to create API client: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Client: client,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "vtx",
		Usage:    "VideoTube client for the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error("not signed in")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
