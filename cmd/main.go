package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/praslea/lectern/internal/api"
	"github.com/praslea/lectern/internal/services"
	"github.com/praslea/lectern/internal/shared"
	"github.com/praslea/lectern/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	httpClient := &http.Client{Timeout: time.Duration(config.API.TimeoutSeconds) * time.Second}
	client := api.NewClient(config.API.BaseURL, httpClient, config.API.RateLimit, logger)

	var tokens store.TokenStore
	var cache *store.Cache
	if _, err := os.Stat(config.Database.Path); err == nil {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			tokens = store.NewSQLiteTokens(db)
			cache = store.NewCache(db)
		} else {
			logger.Warn("failed to open database", "path", config.Database.Path, "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Client:     client,
		Teachers:   services.NewTeacherService(client),
		Playlists:  services.NewPlaylistService(client),
		Videos:     services.NewVideoService(client),
		Uploads:    services.NewUploadService(config.Upload.URL, config.Upload.Preset, httpClient),
		Tokens:     tokens,
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "lectern",
		Usage:    "Manage course playlists and videos on the teaching dashboard",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
