package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/directdev/portal/internal/cli"
	"github.com/directdev/portal/internal/config"
	"github.com/directdev/portal/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Root().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
