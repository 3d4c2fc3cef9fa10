// Package cli implements the portal CLI commands around the sync engine.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/directdev/portal/internal/api"
	"github.com/directdev/portal/internal/config"
	"github.com/directdev/portal/internal/creds"
	"github.com/directdev/portal/internal/logging"
	"github.com/directdev/portal/internal/repo/prefs"
	"github.com/directdev/portal/internal/store"
	"github.com/directdev/portal/internal/syncer"
)

// App wires the engine together for the command tree: local store, API
// client, credential service and the syncer.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	db     *sql.DB
	prefs  prefs.Repository
	creds  *creds.Service
	syncer *syncer.Syncer
	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	prefsRepo := prefs.NewSQLiteRepository(db)
	credentials := creds.NewService(prefsRepo)
	apiClient := api.New(cfg.BaseURL, cfg.HTTPTimeout)

	return &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		prefs:  prefsRepo,
		creds:  credentials,
		syncer: syncer.New(apiClient, db, credentials, log),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}
