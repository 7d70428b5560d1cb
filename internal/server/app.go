// Package server initializes and runs the Battle API application: it opens
// the database, applies migrations, wires services, handles graceful
// shutdown, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/battleapi/internal/logging"
	"github.com/dmitrijs2005/battleapi/internal/server/config"
	srvhttp "github.com/dmitrijs2005/battleapi/internal/server/http"
	"github.com/dmitrijs2005/battleapi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/battleapi/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	identity    *services.IdentityService
	itemService *services.ItemService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := repomanager.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	identity := services.NewIdentityService(db, rm, cfg)
	us := services.NewUserService(db, rm, identity, cfg)
	is := services.NewItemService(db, rm)

	return &App{config: cfg, logger: logger, userService: us, identity: identity, itemService: is}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := srvhttp.NewServer(app.config, app.logger, app.userService, app.identity, app.itemService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
