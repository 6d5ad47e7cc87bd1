// Package server initializes and runs the account service: it wires the
// database, repositories, the lifecycle service and the RPC surface, and
// handles graceful shutdown.
package server

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/microfarm/accounts/internal/logging"
	"github.com/microfarm/accounts/internal/passcode"
	"github.com/microfarm/accounts/internal/server/config"
	"github.com/microfarm/accounts/internal/server/repositories/repomanager"
	"github.com/microfarm/accounts/internal/server/rpc"
	"github.com/microfarm/accounts/internal/server/services"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	accountService *services.AccountService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	issuer := passcode.NewIssuer(c.PasscodeDigits, sha256.New, c.PasscodeWindow)
	as := services.NewAccountService(rm.Accounts(db), issuer, logger)

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		accountService: as,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := rpc.NewServer(app.config.EndpointAddr, app.logger, app.accountService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migration error", "error", err.Error())
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
