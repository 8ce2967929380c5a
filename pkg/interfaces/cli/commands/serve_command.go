package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vsinha/mockgen/pkg/infrastructure/config"
	"github.com/vsinha/mockgen/pkg/interfaces/cli/output"
	"github.com/vsinha/mockgen/pkg/interfaces/http/handlers"
)

const shutdownTimeout = 5 * time.Second

// ServeConfig holds configuration for the preview server
type ServeConfig struct {
	Settings *config.Config
	Help     bool
	Out      io.Writer
}

// ServeCommand serves the generated JSON document over HTTP
type ServeCommand struct {
	config ServeConfig
	log    *slog.Logger
}

// NewServeCommand creates a new serve command
func NewServeCommand(cfg ServeConfig, log *slog.Logger) *ServeCommand {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &ServeCommand{config: cfg, log: log}
}

// Execute serves until ctx is cancelled or the listener fails
func (cmd *ServeCommand) Execute(ctx context.Context) error {
	const op = "commands.ServeCommand.Execute"

	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	settings := *cmd.config.Settings
	settings.Format = config.FormatJSON
	path := settings.OutputPath()

	srv := &http.Server{
		Addr:         settings.Address,
		Handler:      handlers.NewRouter(cmd.log, output.NewFileSource(path), settings.AllowedOrigins),
		ReadTimeout:  settings.Timeout,
		WriteTimeout: settings.Timeout,
		IdleTimeout:  settings.IdleTimeout,
	}

	log := cmd.log.With(slog.String("op", op))
	log.Info("server started", slog.String("address", settings.Address), slog.String("document", path))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	log.Info("server stopped")
	return err
}

func (cmd *ServeCommand) printHelp() {
	fmt.Fprintln(cmd.config.Out, `PSC Demo Data Preview Server

USAGE:
    mockgen serve [OPTIONS]

Serves the generated JSON document to the front-end.

ROUTES:
    GET /api/demo-data                  Whole document
    GET /api/demo-data/{collection}     One collection
    GET /healthz                        Liveness

OPTIONS:
    -config <PATH>      YAML configuration file (or MOCKGEN_CONFIG)
    -addr <HOST:PORT>   Listen address
    -help               Show this help message`)
}
