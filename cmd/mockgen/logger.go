package main

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/vsinha/mockgen/pkg/infrastructure/config"
)

const errorLogFile = "errors.log"

// dualHandler writes every record to the core handler and errors to a file
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		if err = h.coreHandler.Handle(ctx, r); err != nil {
			return err
		}
	}

	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		// the error file is best effort
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

// setupLogger logs to stderr so progress on stdout stays readable
func setupLogger(env string) *slog.Logger {
	return newLogger(env, os.Stderr, errorLogFile)
}

func newLogger(env string, w *os.File, errorPath string) *slog.Logger {
	level := slog.LevelDebug
	if env == config.EnvProd {
		level = slog.LevelInfo
	}

	var coreHandler slog.Handler
	switch env {
	case config.EnvDev:
		coreHandler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	errorHandler := slog.NewTextHandler(&lazyFile{path: errorPath}, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}

// lazyFile opens its file for appending on the first write, so a run that
// logs no errors leaves nothing on disk
type lazyFile struct {
	path string
	once sync.Once
	file *os.File
	err  error
}

func (f *lazyFile) Write(p []byte) (int, error) {
	f.once.Do(func() {
		f.file, f.err = os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	})
	if f.err != nil {
		return 0, f.err
	}
	return f.file.Write(p)
}
