package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vsinha/mockgen/pkg/application/services/generator"
	"github.com/vsinha/mockgen/pkg/infrastructure/config"
	"github.com/vsinha/mockgen/pkg/interfaces/cli/commands"
)

// command is what a subcommand's flag parsing produces
type command interface {
	Execute(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	name := "generate"
	if len(args) > 0 && (args[0] == "generate" || args[0] == "serve") {
		name, args = args[0], args[1:]
	}

	var (
		cmd command
		log *slog.Logger
		err error
	)
	switch name {
	case "serve":
		cmd, log, err = parseServe(args)
	default:
		cmd, log, err = parseGenerate(args)
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if err := cmd.Execute(ctx); err != nil {
		report(log, os.Stderr, err)
		return 1
	}
	return 0
}

func parseGenerate(args []string) (command, *slog.Logger, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "Path to YAML configuration file")
		seed       = fs.Int64("seed", 0, "Random seed for reproducible output (0 = time based)")
		format     = fs.String("format", "", "Output format: json, xlsx")
		outputFile = fs.String("output", "", "Output file (relative to the data directory)")
		quiet      = fs.Bool("quiet", false, "Suppress progress output")
		help       = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "format":
			cfg.Format = *format
		case "output":
			cfg.OutputFile = *outputFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := setupLogger(cfg.Env)
	return commands.NewGenerateCommand(commands.GenerateConfig{
		Settings: cfg,
		Quiet:    *quiet,
		Help:     *help,
	}, log), log, nil
}

func parseServe(args []string) (command, *slog.Logger, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "Path to YAML configuration file")
		addr       = fs.String("addr", "", "Listen address (host:port)")
		help       = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, nil, err
	}
	if *addr != "" {
		cfg.Address = *addr
	}

	log := setupLogger(cfg.Env)
	return commands.NewServeCommand(commands.ServeConfig{
		Settings: cfg,
		Help:     *help,
	}, log), log, nil
}

// report logs a failed run with its chain of wrapping contexts, and prints
// the captured stack of a panicking stage
func report(log *slog.Logger, stderr io.Writer, err error) {
	const op = "main.report"

	chain := errorChain(err)
	fmt.Fprintf(stderr, "\n❌ Error: %v\n", err)
	for i, step := range chain {
		fmt.Fprintf(stderr, "  %*s%s\n", 2*i, "", step)
	}

	log = log.With(slog.String("op", op), slog.Any("chain", chain))

	var stageErr *generator.StageError
	if errors.As(err, &stageErr) {
		log.Error("generation failed", slog.String("stage", stageErr.Stage), slog.String("error", stageErr.Err.Error()))
		if len(stageErr.Stack) > 0 {
			stderr.Write(stageErr.Stack)
		}
		return
	}
	log.Error("command failed", slog.String("error", err.Error()))
}

// errorChain splits a %w-wrapped error into one context per layer, outermost first
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		inner := errors.Unwrap(err)
		if inner == nil {
			chain = append(chain, err.Error())
			break
		}
		chain = append(chain, strings.TrimSuffix(err.Error(), ": "+inner.Error()))
		err = inner
	}
	return chain
}
