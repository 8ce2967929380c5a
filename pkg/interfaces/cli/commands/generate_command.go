package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/vsinha/mockgen/pkg/application/services/generator"
	"github.com/vsinha/mockgen/pkg/domain/repositories"
	"github.com/vsinha/mockgen/pkg/infrastructure/config"
	"github.com/vsinha/mockgen/pkg/infrastructure/events"
	"github.com/vsinha/mockgen/pkg/infrastructure/repositories/xlsx"
	"github.com/vsinha/mockgen/pkg/interfaces/cli/output"
)

// GenerateConfig holds configuration for demo data generation
type GenerateConfig struct {
	Settings   *config.Config
	Repository repositories.WorkbookRepository // xlsx files on disk when nil
	Quiet      bool                            // Suppress progress and summary output
	Help       bool                            // Show help
	Out        io.Writer                       // Progress destination, os.Stdout when nil
}

// GenerateCommand loads the workbooks, runs the generator and writes the document
type GenerateCommand struct {
	config GenerateConfig
	log    *slog.Logger
	rand   *rand.Rand
	repo   repositories.WorkbookRepository
	runID  string
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(cfg GenerateConfig, log *slog.Logger) *GenerateCommand {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Quiet {
		cfg.Out = io.Discard
	}

	if cfg.Repository == nil {
		cfg.Repository = xlsx.NewLoader()
	}

	runID := uuid.NewString()
	return &GenerateCommand{
		config: cfg,
		log:    log.With(slog.String("run_id", runID)),
		rand:   generator.NewSource(cfg.Settings.Seed),
		repo:   cfg.Repository,
		runID:  runID,
	}
}

// RunID identifies this run in logs and the event stream
func (cmd *GenerateCommand) RunID() string {
	return cmd.runID
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	const op = "commands.GenerateCommand.Execute"

	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	settings := cmd.config.Settings
	out := cmd.config.Out
	log := cmd.log.With(slog.String("op", op))

	rule := strings.Repeat("=", 70)
	fmt.Fprintf(out, "🚀 Starting realistic mock data generation for PSC demo\n\n%s\n", rule)

	fmt.Fprintln(out, "\n📥 Loading real data files...")
	log.Debug("loading workbooks",
		slog.String("orders", settings.OrdersPath()),
		slog.String("inventory", settings.InventoryPath()),
		slog.Int("max_rows", settings.MaxRows),
	)
	wb, err := cmd.repo.LoadWorkbooks(ctx, settings.OrdersPath(), settings.InventoryPath(), settings.MaxRows)
	if err != nil {
		return fmt.Errorf("failed to load workbooks: %w", err)
	}
	fmt.Fprintf(out, "  - Orders: %d rows\n", wb.Orders.Len())
	fmt.Fprintf(out, "  - Inventory: %d rows (%d sampled)\n", wb.InventoryAll.Len(), wb.Inventory.Len())

	base, err := settings.Base()
	if err != nil {
		return err
	}

	store := events.NewInMemoryEventStore()
	store.Subscribe(events.StageEvents, NewProgressPrinter(out))

	fmt.Fprintf(out, "\n%s\n🎯 Generating demo-specific datasets...\n%s\n", rule, rule)
	gen := generator.New(cmd.rand, cmd.log,
		generator.WithEvents(store, cmd.runID),
		generator.WithBaseDate(base),
	)
	doc, err := gen.Run(ctx, generator.Inputs{
		Orders:       wb.Orders,
		Inventory:    wb.Inventory,
		InventoryAll: wb.InventoryAll,
	})
	if err != nil {
		return err
	}

	path := settings.OutputPath()
	if err := output.Write(doc, output.Config{Format: settings.Format, Path: path}); err != nil {
		return err
	}

	log.Info("demo data written",
		slog.String("path", path),
		slog.Int("pos", doc.TotalPOs()),
		slog.Int("orders", doc.TotalOrders()),
		slog.Int("events", len(store.ReadEvents(cmd.runID, 1))),
	)

	return output.PrintSummary(out, doc, path)
}

func (cmd *GenerateCommand) printHelp() {
	fmt.Fprintln(cmd.config.Out, `PSC Demo Mock Data Generator

USAGE:
    mockgen [generate] [OPTIONS]

Reads inventory.xlsx and orders.xlsx from the data directory and writes a
12-week demo document (data/demo_mock_data.json by default).

OPTIONS:
    -config <PATH>      YAML configuration file (or MOCKGEN_CONFIG)
    -seed <N>           Random seed for reproducible output (0 = time based)
    -format <FORMAT>    Output format: json, xlsx
    -output <PATH>      Output file, relative to the data directory
    -quiet              Suppress progress output
    -help               Show this help message

EXAMPLES:
    # Generate with the default paths
    mockgen

    # Generate reproducible data
    mockgen generate -seed 12345

    # Export a workbook instead of JSON
    mockgen generate -format xlsx -output data/demo_mock_data.xlsx`)
}
