package generator

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/vsinha/mockgen/pkg/application/dto"
	"github.com/vsinha/mockgen/pkg/domain/entities"
	"github.com/vsinha/mockgen/pkg/domain/table"
	"github.com/vsinha/mockgen/pkg/infrastructure/events"
)

// Pipeline stages, in execution order
const (
	StageExtract     = "extract"
	StagePurchase    = "purchase"
	StageInventory   = "inventory"
	StageArrivals    = "arrivals"
	StageConsumption = "consumption"
	StageAssemble    = "assemble"
)

// Inputs are the tables the pipeline samples from
type Inputs struct {
	// Orders is the row-capped orders sheet
	Orders *table.Table
	// Inventory is the row-capped inventory sheet
	Inventory *table.Table
	// InventoryAll is the full inventory sheet, mined for rollstock widths
	InventoryAll *table.Table
}

// StageError reports which pipeline stage failed. Stack is set when the
// stage panicked.
type StageError struct {
	Stage string
	Err   error
	Stack []byte
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type stage struct {
	name        string
	description string
	run         func() (int, error)
}

// Run executes every stage in order and assembles the demo document. Any
// failure is returned as a *StageError and no document is produced.
func (g *Generator) Run(ctx context.Context, in Inputs) (*dto.MockData, error) {
	var (
		combos      []entities.RollstockWidthCombination
		purchases   []entities.PurchaseWeek
		inventory   []entities.InventoryWeek
		arrivals    []entities.ArrivalWeek
		consumption []entities.ConsumptionWeek
		doc         *dto.MockData
	)

	stages := []stage{
		{StageExtract, fmt.Sprintf("Extracting top %d rollstocks by volume with all widths", TopRollstocks), func() (int, error) {
			combos = g.ExtractRollstockWidths(in.InventoryAll)
			return len(combos), nil
		}},
		{StagePurchase, "Generating 12-week purchase schedule", func() (int, error) {
			var err error
			purchases, err = g.PurchaseSchedule(in.Orders)
			return len(purchases), err
		}},
		{StageInventory, "Generating inventory projection (10th/50th/90th percentiles)", func() (int, error) {
			var err error
			inventory, err = g.InventoryProjection()
			return len(inventory), err
		}},
		{StageArrivals, "Generating arrivals with PO details", func() (int, error) {
			var err error
			arrivals, err = g.Arrivals(in.Inventory, combos)
			return len(arrivals), err
		}},
		{StageConsumption, "Generating consumption forecast with order details", func() (int, error) {
			var err error
			consumption, err = g.Consumption(in.Orders)
			return len(consumption), err
		}},
		{StageAssemble, "Assembling demo document", func() (int, error) {
			doc = dto.NewMockData(combos, purchases, inventory, arrivals, consumption)
			return len(dto.CollectionKeys), nil
		}},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, &StageError{Stage: s.name, Err: err}
		}
		if err := g.runStage(s); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (g *Generator) runStage(s stage) (err error) {
	g.publish(events.StageStartedEvent, events.StageStarted{Stage: s.name, Description: s.description})
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = &StageError{Stage: s.name, Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
		if err != nil {
			g.log.Error("stage failed", slog.String("stage", s.name), slog.String("error", err.Error()))
			g.publish(events.StageFailedEvent, events.StageFailed{Stage: s.name, Error: err.Error()})
		}
	}()

	n, runErr := s.run()
	if runErr != nil {
		return &StageError{Stage: s.name, Err: runErr}
	}

	g.publish(events.StageCompletedEvent, events.StageCompleted{Stage: s.name, Records: n, Duration: time.Since(start)})
	return nil
}
