package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mockgen/pkg/application/dto"
	"github.com/vsinha/mockgen/pkg/domain/entities"
	"github.com/vsinha/mockgen/pkg/domain/table"
	"github.com/vsinha/mockgen/pkg/infrastructure/events"
)

func pipelineInputs() Inputs {
	inv := inventoryTable(
		[]string{"2025-01-10", "M23", "", "50000", "80.0", "Clearwater Paper", "0.42"},
		[]string{"2025-02-10", "M23", "", "40000", "70.25", "Acme Paper Co.", "0.58"},
		[]string{"2025-03-10", "M24", "", "30000", "75", "Acme Paper Co.", ""},
	)
	orders := table.New([]string{"RELEASE_QTY", "CSCODE"}, [][]string{
		{"70000", "C100"},
		{"90000", "C200"},
	})
	return Inputs{Orders: orders, Inventory: inv.Head(2), InventoryAll: inv}
}

func TestRun_ProducesEveryCollection(t *testing.T) {
	store := events.NewInMemoryEventStore()
	g := New(NewSource(7), nil, WithEvents(store, "run-1"), WithClock(func() time.Time { return testNow }))

	doc, err := g.Run(context.Background(), pipelineInputs())
	require.NoError(t, err)

	require.Len(t, doc.RollstockWidthCombinations, 2)
	assert.Equal(t, "M23", doc.RollstockWidthCombinations[0].Rollstock)
	assert.Len(t, doc.PurchaseSchedule, entities.NumWeeks)
	assert.Len(t, doc.InventoryProjection, entities.NumWeeks)
	assert.Len(t, doc.Arrivals, entities.NumWeeks)
	assert.Len(t, doc.Consumption, entities.NumWeeks)

	for _, w := range doc.Arrivals {
		for _, po := range w.POs {
			assert.Contains(t, []string{"Clearwater Paper", "Acme Paper Co."}, po.Supplier)
		}
	}
	for _, w := range doc.Consumption {
		for _, o := range w.Orders {
			assert.Contains(t, []string{"C100", "C200"}, o.Customer)
		}
	}

	stream := store.ReadEvents("run-1", 1)
	require.Len(t, stream, 12, "started and completed per stage")
	var completed []string
	for _, e := range stream {
		if e.Type == events.StageCompletedEvent {
			completed = append(completed, e.Data.(events.StageCompleted).Stage)
		}
	}
	assert.Equal(t, []string{StageExtract, StagePurchase, StageInventory, StageArrivals, StageConsumption, StageAssemble}, completed)
}

func TestRun_SameSeedSameDocument(t *testing.T) {
	run := func() *dto.MockData {
		doc, err := newTestGenerator(NewSource(42)).Run(context.Background(), pipelineInputs())
		require.NoError(t, err)
		return doc
	}
	assert.Equal(t, run(), run())
}

func TestRun_PanicBecomesStageError(t *testing.T) {
	store := events.NewInMemoryEventStore()
	g := New(&panicSource{}, nil, WithEvents(store, "run-2"))

	doc, err := g.Run(context.Background(), pipelineInputs())
	assert.Nil(t, doc)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, StagePurchase, stageErr.Stage)
	assert.Contains(t, stageErr.Error(), "normal distribution unavailable")
	assert.NotEmpty(t, stageErr.Stack)

	last := store.ReadEvents("run-2", 1)
	require.NotEmpty(t, last)
	assert.Equal(t, events.StageFailedEvent, last[len(last)-1].Type)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGenerator(NewSource(1)).Run(ctx, pipelineInputs())

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, StageExtract, stageErr.Stage)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stageErr.Stack)
}
