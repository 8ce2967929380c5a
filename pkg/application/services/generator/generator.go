package generator

import (
	"log/slog"
	"time"

	"github.com/vsinha/mockgen/pkg/infrastructure/events"
)

// DefaultBaseDate anchors PO order dates and consumption ship dates
var DefaultBaseDate = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

const week = 7 * 24 * time.Hour

// Generator produces the demo collections from sampled spreadsheet data
type Generator struct {
	rng      Source
	log      *slog.Logger
	events   events.Publisher
	runID    string
	baseDate time.Time
	now      func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithEvents publishes stage events to the given stream
func WithEvents(p events.Publisher, runID string) Option {
	return func(g *Generator) {
		g.events = p
		g.runID = runID
	}
}

// WithBaseDate overrides DefaultBaseDate
func WithBaseDate(t time.Time) Option {
	return func(g *Generator) {
		g.baseDate = t
	}
}

// WithClock overrides the clock used for the two-year inventory window
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator drawing from rng
func New(rng Source, log *slog.Logger, opts ...Option) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g := &Generator{
		rng:      rng,
		log:      log,
		baseDate: DefaultBaseDate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) weeksFromBase(n int) time.Time {
	return g.baseDate.Add(time.Duration(n) * week)
}

func (g *Generator) publish(eventType string, data any) {
	if g.events == nil {
		return
	}
	if err := g.events.Publish(g.runID, eventType, data); err != nil {
		g.log.Warn("event handler failed", slog.String("event", eventType), slog.String("error", err.Error()))
	}
}
