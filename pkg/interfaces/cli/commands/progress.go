package commands

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/vsinha/mockgen/pkg/application/services/generator"
	"github.com/vsinha/mockgen/pkg/infrastructure/events"
)

// ProgressPrinter prints one console line per stage event
type ProgressPrinter struct {
	out io.Writer
}

func NewProgressPrinter(out io.Writer) *ProgressPrinter {
	return &ProgressPrinter{out: out}
}

func (p *ProgressPrinter) CanHandle(eventType string) bool {
	return slices.Contains(events.StageEvents, eventType)
}

func (p *ProgressPrinter) Handle(event events.Event) error {
	switch data := event.Data.(type) {
	case events.StageStarted:
		icon := "🎲"
		if data.Stage == generator.StageExtract {
			icon = "📊"
		}
		_, err := fmt.Fprintf(p.out, "\n%s %s...\n", icon, data.Description)
		return err
	case events.StageCompleted:
		_, err := fmt.Fprintf(p.out, "✅ %s: %d records in %s\n", data.Stage, data.Records, data.Duration.Round(time.Microsecond))
		return err
	case events.StageFailed:
		_, err := fmt.Fprintf(p.out, "❌ %s failed: %s\n", data.Stage, data.Error)
		return err
	default:
		return fmt.Errorf("unexpected payload %T for %s", event.Data, event.Type)
	}
}
