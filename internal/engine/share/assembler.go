package share

import (
	"context"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/zerr"
)

// Assemble renders the selection into one document, in selection order, reading body
// fragments from cache. Records that no longer resolve are skipped.
// Progress runs from just above one half to exactly one.
func (p *Pipeline) Assemble(
	ctx context.Context,
	selection []domain.RecordID,
	cache *FragmentCache,
	publish ProgressFunc,
) (*domain.Document, error) {
	b := domain.NewDocumentBuilder()
	total := len(selection)

	for i, id := range selection {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if record := p.resolve(ctx, id); record != nil {
			if err := p.appendRecord(b, record, cache); err != nil {
				return nil, err
			}
			if i < total-1 {
				p.Renderer.AddSeparator(b)
			}
		}

		if publish != nil {
			publish(prepareWeight + float64(i+1)/float64(total)*(1-prepareWeight))
		}
	}

	if total == 0 && publish != nil {
		publish(1)
	}

	return p.Renderer.Finalize(b), nil
}

func (p *Pipeline) appendRecord(b *domain.DocumentBuilder, record *domain.Record, cache *FragmentCache) error {
	switch record.Kind {
	case domain.RecordKindNetworkTask:
		if record.Task == nil {
			return invariantViolation(record, "task record without task")
		}
		b.BeginRecord()
		p.Renderer.RenderTask(b, record.Task, cache.Lookup)

	case domain.RecordKindMessage:
		if record.Message == nil {
			return invariantViolation(record, "message record without message")
		}
		b.BeginRecord()
		// A message linked to a task is shown as the task it belongs to.
		if task := record.Message.Task; task != nil {
			p.Renderer.RenderTask(b, task, cache.Lookup)
		} else {
			p.Renderer.RenderMessage(b, record.Message)
		}

	default:
		return invariantViolation(record, "unknown record kind")
	}
	return nil
}

func invariantViolation(record *domain.Record, reason string) error {
	err := zerr.With(domain.ErrInvariantViolation, "record", record.ID.String())
	err = zerr.With(err, "kind", record.Kind.String())
	return zerr.With(err, "reason", reason)
}
