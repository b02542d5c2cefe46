// Package share implements the export pipeline: body pre-rendering, document assembly
// and the task that coordinates both and delivers the result to an output sink.
package share

import (
	"context"
	"fmt"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProgressFunc receives overall progress in [0, 1].
type ProgressFunc func(progress float64)

// Pipeline bundles the collaborators used by both export phases.
type Pipeline struct {
	Store    ports.RecordStore
	Renderer ports.DocumentRenderer
	Logger   ports.Logger
}

// CollectJobs builds the render work list for a selection.
// Each distinct blob appears once, in first-seen order; the first record referencing a
// blob decides its content type and decoding error. Unresolvable records are skipped.
func (p *Pipeline) CollectJobs(ctx context.Context, selection []domain.RecordID) []domain.RenderJob {
	seen := make(map[domain.BlobID]struct{})
	var jobs []domain.RenderJob

	add := func(ref *domain.BlobRef, decodingErr string) {
		if ref == nil {
			return
		}
		if _, ok := seen[ref.ID]; ok {
			return
		}
		seen[ref.ID] = struct{}{}

		id := ref.ID
		jobs = append(jobs, domain.RenderJob{
			Blob: id,
			Fetch: func(ctx context.Context) ([]byte, error) {
				return p.Store.Blob(ctx, id)
			},
			ContentType:   ref.ContentType,
			DecodingError: decodingErr,
		})
	}

	for _, id := range selection {
		if ctx.Err() != nil {
			break
		}
		record := p.resolve(ctx, id)
		if record == nil {
			continue
		}
		task := record.AssociatedTask()
		if task == nil {
			continue
		}
		if task.ResponseBody != nil {
			add(task.ResponseBody, task.ResponseBody.DecodingError)
		}
		// Request bodies never carry decoding errors into rendering.
		add(task.RequestBody, "")
	}

	return jobs
}

// resolve returns nil for stale identifiers and for store failures.
func (p *Pipeline) resolve(ctx context.Context, id domain.RecordID) *domain.Record {
	record, err := p.Store.Record(ctx, id)
	if err != nil {
		p.warn(zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", id.String()))
		return nil
	}
	return record
}

func (p *Pipeline) warn(err error) {
	if p.Logger == nil || err == nil {
		return
	}
	p.Logger.Warn(fmt.Sprintf("skipping: %v", err))
}
