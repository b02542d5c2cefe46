package share

import (
	"context"
	"sync"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// prepareWeight is the share of overall progress covered by body pre-rendering.
const prepareWeight = 0.5

// WorkerCount returns how many chunks a work list of n jobs is split into.
// The table is deliberately coarser than the core count so each chunk does enough
// work to amortize scheduling, and it does not depend on the machine.
func WorkerCount(n int) int {
	switch {
	case n < 8:
		return 1
	case n < 32:
		return 8
	default:
		return 32
	}
}

// Chunk is the half-open index range [Start, End).
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of indices in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Partition splits n indices into k contiguous chunks whose sizes differ by at most one.
func Partition(n, k int) []Chunk {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	size, extra := n/k, n%k
	chunks := make([]Chunk, 0, k)
	start := 0
	for i := range k {
		end := start + size
		if i < extra {
			end++
		}
		chunks = append(chunks, Chunk{Start: start, End: end})
		start = end
	}
	return chunks
}

// FragmentCache maps blob identities to rendered fragments.
// Entries are written once and read during assembly.
type FragmentCache struct {
	mu        sync.Mutex
	fragments map[domain.BlobID]domain.Fragment
}

// NewFragmentCache returns an empty cache sized for capacity fragments.
func NewFragmentCache(capacity int) *FragmentCache {
	return &FragmentCache{fragments: make(map[domain.BlobID]domain.Fragment, capacity)}
}

// Insert stores f under id. If id is new, onStored runs with the new size while the
// lock is still held, so the size it sees belongs to this insert.
func (c *FragmentCache) Insert(id domain.BlobID, f domain.Fragment, onStored func(size int)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.fragments[id]; exists {
		return false
	}
	c.fragments[id] = f
	if onStored != nil {
		onStored(len(c.fragments))
	}
	return true
}

// Lookup returns the fragment stored for id.
func (c *FragmentCache) Lookup(id domain.BlobID) (domain.Fragment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.fragments[id]
	return f, ok
}

// Len returns the number of stored fragments.
func (c *FragmentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fragments)
}

// RenderFragments renders every job into cache, running WorkerCount(len(jobs)) chunks
// concurrently, and returns once all of them finished.
// A job whose bytes are unavailable is skipped and leaves no fragment.
func (p *Pipeline) RenderFragments(
	ctx context.Context,
	jobs []domain.RenderJob,
	cache *FragmentCache,
	publish ProgressFunc,
) error {
	total := len(jobs)
	if total == 0 {
		return ctx.Err()
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, chunk := range Partition(total, WorkerCount(total)) {
		g.Go(func() error {
			for _, job := range jobs[chunk.Start:chunk.End] {
				if err := ctx.Err(); err != nil {
					return err
				}
				p.renderJob(ctx, job, cache, total, publish)
			}
			return nil
		})
	}

	return g.Wait()
}

func (p *Pipeline) renderJob(
	ctx context.Context,
	job domain.RenderJob,
	cache *FragmentCache,
	total int,
	publish ProgressFunc,
) {
	data, err := job.Fetch(ctx)
	if err != nil {
		p.warn(zerr.With(zerr.Wrap(err, domain.ErrBlobReadFailed.Error()), "blob", job.Blob.String()))
		return
	}
	if data == nil {
		return
	}

	fragment := p.Renderer.RenderBody(data, job.ContentType, job.DecodingError)
	cache.Insert(job.Blob, fragment, func(size int) {
		if publish != nil {
			publish(float64(size) / float64(total) * prepareWeight)
		}
	})
}
