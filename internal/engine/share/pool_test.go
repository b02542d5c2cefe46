package share_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/engine/share"
)

func TestWorkerCount(t *testing.T) {
	tests := []struct {
		jobs int
		want int
	}{
		{0, 1},
		{5, 1},
		{7, 1},
		{8, 8},
		{10, 8},
		{31, 8},
		{32, 32},
		{40, 32},
		{1000, 32},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d jobs", tt.jobs), func(t *testing.T) {
			assert.Equal(t, tt.want, share.WorkerCount(tt.jobs))
		})
	}
}

func TestPartition(t *testing.T) {
	t.Run("single chunk", func(t *testing.T) {
		assert.Equal(t, []share.Chunk{{Start: 0, End: 5}}, share.Partition(5, 1))
	})

	t.Run("sizes differ by at most one", func(t *testing.T) {
		chunks := share.Partition(10, 8)
		require.Len(t, chunks, 8)

		sizes := make([]int, len(chunks))
		for i, c := range chunks {
			sizes[i] = c.Len()
		}
		assert.Equal(t, []int{2, 2, 1, 1, 1, 1, 1, 1}, sizes)
	})

	t.Run("covers every index once", func(t *testing.T) {
		for _, n := range []int{1, 7, 8, 31, 32, 40, 77} {
			chunks := share.Partition(n, share.WorkerCount(n))
			next := 0
			for _, c := range chunks {
				assert.Equal(t, next, c.Start)
				assert.Positive(t, c.Len())
				next = c.End
			}
			assert.Equal(t, n, next)
		}
	})

	t.Run("more chunks than items", func(t *testing.T) {
		assert.Len(t, share.Partition(3, 8), 3)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, share.Partition(0, 8))
	})
}

func TestFragmentCache_InsertIsWriteOnce(t *testing.T) {
	cache := share.NewFragmentCache(1)
	first := domain.Fragment{{Kind: domain.BlockBody, Text: "first"}}

	var sizes []int
	assert.True(t, cache.Insert("a", first, func(size int) { sizes = append(sizes, size) }))
	assert.False(t, cache.Insert("a", domain.Fragment{{Text: "second"}}, func(size int) { sizes = append(sizes, size) }))

	got, ok := cache.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, first, got)
	assert.Equal(t, []int{1}, sizes)
}

func TestRenderFragments_RendersEveryJobOnce(t *testing.T) {
	store := newMemStore()
	deps, renderer, _ := setupShareTest(t, store, &recordingView{})
	p := pipelineFor(deps)

	var selection []domain.RecordID
	for i := range 40 {
		id := fmt.Sprintf("task-%02d", i)
		store.addTask(id, store.putBlob(fmt.Sprintf(`{"n":%d}`, i), "application/json"), nil)
		selection = append(selection, domain.RecordID(id))
	}

	jobs := p.CollectJobs(context.Background(), selection)
	require.Len(t, jobs, 40)

	var (
		mu        sync.Mutex
		published []float64
	)
	cache := share.NewFragmentCache(len(jobs))
	err := p.RenderFragments(context.Background(), jobs, cache, func(progress float64) {
		mu.Lock()
		defer mu.Unlock()
		published = append(published, progress)
	})
	require.NoError(t, err)

	assert.Equal(t, 40, cache.Len())
	assert.Equal(t, 40, renderer.calls())
	assert.Equal(t, 40, store.totalFetches())

	require.Len(t, published, 40)
	assert.IsIncreasing(t, published)
	assert.InDelta(t, 0.5, published[len(published)-1], 1e-9)
	for _, v := range published {
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, 0.5)
	}
}

func TestRenderFragments_SkipsUnavailableBodies(t *testing.T) {
	store := newMemStore()
	deps, _, _ := setupShareTest(t, store, &recordingView{})
	p := pipelineFor(deps)

	ok := store.putBlob("ok", "text/plain")
	broken := store.putBlob("broken", "text/plain")
	store.failing[broken.ID] = errors.New("disk gone")
	missing := &domain.BlobRef{ID: "ffffffffffffffff", ContentType: "text/plain"}

	store.addTask("a", ok, nil)
	store.addTask("b", broken, nil)
	store.addTask("c", missing, nil)

	jobs := p.CollectJobs(context.Background(), ids("a", "b", "c"))
	require.Len(t, jobs, 3)

	cache := share.NewFragmentCache(len(jobs))
	require.NoError(t, p.RenderFragments(context.Background(), jobs, cache, nil))

	_, found := cache.Lookup(ok.ID)
	assert.True(t, found)
	_, found = cache.Lookup(broken.ID)
	assert.False(t, found)
	_, found = cache.Lookup(missing.ID)
	assert.False(t, found)
}

func TestRenderFragments_StopsWhenCancelled(t *testing.T) {
	store := newMemStore()
	deps, renderer, _ := setupShareTest(t, store, &recordingView{})
	p := pipelineFor(deps)

	for i := range 10 {
		store.addTask(fmt.Sprintf("t%d", i), store.putBlob(fmt.Sprintf("body %d", i), "text/plain"), nil)
	}
	jobs := p.CollectJobs(context.Background(), ids("t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.RenderFragments(ctx, jobs, share.NewFragmentCache(len(jobs)), nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, renderer.calls())
	assert.Zero(t, store.totalFetches())
}
