package translator

import (
	"context"
	"sync"

	"github.com/kinosub/kinosub/internal/batch"
	"github.com/kinosub/kinosub/internal/logger"
)

// Progress reports completed batches out of the total, independent of
// completion order.
type Progress struct {
	Completed int
	Total     int
}

// TranslateAll runs TranslateBatch over every batch on a bounded worker pool
// and collects the results keyed by batch start offset. It is a complete
// barrier: it returns only after every submitted batch has produced a result.
// Results are keyed by the immutable start offset, never appended by
// completion order, so network timing cannot perturb the final order.
func (c *Client) TranslateAll(ctx context.Context, batches []batch.Batch, workers int, onProgress func(Progress)) map[int][]string {
	results := make(map[int][]string, len(batches))
	if len(batches) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(batches) {
		workers = len(batches)
	}

	jobs := make(chan batch.Batch, len(batches))
	for _, b := range batches {
		jobs <- b
	}
	close(jobs)

	var mu sync.Mutex
	var wg sync.WaitGroup
	completed := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				res := c.translateIsolated(ctx, b)

				mu.Lock()
				results[res.Start] = res.Lines
				completed++
				done := completed
				mu.Unlock()

				if onProgress != nil {
					onProgress(Progress{Completed: done, Total: len(batches)})
				}
			}
		}()
	}

	wg.Wait()
	return results
}

// translateIsolated guards the worker against anything escaping the client,
// so one batch's failure can never cancel or corrupt its siblings. The
// synthesized result keeps the result map complete.
func (c *Client) translateIsolated(ctx context.Context, b batch.Batch) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Batch task failed outside the retry protocol", "start", b.Start, "panic", r)
			res = Result{Start: b.Start, Lines: markedLines(MarkerParse, b.Texts)}
		}
	}()
	return c.TranslateBatch(ctx, b)
}
