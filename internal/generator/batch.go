package generator

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BatchItem is the outcome for one batch input.
type BatchItem struct {
	Result *Result
	Err    error
}

// Batch generates a card for every input with at most concurrency in flight
// and at least interval between starts. Items are returned in input order.
// A failed input does not stop the others; the returned error is set only
// when ctx ends the batch early.
func (g *Generator) Batch(ctx context.Context, inputs []string, concurrency int, interval time.Duration) ([]BatchItem, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	limiter := rate.NewLimiter(limit, 1)

	items := make([]BatchItem, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	g.logger.Info("batch started",
		zap.Int("count", len(inputs)),
		zap.Int("concurrency", concurrency),
		zap.Duration("interval", interval),
	)

	for i, input := range inputs {
		eg.Go(func() error {
			if err := limiter.Wait(egCtx); err != nil {
				items[i] = BatchItem{Result: &Result{Input: input}, Err: err}
				return err
			}

			res, err := g.Generate(egCtx, input)
			if err != nil {
				g.logger.Warn("batch item failed", zap.String("input", input), zap.Error(err))
			}
			items[i] = BatchItem{Result: res, Err: err}
			return nil
		})
	}

	err := eg.Wait()
	g.logger.Info("batch finished", zap.Int("count", len(inputs)), zap.Error(err))
	return items, err
}
