package parser

import (
	"context"
	"sync"
	"time"
)

// BatchResult is the outcome for one package of a batch.
type BatchResult struct {
	Path     string
	Result   *Result
	Err      error
	Duration time.Duration
}

// ParseBatch parses every path with ParseHap on up to workers goroutines.
// Each package decodes in its own evaluation context. Results keep the order
// of paths; packages not started before ctx is done carry ctx.Err().
func (p *Parser) ParseBatch(ctx context.Context, paths []string, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}

	results := make([]BatchResult, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		results[i].Path = path
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			start := time.Now()
			res, err := p.ParseHap(path)
			results[i].Result = res
			results[i].Err = err
			results[i].Duration = time.Since(start)
		}(i, path)
	}

	wg.Wait()
	return results
}
