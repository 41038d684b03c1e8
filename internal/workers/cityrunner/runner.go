// Package cityrunner fans independent aggregation jobs out to a fixed number
// of workers.
package cityrunner

import (
    "context"

    "golang.org/x/sync/errgroup"
)

// Job computes the i-th result. Jobs write their result into a slot owned by
// the caller, so no ordering between jobs is needed.
type Job func(ctx context.Context, i int) error

// Run executes job for every i in [0, n) on at most concurrency workers.
// The first failure cancels the remaining jobs and is returned.
func Run(ctx context.Context, concurrency, n int, job Job) error {
    if n == 0 {
        return nil
    }
    if concurrency < 1 {
        concurrency = 1
    }
    if concurrency > n {
        concurrency = n
    }
    g, ctx := errgroup.WithContext(ctx)
    jobsCh := make(chan int, concurrency)

    // dispatcher
    g.Go(func() error {
        defer close(jobsCh)
        for i := 0; i < n; i++ {
            select {
            case <-ctx.Done():
                return ctx.Err()
            case jobsCh <- i:
            }
        }
        return nil
    })

    // workers
    for w := 0; w < concurrency; w++ {
        g.Go(func() error {
            for i := range jobsCh {
                if err := job(ctx, i); err != nil {
                    return err
                }
            }
            return nil
        })
    }
    return g.Wait()
}
