package cityrunner

import (
    "context"
    "errors"
    "sync/atomic"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestRunFillsEverySlot(t *testing.T) {
    out := make([]int, 50)
    err := Run(context.Background(), 4, len(out), func(ctx context.Context, i int) error {
        out[i] = i * i
        return nil
    })
    require.NoError(t, err)
    for i, v := range out {
        assert.Equal(t, i*i, v)
    }
}

func TestRunBoundsConcurrency(t *testing.T) {
    var active, peak int32
    err := Run(context.Background(), 3, 30, func(ctx context.Context, i int) error {
        n := atomic.AddInt32(&active, 1)
        for {
            p := atomic.LoadInt32(&peak)
            if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
                break
            }
        }
        atomic.AddInt32(&active, -1)
        return nil
    })
    require.NoError(t, err)
    assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRunStopsOnFirstError(t *testing.T) {
    boom := errors.New("boom")
    var ran int32
    err := Run(context.Background(), 1, 100, func(ctx context.Context, i int) error {
        atomic.AddInt32(&ran, 1)
        if i == 2 {
            return boom
        }
        return nil
    })
    assert.ErrorIs(t, err, boom)
    assert.Less(t, atomic.LoadInt32(&ran), int32(100))
}

func TestRunZeroJobs(t *testing.T) {
    called := false
    err := Run(context.Background(), 4, 0, func(ctx context.Context, i int) error {
        called = true
        return nil
    })
    require.NoError(t, err)
    assert.False(t, called)
}

func TestRunCancelledContext(t *testing.T) {
    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    err := Run(ctx, 2, 10, func(ctx context.Context, i int) error {
        return ctx.Err()
    })
    assert.ErrorIs(t, err, context.Canceled)
}
