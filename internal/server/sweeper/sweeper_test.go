package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTarget struct {
	calls atomic.Int64
	err   error
}

func (c *countingTarget) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	c.calls.Add(1)
	if c.err != nil {
		return 0, c.err
	}
	return 3, nil
}

func TestRunOnce(t *testing.T) {
	target := &countingTarget{}
	s := New(target, time.Hour, logging.Nop{})

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	target.err = errors.New("db down")
	_, err = s.RunOnce(context.Background())
	assert.ErrorIs(t, err, target.err)
}

func TestRun_TicksUntilCanceled(t *testing.T) {
	target := &countingTarget{err: errors.New("transient")}
	s := New(target, 5*time.Millisecond, logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return target.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_NonPositiveIntervalReturns(t *testing.T) {
	s := New(&countingTarget{}, 0, logging.Nop{})
	s.Run(context.Background())
}
