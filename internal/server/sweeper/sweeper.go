// Package sweeper periodically removes dead refresh tokens.
package sweeper

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// Target is implemented by services.TokenService.
type Target interface {
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type Sweeper struct {
	target   Target
	interval time.Duration
	timeout  time.Duration
	now      timex.Clock
	log      logging.Logger
}

func New(target Target, interval time.Duration, log logging.Logger) *Sweeper {
	return &Sweeper{
		target:   target,
		interval: interval,
		timeout:  time.Minute,
		now:      timex.Now,
		log:      log.With("module", "sweeper"),
	}
}

// RunOnce performs a single sweep bounded by the sweep timeout.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.target.SweepExpired(ctx, s.now())
	if err != nil {
		s.log.Error(ctx, "sweep failed", "error", err)
		return 0, err
	}
	return n, nil
}

// Run sweeps every interval until ctx is done. Failures are logged and the
// next tick retries.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info(ctx, "sweeper started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			s.log.Info(context.Background(), "sweeper stopped")
			return
		case <-ticker.C:
			_, _ = s.RunOnce(ctx)
		}
	}
}
