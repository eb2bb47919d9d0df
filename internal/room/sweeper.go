package room

import (
	"context"
	"time"
)

// Sweeper drives presence decay on a fixed cadence. Each tick runs
// SweepTick synchronously inside the loop, so ticks never overlap.
type Sweeper struct {
	store *Store
	step  time.Duration
}

func NewSweeper(store *Store, step time.Duration) *Sweeper {
	if step <= 0 {
		step = 500 * time.Millisecond
	}
	return &Sweeper{store: store, step: step}
}

// Start launches the sweep loop. It runs until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.step)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.store.SweepTick()
			}
		}
	}()
}
