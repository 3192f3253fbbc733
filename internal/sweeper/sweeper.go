package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
)

const defaultInterval = time.Minute

// Pruner drops expired entries and reports how many were removed.
// Len reports how many entries remain.
type Pruner interface {
	Prune() int
	Len() int
}

// Sweeper prunes idle dashboard sessions on an interval.
type Sweeper struct {
	pruner   Pruner
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the sweeper loop.
type Status struct {
	Running      bool
	LastSweep    time.Time
	LastRemoved  int
	TotalRemoved int
	// Active is the number of tracked sessions when Status was called.
	Active int
}

// New constructs a Sweeper. A non-positive interval uses one minute.
func New(pruner Pruner, logger *slog.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{
		pruner:   pruner,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start sweeps until the context is cancelled or Stop is called.
func (s *Sweeper) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.interval)
	s.setRunning(true)

	go func() {
		defer s.setRunning(false)
		logging.Info(ctx, s.logger, "session sweeper started", logging.FieldDurationMS, s.interval.Milliseconds())
		for {
			select {
			case <-ctx.Done():
				s.stopTicker()
				logging.Info(ctx, s.logger, "session sweeper stopped")
				return
			case <-s.done:
				s.stopTicker()
				logging.Info(ctx, s.logger, "session sweeper stopped")
				return
			case <-s.ticker.C:
				s.sweepOnce(ctx)
			}
		}
	}()
}

// Stop halts the sweep loop.
func (s *Sweeper) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		s.stopTicker()
	})
	return nil
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	removed := s.pruner.Prune()

	s.statusMu.Lock()
	s.status.LastSweep = s.now()
	s.status.LastRemoved = removed
	s.status.TotalRemoved += removed
	s.statusMu.Unlock()

	if removed > 0 {
		logging.Info(ctx, s.logger, "expired sessions pruned", logging.FieldCount, removed, "active", s.pruner.Len())
	}
}

func (s *Sweeper) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Sweeper) setRunning(running bool) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Running = running
}

// Status returns a snapshot of the sweeper's state.
func (s *Sweeper) Status() Status {
	s.statusMu.RLock()
	st := s.status
	s.statusMu.RUnlock()
	st.Active = s.pruner.Len()
	return st
}
