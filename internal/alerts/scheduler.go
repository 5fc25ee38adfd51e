package alerts

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/nkchunduri/stock-tracker/internal/uuid"
)

type cycleIDKey struct{}

// WithCycleID tags ctx with an evaluation cycle id for log correlation.
func WithCycleID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, cycleIDKey{}, id)
}

// CycleID returns the cycle id stored in ctx, or "".
func CycleID(ctx context.Context) string {
	id, _ := ctx.Value(cycleIDKey{}).(string)
	return id
}

// Cycler runs one evaluation cycle.
type Cycler interface {
	RunCycle(ctx context.Context) (CycleResult, error)
}

// Scheduler runs alert cycles on a fixed interval while the market is open.
// At most one cycle is in flight at a time.
type Scheduler struct {
	cycler   Cycler
	hours    MarketHours
	interval time.Duration
	log      *zap.SugaredLogger

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewScheduler creates a new Scheduler.
func NewScheduler(cycler Cycler, hours MarketHours, interval time.Duration, logger *zap.SugaredLogger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Scheduler{
		cycler:   cycler,
		hours:    hours,
		interval: interval,
		log:      logger,
	}
}

// Run ticks until ctx is cancelled, then waits for an in-flight cycle to
// return.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Infow("alert scheduler started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.log.Info("alert scheduler stopped")
			return
		case now := <-ticker.C:
			s.Tick(ctx, now)
		}
	}
}

// Tick starts a cycle in the background when the market is open at now.
// It reports whether the gate allowed a cycle.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) bool {
	if !s.hours.IsOpen(now) {
		s.log.Debugw("market closed, skipping alert cycle", "at", now.Format(time.RFC3339))
		return false
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.TryRun(ctx)
	}()
	return true
}

// TryRun runs one cycle unless another is still in flight. It reports
// whether a cycle ran.
func (s *Scheduler) TryRun(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn("previous alert cycle still running, skipping")
		return false
	}
	defer s.running.Store(false)

	id := uuid.New()
	ctx = WithCycleID(ctx, id)
	log := s.log.With("cycle_id", id)

	result, err := s.cycler.RunCycle(ctx)
	if err != nil {
		log.Errorw("alert cycle failed", "error", err)
		return true
	}
	log.Infow("alert cycle completed",
		"alerts_checked", result.AlertsChecked,
		"symbols_fetched", result.SymbolsFetched,
		"triggered", len(result.Matches),
		"fetch_errors", len(result.FetchErrors),
		"prices_recorded", result.PricesRecorded,
		"duration", result.Duration.String(),
	)
	return true
}

// Wait blocks until background cycles started by Tick have returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
