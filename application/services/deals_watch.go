package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"travelbook/application/ports"
)

// DealsWatch polls for last-minute deals and merges new ones into the
// board. Ticks run in their own goroutines, so a slow fetch never
// delays the schedule; overlapping ticks are harmless because the
// store deduplicates by deal id.
type DealsWatch struct {
	provider ports.TravelsProvider
	deals    ports.LastMinuteDealsStore
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewDealsWatch creates a stopped watch
func NewDealsWatch(
	provider ports.TravelsProvider,
	deals ports.LastMinuteDealsStore,
	logger *zap.Logger,
) *DealsWatch {
	return &DealsWatch{
		provider: provider,
		deals:    deals,
		logger:   logger,
	}
}

// Start begins polling at the given interval. The first tick runs
// synchronously before Start returns so the board is never empty
// longer than one fetch. Starting a running watch is a no-op.
func (w *DealsWatch) Start(interval time.Duration) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stop = make(chan struct{})
	stop := w.stop
	w.mu.Unlock()

	w.tick()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				go w.tick()
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the schedule. Ticks already in flight finish on their
// own. Stopping a stopped watch is a no-op.
func (w *DealsWatch) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.stop)
}

// Running reports whether the watch is currently scheduled
func (w *DealsWatch) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *DealsWatch) tick() {
	fresh, err := w.provider.GetLastMinuteDeals(context.Background())
	if err != nil {
		w.logger.Warn("deals poll failed", zap.Error(err))
		return
	}

	added := w.deals.AddDeals(fresh)
	if len(added) > 0 {
		w.logger.Debug("new deals discovered", zap.Int("count", len(added)))
	}
}
