// Package health provides background store connectivity monitoring.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/youspace/youspace/internal/store"
)

// StoreChecker probes the store on an interval and caches the result.
// IsHealthy is non-blocking and safe for concurrent readers.
type StoreChecker struct {
	pinger       store.HealthPinger
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

func NewStoreChecker(pinger store.HealthPinger, log zerolog.Logger, probeTimeout time.Duration) *StoreChecker {
	hc := &StoreChecker{
		pinger:       pinger,
		log:          log,
		probeTimeout: probeTimeout,
	}
	hc.healthy.Store(0) // start unhealthy until first successful probe
	return hc
}

// IsHealthy returns the cached health status.
func (hc *StoreChecker) IsHealthy() bool {
	return hc.healthy.Load() == 1
}

// Start begins periodic probing and blocks until ctx is cancelled.
// Transitions are logged once per flip, not per probe.
func (hc *StoreChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		cur := int32(0)
		if err := hc.pinger.HealthPing(checkCtx); err != nil {
			hc.log.Error().Err(err).Msg("store health probe failed")
		} else {
			cur = 1
		}
		hc.healthy.Store(cur)
		if cur != prev {
			if cur == 1 {
				hc.log.Info().Msg("store health: UP")
			} else {
				hc.log.Error().Msg("store health: DOWN")
			}
			prev = cur
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
