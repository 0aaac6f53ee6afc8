package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakePinger struct {
	failing atomic.Int32
}

func (f *fakePinger) HealthPing(ctx context.Context) error {
	if f.failing.Load() == 1 {
		return errors.New("connection refused")
	}
	return nil
}

func TestStoreChecker_Transitions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePinger{}
	hc := NewStoreChecker(p, zerolog.Nop(), time.Second)
	if hc.IsHealthy() {
		t.Fatal("checker must start unhealthy")
	}
	go hc.Start(ctx, 10*time.Millisecond)

	waitTrue(t, hc.IsHealthy)

	p.failing.Store(1)
	waitTrue(t, func() bool { return !hc.IsHealthy() })

	p.failing.Store(0)
	waitTrue(t, hc.IsHealthy)
}

func waitTrue(t *testing.T, pred func() bool) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if pred() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met before timeout")
}
