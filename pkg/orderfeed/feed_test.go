package orderfeed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaXala/ESCOMIDA/entity"
)

func countingSource(polls *atomic.Int64, orders []entity.Order) SourceFunc {
	return func(ctx context.Context) ([]entity.Order, error) {
		polls.Add(1)
		return orders, nil
	}
}

func waitSnapshot(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot within deadline")
		return Snapshot{}
	}
}

func TestSubscribeStartsPollingImmediately(t *testing.T) {
	var polls atomic.Int64
	orders := []entity.Order{{Status: entity.StatusWaiting, Total: 55}}
	feed := New(countingSource(&polls, orders), time.Hour, nil)

	ch, cancel := feed.Subscribe()
	defer cancel()

	snap := waitSnapshot(t, ch)
	require.NoError(t, snap.Err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, int64(55), snap.Orders[0].Total)
	assert.Equal(t, int64(1), polls.Load())
}

func TestFixedCadence(t *testing.T) {
	var polls atomic.Int64
	feed := New(countingSource(&polls, nil), 20*time.Millisecond, nil)

	ch, cancel := feed.Subscribe()
	defer cancel()

	for i := 0; i < 4; i++ {
		waitSnapshot(t, ch)
	}
	assert.GreaterOrEqual(t, polls.Load(), int64(3))
}

func TestSharedLoopAcrossSubscribers(t *testing.T) {
	var polls atomic.Int64
	feed := New(countingSource(&polls, nil), time.Hour, nil)

	ch1, cancel1 := feed.Subscribe()
	ch2, cancel2 := feed.Subscribe()
	defer cancel1()
	defer cancel2()

	waitSnapshot(t, ch1)
	feed.Refresh()
	waitSnapshot(t, ch2)

	// Two views, one loop: poll count stays independent of subscriber count.
	assert.LessOrEqual(t, polls.Load(), int64(3))
}

func TestLastUnsubscribeStopsLoop(t *testing.T) {
	var polls atomic.Int64
	feed := New(countingSource(&polls, nil), 10*time.Millisecond, nil)

	ch, cancel := feed.Subscribe()
	waitSnapshot(t, ch)
	cancel()
	// Unsubscribe twice must be safe.
	cancel()

	settled := polls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, polls.Load())

	// A later subscriber restarts the loop from scratch.
	ch, cancel = feed.Subscribe()
	defer cancel()
	waitSnapshot(t, ch)
	assert.Greater(t, polls.Load(), settled)
}

func TestRefreshForcesImmediatePoll(t *testing.T) {
	var polls atomic.Int64
	feed := New(countingSource(&polls, nil), time.Hour, nil)

	ch, cancel := feed.Subscribe()
	defer cancel()
	waitSnapshot(t, ch)

	feed.Refresh()
	waitSnapshot(t, ch)
	assert.Equal(t, int64(2), polls.Load())
}

func TestApplyReconcilesEvenOnFailure(t *testing.T) {
	var polls atomic.Int64
	feed := New(countingSource(&polls, nil), time.Hour, nil)

	ch, cancel := feed.Subscribe()
	defer cancel()
	waitSnapshot(t, ch)

	boom := errors.New("update rejected")
	err := feed.Apply(func() error { return boom })
	assert.ErrorIs(t, err, boom)

	// The failed mutation still triggers a re-fetch of the source of truth.
	waitSnapshot(t, ch)
	assert.Equal(t, int64(2), polls.Load())
}

func TestFailedPollCarriesError(t *testing.T) {
	boom := errors.New("db gone")
	feed := New(SourceFunc(func(ctx context.Context) ([]entity.Order, error) {
		return nil, boom
	}), time.Hour, nil)

	ch, cancel := feed.Subscribe()
	defer cancel()

	snap := waitSnapshot(t, ch)
	assert.ErrorIs(t, snap.Err, boom)
}

func TestSlowSubscriberGetsLatestSnapshot(t *testing.T) {
	var polls atomic.Int64
	feed := New(countingSource(&polls, nil), time.Hour, nil)

	ch, cancel := feed.Subscribe()
	defer cancel()
	waitSnapshot(t, ch)

	// The subscriber never reads between these; the one-deep buffer keeps
	// only the newest snapshot.
	feed.broadcast(Snapshot{Orders: []entity.Order{{Total: 1}}})
	feed.broadcast(Snapshot{Orders: []entity.Order{{Total: 2}}})

	snap := waitSnapshot(t, ch)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, int64(2), snap.Orders[0].Total)
}

func TestAtMostOnePollInFlight(t *testing.T) {
	var inFlight, maxInFlight atomic.Int64
	feed := New(SourceFunc(func(ctx context.Context) ([]entity.Order, error) {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			prev := maxInFlight.Load()
			if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		return nil, nil
	}), 5*time.Millisecond, nil)

	ch, cancel := feed.Subscribe()
	defer cancel()

	for i := 0; i < 3; i++ {
		feed.Refresh()
		waitSnapshot(t, ch)
	}
	assert.Equal(t, int64(1), maxInFlight.Load())
}
