// Package orderfeed implements the polling contract shared by every order
// display (customer order list, kitchen boards): one fixed-cadence fetch loop
// per feed regardless of how many views subscribe, at most one poll in flight,
// and reconcile-by-refetch after any status-changing action that fails.
package orderfeed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/entity"
)

// DefaultInterval is the observed polling cadence of the displays.
const DefaultInterval = 15 * time.Second

// Source is anything the feed can re-read the order collection from.
type Source interface {
	FetchOrders(ctx context.Context) ([]entity.Order, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]entity.Order, error)

func (f SourceFunc) FetchOrders(ctx context.Context) ([]entity.Order, error) { return f(ctx) }

// Snapshot is one poll result. Err is set on a failed poll; the previous
// orders remain valid until a later poll succeeds.
type Snapshot struct {
	Orders []entity.Order
	Err    error
	At     time.Time
}

// Feed is a refcounted shared polling loop. The loop starts with the first
// subscriber and stops when the last one unsubscribes, so simultaneously open
// views never run redundant intervals against the same source.
type Feed struct {
	src      Source
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	subs    map[int]chan Snapshot
	nextID  int
	cancel  context.CancelFunc
	stopped chan struct{}
	refresh chan struct{}
}

func New(src Source, interval time.Duration, log *zap.Logger) *Feed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{
		src:      src,
		interval: interval,
		log:      log,
		subs:     make(map[int]chan Snapshot),
	}
}

// Subscribe registers a view. The returned channel carries every snapshot
// (buffered by one, old snapshots are dropped for slow consumers). The cancel
// function must be called on view teardown; it decrements the refcount and
// stops the loop when nobody is left.
func (f *Feed) Subscribe() (<-chan Snapshot, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan Snapshot, 1)
	f.subs[id] = ch

	if len(f.subs) == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		f.cancel = cancel
		f.stopped = make(chan struct{})
		f.refresh = make(chan struct{}, 1)
		go f.run(ctx, f.refresh, f.stopped)
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			last := len(f.subs) == 0
			cancel := f.cancel
			stopped := f.stopped
			if last {
				f.cancel = nil
				f.stopped = nil
				f.refresh = nil
			}
			f.mu.Unlock()

			if last {
				cancel()
				<-stopped
			}
		})
	}
	return ch, unsubscribe
}

// Refresh forces an immediate poll outside the cadence. Used to reconcile
// after a failed optimistic update. No-op when the loop is not running.
func (f *Feed) Refresh() {
	f.mu.Lock()
	ch := f.refresh
	f.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Apply runs a status-changing action under the feed's reconciliation rule:
// whatever the outcome, the source of truth is re-fetched, so a failed (or
// half-applied) optimistic update can never leave a view diverged.
func (f *Feed) Apply(mutate func() error) error {
	err := mutate()
	f.Refresh()
	return err
}

func (f *Feed) run(ctx context.Context, refresh <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	// Polls run sequentially on this goroutine; a tick that fires while a
	// fetch is still underway is simply dropped by the ticker, which is the
	// at-most-one-in-flight guarantee.
	f.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.poll(ctx)
		case <-refresh:
			f.poll(ctx)
		}
	}
}

func (f *Feed) poll(ctx context.Context) {
	orders, err := f.src.FetchOrders(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		f.log.Warn("order feed poll failed", zap.Error(err))
	}
	f.broadcast(Snapshot{Orders: orders, Err: err, At: time.Now()})
}

func (f *Feed) broadcast(s Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- s:
		default:
			// Drop the stale snapshot so the subscriber always sees the
			// latest one next.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}
