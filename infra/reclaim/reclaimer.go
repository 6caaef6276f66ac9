package reclaim

import (
	"sync"
	"sync/atomic"
	"time"

	"lfss/infra/memory"
)

// DefaultGrace exceeds the longest plausible reader window between
// loading the snapshot pointer and finishing the dereference.
const DefaultGrace = 40 * time.Millisecond

// record pairs a retired object with its retirement time and the
// publication epoch at which it was displaced.
type record struct {
	obj   any
	at    time.Time
	epoch uint64
}

// Reclaimer delays destruction of retired objects until the grace
// interval has elapsed and no registered reader can still hold them.
// A single worker goroutine consumes the queue.
type Reclaimer struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []record
	stop  bool
	done  chan struct{}

	grace   time.Duration
	destroy func(any)
	epoch   *memory.Epoch
	readers *memory.Registry

	retired   atomic.Uint64
	destroyed atomic.Uint64
}

// Stats is a point-in-time counter snapshot.
type Stats struct {
	Retired   uint64
	Destroyed uint64
	Pending   uint64
}

// Option configures a Reclaimer at construction.
type Option func(*Reclaimer)

// WithGrace overrides the grace interval.
func WithGrace(d time.Duration) Option {
	return func(g *Reclaimer) { g.grace = d }
}

// WithDestructor installs fn as the destruction step. The default
// drops the last reference and lets the garbage collector free it.
func WithDestructor(fn func(any)) Option {
	return func(g *Reclaimer) { g.destroy = fn }
}

// WithReaders gates destruction on registered reader epochs: a record
// is destroyed only once every active reader entered after the record
// was displaced. Retirement stamps records from e.
func WithReaders(e *memory.Epoch, reg *memory.Registry) Option {
	return func(g *Reclaimer) {
		g.epoch = e
		g.readers = reg
	}
}

// New starts the worker and returns the reclaimer.
func New(opts ...Option) *Reclaimer {
	g := &Reclaimer{
		grace: DefaultGrace,
		done:  make(chan struct{}),
	}
	g.cond = sync.NewCond(&g.mu)
	for _, o := range opts {
		o(g)
	}
	go g.watch()
	return g
}

// Grace returns the configured grace interval.
func (g *Reclaimer) Grace() time.Duration {
	return g.grace
}

// Retire enqueues obj for destruction no earlier than now+grace.
// After Shutdown it destroys obj synchronously.
func (g *Reclaimer) Retire(obj any) {
	var ep uint64
	if g.epoch != nil {
		ep = g.epoch.Current()
	}
	g.mu.Lock()
	if g.stop {
		g.mu.Unlock()
		g.retired.Add(1)
		g.destroyObj(obj)
		return
	}
	g.queue = append(g.queue, record{obj: obj, at: time.Now(), epoch: ep})
	g.retired.Add(1)
	g.mu.Unlock()
	g.cond.Signal()
}

func (g *Reclaimer) watch() {
	defer close(g.done)
	g.mu.Lock()
	defer g.mu.Unlock()
	for {
		for !g.stop && len(g.queue) == 0 {
			g.cond.Wait()
		}
		if g.stop {
			return
		}

		head := g.queue[0]
		now := time.Now()
		if due := head.at.Add(g.grace); now.Before(due) {
			g.waitUntil(due)
			continue
		}
		if !g.readerSafe(head.epoch) {
			// An active reader predates the displacement. Recheck
			// after another grace; readers do not signal the cond.
			g.waitUntil(now.Add(g.grace))
			continue
		}

		g.queue = g.queue[1:]
		g.mu.Unlock()
		g.destroyObj(head.obj)
		g.mu.Lock()
	}
}

// waitUntil blocks on the condition until due or until signaled.
// sync.Cond has no timed wait, so a timer broadcasts at the deadline.
// The timer takes the mutex first: the worker holds it until Wait
// parks, so the broadcast cannot be lost.
func (g *Reclaimer) waitUntil(due time.Time) {
	d := time.Until(due)
	if d <= 0 {
		return
	}
	t := time.AfterFunc(d, func() {
		g.mu.Lock()
		g.mu.Unlock()
		g.cond.Broadcast()
	})
	g.cond.Wait()
	t.Stop()
}

// readerSafe reports whether no active reader entered at or before
// the epoch at which the record was displaced.
func (g *Reclaimer) readerSafe(ep uint64) bool {
	if g.readers == nil {
		return true
	}
	min := g.readers.MinEpoch()
	return min == memory.NoReaders || ep < min
}

func (g *Reclaimer) destroyObj(obj any) {
	if g.destroy != nil {
		g.destroy(obj)
	}
	g.destroyed.Add(1)
}

// Shutdown stops the worker, joins it, then destroys every residual
// record irrespective of age. Safe only once no reader remains.
func (g *Reclaimer) Shutdown() {
	g.mu.Lock()
	if g.stop {
		g.mu.Unlock()
		<-g.done
		return
	}
	g.stop = true
	g.mu.Unlock()
	g.cond.Broadcast()
	<-g.done

	g.mu.Lock()
	rest := g.queue
	g.queue = nil
	g.mu.Unlock()
	for _, r := range rest {
		g.destroyObj(r.obj)
	}
}

// Pending returns the number of retired-but-undestroyed objects.
func (g *Reclaimer) Pending() uint64 {
	return g.retired.Load() - g.destroyed.Load()
}

// Stats snapshots the reclaimer counters.
func (g *Reclaimer) Stats() Stats {
	d := g.destroyed.Load()
	r := g.retired.Load()
	return Stats{Retired: r, Destroyed: d, Pending: r - d}
}
