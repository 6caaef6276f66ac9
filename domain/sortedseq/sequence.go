package sortedseq

import (
	"sync/atomic"
	"time"

	"lfss/infra/memory"
	"lfss/infra/reclaim"
	"lfss/infra/sequence"
)

// Seq is the snapshot publisher. The current pointer always
// designates a fully constructed, ascending, immutable buffer;
// it is never nil between New and Close.
type Seq struct {
	current atomic.Pointer[Buffer]

	bank    *memory.Bank[Buffer]
	gc      *reclaim.Reclaimer
	seq     *sequence.Sequencer
	epoch   *memory.Epoch
	readers *memory.Registry
}

// Stats aggregates the counters of the publisher and its parts.
type Stats struct {
	Published uint64
	Reclaim   reclaim.Stats
	Bank      memory.BankStats
}

type options struct {
	grace      time.Duration
	prewarm    int
	destructor func(*Buffer)
}

// Option configures a Seq at construction.
type Option func(*options)

// WithGrace sets the reclamation grace interval.
func WithGrace(d time.Duration) Option {
	return func(o *options) { o.grace = d }
}

// WithPrewarm parks n empty buffers in the bank up front.
func WithPrewarm(n int) Option {
	return func(o *options) { o.prewarm = n }
}

// WithDestructor observes every buffer destruction. Used by
// reclamation instrumentation; the buffer must not be retained.
func WithDestructor(fn func(*Buffer)) Option {
	return func(o *options) { o.destructor = fn }
}

// New publishes a fresh empty buffer and starts the reclaimer.
func New(opts ...Option) *Seq {
	o := options{grace: reclaim.DefaultGrace}
	for _, fn := range opts {
		fn(&o)
	}

	s := &Seq{
		bank:    memory.NewBank(NewBuffer),
		seq:     sequence.New(0),
		epoch:   &memory.Epoch{},
		readers: &memory.Registry{},
	}
	if o.prewarm > 0 {
		s.bank.Prewarm(o.prewarm)
	}

	ropts := []reclaim.Option{
		reclaim.WithGrace(o.grace),
		reclaim.WithReaders(s.epoch, s.readers),
	}
	if o.destructor != nil {
		fn := o.destructor
		ropts = append(ropts, reclaim.WithDestructor(func(obj any) {
			fn(obj.(*Buffer))
		}))
	}
	s.gc = reclaim.New(ropts...)

	s.current.Store(NewBuffer())
	return s
}

// Insert publishes a new snapshot containing v at its sorted
// position and returns the publication sequence number. CAS failure
// is the normal contended path; the loop is lock-free, not
// wait-free.
func (s *Seq) Insert(v int32) uint64 {
	for {
		scratch := s.bank.Loan()
		old := s.current.Load()
		scratch.CopyFrom(old)
		scratch.InsertSorted(v)
		scratch.version = old.version + 1
		if s.current.CompareAndSwap(old, scratch) {
			s.seq.Next()
			s.gc.Retire(old)
			s.epoch.Advance()
			return scratch.version
		}
		s.bank.Return(scratch)
	}
}

// At returns the value at pos in the snapshot current at the moment
// of the load. No stability beyond the load is guaranteed; pos must
// be in range of that snapshot.
func (s *Seq) At(pos int) int32 {
	return s.current.Load().At(pos)
}

// Len returns the length of the current snapshot.
func (s *Seq) Len() int {
	return s.current.Load().Len()
}

// Values copies the current snapshot out.
func (s *Seq) Values() []int32 {
	return s.current.Load().Values()
}

// Version returns the sequence number of the current snapshot.
func (s *Seq) Version() uint64 {
	return s.current.Load().Version()
}

// Stats snapshots all counters.
func (s *Seq) Stats() Stats {
	return Stats{
		Published: s.seq.Current(),
		Reclaim:   s.gc.Stats(),
		Bank:      s.bank.Stats(),
	}
}

// Close retires the final buffer, drains and stops the reclaimer,
// and empties the bank. The caller must guarantee that no Insert or
// read is in flight and that none will follow.
func (s *Seq) Close() {
	s.gc.Retire(s.current.Load())
	s.gc.Shutdown()
	s.bank.Drain(nil)
}
