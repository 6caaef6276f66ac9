package memory

import "sync/atomic"

// Bank is a lock-free LIFO stack of loanable objects. Loan pops the
// most recently returned object, falling back to the constructor when
// the stack is empty, so Loan never fails.
//
// The head is an atomic pointer to an immutable descriptor carrying
// both the top node and a version counter. Every successful mutation
// installs a fresh descriptor with version+1; a stalled CAS therefore
// never observes a recycled head word even if the same node address
// comes back (ABA).
type Bank[T any] struct {
	head atomic.Pointer[bankHead[T]]
	ctor func() *T

	size    atomic.Int64
	loans   atomic.Uint64
	allocs  atomic.Uint64
	returns atomic.Uint64
}

type bankHead[T any] struct {
	top *bankNode[T]
	ver uint64
}

type bankNode[T any] struct {
	obj  *T
	next *bankNode[T]
}

// BankStats is a point-in-time counter snapshot.
type BankStats struct {
	Size    int64  // objects currently parked in the bank
	Loans   uint64 // successful pops
	Allocs  uint64 // empty-bank fallbacks to the constructor
	Returns uint64 // pushes
}

// NewBank creates a bank whose empty-loan fallback is ctor.
func NewBank[T any](ctor func() *T) *Bank[T] {
	b := &Bank[T]{ctor: ctor}
	b.head.Store(&bankHead[T]{})
	return b
}

// Prewarm parks n freshly constructed objects in the bank.
func (b *Bank[T]) Prewarm(n int) {
	for i := 0; i < n; i++ {
		b.push(b.ctor())
	}
}

// Loan hands out an object. Empty bank allocates.
func (b *Bank[T]) Loan() *T {
	for {
		h := b.head.Load()
		if h.top == nil {
			b.allocs.Add(1)
			return b.ctor()
		}
		next := &bankHead[T]{top: h.top.next, ver: h.ver + 1}
		if b.head.CompareAndSwap(h, next) {
			b.size.Add(-1)
			b.loans.Add(1)
			return h.top.obj
		}
	}
}

// Return parks an object back in the bank. The object must not be
// reachable by any other party once returned.
func (b *Bank[T]) Return(obj *T) {
	b.push(obj)
	b.returns.Add(1)
}

func (b *Bank[T]) push(obj *T) {
	n := &bankNode[T]{obj: obj}
	for {
		h := b.head.Load()
		n.next = h.top
		if b.head.CompareAndSwap(h, &bankHead[T]{top: n, ver: h.ver + 1}) {
			b.size.Add(1)
			return
		}
	}
}

// Drain pops every parked object, invoking fn on each when non-nil.
// Callers must have quiesced all Loan/Return traffic first.
func (b *Bank[T]) Drain(fn func(*T)) {
	for {
		h := b.head.Load()
		if h.top == nil {
			return
		}
		if !b.head.CompareAndSwap(h, &bankHead[T]{top: h.top.next, ver: h.ver + 1}) {
			continue
		}
		b.size.Add(-1)
		if fn != nil {
			fn(h.top.obj)
		}
	}
}

// Size returns the number of parked objects.
func (b *Bank[T]) Size() int64 {
	return b.size.Load()
}

// Stats snapshots the bank counters.
func (b *Bank[T]) Stats() BankStats {
	return BankStats{
		Size:    b.size.Load(),
		Loans:   b.loans.Load(),
		Allocs:  b.allocs.Load(),
		Returns: b.returns.Load(),
	}
}
