package sortedseq

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const testGrace = 5 * time.Millisecond

func TestInsertIntoEmptySeq(t *testing.T) {
	s := New(WithGrace(testGrace))
	defer s.Close()

	seq := s.Insert(42)
	if seq != 1 {
		t.Errorf("expected first publication seq 1, got %d", seq)
	}
	if s.Len() != 1 || s.At(0) != 42 {
		t.Fatalf("expected [42], got len=%d", s.Len())
	}
}

func TestReadStableWithoutWriters(t *testing.T) {
	s := New(WithGrace(testGrace))
	defer s.Close()

	s.Insert(3)
	s.Insert(1)
	s.Insert(2)

	if a, b := s.At(1), s.At(1); a != b {
		t.Errorf("repeated read changed without writers: %d then %d", a, b)
	}
}

// Sentinel stability: a value below every later insert must stay at
// index 0 while writers run.
func TestSentinelStability(t *testing.T) {
	const (
		writers   = 8
		perWriter = 400
	)

	s := New(WithGrace(testGrace))
	defer s.Close()

	s.Insert(-1)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	var bad atomic.Int64
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if v := s.At(0); v != -1 {
					bad.Add(1)
				}
			}
		}
	}()

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Insert(int32(w*perWriter + i))
			}
		}(w)
	}
	wg.Wait()
	close(stop)

	if n := bad.Load(); n != 0 {
		t.Errorf("reader saw %d samples where index 0 != -1", n)
	}

	got := s.Values()
	if len(got) != writers*perWriter+1 {
		t.Fatalf("expected %d values, got %d", writers*perWriter+1, len(got))
	}
	for i, v := range got {
		if v != int32(i-1) {
			t.Fatalf("index %d: expected %d, got %d", i, i-1, v)
		}
	}
}

// Shuffled disjoint union: concurrent shuffled inserts of disjoint
// slices must produce the sorted union.
func TestShuffledDisjointUnion(t *testing.T) {
	const (
		writers   = 4
		perWriter = 1000
	)

	s := New(WithGrace(testGrace))
	defer s.Close()

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			vals := rng.Perm(perWriter)
			for _, v := range vals {
				s.Insert(int32(w*perWriter + v))
			}
		}(w)
	}
	wg.Wait()

	got := s.Values()
	if len(got) != writers*perWriter {
		t.Fatalf("expected %d values, got %d", writers*perWriter, len(got))
	}
	for i, v := range got {
		if v != int32(i) {
			t.Fatalf("index %d: expected %d, got %d", i, i, v)
		}
	}
}

func TestSoloWriterShuffled(t *testing.T) {
	const n = 3000

	s := New(WithGrace(testGrace))
	defer s.Close()

	rng := rand.New(rand.NewSource(1))
	for _, v := range rng.Perm(n) {
		s.Insert(int32(v))
	}

	got := s.Values()
	if len(got) != n {
		t.Fatalf("expected %d values, got %d", n, len(got))
	}
	for i, v := range got {
		if v != int32(i) {
			t.Fatalf("index %d: expected %d, got %d", i, i, v)
		}
	}
}

// Every publication retires exactly one buffer, and Close accounts
// for all of them plus the final snapshot.
func TestReclaimAccounting(t *testing.T) {
	s := New(WithGrace(testGrace))

	const n = 500
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				s.Insert(int32(w*n + i))
			}
		}(w)
	}
	wg.Wait()

	st := s.Stats()
	if st.Published != 4*n {
		t.Fatalf("expected %d publications, got %d", 4*n, st.Published)
	}
	if st.Reclaim.Retired != st.Published {
		t.Errorf("retired %d != published %d", st.Reclaim.Retired, st.Published)
	}

	s.Close()

	st = s.Stats()
	if st.Reclaim.Retired != st.Published+1 {
		t.Errorf("after close: retired %d, expected %d", st.Reclaim.Retired, st.Published+1)
	}
	if st.Reclaim.Destroyed != st.Reclaim.Retired {
		t.Errorf("after close: destroyed %d != retired %d", st.Reclaim.Destroyed, st.Reclaim.Retired)
	}
	if st.Reclaim.Pending != 0 {
		t.Errorf("after close: %d buffers still pending", st.Reclaim.Pending)
	}
}

// Live buffers stay bounded by the writer count plus what is parked
// in the bank and the reclaimer, independent of total insertions.
func TestLiveBufferBound(t *testing.T) {
	s := New(WithGrace(testGrace))

	const (
		writers   = 4
		perWriter = 500
	)
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Insert(int32(w*perWriter + i))
			}
		}(w)
	}
	wg.Wait()

	// Let the reclaimer catch up, then check that what remains alive
	// does not scale with the insert count.
	time.Sleep(5 * testGrace)

	st := s.Stats()
	live := 1 + int64(st.Reclaim.Pending) + st.Bank.Size
	if max := int64(writers)*2 + 4; live > max {
		t.Errorf("live buffers %d exceed bound %d (pending=%d bank=%d)",
			live, max, st.Reclaim.Pending, st.Bank.Size)
	}

	s.Close()
}

// A buffer pinned by an epoch reader must survive until the reader
// exits, even after the grace interval expires.
func TestReaderPinsBuffer(t *testing.T) {
	destroyed := make(map[*Buffer]time.Time)
	var mu sync.Mutex

	s := New(
		WithGrace(testGrace),
		WithDestructor(func(b *Buffer) {
			mu.Lock()
			destroyed[b] = time.Now()
			mu.Unlock()
		}),
	)

	s.Insert(1)

	r := s.NewReader()
	pinned := r.Begin()

	// Displace the pinned buffer several times over.
	for i := int32(2); i < 10; i++ {
		s.Insert(i)
	}

	time.Sleep(5 * testGrace)

	mu.Lock()
	_, gone := destroyed[pinned]
	mu.Unlock()
	if gone {
		t.Fatal("pinned buffer destroyed while reader active")
	}

	r.End()
	time.Sleep(5 * testGrace)

	mu.Lock()
	_, gone = destroyed[pinned]
	mu.Unlock()
	if !gone {
		t.Errorf("pinned buffer not reclaimed after reader exit")
	}

	s.Close()
}

// No destruction may happen before retirement + grace while the
// container is live (Close is allowed to force-drain).
func TestReclamationGrace(t *testing.T) {
	var mu sync.Mutex
	destroyedAt := make(map[*Buffer]time.Time)

	grace := 20 * time.Millisecond
	s := New(
		WithGrace(grace),
		WithDestructor(func(b *Buffer) {
			mu.Lock()
			destroyedAt[b] = time.Now()
			mu.Unlock()
		}),
	)

	// Loads recorded by an instrumented reader; each load time lower-
	// bounds the retirement time of the loaded buffer.
	r := s.NewReader()
	var loads []struct {
		buf *Buffer
		at  time.Time
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			buf := r.Begin()
			loads = append(loads, struct {
				buf *Buffer
				at  time.Time
			}{buf, time.Now()})
			r.End()
			s.Insert(int32(i))
		}
	}()
	<-done

	// Drain everything the reclaimer owes before Close, so forced
	// shutdown destruction cannot contaminate the measurement.
	time.Sleep(5 * grace)

	mu.Lock()
	snap := make(map[*Buffer]time.Time, len(destroyedAt))
	for k, v := range destroyedAt {
		snap[k] = v
	}
	mu.Unlock()

	for _, l := range loads {
		d, ok := snap[l.buf]
		if !ok {
			continue
		}
		if d.Before(l.at.Add(grace)) {
			t.Fatalf("buffer destroyed %v after load; grace is %v",
				d.Sub(l.at), grace)
		}
	}

	s.Close()
}

func TestCloseImmediatelyAfterNew(t *testing.T) {
	doneCh := make(chan struct{})
	go func() {
		s := New(WithGrace(testGrace))
		s.Close()
		close(doneCh)
	}()
	select {
	case <-doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("New+Close hung")
	}
}

// Shutdown drain: Close right after a burst must return promptly and
// account for every buffer.
func TestShutdownDrain(t *testing.T) {
	grace := 100 * time.Millisecond
	s := New(WithGrace(grace))

	for i := 0; i < 1000; i++ {
		s.Insert(int32(i))
	}

	start := time.Now()
	s.Close()
	if el := time.Since(start); el > 5*grace {
		t.Errorf("Close took %v, expected a small multiple of %v", el, grace)
	}

	st := s.Stats()
	if st.Reclaim.Pending != 0 {
		t.Errorf("%d buffers leaked past Close", st.Reclaim.Pending)
	}
}

func BenchmarkInsert(b *testing.B) {
	s := New()
	defer s.Close()

	var n atomic.Int64
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Insert(int32(n.Add(1)))
		}
	})
}

func BenchmarkReadAt(b *testing.B) {
	s := New()
	defer s.Close()
	for i := 0; i < 1024; i++ {
		s.Insert(int32(i))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = s.At(i & 1023)
			i++
		}
	})
}
