package reclaim

import (
	"sync"
	"testing"
	"time"

	"lfss/infra/memory"
)

func TestDestructionRespectsGrace(t *testing.T) {
	grace := 20 * time.Millisecond

	var mu sync.Mutex
	destroyed := make(map[int]time.Time)

	g := New(WithGrace(grace), WithDestructor(func(obj any) {
		mu.Lock()
		destroyed[obj.(int)] = time.Now()
		mu.Unlock()
	}))

	retiredAt := time.Now()
	g.Retire(1)
	g.Retire(2)

	time.Sleep(4 * grace)

	mu.Lock()
	defer mu.Unlock()
	for id, at := range destroyed {
		if at.Before(retiredAt.Add(grace)) {
			t.Errorf("object %d destroyed %v after retire, grace is %v",
				id, at.Sub(retiredAt), grace)
		}
	}
	if len(destroyed) != 2 {
		t.Errorf("expected 2 destroyed, got %d", len(destroyed))
	}

	g.Shutdown()
}

func TestDestructionOrderIsFIFO(t *testing.T) {
	var mu sync.Mutex
	var order []int

	g := New(WithGrace(time.Millisecond), WithDestructor(func(obj any) {
		mu.Lock()
		order = append(order, obj.(int))
		mu.Unlock()
	}))

	for i := 0; i < 10; i++ {
		g.Retire(i)
	}

	time.Sleep(50 * time.Millisecond)
	g.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 10 {
		t.Fatalf("expected 10 destroyed, got %d", len(order))
	}
	for i, id := range order {
		if id != i {
			t.Fatalf("destruction out of order: %v", order)
		}
	}
}

// Shutdown destroys residuals regardless of age and must not hang.
func TestShutdownForcesDrain(t *testing.T) {
	var mu sync.Mutex
	count := 0

	g := New(WithGrace(10*time.Second), WithDestructor(func(any) {
		mu.Lock()
		count++
		mu.Unlock()
	}))

	for i := 0; i < 100; i++ {
		g.Retire(i)
	}

	done := make(chan struct{})
	go func() {
		g.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown hung with undue records queued")
	}

	mu.Lock()
	defer mu.Unlock()
	if count != 100 {
		t.Errorf("expected 100 residuals destroyed, got %d", count)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	g := New(WithGrace(time.Millisecond))
	g.Shutdown()
	g.Shutdown()
}

func TestRetireAfterShutdownDestroysImmediately(t *testing.T) {
	var mu sync.Mutex
	count := 0

	g := New(WithGrace(time.Hour), WithDestructor(func(any) {
		mu.Lock()
		count++
		mu.Unlock()
	}))
	g.Shutdown()

	g.Retire(1)

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("retire after shutdown should destroy synchronously, count=%d", count)
	}
}

// An active reader that entered at the record's displacement epoch
// blocks destruction past the grace interval.
func TestActiveReaderBlocksDestruction(t *testing.T) {
	grace := 5 * time.Millisecond

	var e memory.Epoch
	var reg memory.Registry
	r := reg.NewReader()

	var mu sync.Mutex
	count := 0

	g := New(
		WithGrace(grace),
		WithReaders(&e, &reg),
		WithDestructor(func(any) {
			mu.Lock()
			count++
			mu.Unlock()
		}),
	)

	r.Enter(&e) // reader active at epoch 0
	g.Retire(1) // displaced at epoch 0
	e.Advance() // publication completes

	time.Sleep(6 * grace)
	mu.Lock()
	blocked := count == 0
	mu.Unlock()
	if !blocked {
		t.Fatal("record destroyed while a reader from its epoch was active")
	}

	r.Exit()
	time.Sleep(6 * grace)
	mu.Lock()
	released := count == 1
	mu.Unlock()
	if !released {
		t.Error("record not destroyed after reader exit")
	}

	g.Shutdown()
}

func TestStatsCounters(t *testing.T) {
	g := New(WithGrace(time.Millisecond))
	g.Retire(1)
	g.Retire(2)

	st := g.Stats()
	if st.Retired != 2 {
		t.Errorf("expected 2 retired, got %d", st.Retired)
	}

	time.Sleep(30 * time.Millisecond)
	st = g.Stats()
	if st.Destroyed != 2 || st.Pending != 0 {
		t.Errorf("expected all destroyed, got %+v", st)
	}

	g.Shutdown()
}
