package service

import (
	"testing"
	"time"

	"lfss/domain/sortedseq"
)

func newTestService(outbox int) *SeqService {
	seq := sortedseq.New(sortedseq.WithGrace(5 * time.Millisecond))
	return NewSeqService(seq, outbox, nil)
}

func TestInsertEmitsEvent(t *testing.T) {
	svc := newTestService(8)

	n := svc.Insert(42)
	if n != 1 {
		t.Errorf("expected seq 1, got %d", n)
	}

	select {
	case ev := <-svc.Events():
		if ev.Seq != 1 || ev.Value != 42 || ev.Size != 1 {
			t.Errorf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("no event in outbox")
	}
}

func TestFullOutboxDropsNotBlocks(t *testing.T) {
	svc := newTestService(2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			svc.Insert(int32(i))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Insert blocked on full outbox")
	}

	if d := svc.Stats().EventsDropped; d != 8 {
		t.Errorf("expected 8 dropped events, got %d", d)
	}
}

func TestSnapshotConsistentPair(t *testing.T) {
	svc := newTestService(64)

	for _, v := range []int32{3, 1, 2} {
		svc.Insert(v)
	}

	seq, values := svc.Snapshot()
	if seq != 3 {
		t.Errorf("expected snapshot seq 3, got %d", seq)
	}
	want := []int32{1, 2, 3}
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(values))
	}
	for i, v := range want {
		if values[i] != v {
			t.Errorf("index %d: expected %d, got %d", i, v, values[i])
		}
	}
}

func TestStatsAggregation(t *testing.T) {
	svc := newTestService(64)

	svc.Insert(1)
	svc.Insert(2)

	st := svc.Stats()
	if st.Published != 2 {
		t.Errorf("expected 2 published, got %d", st.Published)
	}
	if st.Reclaim.Retired != 2 {
		t.Errorf("expected 2 retired, got %d", st.Reclaim.Retired)
	}
}
