package service

import (
	"sync"
	"sync/atomic"

	"lfss/domain/sortedseq"
)

// Event describes one successful publication, for the broadcaster.
type Event struct {
	Seq   uint64 `json:"seq"`
	Value int32  `json:"value"`
	Size  int    `json:"size"`
}

// SeqService is the only write entry point into the system.
type SeqService struct {
	seq *sortedseq.Seq

	// outbox feeds the broadcaster. Best-effort: a full outbox drops
	// the event; the container is the source of truth.
	outbox  chan Event
	dropped atomic.Uint64

	snapMu     sync.Mutex
	snapReader *sortedseq.Reader

	metrics *Metrics
}

// ServiceStats extends the core counters with service-level ones.
type ServiceStats struct {
	sortedseq.Stats
	EventsDropped uint64
}

// NewSeqService wires the core to an outbox of the given capacity.
// Metrics may be nil.
func NewSeqService(seq *sortedseq.Seq, outboxSize int, m *Metrics) *SeqService {
	if outboxSize <= 0 {
		outboxSize = 1 << 14
	}
	return &SeqService{
		seq:        seq,
		outbox:     make(chan Event, outboxSize),
		snapReader: seq.NewReader(),
		metrics:    m,
	}
}

// Insert publishes v and emits an event for the broadcaster.
func (s *SeqService) Insert(v int32) uint64 {
	n := s.seq.Insert(v)
	ev := Event{Seq: n, Value: v, Size: s.seq.Len()}
	select {
	case s.outbox <- ev:
	default:
		s.dropped.Add(1)
		if s.metrics != nil {
			s.metrics.EventsDropped.Inc()
		}
	}
	if s.metrics != nil {
		s.metrics.Inserts.Inc()
	}
	return n
}

// At reads the value at pos in the current snapshot.
func (s *SeqService) At(pos int) int32 {
	if s.metrics != nil {
		s.metrics.Reads.Inc()
	}
	return s.seq.At(pos)
}

// Len returns the current snapshot length.
func (s *SeqService) Len() int {
	return s.seq.Len()
}

// Snapshot returns the latest publication sequence and a copy of its
// contents. The copy runs under an epoch-stamped read section so the
// reclaimer waits for it.
func (s *SeqService) Snapshot() (uint64, []int32) {
	s.snapMu.Lock()
	defer s.snapMu.Unlock()

	buf := s.snapReader.Begin()
	defer s.snapReader.End()
	return buf.Version(), buf.Values()
}

// Events exposes the outbox to the broadcaster.
func (s *SeqService) Events() <-chan Event {
	return s.outbox
}

// Stats aggregates core and service counters.
func (s *SeqService) Stats() ServiceStats {
	return ServiceStats{
		Stats:         s.seq.Stats(),
		EventsDropped: s.dropped.Load(),
	}
}
