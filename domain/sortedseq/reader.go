package sortedseq

import "lfss/infra/memory"

// Reader is an epoch-stamped read handle. Plain At/Len never need
// one: the grace interval alone covers their dereference window. A
// Reader is for consumers that hold a snapshot across a longer
// window (bulk copies, wire serialization) and want the reclaimer to
// wait for them.
//
// A Reader is not safe for concurrent use; take one per goroutine.
type Reader struct {
	seq   *Seq
	epoch *memory.ReaderEpoch
}

// NewReader registers a read handle with the publisher's reclaimer.
func (s *Seq) NewReader() *Reader {
	return &Reader{seq: s, epoch: s.readers.NewReader()}
}

// Begin marks the start of a read section and returns the pinned
// snapshot. The epoch is stamped before the pointer load, so every
// buffer displaced from here on outlives the section.
func (r *Reader) Begin() *Buffer {
	r.epoch.Enter(r.seq.epoch)
	return r.seq.current.Load()
}

// End marks the end of the read section.
func (r *Reader) End() {
	r.epoch.Exit()
}
