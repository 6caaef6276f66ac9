package sortedseq

import "sort"

// Buffer is one snapshot of the sequence: an ascending slice of
// int32 values. A buffer is mutated only while privately owned by a
// single writer; once published it is immutable.
type Buffer struct {
	vals []int32

	// version is the publication sequence this buffer was (or is
	// about to be) published under. Stamped by the writer before the
	// CAS; the CAS linearizes, so published versions are strictly
	// increasing.
	version uint64
}

// Version returns the publication sequence of this snapshot.
func (b *Buffer) Version() uint64 {
	return b.version
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len returns the number of values.
func (b *Buffer) Len() int {
	return len(b.vals)
}

// At returns the value at pos. Out-of-range is caller error.
func (b *Buffer) At(pos int) int32 {
	return b.vals[pos]
}

// Values copies the contents out.
func (b *Buffer) Values() []int32 {
	out := make([]int32, len(b.vals))
	copy(out, b.vals)
	return out
}

// Reset empties the buffer, keeping capacity.
func (b *Buffer) Reset() {
	b.vals = b.vals[:0]
}

// CopyFrom replaces the contents with a copy of src.
func (b *Buffer) CopyFrom(src *Buffer) {
	b.vals = append(b.vals[:0], src.vals...)
}

// InsertSorted inserts v at the index that keeps the buffer
// ascending. Equal values may land adjacent on either side.
func (b *Buffer) InsertSorted(v int32) {
	n := len(b.vals)
	if n == 0 || v >= b.vals[n-1] {
		b.vals = append(b.vals, v)
		return
	}
	k := sort.Search(n, func(i int) bool { return b.vals[i] >= v })
	b.vals = append(b.vals, 0)
	copy(b.vals[k+1:], b.vals[k:])
	b.vals[k] = v
}
