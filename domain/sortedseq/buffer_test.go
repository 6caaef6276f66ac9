package sortedseq

import "testing"

func TestInsertSortedIntoEmpty(t *testing.T) {
	b := NewBuffer()
	b.InsertSorted(7)
	if b.Len() != 1 {
		t.Fatalf("expected len 1, got %d", b.Len())
	}
	if b.At(0) != 7 {
		t.Errorf("expected 7 at index 0, got %d", b.At(0))
	}
}

func TestInsertSortedFront(t *testing.T) {
	b := NewBuffer()
	for _, v := range []int32{10, 20, 30} {
		b.InsertSorted(v)
	}
	b.InsertSorted(5)
	if b.At(0) != 5 {
		t.Errorf("expected smallest value at index 0, got %d", b.At(0))
	}
	if !isAscending(b) {
		t.Errorf("buffer not ascending: %v", b.vals)
	}
}

func TestInsertSortedBack(t *testing.T) {
	b := NewBuffer()
	for _, v := range []int32{10, 20, 30} {
		b.InsertSorted(v)
	}
	b.InsertSorted(30)
	b.InsertSorted(40)
	if b.At(b.Len()-1) != 40 {
		t.Errorf("expected 40 at back, got %d", b.At(b.Len()-1))
	}
	if !isAscending(b) {
		t.Errorf("buffer not ascending: %v", b.vals)
	}
}

func TestInsertSortedMiddleAndDuplicates(t *testing.T) {
	b := NewBuffer()
	for _, v := range []int32{5, 1, 3, 3, 2, 4, 3} {
		b.InsertSorted(v)
	}
	want := []int32{1, 2, 3, 3, 3, 4, 5}
	if b.Len() != len(want) {
		t.Fatalf("expected len %d, got %d", len(want), b.Len())
	}
	for i, v := range want {
		if b.At(i) != v {
			t.Errorf("index %d: expected %d, got %d", i, v, b.At(i))
		}
	}
}

func TestCopyFromAndReset(t *testing.T) {
	src := NewBuffer()
	for _, v := range []int32{1, 2, 3} {
		src.InsertSorted(v)
	}

	dst := NewBuffer()
	dst.InsertSorted(99)
	dst.CopyFrom(src)
	if dst.Len() != 3 || dst.At(0) != 1 || dst.At(2) != 3 {
		t.Errorf("CopyFrom did not replace contents: %v", dst.vals)
	}

	// Mutating the copy must not touch the source.
	dst.InsertSorted(0)
	if src.Len() != 3 {
		t.Errorf("source mutated through copy")
	}

	dst.Reset()
	if dst.Len() != 0 {
		t.Errorf("expected empty after Reset, got len %d", dst.Len())
	}
}

func TestValuesIsACopy(t *testing.T) {
	b := NewBuffer()
	b.InsertSorted(1)
	out := b.Values()
	out[0] = 42
	if b.At(0) != 1 {
		t.Errorf("Values aliases the buffer")
	}
}

func isAscending(b *Buffer) bool {
	for i := 1; i < b.Len(); i++ {
		if b.At(i-1) > b.At(i) {
			return false
		}
	}
	return true
}
