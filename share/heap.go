package share

import "fmt"

// Heap is a Handle backed by garbage-collected slice.
//
// Clone returns the same handle and Release does nothing, the slice is
// reclaimed by the garbage collector.
type Heap struct {
	s *[]byte
}

// NewHeap returns new Heap holding copy of s.
func NewHeap(s []byte) Heap {
	b := append(make([]byte, 0, len(s)), s...)
	return Heap{s: &b}
}

// HeapOf wraps existing slice without copying. The slice must not be
// modified afterwards.
func HeapOf(s *[]byte) Heap {
	return Heap{s: s}
}

// FromSlice implements Handle.
func (Heap) FromSlice(s []byte) Heap { return NewHeap(s) }

// IsZero reports whether h holds no buffer.
func (h Heap) IsZero() bool { return h.s == nil }

// Bytes returns content. Result must not be modified.
func (h Heap) Bytes() []byte {
	if h.s == nil {
		return nil
	}
	return *h.s
}

// Len returns content length.
func (h Heap) Len() int { return len(h.Bytes()) }

// Clone implements Handle.
func (h Heap) Clone() Heap { return h }

// Release implements Handle.
func (h Heap) Release() {}

// Equal reports whether content is equal to s.
func (h Heap) Equal(s []byte) bool { return compare(h.Bytes(), s) == 0 }

// Compare compares content with s lexicographically.
func (h Heap) Compare(s []byte) int { return compare(h.Bytes(), s) }

// Hash returns content hash.
func (h Heap) Hash() uint64 { return hash(h.Bytes()) }

// Format implements fmt.Formatter by formatting content as []byte.
func (h Heap) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), h.Bytes())
}
