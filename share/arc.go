package share

import "fmt"

// Arc is an immutable reference-counted byte buffer with atomic counter.
//
// Same layout as Rc, but clones may be cloned and released concurrently.
// Final release observes all accesses made through released handles.
type Arc struct {
	b block
}

// NewArc returns new Arc holding copy of s.
func NewArc(s []byte) Arc {
	return Arc{b: newBlock(s)}
}

// FromSlice implements Handle.
func (Arc) FromSlice(s []byte) Arc { return NewArc(s) }

// IsZero reports whether a holds no buffer.
func (a Arc) IsZero() bool { return a.b.isZero() }

// Bytes returns buffer content. Result must not be modified.
func (a Arc) Bytes() []byte {
	if a.b.isZero() {
		return nil
	}
	return a.b.bytes()
}

// Len returns content length.
func (a Arc) Len() int {
	if a.b.isZero() {
		return 0
	}
	return a.b.len()
}

// Clone increments reference count and returns handle to the same buffer.
func (a Arc) Clone() Arc {
	if a.b.isZero() {
		return a
	}
	a.b.atomicRefs().Inc()
	return a
}

// Release decrements reference count, freeing the buffer when it reaches
// zero. The a must not be used after Release.
func (a Arc) Release() {
	if a.b.isZero() {
		return
	}
	switch a.b.atomicRefs().Dec() {
	case 0:
		a.b.free()
	case ^uintptr(0):
		panic("share: Arc released more times than cloned")
	}
}

// Refs returns current reference count.
func (a Arc) Refs() int {
	if a.b.isZero() {
		return 0
	}
	return int(a.b.atomicRefs().Load())
}

// Equal reports whether content is equal to s.
func (a Arc) Equal(s []byte) bool { return compare(a.Bytes(), s) == 0 }

// Compare compares content with s lexicographically.
func (a Arc) Compare(s []byte) int { return compare(a.Bytes(), s) }

// Hash returns content hash.
func (a Arc) Hash() uint64 { return hash(a.Bytes()) }

// Format implements fmt.Formatter by formatting content as []byte.
func (a Arc) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), a.Bytes())
}
