package share

import "fmt"

// Rc is an immutable reference-counted byte buffer.
//
// Basically a reference-counted []byte that takes a single word: counter,
// length and data live in one allocation and Rc is a pointer to it.
//
// Rc is not safe for concurrent use: all clones of a buffer must be cloned
// and released by the same goroutine. Use Arc to share between goroutines.
// There are no weak references.
type Rc struct {
	b block
}

// NewRc returns new Rc holding copy of s.
//
// Empty s still allocates a header-only block.
func NewRc(s []byte) Rc {
	return Rc{b: newBlock(s)}
}

// FromSlice implements Handle.
func (Rc) FromSlice(s []byte) Rc { return NewRc(s) }

// IsZero reports whether r holds no buffer.
func (r Rc) IsZero() bool { return r.b.isZero() }

// Bytes returns buffer content. Result must not be modified.
func (r Rc) Bytes() []byte {
	if r.b.isZero() {
		return nil
	}
	return r.b.bytes()
}

// Len returns content length.
func (r Rc) Len() int {
	if r.b.isZero() {
		return 0
	}
	return r.b.len()
}

// Clone increments reference count and returns handle to the same buffer.
func (r Rc) Clone() Rc {
	if r.b.isZero() {
		return r
	}
	*r.b.refs()++
	return r
}

// Release decrements reference count, freeing the buffer when it reaches
// zero. The r must not be used after Release.
func (r Rc) Release() {
	if r.b.isZero() {
		return
	}
	refs := r.b.refs()
	if *refs == 0 {
		panic("share: Rc released more times than cloned")
	}
	*refs--
	if *refs == 0 {
		r.b.free()
	}
}

// Refs returns current reference count.
func (r Rc) Refs() int {
	if r.b.isZero() {
		return 0
	}
	return int(*r.b.refs())
}

// Equal reports whether content is equal to s.
func (r Rc) Equal(s []byte) bool { return compare(r.Bytes(), s) == 0 }

// Compare compares content with s lexicographically.
func (r Rc) Compare(s []byte) int { return compare(r.Bytes(), s) }

// Hash returns content hash.
func (r Rc) Hash() uint64 { return hash(r.Bytes()) }

// Format implements fmt.Formatter by formatting content as []byte.
func (r Rc) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), r.Bytes())
}
