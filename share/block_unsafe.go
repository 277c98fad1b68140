//go:build !nounsafe

package share

import (
	"unsafe"

	"github.com/go-faster/sbo/internal/alloc"
)

const (
	word       = unsafe.Sizeof(uintptr(0))
	headerSize = 2 * word
)

// block is a single allocation laid out as
//
//	[refs uintptr][len uintptr][data...]
//
// and referenced by pointer to its start.
type block struct {
	p unsafe.Pointer
}

func newBlock(s []byte) block {
	size := int(headerSize) + len(s)
	p := alloc.Default.Alloc(size)
	*(*uintptr)(p) = 1
	*(*uintptr)(unsafe.Add(p, word)) = uintptr(len(s))
	if len(s) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Add(p, headerSize)), len(s)), s)
	}
	return block{p: p}
}

func (b block) isZero() bool { return b.p == nil }

func (b block) refs() *uintptr { return (*uintptr)(b.p) }

func (b block) len() int {
	return int(*(*uintptr)(unsafe.Add(b.p, word)))
}

func (b block) bytes() []byte {
	n := b.len()
	if n == 0 {
		// Data starts right past the header, which may be the end of
		// allocation.
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Add(b.p, headerSize)), n)
}

func (b block) free() {
	alloc.Default.Free(b.p, int(headerSize)+b.len())
}
