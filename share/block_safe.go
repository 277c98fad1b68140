//go:build nounsafe

package share

import (
	"unsafe"

	"github.com/go-faster/sbo/internal/alloc"
)

const (
	word       = unsafe.Sizeof(uintptr(0))
	headerSize = 2 * word
)

type header struct {
	refs uintptr
	data []byte
}

// block is a header with separately allocated data.
//
// Handle is still a single pointer, but the buffer costs two allocations.
type block struct {
	h *header
}

func newBlock(s []byte) block {
	alloc.Default.Track(int(headerSize) + len(s))
	return block{h: &header{
		refs: 1,
		data: append(make([]byte, 0, len(s)), s...),
	}}
}

func (b block) isZero() bool { return b.h == nil }

func (b block) refs() *uintptr { return &b.h.refs }

func (b block) len() int { return len(b.h.data) }

func (b block) bytes() []byte { return b.h.data }

func (b block) free() {
	alloc.Default.Untrack(int(headerSize) + b.len())
	b.h.data = nil
}
