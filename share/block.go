package share

import (
	"unsafe"

	"go.uber.org/atomic"
)

// atomicRefs returns atomic view of reference counter.
//
// atomic.Uintptr has the same layout as uintptr.
func (b block) atomicRefs() *atomic.Uintptr {
	return (*atomic.Uintptr)(unsafe.Pointer(b.refs()))
}
