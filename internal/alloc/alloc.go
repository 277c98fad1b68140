// Package alloc implements word-aligned block allocation for
// reference-counted buffers.
//
// Blocks are carved from []uintptr, so every block is aligned to the machine
// word and is never scanned by the garbage collector. Freed blocks are
// recycled through power-of-two size classes.
package alloc

import (
	"math/bits"
	"sync"
	"unsafe"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Word is the machine word size in bytes.
const Word = int(unsafe.Sizeof(uintptr(0)))

const (
	minClassWords = 2  // header-only block
	numClasses    = 16 // largest pooled class is 64K words
)

// Options configures Allocator.
type Options struct {
	Logger *zap.Logger

	// NoPool disables recycling, freed blocks are left to the garbage
	// collector.
	NoPool bool
}

// Stats is a snapshot of Allocator counters.
type Stats struct {
	Allocs    uint64 // total allocations
	Frees     uint64 // total frees
	Reused    uint64 // allocations served from a size class pool
	Live      int64  // allocated and not freed blocks
	LiveBytes int64  // requested bytes of live blocks
}

// Allocator hands out word-aligned blocks.
//
// Allocator is safe for concurrent use.
type Allocator struct {
	lg      *zap.Logger
	noPool  bool
	classes [numClasses]sync.Pool

	allocs atomic.Uint64
	frees  atomic.Uint64
	reused atomic.Uint64
	live   atomic.Int64
	bytes  atomic.Int64
}

// New returns new Allocator.
func New(opt Options) *Allocator {
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	return &Allocator{
		lg:     opt.Logger,
		noPool: opt.NoPool,
	}
}

// Default is the Allocator used by share handles.
var Default = New(Options{})

func words(size int) int {
	n := (size + Word - 1) / Word
	if n < 1 {
		n = 1
	}
	return n
}

// class returns size class of block with n words, or -1 if such block is
// too large to be pooled.
func class(n int) int {
	if n <= minClassWords {
		return 0
	}
	k := bits.Len(uint(n-1)) - 1
	if k >= numClasses {
		return -1
	}
	return k
}

func classWords(k int) int {
	return minClassWords << k
}

// Alloc returns pointer to word-aligned block of at least size bytes.
//
// Block content is unspecified. The block must be returned by Free with
// the same size.
func (a *Allocator) Alloc(size int) unsafe.Pointer {
	a.allocs.Inc()
	a.live.Inc()
	a.bytes.Add(int64(size))

	n := words(size)
	k := class(n)
	if k < 0 {
		if ce := a.lg.Check(zap.DebugLevel, "Oversized block"); ce != nil {
			ce.Write(zap.Int("size", size), zap.Int("words", n))
		}
		return unsafe.Pointer(&make([]uintptr, n)[0])
	}
	if !a.noPool {
		if p, ok := a.classes[k].Get().(unsafe.Pointer); ok {
			a.reused.Inc()
			return p
		}
	}
	return unsafe.Pointer(&make([]uintptr, classWords(k))[0])
}

// Free returns block allocated by Alloc with the same size.
func (a *Allocator) Free(p unsafe.Pointer, size int) {
	a.Untrack(size)
	if a.noPool {
		return
	}
	k := class(words(size))
	if k < 0 {
		return
	}
	a.classes[k].Put(p)
}

// Track accounts block of size bytes that was allocated outside of
// Allocator, so Stats stay comparable between build variants.
func (a *Allocator) Track(size int) {
	a.allocs.Inc()
	a.live.Inc()
	a.bytes.Add(int64(size))
}

// Untrack is counterpart of Track.
func (a *Allocator) Untrack(size int) {
	a.frees.Inc()
	a.live.Dec()
	a.bytes.Sub(int64(size))
}

// Stats returns snapshot of counters.
func (a *Allocator) Stats() Stats {
	return Stats{
		Allocs:    a.allocs.Load(),
		Frees:     a.frees.Load(),
		Reused:    a.reused.Load(),
		Live:      a.live.Load(),
		LiveBytes: a.bytes.Load(),
	}
}
