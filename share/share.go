// Package share implements shared immutable byte buffers used as outline
// storage of sbo values.
//
// A sharing strategy is any type satisfying Handle. Three are provided:
//
//	Rc    single-word reference-counted buffer, not safe for concurrent use
//	Arc   single-word reference-counted buffer with atomic counter
//	Heap  garbage-collected buffer, Clone and Release are no-ops
//
// Handles are immutable after creation: content returned by Bytes must
// not be modified.
package share

import (
	"bytes"

	"github.com/go-faster/city"
)

// Handle is a sharing strategy for immutable bytes.
//
// The zero value of H holds no data. FromSlice must be callable on the zero
// value and return a fresh handle owning a copy of s. Clone must share the
// content (e.g. bump a reference count), never copy it. Release drops the
// reference held by handle, after which the handle must not be used.
type Handle[H any] interface {
	comparable

	FromSlice(s []byte) H
	Bytes() []byte
	Clone() H
	Release()
}

func assertHandle[H Handle[H]]() {}

// Compile-time assertions for handles.
var (
	_ = assertHandle[Rc]
	_ = assertHandle[Arc]
	_ = assertHandle[Heap]
)

func hash(b []byte) uint64 {
	return city.Hash64(b)
}

func compare(a, b []byte) int {
	return bytes.Compare(a, b)
}
