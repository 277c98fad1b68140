package sbo

import "unsafe"

//go:generate go run ./internal/cmd/sbo-gen-cap

// Native is the largest inline capacity that keeps Bytes with single-word
// handle (Rc, Arc, Heap) no larger than []byte: 15 bytes on 64-bit
// platforms and 7 bytes on 32-bit ones.
type Native = [2*unsafe.Sizeof(uintptr(0)) - 1]byte

// maxInline is exclusive upper bound of inline length.
const maxInline = 255
