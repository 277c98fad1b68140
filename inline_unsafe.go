//go:build !nounsafe

package sbo

import "unsafe"

// inlineBytes returns whole inline buffer as slice.
func inlineBytes[C Capacity](c *C) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(c)), len(*c))
}

// stringView returns string that shares memory with b.
func stringView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringBytes returns b that shares memory with s. The b must not be
// modified.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
