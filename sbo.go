// Package sbo implements immutable byte and string values with small buffer
// optimization.
//
// Content of up to N bytes is stored inline, directly in the value, where N
// is given by the Capacity type parameter. Longer content is stored outline
// in a shared buffer produced by the sharing strategy H, see package share:
//
//	type Bytes = sbo.Bytes[share.Arc, sbo.Native]
//
//	b := sbo.From[share.Arc, sbo.Native](data)
//	defer b.Release()
//
// Values are never mutated after construction. Cloning an outline value
// shares its buffer, so every outline value (and every clone of it) must be
// released with Release when no longer needed.
//
// Equality, ordering, hashing and formatting are defined by content only,
// regardless of representation, capacity or handle type.
package sbo

import (
	"bytes"

	"github.com/go-faster/city"
)

// Viewer is a value with byte content.
//
// Implemented by *Bytes, *String and share handles.
type Viewer interface {
	Bytes() []byte
}

// Equal reports whether a and b have the same content.
func Equal(a, b Viewer) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Compare compares content of a and b lexicographically.
func Compare(a, b Viewer) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

func hash(b []byte) uint64 {
	return city.Hash64(b)
}
