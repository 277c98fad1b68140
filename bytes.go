package sbo

import (
	"bytes"
	"fmt"

	"github.com/go-faster/sbo/share"
)

// Bytes is an immutable byte sequence stored inline up to len(C) bytes
// or in shared handle H otherwise.
//
// Inline length is stored as its bitwise complement in tag, so tag of
// inline value is never zero. Zero tag with zero handle is not produced by
// any constructor and encodes absent Option.
//
// The zero value is an empty sequence.
type Bytes[H share.Handle[H], C Capacity] struct {
	tag uint8
	buf C
	h   H
}

// emptyTag is tag of inline empty value.
const emptyTag = ^uint8(0)

// New returns empty inline Bytes.
func New[H share.Handle[H], C Capacity]() Bytes[H, C] {
	return Bytes[H, C]{tag: emptyTag}
}

// Inline returns inline Bytes holding copy of s, if s fits capacity.
func Inline[H share.Handle[H], C Capacity](s []byte) (Bytes[H, C], bool) {
	var b Bytes[H, C]
	if len(s) > len(b.buf) || len(s) >= maxInline {
		return b, false
	}
	copy(inlineBytes(&b.buf), s)
	b.tag = ^uint8(len(s))
	return b, true
}

// From returns Bytes holding copy of s.
//
// Content is stored inline if it fits capacity, otherwise new handle is
// created by H.FromSlice.
func From[H share.Handle[H], C Capacity](s []byte) Bytes[H, C] {
	if b, ok := Inline[H, C](s); ok {
		return b
	}
	var zero H
	return Bytes[H, C]{h: zero.FromSlice(s)}
}

// FromHandle returns outline Bytes that takes ownership of h.
//
// Content is never inlined, so sharing with other holders of h is kept.
// Zero h results in empty value.
func FromHandle[H share.Handle[H], C Capacity](h H) Bytes[H, C] {
	var zero H
	if h == zero {
		return New[H, C]()
	}
	return Bytes[H, C]{h: h}
}

// outline returns handle of outline value.
func (b *Bytes[H, C]) outline() (H, bool) {
	var zero H
	if b.tag != 0 || b.h == zero {
		return zero, false
	}
	return b.h, true
}

// Bytes returns content.
//
// Result must not be modified and is valid until b is released. For inline
// values it references b itself.
func (b *Bytes[H, C]) Bytes() []byte {
	if b.tag != 0 {
		n := ^b.tag
		return inlineBytes(&b.buf)[:n:n]
	}
	if h, ok := b.outline(); ok {
		return h.Bytes()
	}
	return nil
}

// Len returns content length.
func (b *Bytes[H, C]) Len() int {
	if b.tag != 0 {
		return int(^b.tag)
	}
	return len(b.Bytes())
}

// IsEmpty reports whether content is empty.
func (b *Bytes[H, C]) IsEmpty() bool { return b.Len() == 0 }

// Repr returns storage representation.
func (b *Bytes[H, C]) Repr() Repr {
	if _, ok := b.outline(); ok {
		return ReprOutline
	}
	return ReprInline
}

// Handle returns handle of outline value. The handle is borrowed from b.
func (b *Bytes[H, C]) Handle() (H, bool) {
	return b.outline()
}

// Clone returns value with the same content.
//
// Inline value is copied, outline value shares handle via H.Clone.
func (b *Bytes[H, C]) Clone() Bytes[H, C] {
	if h, ok := b.outline(); ok {
		return Bytes[H, C]{h: h.Clone()}
	}
	return *b
}

// Release releases handle of outline value and resets b to empty value.
func (b *Bytes[H, C]) Release() {
	if h, ok := b.outline(); ok {
		h.Release()
	}
	*b = New[H, C]()
}

// Equal reports whether content is equal to s.
func (b *Bytes[H, C]) Equal(s []byte) bool { return bytes.Equal(b.Bytes(), s) }

// Compare compares content with s lexicographically.
func (b *Bytes[H, C]) Compare(s []byte) int { return bytes.Compare(b.Bytes(), s) }

// Hash returns content hash.
//
// Values with equal content have equal hashes.
func (b *Bytes[H, C]) Hash() uint64 { return hash(b.Bytes()) }

// String returns content as string.
func (b Bytes[H, C]) String() string { return string(b.Bytes()) }

// Format implements fmt.Formatter, formatting content as []byte.
func (b Bytes[H, C]) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), b.Bytes())
}
