package sbo

import (
	"fmt"
	"strings"

	"github.com/go-faster/sbo/share"
)

// String is Bytes with content that is always valid UTF-8.
//
// The zero value is an empty string.
type String[H share.Handle[H], C Capacity] struct {
	b Bytes[H, C]
}

// NewString returns empty inline String.
func NewString[H share.Handle[H], C Capacity]() String[H, C] {
	return String[H, C]{b: New[H, C]()}
}

// FromString returns String holding copy of s, inline if it fits capacity.
func FromString[H share.Handle[H], C Capacity](s string) String[H, C] {
	return String[H, C]{b: From[H, C](stringBytes(s))}
}

// FromUTF8 validates b and wraps it as String without copying.
//
// On failure error is *UTF8Error and b is still owned by the caller.
func FromUTF8[H share.Handle[H], C Capacity](b Bytes[H, C]) (String[H, C], error) {
	if err := validateUTF8(b.Bytes()); err != nil {
		return String[H, C]{}, err
	}
	return String[H, C]{b: b}, nil
}

// StringFromHandle returns outline String that takes ownership of h if h
// content is valid UTF-8.
//
// On failure error is *UTF8Error and h is still owned by the caller.
func StringFromHandle[H share.Handle[H], C Capacity](h H) (String[H, C], error) {
	return FromUTF8(FromHandle[H, C](h))
}

// Bytes returns content. Result must not be modified.
func (s *String[H, C]) Bytes() []byte { return s.b.Bytes() }

// View returns content as string without copying.
//
// The result shares memory with s and is valid until s is released; it
// must not be retained after that. Use String for a copy.
func (s *String[H, C]) View() string {
	return stringView(s.b.Bytes())
}

// String returns copy of content.
func (s String[H, C]) String() string { return string(s.b.Bytes()) }

// Len returns content length in bytes.
func (s *String[H, C]) Len() int { return s.b.Len() }

// IsEmpty reports whether content is empty.
func (s *String[H, C]) IsEmpty() bool { return s.b.IsEmpty() }

// Repr returns storage representation.
func (s *String[H, C]) Repr() Repr { return s.b.Repr() }

// Handle returns handle of outline value. The handle is borrowed from s.
func (s *String[H, C]) Handle() (H, bool) { return s.b.Handle() }

// Clone returns value with the same content, see Bytes.Clone.
func (s *String[H, C]) Clone() String[H, C] {
	return String[H, C]{b: s.b.Clone()}
}

// Release releases handle of outline value and resets s to empty value.
func (s *String[H, C]) Release() { s.b.Release() }

// Unwrap returns underlying Bytes, consuming s.
func (s String[H, C]) Unwrap() Bytes[H, C] { return s.b }

// Equal reports whether content is equal to v.
func (s *String[H, C]) Equal(v string) bool { return s.View() == v }

// Compare compares content with v lexicographically.
func (s *String[H, C]) Compare(v string) int { return strings.Compare(s.View(), v) }

// Hash returns content hash, equal to hash of Bytes with the same content.
func (s *String[H, C]) Hash() uint64 { return s.b.Hash() }

// Format implements fmt.Formatter, formatting content as string.
func (s String[H, C]) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), s.View())
}
