package sbo

import "github.com/go-faster/sbo/share"

// Convert converts b to Bytes with different inline capacity M, consuming b.
//
// Outline value keeps its handle regardless of M, no allocation happens and
// ownership is moved to result. Inline value is constructed again as From
// does, so it spills to a new handle if content does not fit M. Use
// TryConvert to avoid that allocation.
func Convert[M Capacity, H share.Handle[H], C Capacity](b Bytes[H, C]) Bytes[H, M] {
	if h, ok := b.outline(); ok {
		return Bytes[H, M]{h: h}
	}
	return From[H, M](b.Bytes())
}

// TryConvert is like Convert, but fails instead of allocating when inline
// content does not fit M. On failure b is left untouched.
func TryConvert[M Capacity, H share.Handle[H], C Capacity](b Bytes[H, C]) (Bytes[H, M], bool) {
	if h, ok := b.outline(); ok {
		return Bytes[H, M]{h: h}, true
	}
	return Inline[H, M](b.Bytes())
}

// ConvertString is Convert for String.
func ConvertString[M Capacity, H share.Handle[H], C Capacity](s String[H, C]) String[H, M] {
	return String[H, M]{b: Convert[M](s.b)}
}

// TryConvertString is TryConvert for String.
func TryConvertString[M Capacity, H share.Handle[H], C Capacity](s String[H, C]) (String[H, M], bool) {
	b, ok := TryConvert[M](s.b)
	return String[H, M]{b: b}, ok
}
