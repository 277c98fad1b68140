package sbo

import "github.com/go-faster/sbo/share"

// Option is Bytes that can be absent.
//
// Absence is encoded in the niche of Bytes (zero tag and zero handle), so
// Option has exactly the size of Bytes. The zero value is absent.
type Option[H share.Handle[H], C Capacity] struct {
	v Bytes[H, C]
}

// Some returns present Option holding b.
func Some[H share.Handle[H], C Capacity](b Bytes[H, C]) Option[H, C] {
	var zero H
	if b.tag == 0 && b.h == zero {
		// Zero value of Bytes is empty content.
		b = New[H, C]()
	}
	return Option[H, C]{v: b}
}

// None returns absent Option.
func None[H share.Handle[H], C Capacity]() Option[H, C] {
	return Option[H, C]{}
}

// IsSet reports whether value is present.
func (o Option[H, C]) IsSet() bool {
	var zero H
	return o.v.tag != 0 || o.v.h != zero
}

// Get returns value and whether it is present.
func (o Option[H, C]) Get() (Bytes[H, C], bool) {
	return o.v, o.IsSet()
}

// Or returns value if present, otherwise def.
func (o Option[H, C]) Or(def Bytes[H, C]) Bytes[H, C] {
	if o.IsSet() {
		return o.v
	}
	return def
}
