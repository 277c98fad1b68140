package sbo

//go:generate go run github.com/dmarkham/enumer -type Repr -trimprefix Repr -output repr_enum.go

// Repr is storage representation of value.
type Repr byte

const (
	ReprInline  Repr = iota // embedded in value
	ReprOutline             // held by shared handle
)
