// Package compress implements compressed corpus streams.
package compress

import "bytes"

//go:generate go run github.com/dmarkham/enumer -transform snake_upper -type Method -output method_enum.go

// Method is compression codec.
type Method byte

const (
	None Method = iota
	LZ4
	ZSTD
	Gzip
)

// Level of compression, zero means codec default.
type Level int

// Magic numbers of supported frame formats.
var (
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	magicZSTD = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicGzip = []byte{0x1f, 0x8b}
)

// magicSize is enough bytes to detect any method.
const magicSize = 4

// Detect returns method by stream header, falling back to None.
func Detect(header []byte) Method {
	switch {
	case bytes.HasPrefix(header, magicLZ4):
		return LZ4
	case bytes.HasPrefix(header, magicZSTD):
		return ZSTD
	case bytes.HasPrefix(header, magicGzip):
		return Gzip
	default:
		return None
	}
}
