package compress

import (
	"bufio"
	"io"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// NewReader returns reader that decompresses r with method m.
//
// Closing result does not close r.
func NewReader(r io.Reader, m Method) (io.ReadCloser, error) {
	switch m {
	case None:
		return io.NopCloser(r), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case ZSTD:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return d.IOReadCloser(), nil
	case Gzip:
		g, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		return g, nil
	default:
		return nil, errors.Errorf("compression %v not implemented", m)
	}
}

// Open detects method by stream header and returns decompressing reader.
func Open(r io.Reader) (io.ReadCloser, Method, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(magicSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, None, errors.Wrap(err, "peek header")
	}
	m := Detect(header)
	rc, err := NewReader(br, m)
	if err != nil {
		return nil, m, errors.Wrapf(err, "open %s", m)
	}
	return rc, m, nil
}
