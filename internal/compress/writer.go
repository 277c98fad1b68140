package compress

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	LevelLZ4Max  Level = 9
	LevelGzipMax Level = gzip.BestCompression
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns writer that compresses to w with method m.
//
// Result must be closed to flush the frame. Closing does not close w.
func NewWriter(w io.Writer, m Method, l Level) (io.WriteCloser, error) {
	switch m {
	case None:
		return nopWriteCloser{Writer: w}, nil
	case LZ4:
		lw := lz4.NewWriter(w)
		if l > 0 {
			if l > LevelLZ4Max {
				l = LevelLZ4Max
			}
			if err := lw.Apply(lz4.CompressionLevelOption(lz4.CompressionLevel(1 << (8 + l)))); err != nil {
				return nil, errors.Wrap(err, "lz4 level")
			}
		}
		return lw, nil
	case ZSTD:
		opts := []zstd.EOption{
			zstd.WithEncoderConcurrency(1),
			zstd.WithLowerEncoderMem(true),
		}
		if l > 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(l))))
		}
		e, err := zstd.NewWriter(w, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return e, nil
	case Gzip:
		level := gzip.DefaultCompression
		if l > 0 {
			level = int(min(l, LevelGzipMax))
		}
		g, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		return g, nil
	default:
		return nil, errors.Errorf("compression %v not implemented", m)
	}
}

// Compress returns buf compressed with method m.
func Compress(m Method, l Level, buf []byte) ([]byte, error) {
	var out writeBuffer
	w, err := NewWriter(&out, m, l)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(buf); err != nil {
		return nil, errors.Wrap(err, "write")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close")
	}
	return out.Data, nil
}

// writeBuffer is minimal append-only io.Writer.
type writeBuffer struct {
	Data []byte
}

func (b *writeBuffer) Write(p []byte) (int, error) {
	b.Data = append(b.Data, p...)
	return len(p), nil
}
