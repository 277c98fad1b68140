// Package stat measures how corpus content is stored by sbo values.
package stat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"unsafe"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/sbo"
	"github.com/go-faster/sbo/internal/alloc"
	"github.com/go-faster/sbo/share"
)

// Config of statistics run.
type Config struct {
	Handle   Handle
	Capacity int
	// Clones is count of Clone and Release pairs done for each outline value.
	Clones int
	// Workers that do clones, only used with concurrent handles.
	Workers int
	// MaxErrors limits count of line errors kept in Report.Err.
	MaxErrors int
	// MaxLine is maximum line length in bytes.
	MaxLine int
	Logger  *zap.Logger
}

func (c *Config) setDefaults() {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.MaxErrors == 0 {
		c.MaxErrors = 10
	}
	if c.MaxLine <= 0 {
		c.MaxLine = 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// LineError is error of a single corpus line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Report of statistics run.
type Report struct {
	Handle    Handle
	Capacity  int
	ValueSize int

	Lines    int
	Inline   int
	Outline  int
	Invalid  int
	Distinct int

	Bytes        int64
	OutlineBytes int64
	Clones       int

	// Allocs is count of blocks allocated while building values.
	Allocs uint64
	// Live and LiveBytes are allocator counters with every value alive.
	Live      int64
	LiveBytes int64

	// Err combines line errors, up to Config.MaxErrors.
	Err error
}

// InlineRatio returns share of valid lines stored inline.
func (r *Report) InlineRatio() float64 {
	if n := r.Inline + r.Outline; n > 0 {
		return float64(r.Inline) / float64(n)
	}
	return 0
}

// Run reads lines from r and reports how they are stored as sbo.String.
func Run(ctx context.Context, r io.Reader, cfg Config) (*Report, error) {
	cfg.setDefaults()
	switch cfg.Handle {
	case Rc:
		return runHandle[share.Rc](ctx, r, cfg)
	case Arc:
		return runHandle[share.Arc](ctx, r, cfg)
	case Heap:
		return runHandle[share.Heap](ctx, r, cfg)
	default:
		return nil, errors.Errorf("unknown handle %v", cfg.Handle)
	}
}

func runHandle[H share.Handle[H]](ctx context.Context, r io.Reader, cfg Config) (*Report, error) {
	switch cfg.Capacity {
	case 0:
		return collect[H, [0]byte](ctx, r, cfg)
	case 7:
		return collect[H, [7]byte](ctx, r, cfg)
	case 15:
		return collect[H, [15]byte](ctx, r, cfg)
	case 23:
		return collect[H, [23]byte](ctx, r, cfg)
	case 31:
		return collect[H, [31]byte](ctx, r, cfg)
	case 63:
		return collect[H, [63]byte](ctx, r, cfg)
	case 127:
		return collect[H, [127]byte](ctx, r, cfg)
	case 254:
		return collect[H, [254]byte](ctx, r, cfg)
	default:
		return nil, errors.Errorf("capacity %d not supported (%v)", cfg.Capacity, Capacities)
	}
}

func collect[H share.Handle[H], C sbo.Capacity](ctx context.Context, r io.Reader, cfg Config) (*Report, error) {
	lg := cfg.Logger
	rep := &Report{
		Handle:    cfg.Handle,
		Capacity:  cfg.Capacity,
		ValueSize: int(unsafe.Sizeof(sbo.String[H, C]{})),
	}

	var values []sbo.String[H, C]
	defer func() {
		for i := range values {
			values[i].Release()
		}
	}()

	before := alloc.Default.Stats()
	distinct := make(map[uint64]struct{})
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, min(64*1024, cfg.MaxLine)), cfg.MaxLine)
	for s.Scan() {
		rep.Lines++
		if rep.Lines%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		b := sbo.From[H, C](s.Bytes())
		v, err := sbo.FromUTF8(b)
		if err != nil {
			b.Release()
			rep.Invalid++
			if ce := lg.Check(zap.DebugLevel, "Invalid line"); ce != nil {
				ce.Write(zap.Int("line", rep.Lines), zap.Error(err))
			}
			if rep.Invalid <= cfg.MaxErrors {
				rep.Err = multierr.Append(rep.Err, &LineError{Line: rep.Lines, Err: err})
			}
			continue
		}

		rep.Bytes += int64(v.Len())
		if v.Repr() == sbo.ReprOutline {
			rep.Outline++
			rep.OutlineBytes += int64(v.Len())
		} else {
			rep.Inline++
		}
		distinct[v.Hash()] = struct{}{}
		values = append(values, v)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	rep.Distinct = len(distinct)

	built := alloc.Default.Stats()
	rep.Allocs = built.Allocs - before.Allocs
	rep.Live = built.Live - before.Live
	rep.LiveBytes = built.LiveBytes - before.LiveBytes

	n, err := cloneAll(ctx, values, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "clone")
	}
	rep.Clones = n

	if ce := lg.Check(zap.DebugLevel, "Collected"); ce != nil {
		ce.Write(
			zap.Int("lines", rep.Lines),
			zap.Int("outline", rep.Outline),
			zap.Int("invalid", rep.Invalid),
			zap.Int64("live", rep.Live),
		)
	}

	return rep, nil
}

// cloneAll clones and releases each outline value cfg.Clones times.
func cloneAll[H share.Handle[H], C sbo.Capacity](ctx context.Context, values []sbo.String[H, C], cfg Config) (int, error) {
	if cfg.Clones <= 0 {
		return 0, nil
	}
	workers := cfg.Workers
	if !cfg.Handle.Concurrent() && workers > 1 {
		if ce := cfg.Logger.Check(zap.DebugLevel, "Handle is not concurrent, using single worker"); ce != nil {
			ce.Write(zap.Stringer("handle", cfg.Handle), zap.Int("workers", workers))
		}
		workers = 1
	}
	workers = min(workers, max(len(values), 1))

	counts := make([]int, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			// Each worker touches every value to share blocks between goroutines.
			for i := range values {
				if err := ctx.Err(); err != nil {
					return err
				}
				v := &values[(i+w)%len(values)]
				if v.Repr() != sbo.ReprOutline {
					continue
				}
				for k := 0; k < cfg.Clones; k++ {
					c := v.Clone()
					c.Release()
					counts[w]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int
	for _, n := range counts {
		total += n
	}
	return total, nil
}
