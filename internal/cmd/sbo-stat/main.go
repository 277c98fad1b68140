// Binary sbo-stat reports how text corpus is stored by sbo strings.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-faster/sbo/internal/cmd/app"
	"github.com/go-faster/sbo/internal/compress"
	"github.com/go-faster/sbo/internal/stat"
	"github.com/go-faster/sbo/internal/version"
)

const codecAuto = "auto"

type options struct {
	Handle  string
	Codec   string
	Version bool
	Config  stat.Config
}

func parse(args []string, out io.Writer) (*options, []string, error) {
	var opt options
	set := flag.NewFlagSet("sbo-stat", flag.ContinueOnError)
	set.SetOutput(out)
	set.StringVar(&opt.Handle, "handle", stat.Arc.String(), "sharing handle: "+strings.Join(stat.HandleStrings(), "|"))
	set.IntVar(&opt.Config.Capacity, "cap", 15, fmt.Sprintf("inline capacity %v", stat.Capacities))
	set.StringVar(&opt.Codec, "codec", codecAuto, "input compression: auto|none|lz4|zstd|gzip")
	set.IntVar(&opt.Config.Clones, "clones", 0, "clone and release each outline value N times")
	set.IntVar(&opt.Config.Workers, "workers", 1, "clone workers, arc and heap only")
	set.IntVar(&opt.Config.MaxErrors, "max-errors", 10, "maximum reported invalid lines per file")
	set.BoolVar(&opt.Version, "version", false, "print version and exit")
	if err := set.Parse(args); err != nil {
		return nil, nil, err
	}

	h, err := stat.HandleString(opt.Handle)
	if err != nil {
		return nil, nil, errors.Wrap(err, "handle")
	}
	opt.Config.Handle = h
	if opt.Codec != codecAuto {
		if _, err := compress.MethodString(opt.Codec); err != nil {
			return nil, nil, errors.Wrap(err, "codec")
		}
	}

	return &opt, set.Args(), nil
}

func open(name string, stdin io.Reader, codec string) (_ io.Reader, closer func() error, _ error) {
	var (
		r      = stdin
		closes []func() error
	)
	closer = func() (err error) {
		for i := len(closes) - 1; i >= 0; i-- {
			err = multierr.Append(err, closes[i]())
		}
		return err
	}
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open")
		}
		r = f
		closes = append(closes, f.Close)
	}

	var rc io.ReadCloser
	if codec == codecAuto {
		c, _, err := compress.Open(r)
		if err != nil {
			return nil, nil, multierr.Append(errors.Wrap(err, "decompress"), closer())
		}
		rc = c
	} else {
		m, err := compress.MethodString(codec)
		if err != nil {
			return nil, nil, multierr.Append(err, closer())
		}
		c, err := compress.NewReader(r, m)
		if err != nil {
			return nil, nil, multierr.Append(errors.Wrap(err, "decompress"), closer())
		}
		rc = c
	}
	closes = append(closes, rc.Close)

	return rc, closer, nil
}

func run(ctx context.Context, lg *zap.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	opt, files, err := parse(args, stdout)
	if err != nil {
		return err
	}
	if opt.Version {
		v := version.Get()
		fmt.Fprintln(stdout, "sbo-stat", v.String())
		return nil
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	cfg := opt.Config
	cfg.Logger = lg.Named("stat")
	for _, name := range files {
		lg.Debug("Processing", zap.String("file", name), zap.Stringer("handle", cfg.Handle), zap.Int("cap", cfg.Capacity))

		r, closer, err := open(name, stdin, opt.Codec)
		if err != nil {
			return errors.Wrapf(err, "%s", name)
		}
		rep, err := stat.Run(ctx, r, cfg)
		if closeErr := closer(); closeErr != nil {
			err = multierr.Append(err, errors.Wrap(closeErr, "close"))
		}
		if err != nil {
			return errors.Wrapf(err, "%s", name)
		}

		fmt.Fprintf(stdout, "%s:\n", name)
		if _, err := rep.WriteTo(stdout); err != nil {
			return errors.Wrap(err, "write report")
		}
	}

	return nil
}

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		return run(ctx, lg, os.Args[1:], os.Stdin, os.Stdout)
	})
}
