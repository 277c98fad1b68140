// Binary sbo-gen-cap generates inline capacity type set.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/go-faster/errors"
)

// maxCapacity is the largest inline length representable by complemented
// length byte with zero reserved.
const maxCapacity = 254

// Config is template input.
type Config struct {
	Sizes []int
	Max   int
}

var (
	//go:embed capacity.tpl
	capacityTemplate string
	//go:embed inline_safe.tpl
	inlineSafeTemplate string
)

// defaultSizes are every capacity up to 32 bytes and word-friendly sizes
// above it.
func defaultSizes() []int {
	var sizes []int
	for i := 0; i <= 32; i++ {
		sizes = append(sizes, i)
	}
	return append(sizes,
		39, 40,
		47, 48,
		55, 56,
		63, 64,
		95, 96,
		127, 128,
		191, 192,
		maxCapacity,
	)
}

func generate(sizes []int) (map[string][]byte, error) {
	if len(sizes) == 0 {
		return nil, errors.New("no sizes")
	}
	sorted := append([]int(nil), sizes...)
	sort.Ints(sorted)
	for i, s := range sorted {
		if s < 0 || s > maxCapacity {
			return nil, errors.Errorf("capacity %d out of range [0, %d]", s, maxCapacity)
		}
		if i > 0 && sorted[i-1] == s {
			return nil, errors.Errorf("duplicate capacity %d", s)
		}
	}

	cfg := Config{
		Sizes: sorted,
		Max:   maxCapacity,
	}
	out := make(map[string][]byte)
	for name, t := range map[string]string{
		"capacity_gen.go":    capacityTemplate,
		"inline_safe_gen.go": inlineSafeTemplate,
	} {
		tpl, err := template.New(name).Parse(t)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		buf := new(bytes.Buffer)
		if err := tpl.Execute(buf, cfg); err != nil {
			return nil, errors.Wrapf(err, "execute %s", name)
		}
		data, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, errors.Wrapf(err, "format %s", name)
		}
		out[name] = data
	}
	return out, nil
}

func run() error {
	var arg struct {
		Dir string
	}
	flag.StringVar(&arg.Dir, "dir", ".", "output directory")
	flag.Parse()

	files, err := generate(defaultSizes())
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(arg.Dir, name), data, 0o600); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
