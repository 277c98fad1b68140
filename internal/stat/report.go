package stat

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.uber.org/multierr"
)

// WriteTo writes human-readable report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		err   error
	)
	p := func(format string, args ...any) {
		if err != nil {
			return
		}
		var n int
		n, err = fmt.Fprintf(w, format, args...)
		total += int64(n)
	}

	p("handle:   %s, capacity %d, value %s\n", r.Handle, r.Capacity, humanize.Bytes(uint64(r.ValueSize)))
	p("lines:    %s (%s invalid, %s distinct)\n",
		humanize.Comma(int64(r.Lines)), humanize.Comma(int64(r.Invalid)), humanize.Comma(int64(r.Distinct)),
	)
	p("inline:   %s (%.1f%%)\n", humanize.Comma(int64(r.Inline)), r.InlineRatio()*100)
	p("outline:  %s, %s of %s content\n",
		humanize.Comma(int64(r.Outline)), humanize.Bytes(uint64(r.OutlineBytes)), humanize.Bytes(uint64(r.Bytes)),
	)
	p("blocks:   %s allocated, %s live (%s)\n",
		humanize.Comma(int64(r.Allocs)), humanize.Comma(r.Live), humanize.Bytes(uint64(r.LiveBytes)),
	)
	if r.Clones > 0 {
		p("clones:   %s\n", humanize.Comma(int64(r.Clones)))
	}
	for _, e := range multierr.Errors(r.Err) {
		p("error:    %s\n", e)
	}
	return total, err
}
