package sbo

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/segmentio/asm/ascii"
)

// UTF8Error reports content that is not valid UTF-8.
type UTF8Error struct {
	// Offset of the first invalid byte, which is also length of the valid
	// prefix.
	Offset int
	// Incomplete is set when content ends with truncated sequence.
	Incomplete bool
}

func (e *UTF8Error) Error() string {
	if e.Incomplete {
		return fmt.Sprintf("incomplete utf-8 sequence at offset %d", e.Offset)
	}
	return fmt.Sprintf("invalid utf-8 sequence at offset %d", e.Offset)
}

// AsUTF8Error finds first *UTF8Error in err chain.
func AsUTF8Error(err error) (*UTF8Error, bool) {
	return errors.Into[*UTF8Error](err)
}

// validateUTF8 returns *UTF8Error describing first invalid sequence of s.
func validateUTF8(s []byte) error {
	if ascii.Valid(s) {
		return nil
	}
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(s[i:])
		if r == utf8.RuneError && size == 1 {
			return &UTF8Error{
				Offset:     i,
				Incomplete: !utf8.FullRune(s[i:]),
			}
		}
		i += size
	}
	return nil
}
