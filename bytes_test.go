package sbo

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-faster/sbo/internal/alloc"
	"github.com/go-faster/sbo/internal/gold"
	"github.com/go-faster/sbo/share"
)

// isEmbedded reports whether content of b is stored inside b itself.
func isEmbedded[H share.Handle[H], C Capacity](b *Bytes[H, C]) bool {
	data := b.Bytes()
	s := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	v := uintptr(unsafe.Pointer(b))
	return s >= v && s+uintptr(len(data)) <= v+unsafe.Sizeof(*b)
}

func dataPtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	_, _ = r.Read(b)
	return b
}

func TestSizes(t *testing.T) {
	const w = unsafe.Sizeof(uintptr(0))
	sliceSize := unsafe.Sizeof([]byte(nil))

	t.Run("Native", func(t *testing.T) {
		require.Equal(t, sliceSize, unsafe.Sizeof(Bytes[share.Rc, Native]{}))
		require.Equal(t, sliceSize, unsafe.Sizeof(Bytes[share.Arc, Native]{}))
		require.Equal(t, sliceSize, unsafe.Sizeof(Bytes[share.Heap, Native]{}))
		require.Equal(t, sliceSize, unsafe.Sizeof(String[share.Arc, Native]{}))
		require.Equal(t, sliceSize, unsafe.Sizeof(Option[share.Rc, Native]{}))
		require.Equal(t, 2*int(w)-1, len(Native{}))
	})
	t.Run("Option", func(t *testing.T) {
		require.Equal(t, unsafe.Sizeof(Bytes[share.Rc, [0]byte]{}), unsafe.Sizeof(Option[share.Rc, [0]byte]{}))
		require.Equal(t, unsafe.Sizeof(Bytes[share.Rc, [7]byte]{}), unsafe.Sizeof(Option[share.Rc, [7]byte]{}))
		require.Equal(t, unsafe.Sizeof(Bytes[share.Arc, [23]byte]{}), unsafe.Sizeof(Option[share.Arc, [23]byte]{}))
		require.Equal(t, unsafe.Sizeof(Bytes[share.Heap, [64]byte]{}), unsafe.Sizeof(Option[share.Heap, [64]byte]{}))
		require.Equal(t, unsafe.Sizeof(Bytes[share.Rc, [254]byte]{}), unsafe.Sizeof(Option[share.Rc, [254]byte]{}))
	})
	t.Run("Word", func(t *testing.T) {
		if w != 8 {
			t.Skip("64-bit only")
		}
		require.Equal(t, uintptr(16), unsafe.Sizeof(Bytes[share.Rc, [7]byte]{}))
		require.Equal(t, uintptr(32), unsafe.Sizeof(Bytes[share.Rc, [23]byte]{}))
		require.Equal(t, uintptr(264), unsafe.Sizeof(Bytes[share.Rc, [254]byte]{}))
	})
}

func TestNew(t *testing.T) {
	b := New[share.Rc, [10]byte]()
	require.Zero(t, b.Len())
	require.True(t, b.IsEmpty())
	require.Empty(t, b.Bytes())
	require.Equal(t, ReprInline, b.Repr())

	var zero Bytes[share.Arc, [10]byte]
	require.Zero(t, zero.Len())
	require.True(t, zero.IsEmpty())
	require.Empty(t, zero.Bytes())
	require.Equal(t, ReprInline, zero.Repr())
	require.True(t, Equal(&b, &zero))
}

func TestFrom(t *testing.T) {
	data := []byte{4, 6, 1, 84, 255, 12, 23, 98, 169, 23, 45, 65, 56, 23, 76, 45, 98, 23, 56}

	t.Run("Rc10", func(t *testing.T) {
		for n := 0; n <= len(data); n++ {
			b := From[share.Rc, [10]byte](data[:n])
			require.Equal(t, n <= 10, isEmbedded(&b), "n=%d", n)
			require.Equal(t, n <= 10, b.Repr() == ReprInline, "n=%d", n)
			require.Equal(t, data[:n], b.Bytes())
			require.Equal(t, n, b.Len())
			b.Release()
		}
	})
	t.Run("Arc4", func(t *testing.T) {
		for n := 0; n <= len(data); n++ {
			b := From[share.Arc, [4]byte](data[:n])
			require.Equal(t, n <= 4, isEmbedded(&b), "n=%d", n)
			require.Equal(t, data[:n], b.Bytes())
			b.Release()
		}
	})
	t.Run("Heap0", func(t *testing.T) {
		for n := 0; n <= len(data); n++ {
			b := From[share.Heap, [0]byte](data[:n])
			require.Equal(t, n == 0, b.Repr() == ReprInline, "n=%d", n)
			require.Equal(t, data[:n], b.Bytes())
		}
	})
	t.Run("Max", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		for _, n := range []int{0, 1, 253, 254, 255, 256, 1024} {
			s := randBytes(r, n)
			b := From[share.Rc, [254]byte](s)
			require.Equal(t, n <= 254, b.Repr() == ReprInline, "n=%d", n)
			require.Equal(t, s, b.Bytes())
			b.Release()
		}
	})
	t.Run("Random", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 500; i++ {
			s := randBytes(r, r.Intn(64))
			b := From[share.Rc, [23]byte](s)
			require.Equal(t, len(s) <= 23, b.Repr() == ReprInline)
			require.Equal(t, s, b.Bytes())
			b.Release()
		}
	})
	t.Run("Copy", func(t *testing.T) {
		for _, s := range [][]byte{[]byte("short"), []byte("content that goes outline")} {
			src := append([]byte(nil), s...)
			b := From[share.Rc, [8]byte](src)
			src[0] = 'X'
			require.Equal(t, s, b.Bytes())
			b.Release()
		}
	})
	t.Run("ReadOnly", func(t *testing.T) {
		b := From[share.Rc, [8]byte]([]byte("abc"))
		v := b.Bytes()
		require.Equal(t, len(v), cap(v))
		_ = append(v, 'd')
		require.Equal(t, []byte("abc"), b.Bytes())
	})
}

func TestInline(t *testing.T) {
	b, ok := Inline[share.Rc, [3]byte]([]byte{1, 2, 3})
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
	require.True(t, isEmbedded(&b))

	_, ok = Inline[share.Rc, [3]byte]([]byte{1, 2, 3, 4})
	require.False(t, ok)
}

func TestFromHandle(t *testing.T) {
	t.Run("Short", func(t *testing.T) {
		h := share.NewRc([]byte{1, 2})
		b := FromHandle[share.Rc, [10]byte](h)
		require.Equal(t, ReprOutline, b.Repr())
		require.Equal(t, dataPtr(h.Bytes()), dataPtr(b.Bytes()))
		require.Equal(t, 1, h.Refs())

		got, ok := b.Handle()
		require.True(t, ok)
		require.Equal(t, h, got)
		b.Release()
	})
	t.Run("Empty", func(t *testing.T) {
		s := []byte{}
		b := FromHandle[share.Heap, [10]byte](share.HeapOf(&s))
		require.Equal(t, ReprOutline, b.Repr())
		require.True(t, b.IsEmpty())
	})
	t.Run("Zero", func(t *testing.T) {
		b := FromHandle[share.Rc, [10]byte](share.Rc{})
		require.Equal(t, ReprInline, b.Repr())
		require.True(t, b.IsEmpty())
		_, ok := b.Handle()
		require.False(t, ok)
	})
}

func TestClone(t *testing.T) {
	t.Run("Outline", func(t *testing.T) {
		a := From[share.Rc, [5]byte]([]byte{5, 2, 7, 5, 2, 5, 4, 1, 7, 5})
		b := a.Clone()
		require.True(t, Equal(&a, &b))
		require.Equal(t, a.Bytes(), b.Bytes())
		require.Same(t, dataPtr(a.Bytes()), dataPtr(b.Bytes()))

		h, _ := a.Handle()
		require.Equal(t, 2, h.Refs())
		b.Release()
		require.Equal(t, 1, h.Refs())
		a.Release()
	})
	t.Run("Inline", func(t *testing.T) {
		a := From[share.Rc, [5]byte]([]byte{5, 2, 7})
		b := a.Clone()
		require.Equal(t, a.Bytes(), b.Bytes())
		require.NotSame(t, dataPtr(a.Bytes()), dataPtr(b.Bytes()))
		require.True(t, isEmbedded(&b))
	})
	t.Run("Random", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			a := From[share.Arc, [5]byte](randBytes(r, r.Intn(16)))
			b := a.Clone()
			require.True(t, Equal(&a, &b))
			if a.Len() > 5 {
				require.Same(t, dataPtr(a.Bytes()), dataPtr(b.Bytes()))
			}
			b.Release()
			a.Release()
		}
	})
}

func TestRelease(t *testing.T) {
	before := alloc.Default.Stats().Live

	b := From[share.Rc, [4]byte]([]byte("outline content"))
	c := b.Clone()
	require.Equal(t, before+1, alloc.Default.Stats().Live)

	b.Release()
	require.True(t, b.IsEmpty())
	require.Equal(t, ReprInline, b.Repr())
	require.Equal(t, []byte("outline content"), c.Bytes())

	c.Release()
	require.Equal(t, before, alloc.Default.Stats().Live)

	// Releasing empty value is no-op.
	c.Release()
	require.Equal(t, before, alloc.Default.Stats().Live)
}

func TestEquality(t *testing.T) {
	data := []byte{1, 2, 3}

	a := From[share.Rc, [10]byte](data)
	require.Equal(t, ReprInline, a.Repr())

	s := append([]byte(nil), data...)
	b := FromHandle[share.Heap, [10]byte](share.HeapOf(&s))
	require.Equal(t, ReprOutline, b.Repr())

	c := From[share.Arc, [0]byte](data)
	defer c.Release()
	require.Equal(t, ReprOutline, c.Repr())

	h := share.NewArc(data)
	defer h.Release()

	for _, v := range []Viewer{&b, &c, h} {
		require.True(t, Equal(&a, v))
		require.Zero(t, Compare(&a, v))
	}
	require.True(t, a.Equal(data))
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, a.Hash(), c.Hash())
	require.Equal(t, a.Hash(), h.Hash())

	d := From[share.Rc, [10]byte]([]byte{1, 2, 4})
	require.False(t, Equal(&a, &d))
	require.NotEqual(t, a.Hash(), d.Hash())
}

func TestOrdering(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	var inputs [][]byte
	for i := 0; i < 40; i++ {
		// Small alphabet to get common prefixes.
		n := r.Intn(24)
		s := make([]byte, n)
		for j := range s {
			s[j] = byte('a' + r.Intn(3))
		}
		inputs = append(inputs, s)
	}
	for _, x := range inputs {
		for _, y := range inputs {
			expected := bytes.Compare(x, y)

			a := From[share.Rc, [8]byte](x)
			b := From[share.Arc, [16]byte](y)
			c := From[share.Heap, Native](y)

			assert.Equal(t, expected, Compare(&a, &b), "%q %q", x, y)
			assert.Equal(t, expected, Compare(&a, &c), "%q %q", x, y)
			assert.Equal(t, expected, a.Compare(y), "%q %q", x, y)
			assert.Equal(t, expected == 0, Equal(&a, &b), "%q %q", x, y)
			if expected == 0 {
				assert.Equal(t, a.Hash(), b.Hash())
			}

			a.Release()
			b.Release()
		}
	}
}

func TestFormat(t *testing.T) {
	var out strings.Builder
	for _, s := range []string{"", "hi", "hello"} {
		b := From[share.Rc, [4]byte]([]byte(s))
		str := FromString[share.Arc, [4]byte](s)

		fmt.Fprintf(&out, "%s %v %x %q %s\n", b.Repr(), b, b, b, b)
		fmt.Fprintf(&out, "%s %v %x %q\n", str.Repr(), str, str, str)
		require.Equal(t, s, b.String())
		require.Equal(t, s, str.String())

		b.Release()
		str.Release()
	}
	gold.Str(t, out.String(), "format.txt")
}

func TestRepr(t *testing.T) {
	for _, v := range ReprValues() {
		require.True(t, v.IsARepr())
		parsed, err := ReprString(strings.ToLower(v.String()))
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
	require.Equal(t, "Repr(10)", Repr(10).String())
	_, err := ReprString("bad")
	require.Error(t, err)
}

func BenchmarkFrom(b *testing.B) {
	for _, n := range []int{8, 15, 64} {
		data := bytes.Repeat([]byte{'a'}, n)
		b.Run(fmt.Sprintf("Rc/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				v := From[share.Rc, Native](data)
				v.Release()
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	v := From[share.Arc, Native]([]byte("content that is stored outline"))
	defer v.Release()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c := v.Clone()
		c.Release()
	}
}
