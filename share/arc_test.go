package share

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/sbo/internal/alloc"
)

func TestArc(t *testing.T) {
	t.Run("Size", func(t *testing.T) {
		require.Equal(t, unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(Arc{}))
		require.True(t, Arc{}.IsZero())
	})
	t.Run("Values", func(t *testing.T) {
		for _, value := range testValues {
			v := NewArc(value)
			require.Equal(t, value, v.Bytes())
			vv := v.Clone()
			require.Equal(t, 2, v.Refs())
			if len(value) > 0 {
				require.Same(t, &v.Bytes()[0], &vv.Bytes()[0])
			}
			vv.Release()
			v.Release()
		}
	})
	t.Run("Concurrent", func(t *testing.T) {
		before := alloc.Default.Stats().Live

		data := []byte("shared between goroutines")
		v := NewArc(data)

		const (
			workers = 16
			rounds  = 1000
		)
		var g errgroup.Group
		for i := 0; i < workers; i++ {
			c := v.Clone()
			g.Go(func() error {
				defer c.Release()
				for j := 0; j < rounds; j++ {
					cc := c.Clone()
					if !cc.Equal(data) {
						t.Error("content mismatch")
					}
					cc.Release()
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		require.Equal(t, 1, v.Refs())
		require.Equal(t, data, v.Bytes())

		v.Release()
		require.Equal(t, before, alloc.Default.Stats().Live)
	})
	t.Run("LastReleaseOnOtherGoroutine", func(t *testing.T) {
		v := NewArc([]byte("handed over"))
		c := v.Clone()
		v.Release()

		var g errgroup.Group
		g.Go(func() error {
			defer c.Release()
			if !c.Equal([]byte("handed over")) {
				t.Error("content mismatch")
			}
			return nil
		})
		require.NoError(t, g.Wait())
	})
}
