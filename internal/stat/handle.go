package stat

//go:generate go run github.com/dmarkham/enumer -transform lower -type Handle -output handle_enum.go

// Handle selects sharing strategy of outline values.
type Handle byte

const (
	Rc Handle = iota
	Arc
	Heap
)

// Concurrent reports whether values of handle can be cloned and released
// from multiple goroutines.
func (h Handle) Concurrent() bool {
	return h == Arc || h == Heap
}

// Capacities lists supported inline capacities.
var Capacities = []int{0, 7, 15, 23, 31, 63, 127, 254}
