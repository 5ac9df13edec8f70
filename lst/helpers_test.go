package lst

import "math/rand"

// heapThing is the element type used across this package's tests,
// named after the original implementation's test fixture
// (lst_tests.c's heap_thing).
type heapThing struct {
	data    int
	handle  int
	visited bool
}

func (h *heapThing) LSTIndex() int     { return h.handle }
func (h *heapThing) SetLSTIndex(i int) { h.handle = i }

func cmpHeapThing(a, b *heapThing) int {
	switch {
	case a.data < b.data:
		return -1
	case a.data > b.data:
		return 1
	default:
		return 0
	}
}

func newHeapThings(values []int) []*heapThing {
	things := make([]*heapThing, len(values))
	for i, v := range values {
		things[i] = &heapThing{data: v}
	}
	return things
}

// shuffle reorders vs in place with the caller's seeded rng so tests
// are reproducible.
func shuffle(rng *rand.Rand, vs []*heapThing) {
	for i := len(vs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		vs[i], vs[j] = vs[j], vs[i]
	}
}

func mustNewLST(t interface{ Fatalf(string, ...any) }) *LST[*heapThing] {
	q, err := New[*heapThing](cmpHeapThing, WithSource[*heapThing](rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return q
}
