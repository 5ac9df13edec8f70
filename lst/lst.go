// Package lst implements a Leftmost Skeleton Tree, a randomized priority
// queue over a circular array with expected O(log n) insert, peek,
// extract-min, and delete-by-handle, following Navarro, Paredes, Poblete,
// and Sanders, "Stronger Quickheaps" (IJFCS, 2011).
package lst

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// initialCapacity is the number of element slots an LST starts with; it
// must stay a power of two so reduce() can use a bitmask instead of a
// modulo.
const initialCapacity = 2048

// Element is the interface a caller's record type must implement to be
// stored in an LST. The single writable integer field spec.md describes
// as living at a caller-declared byte offset is exposed here as two
// methods instead, since Go has no portable offsetof: LSTIndex reports
// the record's current reduced slot (or -1 once removed), and
// SetLSTIndex is called by the LST itself to keep that field in sync
// with the record's physical position. Callers never call SetLSTIndex.
//
// Element embeds comparable so the LST can detect "this exact record is
// already the slot-0 occupant" by pointer identity; in practice T is
// almost always a pointer type.
type Element interface {
	comparable
	LSTIndex() int
	SetLSTIndex(int)
}

// Comparator reports the relative order of two elements: negative if a
// precedes b, positive if a follows b, zero if they are equivalent. It
// must be a total order over all elements live in the LST for the
// duration of any single operation.
type Comparator[T Element] func(a, b T) int

// LST is a Leftmost Skeleton Tree over elements of type T. The zero
// value is not usable; construct one with New. An LST is not safe for
// concurrent use — callers sharing one across goroutines must
// synchronize externally.
type LST[T Element] struct {
	capacity    int
	idx         int
	numElements int
	cmp         Comparator[T]
	p           []T
	s           *stack
	rng         Source
	log         *zap.Logger
}

// Option configures an LST at construction time.
type Option[T Element] func(*LST[T])

// WithInitialCapacity overrides the default initial element-array
// capacity (2048). c must be a power of two; New returns an error
// otherwise.
func WithInitialCapacity[T Element](c int) Option[T] {
	return func(l *LST[T]) {
		l.capacity = c
	}
}

// WithSource injects the uniform integer source used for pivot
// selection and the insert reservoir test. Without this option, New
// builds its own *rand.Rand.
func WithSource[T Element](src Source) Option[T] {
	return func(l *LST[T]) {
		l.rng = src
	}
}

// WithLogger attaches a zap.Logger used to trace capacity expansion and
// pivot-stack flattening at Debug level. Without this option, New uses
// zap.NewNop() so the hot path pays nothing for logging.
func WithLogger[T Element](log *zap.Logger) Option[T] {
	return func(l *LST[T]) {
		l.log = log
	}
}

// New creates an empty LST using cmp to order elements.
func New[T Element](cmp Comparator[T], opts ...Option[T]) (*LST[T], error) {
	l := &LST[T]{
		capacity: initialCapacity,
		cmp:      cmp,
		s:        newStack(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.capacity <= 0 || l.capacity&(l.capacity-1) != 0 {
		return nil, fmt.Errorf("lst: initial capacity %d is not a positive power of two", l.capacity)
	}
	if l.rng == nil {
		l.rng = defaultSource()
	}

	l.p = make([]T, l.capacity)
	// The LST starts empty at the beginning of the array; the
	// fictitious pivot's logical index is idx + num_elements = 0.
	l.s.push(0)

	return l, nil
}

// Free releases the LST's own storage. Go's garbage collector would
// reclaim it anyway once the LST is unreachable; Free exists for API
// parity with spec.md's free(lst) and lets a caller drop a very large
// LST's backing arrays immediately. It does not touch the user records
// the LST referenced — the LST never owned them.
func (l *LST[T]) Free() {
	l.p = nil
	l.s = nil
}

// NumElements reports how many elements the LST currently holds.
func (l *LST[T]) NumElements() int {
	return l.numElements
}

// Contains linearly scans the live range for x. It is O(n); callers
// that already hold a handle should prefer checking LSTIndex() >= 0.
func (l *LST[T]) Contains(x T) bool {
	for i := 0; i < l.numElements; i++ {
		if l.item(l.idx+i) == x {
			return true
		}
	}
	return false
}

// reduce maps a logical index (which may be negative or exceed
// capacity) onto a physical slot in [0, capacity).
func (l *LST[T]) reduce(x int) int {
	return x & (l.capacity - 1)
}

// equivalent reports whether two logical indices name the same
// physical slot.
func (l *LST[T]) equivalent(a, b int) bool {
	return l.reduce(a-b) == 0
}

// item reads the element currently at logical index x.
func (l *LST[T]) item(x int) T {
	return l.p[l.reduce(x)]
}

// pivotItem reads the element the pivot at stack index k points to. k
// must name a real pivot, never the fictitious sentinel at 0.
func (l *LST[T]) pivotItem(k int) T {
	return l.item(l.s.get(k))
}

// move writes data into the physical slot named by a logical index and
// records that reduced slot in data's handle field, keeping invariant
// I5 (handle == reduced slot) intact.
func (l *LST[T]) move(location int, data T) {
	r := l.reduce(location)
	l.p[r] = data
	data.SetLSTIndex(r)
}

// length is the number of buckets in the subtree rooted at stack index k.
func (l *LST[T]) length(k int) int {
	return l.s.depth() - k
}

func (l *LST[T]) isBucket(k int) bool {
	return l.length(k) == 1
}

// size is the number of elements in the subtree rooted at stack index k.
func (l *LST[T]) size(k int) int {
	if k == 0 {
		return l.numElements
	}
	right := l.reduce(l.s.get(k))
	idxR := l.reduce(l.idx)
	if idxR <= right {
		return right - idxR
	}
	return (l.capacity - idxR) + right
}

// flatten collapses the subtree at stack index k into a single bucket
// by discarding every pivot above it.
func (l *LST[T]) flatten(k int) {
	discarded := l.s.depth() - k
	l.s.pop(discarded)
	l.log.Debug("lst: flatten", zap.Int("stack_index", k), zap.Int("buckets_discarded", discarded))
}

func (l *LST[T]) lwb(k int) int {
	if l.isBucket(k) {
		return l.idx
	}
	return l.s.get(k+1) + 1
}

func (l *LST[T]) upb(k int) int {
	return l.s.get(k) - 1
}

// capacityOverflows reports whether doubling capacity would overflow
// int arithmetic used throughout the package's logical indices.
func capacityOverflows(capacity int) bool {
	return capacity > math.MaxInt/2
}
