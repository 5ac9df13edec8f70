package lst

import "fmt"

// Validate structurally checks invariants I1, I2, I3 and I5, that every
// slot of the live range is non-nil, and that bucket sizes plus pivots
// add up to num_elements, returning the first violation found, or nil.
// It does not compare pivots against bucket contents (I4). It is O(n)
// and intended for tests and fuzzing, not the hot path.
func (l *LST[T]) Validate() error {
	depth := l.s.depth()
	if depth < 1 {
		return fmt.Errorf("lst: validate: pivot stack has depth %d, want >= 1", depth)
	}

	fictitious := l.s.get(0)
	reducedFictitious := l.reduce(fictitious)
	reducedEnd := l.reduce(l.idx + l.numElements)
	if reducedFictitious != reducedEnd {
		return fmt.Errorf("lst: validate: fictitious pivot %d inconsistent with idx %d + num_elements %d",
			fictitious, l.idx, l.numElements)
	}

	for k := 1; k < depth; k++ {
		if l.s.get(k-1) <= l.s.get(k) {
			return fmt.Errorf("lst: validate: pivot stack not strictly decreasing at index %d", k)
		}
	}

	if l.numElements > 0 {
		sum := 0
		for k := 0; k < depth; k++ {
			bucketSize := l.upb(k) - l.lwb(k) + 1
			if bucketSize > l.numElements {
				return fmt.Errorf("lst: validate: bucket %d size %d exceeds num_elements %d", k, bucketSize, l.numElements)
			}
			sum += bucketSize
		}
		if sum+depth-1 != l.numElements {
			return fmt.Errorf("lst: validate: bucket sizes sum to %d (+ %d pivots), want num_elements %d",
				sum, depth-1, l.numElements)
		}
	}

	var zero T
	for i := 0; i < l.numElements; i++ {
		e := l.item(l.idx + i)
		if e == zero {
			return fmt.Errorf("lst: validate: nil element at logical index %d", l.idx+i)
		}
		if e.LSTIndex() != l.reduce(l.idx+i) {
			return fmt.Errorf("lst: validate: element at logical index %d has handle %d, want %d",
				l.idx+i, e.LSTIndex(), l.reduce(l.idx+i))
		}
	}

	return nil
}
