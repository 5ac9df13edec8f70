package lst

import (
	"fmt"

	"go.uber.org/zap"
)

// expand doubles the element array's capacity, then restores circular
// adjacency: elements that were wrapped around the old capacity (the
// physical slots before idx) get new logical indices shifted by the old
// capacity so they remain contiguous with the rest of the LST under the
// new, larger modulus.
func (l *LST[T]) expand() error {
	if capacityOverflows(l.capacity) {
		return fmt.Errorf("%w: capacity %d would overflow on doubling", ErrOutOfMemory, l.capacity)
	}

	oldCapacity := l.capacity
	newCapacity := 2 * oldCapacity

	np := make([]T, newCapacity)
	copy(np, l.p)
	l.p = np
	l.capacity = newCapacity

	l.indicesReduce()

	for i := 0; i < l.idx; i++ {
		toMove := l.item(i)
		newIndex := toMove.LSTIndex() + oldCapacity
		l.move(newIndex, toMove)
	}

	l.log.Debug("lst: expand", zap.Int("old_capacity", oldCapacity), zap.Int("new_capacity", newCapacity))
	return nil
}
