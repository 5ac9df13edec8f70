package lst

import "fmt"

// Insert adds x to the LST. It fails with ErrAlreadyResident if x's
// handle field indicates it is already stored somewhere (a positive
// handle, or a zero handle while x is itself the slot-0 occupant of a
// nonempty LST). Callers must zero a record's handle field before its
// first insertion.
func (l *LST[T]) Insert(x T) error {
	if l.numElements == l.capacity {
		if err := l.expand(); err != nil {
			return err
		}
	}

	idx := x.LSTIndex()
	if idx > 0 || (idx == 0 && l.numElements > 0 && l.idx == 0 && l.item(0) == x) {
		return fmt.Errorf("%w: handle %d", ErrAlreadyResident, idx)
	}

	l.insert(0, x)
	return nil
}

// insert descends from stack index k, adding x to the bucket it belongs
// in. Non-bucket subtrees are resolved by a reservoir-style coin flip:
// with probability 1/(size+1) the whole subtree is flattened into one
// bucket before adding, which reproduces the distribution random
// insertion order into a BST would give, keeping expected depth
// O(log n).
func (l *LST[T]) insert(k int, x T) {
	if l.isBucket(k) {
		l.bucketAdd(k, x)
		return
	}

	size := l.size(k)
	k++
	if l.rng.Intn(size+1) != 0 {
		if l.cmp(x, l.pivotItem(k)) < 0 {
			l.insert(k, x)
		} else {
			l.bucketAdd(k-1, x)
		}
	} else {
		l.flatten(k)
		l.bucketAdd(k, x)
	}
}
