package lst

// Extract removes x from the LST, wherever it currently sits, using
// x's own handle field to locate it in expected O(log n) (worst case
// O(n), from reshuffling a single bucket). It fails with ErrEmpty or
// ErrNotResident if the LST is empty or x's handle is negative.
func (l *LST[T]) Extract(x T) error {
	if l.numElements == 0 {
		return ErrEmpty
	}
	if x.LSTIndex() < 0 {
		return ErrNotResident
	}
	l.extract(0, x)
	return nil
}

func (l *LST[T]) extract(k int, x T) {
	if l.isBucket(k) {
		l.bucketDelete(k, x)
		return
	}

	k++
	switch c := l.cmp(x, l.pivotItem(k)); {
	case c < 0:
		l.extract(k, x)
	case c > 0:
		l.bucketDelete(k-1, x)
	default:
		l.flatten(k)
		l.bucketDelete(k, x)
	}
}
