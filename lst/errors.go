package lst

import "errors"

var (
	// ErrOutOfMemory is returned when growing the element array or pivot
	// stack cannot proceed. Go's allocator reports genuine memory
	// exhaustion as a fatal, unrecoverable runtime error rather than a
	// value malloc-style callers can check, so this is reachable only
	// through the one failure this package can detect ahead of
	// allocating: capacity doubling overflowing int.
	ErrOutOfMemory = errors.New("lst: out of memory")

	// ErrAlreadyResident is returned by Insert when the element's handle
	// field indicates it is already stored in an LST.
	ErrAlreadyResident = errors.New("lst: element already resident")

	// ErrNotResident is returned by Extract when the element's handle
	// field indicates it is not currently stored in this LST.
	ErrNotResident = errors.New("lst: element not resident")

	// ErrEmpty is returned by Pop, Peek, and Extract when the LST holds
	// no elements.
	ErrEmpty = errors.New("lst: empty")
)
