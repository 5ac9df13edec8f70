package lst

import "math/rand"

// Source is the uniform integer source LST consumes: the pivot draw in
// partition and the reservoir test in insert. *rand.Rand satisfies it
// directly, which is also the type the teacher package injects into its
// own top-level structure.
type Source interface {
	Intn(n int) int
}

func defaultSource() Source {
	return rand.New(rand.NewSource(rand.Int63()))
}
