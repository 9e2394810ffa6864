package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces test data lines for one executor's input format.
type Generator interface {
	// Init gives the generator its own random source, so generators
	// never contend on the global one.
	Init(r *rand.Rand)

	// WriteLine writes a single newline-terminated line of test data.
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the data format
	Description() string

	// DefaultCount returns the suggested default number of lines to generate
	DefaultCount() int64
}
