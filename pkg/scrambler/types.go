package scrambler

import (
	"io"
	"math/rand"
)

// Option configures a Generator.
type Option func(*Generator)

// WithSeparator sets the string placed between the adjective and the noun.
// Default is "-".
func WithSeparator(s string) Option {
	return func(g *Generator) {
		if s != "" {
			g.sep = s
		}
	}
}

// WithEntropy sets the source used for pair selection. Seeds are used as
// unguessable identity labels, so production code keeps the default
// crypto/rand reader; tests may substitute a deterministic or failing source.
// Nil readers are ignored.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.entropy = r
		}
	}
}

// WithShuffleSource sets the source used to randomize the output order of a
// batch. Order randomization has no security requirement, so any source is
// acceptable. Nil sources are ignored.
func WithShuffleSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.shuffle = rand.New(src)
		}
	}
}
