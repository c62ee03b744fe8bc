package scrambler

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	mathrand "math/rand"
	"sort"
	"sync"
	"time"
)

// Generator produces unique adjective-noun seed batches. It holds two
// independent random sources: a strong entropy source for pair selection and
// a weak source for output-order shuffling.
type Generator struct {
	sep     string
	entropy io.Reader

	mu      sync.Mutex // guards shuffle, which is not safe for concurrent use
	shuffle *mathrand.Rand
}

// New creates a Generator with crypto/rand selection, a time-seeded shuffle
// source, and "-" as the separator. Behavior is adjusted via options.
func New(opts ...Option) *Generator {
	g := &Generator{
		sep:     "-",
		entropy: rand.Reader,
		shuffle: mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns one seed: an independent uniform draw from each pool,
// joined by the separator. Repeated calls may legitimately return the same
// pair; uniqueness is a batch-level guarantee, see GenerateBatch.
func (g *Generator) Generate() (string, error) {
	adj, err := pick(g.entropy, adjectives)
	if err != nil {
		return "", err
	}
	noun, err := pick(g.entropy, nouns)
	if err != nil {
		return "", err
	}
	return adj + g.sep + noun, nil
}

// GenerateBatch returns exactly count pairwise-distinct seeds in an order
// randomized independently of draw order. The requested count must fit the
// pair space; oversized or negative requests fail up front instead of
// looping forever.
func (g *Generator) GenerateBatch(count int) ([]string, error) {
	switch {
	case count < 0:
		return nil, errors.Join(ErrNegativeCount, fmt.Errorf("requested %d", count))
	case count > Space():
		return nil, errors.Join(ErrCountExceedsSpace, fmt.Errorf("requested %d of %d possible pairs", count, Space()))
	case count == 0:
		return []string{}, nil
	}

	var (
		seeds []string
		err   error
	)
	// Rejection sampling stalls once the collected set covers a large
	// fraction of the pair space, so big requests sample the enumerated
	// cross product without replacement instead.
	if count > Space()/2 {
		seeds, err = g.sampleSpace(count)
	} else {
		seeds, err = g.sampleRejection(count)
	}
	if err != nil {
		return nil, err
	}

	// Decouple output order from draw order: sort, then shuffle with the
	// weak source.
	sort.Strings(seeds)
	g.mu.Lock()
	g.shuffle.Shuffle(len(seeds), func(i, j int) {
		seeds[i], seeds[j] = seeds[j], seeds[i]
	})
	g.mu.Unlock()

	return seeds, nil
}

// sampleRejection draws independent pairs until count distinct seeds have
// been collected.
func (g *Generator) sampleRejection(count int) ([]string, error) {
	seen := make(map[string]struct{}, count)
	seeds := make([]string, 0, count)
	for len(seeds) < count {
		seed, err := g.Generate()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[seed]; dup {
			continue
		}
		seen[seed] = struct{}{}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

// sampleSpace enumerates every adjective-noun pair and takes count of them
// via a partial Fisher-Yates shuffle driven by the strong source.
func (g *Generator) sampleSpace(count int) ([]string, error) {
	all := make([]string, 0, Space())
	for _, adj := range adjectives {
		for _, noun := range nouns {
			all = append(all, adj+g.sep+noun)
		}
	}
	for i := 0; i < count; i++ {
		j, err := pickIndex(g.entropy, len(all)-i)
		if err != nil {
			return nil, err
		}
		all[i], all[i+j] = all[i+j], all[i]
	}
	return all[:count:count], nil
}

// pick returns a uniformly selected word from the given pool.
func pick(r io.Reader, words []string) (string, error) {
	i, err := pickIndex(r, len(words))
	if err != nil {
		return "", err
	}
	return words[i], nil
}

// pickIndex returns a uniform integer in [0, n) read from r.
func pickIndex(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Join(ErrEntropySource, err)
	}
	return int(v.Int64()), nil
}
