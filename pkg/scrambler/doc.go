// Package scrambler generates human-memorable random word-pair seeds for use
// as alias identity labels (email prefixes, usernames, context tags). A seed
// is one adjective and one noun drawn from two fixed pools and joined with a
// separator, e.g. "maple-circuit".
//
// # Architecture
//
//   - Word pools are immutable package data loaded once per process and
//     shared read-only by every generation call. Accessors return defensive
//     copies so callers can never mutate a pool.
//   - Pair selection uses a cryptographically strong entropy source
//     (crypto/rand by default) because seeds serve as unguessable labels.
//   - Output-order shuffling uses a separate, weak math/rand source: the
//     final order of a batch is randomized and carries no security contract.
//   - Batch generation rejects impossible requests up front (negative count,
//     count exceeding the pair space) and switches from rejection sampling to
//     full cross-product sampling when the request covers more than half the
//     space, so it never loops without bound.
//
// # Usage
//
// Generate a batch of ten distinct seeds:
//
//	gen := scrambler.New()
//	seeds, err := gen.GenerateBatch(10)
//	if err != nil {
//	    // handle error
//	}
//
// Customize separator or inject sources (useful in tests):
//
//	gen := scrambler.New(
//	    scrambler.WithSeparator("_"),
//	    scrambler.WithShuffleSource(rand.NewSource(1)),
//	)
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrNegativeCount      – batch size below zero.
//   - ErrCountExceedsSpace  – batch size larger than |adjectives|×|nouns|.
//   - ErrEntropySource      – the entropy source failed to produce bytes.
package scrambler
