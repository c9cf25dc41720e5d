package model

import (
	"fmt"
	"iter"
	"math/big"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/limaJavier/lazycart/pkg/random"
)

// Upper bound for the initial capacity of the seen-set; it still grows past it when needed.
const maxSeenCapacityHint = 1 << 16

// SampleIndices draws sampleSize distinct indices uniformly from [0, size) without replacement.
//
// Sampling is performed by drawing with replacement and redrawing when a duplicate comes up, so it
// takes O(sampleSize) memory and never materializes the index space. The expected number of draws
// grows quickly as sampleSize approaches size.
//
// Arguments are validated eagerly. Every range over the returned sequence starts with an empty
// seen-set and yields exactly sampleSize indices unless the consumer stops early. A nil source
// falls back to random.NewCryptoSource.
func SampleIndices(size, sampleSize *big.Int, source random.Source) (iter.Seq[*big.Int], error) {
	switch {
	case size == nil || sampleSize == nil:
		return nil, ErrNilArgument
	case sampleSize.Sign() < 0:
		return nil, fmt.Errorf("%w: %v", ErrNegativeSampleSize, sampleSize)
	case sampleSize.Cmp(size) > 0:
		return nil, fmt.Errorf("%w: requested %v out of %v", ErrSampleSizeExceedsCapacity, sampleSize, size)
	}
	if source == nil {
		source = random.NewCryptoSource()
	}

	size = new(big.Int).Set(size)
	sampleSize = new(big.Int).Set(sampleSize)

	return func(yield func(*big.Int) bool) {
		seen := mapset.NewThreadUnsafeSetWithSize[string](seenCapacityHint(sampleSize))
		for emitted := new(big.Int); emitted.Cmp(sampleSize) < 0; {
			candidate := source.Int(size)
			if !seen.Add(candidate.String()) {
				continue
			}
			emitted.Add(emitted, bigOne)
			if !yield(candidate) {
				return
			}
		}
	}, nil
}

func seenCapacityHint(sampleSize *big.Int) int {
	if sampleSize.IsInt64() && sampleSize.Int64() < maxSeenCapacityHint {
		return int(sampleSize.Int64())
	}
	return maxSeenCapacityHint
}
