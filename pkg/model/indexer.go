package model

import "math/big"

// Indexer gives a unique index to a combination of axis positions and vice versa.
//
// Positions are encoded as a mixed-radix number where the radix of each digit is the
// size of its axis and the last axis varies fastest.
type Indexer interface {
	// Returns the number of distinct combinations (the product of all axis sizes)
	Size() *big.Int
	// Returns a unique index to a combination of axis positions
	Index(positions []*big.Int) *big.Int
	// Returns the combination of axis positions of a unique index. The index must lie in [0, Size)
	Attributes(index *big.Int) []*big.Int
	// Returns the radix (axis size) of every digit
	Radices() []*big.Int
	// Returns the place value of every digit, i.e. the product of the radices to its right
	PlaceValues() []*big.Int
}

// NewIndexer precomputes the place-value table of the given axis sizes.
// Zero sizes are allowed and force Size to zero.
func NewIndexer(sizes ...*big.Int) Indexer {
	indexer := &mixedRadixIndexer{
		dividends: make([]*big.Int, len(sizes)),
		moduli:    make([]*big.Int, len(sizes)),
	}

	factor := big.NewInt(1)
	for i := len(sizes) - 1; i >= 0; i-- {
		indexer.moduli[i] = new(big.Int).Set(sizes[i])
		indexer.dividends[i] = new(big.Int).Set(factor)
		factor.Mul(factor, sizes[i])
	}
	indexer.size = factor

	return indexer
}
