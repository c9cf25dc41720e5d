package model

import (
	"math/big"

	"github.com/samber/lo"
)

type mixedRadixIndexer struct {
	dividends []*big.Int
	moduli    []*big.Int
	size      *big.Int
}

func (indexer *mixedRadixIndexer) Size() *big.Int {
	return new(big.Int).Set(indexer.size)
}

func (indexer *mixedRadixIndexer) Index(positions []*big.Int) *big.Int {
	index := new(big.Int)
	term := new(big.Int)
	for i, position := range positions {
		index.Add(index, term.Mul(position, indexer.dividends[i]))
	}
	return index
}

func (indexer *mixedRadixIndexer) Attributes(index *big.Int) []*big.Int {
	positions := make([]*big.Int, len(indexer.moduli))
	remaining := new(big.Int).Set(index)

	// Peel digits from the least significant (last) axis, dividing by each radix in turn.
	// This equals (index / dividends[i]) mod moduli[i] for every axis.
	for i := len(indexer.moduli) - 1; i >= 0; i-- {
		positions[i] = new(big.Int)
		remaining.DivMod(remaining, indexer.moduli[i], positions[i])
	}

	return positions
}

func (indexer *mixedRadixIndexer) Radices() []*big.Int {
	return cloneAll(indexer.moduli)
}

func (indexer *mixedRadixIndexer) PlaceValues() []*big.Int {
	return cloneAll(indexer.dividends)
}

func cloneAll(values []*big.Int) []*big.Int {
	return lo.Map(values, func(value *big.Int, _ int) *big.Int { return new(big.Int).Set(value) })
}
