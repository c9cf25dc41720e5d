package model

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/limaJavier/lazycart/pkg/random"
	"github.com/samber/lo"
)

var bigOne = big.NewInt(1)

// core holds the state shared by every product arity: the indexer and the validation around it.
type core struct {
	indexer Indexer
	size    *big.Int
	arity   int
}

func newCore(sizes ...*big.Int) (core, error) {
	for i, size := range sizes {
		if size == nil || size.Sign() < 0 {
			return core{}, fmt.Errorf("%w: axis %d has size %v", ErrInvalidAxis, i, size)
		}
	}
	indexer := NewIndexer(sizes...)
	return core{indexer: indexer, size: indexer.Size(), arity: len(sizes)}, nil
}

// Size returns the number of entries in the product.
func (c *core) Size() *big.Int {
	return new(big.Int).Set(c.size)
}

// Arity returns the number of axes in the product.
func (c *core) Arity() int {
	return c.arity
}

// Indexer returns the place-value table of the product.
func (c *core) Indexer() Indexer {
	return c.indexer
}

// positions validates index and decodes it into one position per axis.
func (c *core) positions(index *big.Int) ([]*big.Int, error) {
	if index == nil {
		return nil, ErrNilArgument
	}
	if index.Sign() < 0 || index.Cmp(c.size) >= 0 {
		return nil, fmt.Errorf("%w: %v is not in [0, %v)", ErrIndexOutOfRange, index, c.size)
	}
	return c.indexer.Attributes(index), nil
}

// index encodes the positions found for entry. A nil position means the component was not found
// on its axis; the failure names the whole entry rather than the axis.
func (c *core) index(entry any, positions ...*big.Int) (*big.Int, error) {
	if lo.Contains(positions, nil) {
		return nil, fmt.Errorf("%w: %v", ErrEntryNotFound, entry)
	}
	return c.indexer.Index(positions), nil
}

// position looks value up on axis, returning nil when it is absent.
func position[T any](axis Axis[T], value T) *big.Int {
	found, ok := axis.Position(value)
	if !ok {
		return nil
	}
	return found
}

// samples maps the distinct indices drawn by SampleIndices to product entries.
func samples[E any](c *core, sampleSize *big.Int, source random.Source, at func(*big.Int) (E, error)) (iter.Seq[E], error) {
	indices, err := SampleIndices(c.size, sampleSize, source)
	if err != nil {
		return nil, err
	}
	return func(yield func(E) bool) {
		for index := range indices {
			// Drawn indices always lie in [0, Size)
			if !yield(lo.Must(at(index))) {
				return
			}
		}
	}, nil
}
