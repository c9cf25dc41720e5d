package model

import (
	"fmt"
	"iter"
	"math/big"
	"slices"

	"github.com/limaJavier/lazycart/pkg/random"
	"github.com/samber/lo"
)

// Product is the lazy Cartesian product of any number of axes with heterogeneous element types.
// Entries are []any with one component per axis, in axis order.
//
// A Product is immutable after construction and safe for concurrent use. The typed Product2 to
// Product7 offer the same operations with tuple entries.
type Product struct {
	core
	axes []AnyAxis
}

// NewProduct precomputes the place-value table of the given axes. The axes are referenced, not
// copied, and must outlive the product.
func NewProduct(axes ...AnyAxis) (*Product, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}

	shared, err := newCore(lo.Map(axes, func(axis AnyAxis, _ int) *big.Int { return axis.Size() })...)
	if err != nil {
		return nil, err
	}
	return &Product{core: shared, axes: slices.Clone(axes)}, nil
}

// AtIndex returns the entry at index, which must lie in [0, Size).
func (p *Product) AtIndex(index *big.Int) ([]any, error) {
	positions, err := p.positions(index)
	if err != nil {
		return nil, err
	}

	entry := make([]any, len(p.axes))
	for i, axis := range p.axes {
		entry[i] = axis.At(positions[i])
	}
	return entry, nil
}

// IndexOf returns the index of entry. When an axis holds duplicate elements the first occurrence
// is used, so an entry built from a later duplicate does not round-trip to its original index.
func (p *Product) IndexOf(entry []any) (*big.Int, error) {
	if len(entry) != len(p.axes) {
		return nil, fmt.Errorf("%w: got %d components for %d axes", ErrArityMismatch, len(entry), len(p.axes))
	}

	positions := make([]*big.Int, len(p.axes))
	for i, axis := range p.axes {
		positions[i] = position(axis, entry[i])
	}
	return p.index(entry, positions...)
}

// GenerateSamples returns a lazy sequence of sampleSize distinct entries drawn uniformly at random.
// See SampleIndices for the sampling procedure.
func (p *Product) GenerateSamples(sampleSize *big.Int, source random.Source) (iter.Seq[[]any], error) {
	return samples(&p.core, sampleSize, source, p.AtIndex)
}
