package model

import (
	"iter"
	"math/big"

	"github.com/limaJavier/lazycart/pkg/random"
	"github.com/samber/lo"
)

// Product2 is the lazy Cartesian product of two axes. Entries are lo.Tuple2 values whose fields
// follow axis order. Like Product, it is immutable after construction and safe for concurrent use.
type Product2[T1, T2 any] struct {
	core
	axis1 Axis[T1]
	axis2 Axis[T2]
}

func NewProduct2[T1, T2 any](axis1 Axis[T1], axis2 Axis[T2]) (*Product2[T1, T2], error) {
	shared, err := newCore(axis1.Size(), axis2.Size())
	if err != nil {
		return nil, err
	}
	return &Product2[T1, T2]{
		core:  shared,
		axis1: axis1,
		axis2: axis2,
	}, nil
}

// FromSlices2 builds a Product2 over two slices of comparable elements.
func FromSlices2[T1, T2 comparable](values1 []T1, values2 []T2) *Product2[T1, T2] {
	// Slice sizes are never negative
	return lo.Must(NewProduct2[T1, T2](NewSliceAxis(values1...), NewSliceAxis(values2...)))
}

// AtIndex returns the entry at index, which must lie in [0, Size).
func (p *Product2[T1, T2]) AtIndex(index *big.Int) (lo.Tuple2[T1, T2], error) {
	positions, err := p.positions(index)
	if err != nil {
		return lo.Tuple2[T1, T2]{}, err
	}
	return lo.T2(p.axis1.At(positions[0]), p.axis2.At(positions[1])), nil
}

// At is AtIndex for native integer indices.
func (p *Product2[T1, T2]) At(index int64) (lo.Tuple2[T1, T2], error) {
	return p.AtIndex(big.NewInt(index))
}

// IndexOf returns the index of entry, using the first occurrence of each component on its axis.
func (p *Product2[T1, T2]) IndexOf(entry lo.Tuple2[T1, T2]) (*big.Int, error) {
	return p.index(entry, position(p.axis1, entry.A), position(p.axis2, entry.B))
}

// GenerateSamples returns a lazy sequence of sampleSize distinct entries drawn uniformly at random.
func (p *Product2[T1, T2]) GenerateSamples(sampleSize *big.Int, source random.Source) (iter.Seq[lo.Tuple2[T1, T2]], error) {
	return samples(&p.core, sampleSize, source, p.AtIndex)
}

// Samples is GenerateSamples for native integer sample sizes.
func (p *Product2[T1, T2]) Samples(sampleSize int64, source random.Source) (iter.Seq[lo.Tuple2[T1, T2]], error) {
	return p.GenerateSamples(big.NewInt(sampleSize), source)
}

// Product3 is the lazy Cartesian product of three axes.
type Product3[T1, T2, T3 any] struct {
	core
	axis1 Axis[T1]
	axis2 Axis[T2]
	axis3 Axis[T3]
}

func NewProduct3[T1, T2, T3 any](axis1 Axis[T1], axis2 Axis[T2], axis3 Axis[T3]) (*Product3[T1, T2, T3], error) {
	shared, err := newCore(axis1.Size(), axis2.Size(), axis3.Size())
	if err != nil {
		return nil, err
	}
	return &Product3[T1, T2, T3]{
		core:  shared,
		axis1: axis1,
		axis2: axis2,
		axis3: axis3,
	}, nil
}

func FromSlices3[T1, T2, T3 comparable](values1 []T1, values2 []T2, values3 []T3) *Product3[T1, T2, T3] {
	return lo.Must(NewProduct3[T1, T2, T3](NewSliceAxis(values1...), NewSliceAxis(values2...), NewSliceAxis(values3...)))
}

func (p *Product3[T1, T2, T3]) AtIndex(index *big.Int) (lo.Tuple3[T1, T2, T3], error) {
	positions, err := p.positions(index)
	if err != nil {
		return lo.Tuple3[T1, T2, T3]{}, err
	}
	return lo.T3(p.axis1.At(positions[0]), p.axis2.At(positions[1]), p.axis3.At(positions[2])), nil
}

func (p *Product3[T1, T2, T3]) At(index int64) (lo.Tuple3[T1, T2, T3], error) {
	return p.AtIndex(big.NewInt(index))
}

func (p *Product3[T1, T2, T3]) IndexOf(entry lo.Tuple3[T1, T2, T3]) (*big.Int, error) {
	return p.index(entry, position(p.axis1, entry.A), position(p.axis2, entry.B), position(p.axis3, entry.C))
}

func (p *Product3[T1, T2, T3]) GenerateSamples(sampleSize *big.Int, source random.Source) (iter.Seq[lo.Tuple3[T1, T2, T3]], error) {
	return samples(&p.core, sampleSize, source, p.AtIndex)
}

func (p *Product3[T1, T2, T3]) Samples(sampleSize int64, source random.Source) (iter.Seq[lo.Tuple3[T1, T2, T3]], error) {
	return p.GenerateSamples(big.NewInt(sampleSize), source)
}

// Product4 is the lazy Cartesian product of four axes.
type Product4[T1, T2, T3, T4 any] struct {
	core
	axis1 Axis[T1]
	axis2 Axis[T2]
	axis3 Axis[T3]
	axis4 Axis[T4]
}

func NewProduct4[T1, T2, T3, T4 any](axis1 Axis[T1], axis2 Axis[T2], axis3 Axis[T3], axis4 Axis[T4]) (*Product4[T1, T2, T3, T4], error) {
	shared, err := newCore(axis1.Size(), axis2.Size(), axis3.Size(), axis4.Size())
	if err != nil {
		return nil, err
	}
	return &Product4[T1, T2, T3, T4]{
		core:  shared,
		axis1: axis1,
		axis2: axis2,
		axis3: axis3,
		axis4: axis4,
	}, nil
}

func FromSlices4[T1, T2, T3, T4 comparable](values1 []T1, values2 []T2, values3 []T3, values4 []T4) *Product4[T1, T2, T3, T4] {
	return lo.Must(NewProduct4[T1, T2, T3, T4](NewSliceAxis(values1...), NewSliceAxis(values2...), NewSliceAxis(values3...), NewSliceAxis(values4...)))
}

func (p *Product4[T1, T2, T3, T4]) AtIndex(index *big.Int) (lo.Tuple4[T1, T2, T3, T4], error) {
	positions, err := p.positions(index)
	if err != nil {
		return lo.Tuple4[T1, T2, T3, T4]{}, err
	}
	return lo.T4(p.axis1.At(positions[0]), p.axis2.At(positions[1]), p.axis3.At(positions[2]), p.axis4.At(positions[3])), nil
}

func (p *Product4[T1, T2, T3, T4]) At(index int64) (lo.Tuple4[T1, T2, T3, T4], error) {
	return p.AtIndex(big.NewInt(index))
}

func (p *Product4[T1, T2, T3, T4]) IndexOf(entry lo.Tuple4[T1, T2, T3, T4]) (*big.Int, error) {
	return p.index(entry, position(p.axis1, entry.A), position(p.axis2, entry.B), position(p.axis3, entry.C), position(p.axis4, entry.D))
}

func (p *Product4[T1, T2, T3, T4]) GenerateSamples(sampleSize *big.Int, source random.Source) (iter.Seq[lo.Tuple4[T1, T2, T3, T4]], error) {
	return samples(&p.core, sampleSize, source, p.AtIndex)
}

func (p *Product4[T1, T2, T3, T4]) Samples(sampleSize int64, source random.Source) (iter.Seq[lo.Tuple4[T1, T2, T3, T4]], error) {
	return p.GenerateSamples(big.NewInt(sampleSize), source)
}

// Product5 is the lazy Cartesian product of five axes.
type Product5[T1, T2, T3, T4, T5 any] struct {
	core
	axis1 Axis[T1]
	axis2 Axis[T2]
	axis3 Axis[T3]
	axis4 Axis[T4]
	axis5 Axis[T5]
}

func NewProduct5[T1, T2, T3, T4, T5 any](axis1 Axis[T1], axis2 Axis[T2], axis3 Axis[T3], axis4 Axis[T4], axis5 Axis[T5]) (*Product5[T1, T2, T3, T4, T5], error) {
	shared, err := newCore(axis1.Size(), axis2.Size(), axis3.Size(), axis4.Size(), axis5.Size())
	if err != nil {
		return nil, err
	}
	return &Product5[T1, T2, T3, T4, T5]{
		core:  shared,
		axis1: axis1,
		axis2: axis2,
		axis3: axis3,
		axis4: axis4,
		axis5: axis5,
	}, nil
}

func FromSlices5[T1, T2, T3, T4, T5 comparable](values1 []T1, values2 []T2, values3 []T3, values4 []T4, values5 []T5) *Product5[T1, T2, T3, T4, T5] {
	return lo.Must(NewProduct5[T1, T2, T3, T4, T5](NewSliceAxis(values1...), NewSliceAxis(values2...), NewSliceAxis(values3...), NewSliceAxis(values4...), NewSliceAxis(values5...)))
}

func (p *Product5[T1, T2, T3, T4, T5]) AtIndex(index *big.Int) (lo.Tuple5[T1, T2, T3, T4, T5], error) {
	positions, err := p.positions(index)
	if err != nil {
		return lo.Tuple5[T1, T2, T3, T4, T5]{}, err
	}
	return lo.T5(p.axis1.At(positions[0]), p.axis2.At(positions[1]), p.axis3.At(positions[2]), p.axis4.At(positions[3]), p.axis5.At(positions[4])), nil
}

func (p *Product5[T1, T2, T3, T4, T5]) At(index int64) (lo.Tuple5[T1, T2, T3, T4, T5], error) {
	return p.AtIndex(big.NewInt(index))
}

func (p *Product5[T1, T2, T3, T4, T5]) IndexOf(entry lo.Tuple5[T1, T2, T3, T4, T5]) (*big.Int, error) {
	return p.index(entry, position(p.axis1, entry.A), position(p.axis2, entry.B), position(p.axis3, entry.C), position(p.axis4, entry.D), position(p.axis5, entry.E))
}

func (p *Product5[T1, T2, T3, T4, T5]) GenerateSamples(sampleSize *big.Int, source random.Source) (iter.Seq[lo.Tuple5[T1, T2, T3, T4, T5]], error) {
	return samples(&p.core, sampleSize, source, p.AtIndex)
}

func (p *Product5[T1, T2, T3, T4, T5]) Samples(sampleSize int64, source random.Source) (iter.Seq[lo.Tuple5[T1, T2, T3, T4, T5]], error) {
	return p.GenerateSamples(big.NewInt(sampleSize), source)
}

// Product6 is the lazy Cartesian product of six axes.
type Product6[T1, T2, T3, T4, T5, T6 any] struct {
	core
	axis1 Axis[T1]
	axis2 Axis[T2]
	axis3 Axis[T3]
	axis4 Axis[T4]
	axis5 Axis[T5]
	axis6 Axis[T6]
}

func NewProduct6[T1, T2, T3, T4, T5, T6 any](axis1 Axis[T1], axis2 Axis[T2], axis3 Axis[T3], axis4 Axis[T4], axis5 Axis[T5], axis6 Axis[T6]) (*Product6[T1, T2, T3, T4, T5, T6], error) {
	shared, err := newCore(axis1.Size(), axis2.Size(), axis3.Size(), axis4.Size(), axis5.Size(), axis6.Size())
	if err != nil {
		return nil, err
	}
	return &Product6[T1, T2, T3, T4, T5, T6]{
		core:  shared,
		axis1: axis1,
		axis2: axis2,
		axis3: axis3,
		axis4: axis4,
		axis5: axis5,
		axis6: axis6,
	}, nil
}

func FromSlices6[T1, T2, T3, T4, T5, T6 comparable](values1 []T1, values2 []T2, values3 []T3, values4 []T4, values5 []T5, values6 []T6) *Product6[T1, T2, T3, T4, T5, T6] {
	return lo.Must(NewProduct6[T1, T2, T3, T4, T5, T6](NewSliceAxis(values1...), NewSliceAxis(values2...), NewSliceAxis(values3...), NewSliceAxis(values4...), NewSliceAxis(values5...), NewSliceAxis(values6...)))
}

func (p *Product6[T1, T2, T3, T4, T5, T6]) AtIndex(index *big.Int) (lo.Tuple6[T1, T2, T3, T4, T5, T6], error) {
	positions, err := p.positions(index)
	if err != nil {
		return lo.Tuple6[T1, T2, T3, T4, T5, T6]{}, err
	}
	return lo.T6(p.axis1.At(positions[0]), p.axis2.At(positions[1]), p.axis3.At(positions[2]), p.axis4.At(positions[3]), p.axis5.At(positions[4]), p.axis6.At(positions[5])), nil
}

func (p *Product6[T1, T2, T3, T4, T5, T6]) At(index int64) (lo.Tuple6[T1, T2, T3, T4, T5, T6], error) {
	return p.AtIndex(big.NewInt(index))
}

func (p *Product6[T1, T2, T3, T4, T5, T6]) IndexOf(entry lo.Tuple6[T1, T2, T3, T4, T5, T6]) (*big.Int, error) {
	return p.index(entry, position(p.axis1, entry.A), position(p.axis2, entry.B), position(p.axis3, entry.C), position(p.axis4, entry.D), position(p.axis5, entry.E), position(p.axis6, entry.F))
}

func (p *Product6[T1, T2, T3, T4, T5, T6]) GenerateSamples(sampleSize *big.Int, source random.Source) (iter.Seq[lo.Tuple6[T1, T2, T3, T4, T5, T6]], error) {
	return samples(&p.core, sampleSize, source, p.AtIndex)
}

func (p *Product6[T1, T2, T3, T4, T5, T6]) Samples(sampleSize int64, source random.Source) (iter.Seq[lo.Tuple6[T1, T2, T3, T4, T5, T6]], error) {
	return p.GenerateSamples(big.NewInt(sampleSize), source)
}

// Product7 is the lazy Cartesian product of seven axes.
type Product7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	core
	axis1 Axis[T1]
	axis2 Axis[T2]
	axis3 Axis[T3]
	axis4 Axis[T4]
	axis5 Axis[T5]
	axis6 Axis[T6]
	axis7 Axis[T7]
}

func NewProduct7[T1, T2, T3, T4, T5, T6, T7 any](axis1 Axis[T1], axis2 Axis[T2], axis3 Axis[T3], axis4 Axis[T4], axis5 Axis[T5], axis6 Axis[T6], axis7 Axis[T7]) (*Product7[T1, T2, T3, T4, T5, T6, T7], error) {
	shared, err := newCore(axis1.Size(), axis2.Size(), axis3.Size(), axis4.Size(), axis5.Size(), axis6.Size(), axis7.Size())
	if err != nil {
		return nil, err
	}
	return &Product7[T1, T2, T3, T4, T5, T6, T7]{
		core:  shared,
		axis1: axis1,
		axis2: axis2,
		axis3: axis3,
		axis4: axis4,
		axis5: axis5,
		axis6: axis6,
		axis7: axis7,
	}, nil
}

func FromSlices7[T1, T2, T3, T4, T5, T6, T7 comparable](values1 []T1, values2 []T2, values3 []T3, values4 []T4, values5 []T5, values6 []T6, values7 []T7) *Product7[T1, T2, T3, T4, T5, T6, T7] {
	return lo.Must(NewProduct7[T1, T2, T3, T4, T5, T6, T7](NewSliceAxis(values1...), NewSliceAxis(values2...), NewSliceAxis(values3...), NewSliceAxis(values4...), NewSliceAxis(values5...), NewSliceAxis(values6...), NewSliceAxis(values7...)))
}

func (p *Product7[T1, T2, T3, T4, T5, T6, T7]) AtIndex(index *big.Int) (lo.Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
	positions, err := p.positions(index)
	if err != nil {
		return lo.Tuple7[T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	return lo.T7(p.axis1.At(positions[0]), p.axis2.At(positions[1]), p.axis3.At(positions[2]), p.axis4.At(positions[3]), p.axis5.At(positions[4]), p.axis6.At(positions[5]), p.axis7.At(positions[6])), nil
}

func (p *Product7[T1, T2, T3, T4, T5, T6, T7]) At(index int64) (lo.Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
	return p.AtIndex(big.NewInt(index))
}

func (p *Product7[T1, T2, T3, T4, T5, T6, T7]) IndexOf(entry lo.Tuple7[T1, T2, T3, T4, T5, T6, T7]) (*big.Int, error) {
	return p.index(entry, position(p.axis1, entry.A), position(p.axis2, entry.B), position(p.axis3, entry.C), position(p.axis4, entry.D), position(p.axis5, entry.E), position(p.axis6, entry.F), position(p.axis7, entry.G))
}

func (p *Product7[T1, T2, T3, T4, T5, T6, T7]) GenerateSamples(sampleSize *big.Int, source random.Source) (iter.Seq[lo.Tuple7[T1, T2, T3, T4, T5, T6, T7]], error) {
	return samples(&p.core, sampleSize, source, p.AtIndex)
}

func (p *Product7[T1, T2, T3, T4, T5, T6, T7]) Samples(sampleSize int64, source random.Source) (iter.Seq[lo.Tuple7[T1, T2, T3, T4, T5, T6, T7]], error) {
	return p.GenerateSamples(big.NewInt(sampleSize), source)
}
