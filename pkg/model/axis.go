package model

import (
	"math/big"

	"github.com/samber/lo"
)

// Axis is an ordered, finite, indexable collection. Its size must not change while a product
// references it.
type Axis[T any] interface {
	// Returns the number of elements in the axis
	Size() *big.Int
	// Returns the element at position, where 0 <= position < Size()
	At(position *big.Int) T
	// Returns the position of the first occurrence of value, or false if value is absent
	Position(value T) (*big.Int, bool)
}

// AnyAxis is an Axis with its element type erased, used by the N-axis Product.
type AnyAxis = Axis[any]

// Erase adapts a typed axis so it can be combined with axes of other element types.
// Position reports false for values that are not of type T.
func Erase[T any](axis Axis[T]) AnyAxis {
	return erasedAxis[T]{axis: axis}
}

type erasedAxis[T any] struct {
	axis Axis[T]
}

func (a erasedAxis[T]) Size() *big.Int           { return a.axis.Size() }
func (a erasedAxis[T]) At(position *big.Int) any { return a.axis.At(position) }

func (a erasedAxis[T]) Position(value any) (*big.Int, bool) {
	typed, ok := value.(T)
	if !ok {
		return nil, false
	}
	return a.axis.Position(typed)
}

// SliceAxis is an axis backed by a slice of comparable elements. The slice is referenced,
// not copied.
type SliceAxis[T comparable] struct {
	values []T
}

func NewSliceAxis[T comparable](values ...T) SliceAxis[T] {
	return SliceAxis[T]{values: values}
}

func (a SliceAxis[T]) Size() *big.Int         { return big.NewInt(int64(len(a.values))) }
func (a SliceAxis[T]) At(position *big.Int) T { return a.values[position.Int64()] }
func (a SliceAxis[T]) Position(value T) (*big.Int, bool) {
	return foundAt(lo.IndexOf(a.values, value))
}

// FuncAxis is an axis backed by a slice whose elements are compared with a custom equality.
type FuncAxis[T any] struct {
	values []T
	equal  func(a, b T) bool
}

func NewFuncAxis[T any](values []T, equal func(a, b T) bool) FuncAxis[T] {
	return FuncAxis[T]{values: values, equal: equal}
}

func (a FuncAxis[T]) Size() *big.Int         { return big.NewInt(int64(len(a.values))) }
func (a FuncAxis[T]) At(position *big.Int) T { return a.values[position.Int64()] }
func (a FuncAxis[T]) Position(value T) (*big.Int, bool) {
	_, index, _ := lo.FindIndexOf(a.values, func(item T) bool { return a.equal(item, value) })
	return foundAt(index)
}

// RangeAxis is the virtual axis of the integers in [from, to). Its size is not bounded by
// native integer range.
type RangeAxis struct {
	from *big.Int
	size *big.Int
}

// NewRangeAxis returns the axis of the integers in [from, to). An empty axis is returned when
// to <= from.
func NewRangeAxis(from, to *big.Int) RangeAxis {
	size := new(big.Int).Sub(to, from)
	if size.Sign() < 0 {
		size.SetInt64(0)
	}
	return RangeAxis{from: new(big.Int).Set(from), size: size}
}

func (a RangeAxis) Size() *big.Int { return new(big.Int).Set(a.size) }

func (a RangeAxis) At(position *big.Int) *big.Int {
	return new(big.Int).Add(a.from, position)
}

func (a RangeAxis) Position(value *big.Int) (*big.Int, bool) {
	if value == nil {
		return nil, false
	}
	position := new(big.Int).Sub(value, a.from)
	if position.Sign() < 0 || position.Cmp(a.size) >= 0 {
		return nil, false
	}
	return position, true
}

func foundAt(index int) (*big.Int, bool) {
	if index == -1 {
		return nil, false
	}
	return big.NewInt(int64(index)), true
}
