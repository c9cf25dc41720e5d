package model

import "errors"

var (
	// ErrIndexOutOfRange is returned by AtIndex when the index is outside [0, Size).
	ErrIndexOutOfRange = errors.New("lazycart: index out of range")
	// ErrEntryNotFound is returned by IndexOf when some component of the entry is absent from its axis.
	ErrEntryNotFound = errors.New("lazycart: could not find cartesian product entry")
	// ErrSampleSizeExceedsCapacity is returned by GenerateSamples when more distinct samples are requested than Size.
	ErrSampleSizeExceedsCapacity = errors.New("lazycart: sample size cannot be greater than the total number of possible combinations")
	// ErrNegativeSampleSize is returned by GenerateSamples when the sample size is below zero.
	ErrNegativeSampleSize = errors.New("lazycart: sample size cannot be negative")
	// ErrNilArgument is returned when a nil index or sample size is given.
	ErrNilArgument = errors.New("lazycart: nil argument")
	// ErrNoAxes is returned when a product is built without axes.
	ErrNoAxes = errors.New("lazycart: at least one axis is required")
	// ErrInvalidAxis is returned when an axis reports a nil or negative size.
	ErrInvalidAxis = errors.New("lazycart: axis size must be a non-negative integer")
	// ErrArityMismatch is returned when an entry does not have one component per axis.
	ErrArityMismatch = errors.New("lazycart: entry arity does not match product arity")
)
