package diversity

import "errors"

// ErrEmptyInput is returned when an index is asked to evaluate zero
// proportions.
var ErrEmptyInput = errors.New("diversity: empty proportion vector")

// ErrDimensionMismatch is returned when a disparity or functional index
// is given a distance matrix or vector set of the wrong size.
var ErrDimensionMismatch = errors.New("diversity: dimension mismatch between proportions and distance data")

// ErrSingleSpecies is returned by evenness indices whose denominator
// vanishes when exactly one type is present (S-1 == 0, n-1 == 0).
var ErrSingleSpecies = errors.New("diversity: index undefined for a single species")
