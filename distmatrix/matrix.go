package distmatrix

import (
	"errors"
	"fmt"
)

// FPMode selects the floating-point precision of a full Matrix (§3: "f32
// (disparity) or f64 (MST)").
type FPMode int

const (
	// FP32 stores the matrix in float32 (used by the disparity indices).
	FP32 FPMode = iota
	// FP64 stores the matrix in float64 (used by the MST builder).
	FP64
)

// ErrInvalidThreads is returned when a caller asks for zero or negative
// worker threads.
var ErrInvalidThreads = errors.New("distmatrix: threads must be ≥ 1")

// ErrBatchExceedsThreads is returned when ComputeRowBatch is asked for
// more rows than available threads (§4.F: "Constraint: B ≤ T").
var ErrBatchExceedsThreads = errors.New("distmatrix: batch size exceeds thread count")

// ErrLogicInvariant signals an unreachable fp_mode branch (§7's
// LogicInvariant error kind).
var ErrLogicInvariant = errors.New("distmatrix: unreachable fp_mode")

// Matrix is a dense n×n pairwise distance table, symmetric with a zero
// diagonal (§3, §8).
type Matrix struct {
	N      int
	Mode   FPMode
	F32    []float32 // populated iff Mode == FP32, row-major n×n
	F64    []float64 // populated iff Mode == FP64, row-major n×n
}

// At returns the distance between node i and node j.
func (m *Matrix) At(i, j int) float64 {
	switch m.Mode {
	case FP32:
		return float64(m.F32[i*m.N+j])
	case FP64:
		return m.F64[i*m.N+j]
	default:
		panic(fmt.Sprintf("distmatrix: %v: mode %d", ErrLogicInvariant, m.Mode))
	}
}

func (m *Matrix) set(i, j int, v float64) {
	switch m.Mode {
	case FP32:
		m.F32[i*m.N+j] = float32(v)
	case FP64:
		m.F64[i*m.N+j] = v
	default:
		panic(fmt.Sprintf("distmatrix: %v: mode %d", ErrLogicInvariant, m.Mode))
	}
}

func newMatrix(n int, mode FPMode) *Matrix {
	m := &Matrix{N: n, Mode: mode}
	switch mode {
	case FP32:
		m.F32 = make([]float32, n*n)
	case FP64:
		m.F64 = make([]float64, n*n)
	}

	return m
}
