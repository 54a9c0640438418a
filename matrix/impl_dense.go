// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based block extraction (Block, Induced) and block writes (SetBlock),
//     which is how cluster-structured adjacency is composed and split.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Block: O(h*w).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// DefaultValidateNaNInf is the numeric policy applied by every constructor:
// Set rejects NaN and ±Inf with ErrNaNInf.
const DefaultValidateNaNInf = true

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxBlock    = "Block"    // ctor tag for Dense.Block
	ctxSetBlock = "SetBlock" // tag for Dense.SetBlock
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
	ctxFromRows = "NewDenseFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Format "Dense.<method>(row,col): %w"; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only for internal zero-OK constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Incidence matrices of a single node are legally N×0; they are produced
//     through newDenseZeroOK, never through this constructor.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Zero-length buffer is legal when rows==0 or cols==0 (len == rows*cols).
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
// MAIN DESCRIPTION:
//   - Bridge from JSON-decoded parameter files ("connectivity", "average_weight")
//     to the matrix kernels.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch for ragged input.
//   - ErrNaNInf for non-finite cells.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFromRows, i, len(rows[i]), m.c, ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant used by kernels that need *Dense back.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Row returns a copy of row i. Out-of-range rows yield nil.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// ToRows returns a fresh [][]float64 copy of the matrix, row by row.
// Used when parameter files are written back as JSON.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.Row(i)
	}

	return out
}

// String provides a readable row-wise dump for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Block copies the window [r0:r0+rows, c0:c0+cols) into a new Dense.
// MAIN DESCRIPTION:
//   - Extract one cluster block (intra or inter) of a composed adjacency.
//
// Errors:
//   - ErrBadShape when the window leaves the matrix or has a non-positive side.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Block(r0, c0, rows, cols int) (*Dense, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxBlock, r0, c0, rows, cols, ErrBadShape)
	}
	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: m.validateNaNInf}
	for i := 0; i < rows; i++ {
		copy(res.data[i*cols:(i+1)*cols], m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+cols])
	}

	return res, nil
}

// SetBlock writes src into m with its top-left corner at (r0, c0).
// Errors:
//   - ErrNilMatrix for a nil source; ErrBadShape when src does not fit.
//   - ErrNaNInf (wrapped) when the policy rejects a source value.
func (m *Dense) SetBlock(r0, c0 int, src Matrix) error {
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetBlock, ErrNilMatrix)
	}
	h, w := src.Rows(), src.Cols()
	if r0 < 0 || c0 < 0 || r0+h > m.r || c0+w > m.c {
		return fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxSetBlock, r0, c0, h, w, ErrBadShape)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("Dense.%s: %w", ctxSetBlock, err)
			}
			if err = m.Set(r0+i, c0+j, v); err != nil {
				return fmt.Errorf("Dense.%s: %w", ctxSetBlock, err)
			}
		}
	}

	return nil
}

// Induced materializes a copy submatrix using explicit index sets.
//   - Order of rowsIdx/colsIdx is preserved; duplicates are allowed.
//   - Zero-length index sets produce a legal zero-area Dense.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	res, err := newDenseZeroOK(rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// toDense returns m as *Dense, copying through At when m is another implementation.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
