package matrix

import "fmt"

// Dense is a fixed-size, row-major dense integer matrix.
type Dense struct {
	rows, cols int
	data       []int
}

// NewDense returns a Dense of the given shape, zero-initialized. Both
// dimensions must be positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Dense{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// Rows returns the matrix's row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the matrix's column count.
func (d *Dense) Cols() int { return d.cols }

// At returns the value at (r,c).
func (d *Dense) At(r, c int) (int, error) {
	if r < 0 || r >= d.rows || c < 0 || c >= d.cols {
		return 0, fmt.Errorf("matrix: At(%d,%d): %w", r, c, ErrOutOfRange)
	}
	return d.data[r*d.cols+c], nil
}

// Set stores v at (r,c).
func (d *Dense) Set(r, c, v int) error {
	if r < 0 || r >= d.rows || c < 0 || c >= d.cols {
		return fmt.Errorf("matrix: Set(%d,%d): %w", r, c, ErrOutOfRange)
	}
	d.data[r*d.cols+c] = v
	return nil
}

// Add accumulates v onto the existing entry at (r,c).
func (d *Dense) Add(r, c, v int) error {
	cur, err := d.At(r, c)
	if err != nil {
		return err
	}
	return d.Set(r, c, cur+v)
}

// RowSum returns the sum of row r.
func (d *Dense) RowSum(r int) (int, error) {
	if r < 0 || r >= d.rows {
		return 0, fmt.Errorf("matrix: RowSum(%d): %w", r, ErrOutOfRange)
	}
	sum := 0
	for c := 0; c < d.cols; c++ {
		sum += d.data[r*d.cols+c]
	}
	return sum, nil
}
