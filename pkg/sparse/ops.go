package sparse

import "fmt"

// Add returns a + b. Both operands must have identical dimensions;
// otherwise Add returns ErrDimensionMismatch. Operands are not mutated.
// Entries that cancel to zero are absent from the result.
func Add(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("add %dx%d and %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	result := New(a.rows, a.cols)
	for k, v := range a.entries {
		if err := result.Set(k.Row, k.Col, v+b.Get(k.Row, k.Col)); err != nil {
			return nil, err
		}
	}
	for k, v := range b.entries {
		if _, ok := a.entries[k]; ok {
			continue // already combined in the first pass
		}
		if err := result.Set(k.Row, k.Col, v); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Sub returns a - b under the same dimension rule as Add.
func Sub(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("sub %dx%d and %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	result := New(a.rows, a.cols)
	for k, v := range a.entries {
		if err := result.Set(k.Row, k.Col, v-b.Get(k.Row, k.Col)); err != nil {
			return nil, err
		}
	}
	for k, v := range b.entries {
		if _, ok := a.entries[k]; ok {
			continue
		}
		if err := result.Set(k.Row, k.Col, -v); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Mul returns the matrix product a * b. Requires a.Cols() == b.Rows();
// otherwise Mul returns ErrDimensionMismatch. The result is
// a.Rows() x b.Cols().
//
// For each non-zero entry of a, the matching row of b is scanned across the
// full column range, so cost is O(nnz(a) * b.Cols()). Accumulation goes
// through Set, which drops any sum that lands on zero.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("mul %dx%d and %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	result := New(a.rows, b.cols)
	for k, v1 := range a.entries {
		for c2 := 0; c2 < b.cols; c2++ {
			v2 := b.Get(k.Col, c2)
			if v2 == 0 {
				continue
			}
			sum := result.Get(k.Row, c2) + v1*v2
			if err := result.Set(k.Row, c2, sum); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
