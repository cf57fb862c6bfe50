package compute

import "fmt"

// Dense is a dense row-major float64 matrix. The zero value is not usable;
// construct with NewDense.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a rows×cols matrix. If data is nil a zeroed backing slice
// is allocated; otherwise data is used directly (not copied) and must have
// length rows*cols.
func NewDense(rows, cols int, data []float64) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("compute: invalid dimensions %dx%d", rows, cols))
	}
	if data == nil {
		data = make([]float64, rows*cols)
	} else if len(data) != rows*cols {
		panic(fmt.Sprintf("compute: data length %d does not match %dx%d", len(data), rows, cols))
	}
	return &Dense{rows: rows, cols: cols, data: data}
}

// Dims returns the row and column counts.
func (m *Dense) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set assigns the element at row i, column j.
func (m *Dense) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Row returns a view of row i. The slice aliases the matrix backing store.
func (m *Dense) Row(i int) []float64 { return m.data[i*m.cols : (i+1)*m.cols] }

// Col copies column j into dst, allocating if dst is nil or too short.
func (m *Dense) Col(j int, dst []float64) []float64 {
	if cap(dst) < m.rows {
		dst = make([]float64, m.rows)
	}
	dst = dst[:m.rows]
	for i := 0; i < m.rows; i++ {
		dst[i] = m.data[i*m.cols+j]
	}
	return dst
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// RawData returns the row-major backing slice. Mutating it mutates the matrix.
func (m *Dense) RawData() []float64 { return m.data }

// ColMajor copies the matrix into dst in column-major order, so that column j
// occupies dst[j*rows : (j+1)*rows]. The solvers use this layout for
// cache-friendly per-feature access during coordinate descent.
func (m *Dense) ColMajor(dst []float64) []float64 {
	n := m.rows * m.cols
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		for j, v := range row {
			dst[j*m.rows+i] = v
		}
	}
	return dst
}
