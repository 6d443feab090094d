// SPDX-License-Identifier: EPL-2.0

package feature

// Tensor is a row-major Rows x Cols feature matrix, one row per frame.
type Tensor struct {
	Rows int
	Cols int
	Data []float32
}

// NewTensor allocates a zeroed tensor.
func NewTensor(rows, cols int) *Tensor {
	return &Tensor{Rows: rows, Cols: cols, Data: make([]float32, rows*cols)}
}

// Row returns row i as a subslice of Data.
func (t *Tensor) Row(i int) []float32 {
	return t.Data[i*t.Cols : (i+1)*t.Cols : (i+1)*t.Cols]
}

// At returns the value at row i, column j.
func (t *Tensor) At(i, j int) float32 {
	return t.Data[i*t.Cols+j]
}

// Shape returns Rows and Cols.
func (t *Tensor) Shape() (rows, cols int) {
	return t.Rows, t.Cols
}

// fill copies block into t, narrowing to float32.
func (t *Tensor) fill(block [][]float64) {
	for i, row := range block {
		dst := t.Row(i)
		for j, v := range row {
			dst[j] = float32(v)
		}
	}
}
