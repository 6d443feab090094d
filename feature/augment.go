// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"math"

	"github.com/ik5/audfeat/mfcc"
	"gonum.org/v1/gonum/stat"
)

// Augmenter post-processes a block of per-frame features. Rows are frames,
// columns are coefficients.
type Augmenter interface {
	// Augment returns the augmented block. The input is not modified.
	Augment(block [][]float64) [][]float64
	// Width is the number of output columns for numFeats input columns.
	Width(numFeats int) int
}

// ForFamily returns the augmenter a model family was trained with.
func ForFamily(f mfcc.Family) Augmenter {
	if f == mfcc.FamilyWav2Letter {
		return Derivatives{}
	}

	return Identity{}
}

// Identity returns the block unchanged.
type Identity struct{}

func (Identity) Augment(block [][]float64) [][]float64 { return block }
func (Identity) Width(numFeats int) int                { return numFeats }

// Savitzky-Golay first and second derivative filters over 9 frames.
var (
	deltaKernel = [...]float64{
		6.66666667e-02, 5.00000000e-02, 3.33333333e-02,
		1.66666667e-02, -3.46944695e-18, -1.66666667e-02,
		-3.33333333e-02, -5.00000000e-02, -6.66666667e-02,
	}
	delta2Kernel = [...]float64{
		0.06060606, 0.01515152, -0.01731602,
		-0.03679654, -0.04329004, -0.03679654,
		-0.01731602, 0.01515152, 0.06060606,
	}
)

// Derivatives appends first and second time derivatives to each frame and
// normalizes the raw, delta and delta-delta blocks independently. The
// output row is [raw | delta | delta2].
type Derivatives struct{}

func (Derivatives) Width(numFeats int) int { return 3 * numFeats }

func (Derivatives) Augment(block [][]float64) [][]float64 {
	if len(block) == 0 {
		return nil
	}

	rows, cols := len(block), len(block[0])

	raw := make([][]float64, rows)
	delta := make([][]float64, rows)
	delta2 := make([][]float64, rows)
	for t := range rows {
		raw[t] = append([]float64(nil), block[t]...)
		delta[t] = make([]float64, cols)
		delta2[t] = make([]float64, cols)
	}

	column := make([]float64, rows)
	out := make([]float64, rows)
	for c := range cols {
		for t := range rows {
			column[t] = block[t][c]
		}

		convolveSame(out, column, deltaKernel[:])
		for t := range rows {
			delta[t][c] = out[t]
		}

		convolveSame(out, column, delta2Kernel[:])
		for t := range rows {
			delta2[t][c] = out[t]
		}
	}

	Normalize(raw)
	Normalize(delta)
	Normalize(delta2)

	result := make([][]float64, rows)
	for t := range rows {
		row := make([]float64, 0, 3*cols)
		row = append(row, raw[t]...)
		row = append(row, delta[t]...)
		result[t] = append(row, delta2[t]...)
	}

	return result
}

// convolveSame is a full linear convolution of a with kernel, cropped to
// len(a) samples centred on the kernel.
func convolveSame(dst, a, kernel []float64) {
	half := (len(kernel) - 1) / 2

	for i := range a {
		var sum float64
		for j, v := range kernel {
			m := i + half - j
			if m >= 0 && m < len(a) {
				sum += v * a[m]
			}
		}
		dst[i] = sum
	}
}

// flatStdDev bounds the relative spread treated as a constant block, so
// rounding noise is not amplified to unit variance.
const flatStdDev = 1e-12

// Normalize rescales block in place to zero mean and unit standard
// deviation over all of its values. A constant block becomes all zeros.
func Normalize(block [][]float64) {
	size := 0
	for _, row := range block {
		size += len(row)
	}
	if size == 0 {
		return
	}

	values := make([]float64, 0, size)
	for _, row := range block {
		values = append(values, row...)
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	if std <= flatStdDev*math.Max(1, math.Abs(mean)) {
		for _, row := range block {
			clear(row)
		}

		return
	}

	for _, row := range block {
		for i, v := range row {
			row[i] = (v - mean) / std
		}
	}
}
