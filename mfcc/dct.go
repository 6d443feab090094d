// SPDX-License-Identifier: EPL-2.0

package mfcc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DCTKind selects the DCT-II scaling.
type DCTKind int

const (
	// DCTPlain scales every row by sqrt(2/N).
	DCTPlain DCTKind = iota
	// DCTOrthonormal scales row 0 by 2*sqrt(1/(4N)) and the rest by
	// 2*sqrt(1/(2N)).
	DCTOrthonormal
)

func (k DCTKind) String() string {
	switch k {
	case DCTPlain:
		return "plain"
	case DCTOrthonormal:
		return "orthonormal"
	default:
		return fmt.Sprintf("DCTKind(%d)", int(k))
	}
}

// NewDCTMatrix builds the numMFCCFeats x numFbankBins DCT-II matrix that
// maps log mel energies to cepstral coefficients.
func NewDCTMatrix(kind DCTKind, numFbankBins, numMFCCFeats int) *mat.Dense {
	n := float64(numFbankBins)
	angle := math.Pi / n
	plain := math.Sqrt(2.0 / n)
	first := 2.0 * math.Sqrt(1.0/(4.0*n))
	rest := 2.0 * math.Sqrt(1.0/(2.0*n))

	m := mat.NewDense(numMFCCFeats, numFbankBins, nil)
	for k := range numMFCCFeats {
		scale := plain
		if kind == DCTOrthonormal {
			scale = rest
			if k == 0 {
				scale = first
			}
		}

		for i := range numFbankBins {
			m.Set(k, i, scale*math.Cos(angle*(float64(i)+0.5)*float64(k)))
		}
	}

	return m
}
