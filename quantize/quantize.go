// SPDX-License-Identifier: EPL-2.0

package quantize

import (
	"fmt"
	"math"

	"github.com/ik5/audfeat/audio"
	"github.com/ik5/audfeat/feature"
)

// Integer is the set of element types a quantized model input can use.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

var ErrScale = fmt.Errorf("quantization scale must be positive and finite: %w", audio.ErrConfiguration)

// Params is the affine mapping of a quantized tensor: real = (q - Offset) * Scale.
type Params struct {
	Scale  float32 `yaml:"scale"`
	Offset int     `yaml:"offset"`
}

func (p Params) Validate() error {
	if !(p.Scale > 0) || math.IsInf(float64(p.Scale), 0) {
		return fmt.Errorf("scale %v: %w", p.Scale, ErrScale)
	}

	return nil
}

// limits returns the representable range of T.
func limits[T Integer]() (lo, hi float64) {
	var zero T
	if ones := ^zero; ones > zero {
		return 0, float64(ones)
	}

	top := T(1)
	for top<<1 > 0 {
		top <<= 1
	}

	return -2 * float64(top), 2*float64(top) - 1
}

// Quantize maps each value v of src to clip(round(v/scale)+offset) within
// the range of T. NaN maps to clip(offset). dst is reused when it has room.
func Quantize[T Integer](dst []T, src []float32, p Params) ([]T, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lo, hi := limits[T]()
	scale := float64(p.Scale)
	offset := float64(p.Offset)

	if cap(dst) < len(src) {
		dst = make([]T, len(src))
	}
	dst = dst[:len(src)]

	for i, v := range src {
		q := math.Round(float64(v)/scale) + offset
		if math.IsNaN(q) {
			q = offset
		}
		dst[i] = T(math.Max(lo, math.Min(hi, q)))
	}

	return dst, nil
}

// Dequantize is the inverse mapping, (q - offset) * scale.
func Dequantize[T Integer](dst []float32, src []T, p Params) ([]float32, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if cap(dst) < len(src) {
		dst = make([]float32, len(src))
	}
	dst = dst[:len(src)]

	for i, q := range src {
		dst[i] = float32((float64(q) - float64(p.Offset)) * float64(p.Scale))
	}

	return dst, nil
}

// Tensor quantizes the data of t in row-major order.
func Tensor[T Integer](t *feature.Tensor, p Params) ([]T, error) {
	return Quantize[T](nil, t.Data, p)
}
