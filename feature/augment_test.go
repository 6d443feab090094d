package feature

import (
	"math"
	"testing"

	"github.com/ik5/audfeat/mfcc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFamily(t *testing.T) {
	t.Parallel()

	assert.IsType(t, Identity{}, ForFamily(mfcc.FamilyDefault))
	assert.IsType(t, Derivatives{}, ForFamily(mfcc.FamilyWav2Letter))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	block := [][]float64{{1, 2}, {3, 4}}
	assert.Equal(t, block, Identity{}.Augment(block))
	assert.Equal(t, 2, Identity{}.Width(2))
}

func TestConvolveSame(t *testing.T) {
	t.Parallel()

	// A centred impulse reproduces the kernel.
	a := make([]float64, 9)
	a[4] = 1
	out := make([]float64, 9)
	convolveSame(out, a, deltaKernel[:])
	for i := range out {
		assert.InDeltaf(t, deltaKernel[i], out[i], 1e-15, "sample %d", i)
	}

	// A unit ramp has a slope estimate of 1 away from the edges.
	ramp := make([]float64, 20)
	for i := range ramp {
		ramp[i] = float64(i)
	}
	out = make([]float64, 20)
	convolveSame(out, ramp, deltaKernel[:])
	for i := 4; i < 16; i++ {
		assert.InDeltaf(t, 1.0, out[i], 1e-7, "sample %d", i)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	block := [][]float64{{1, 2}, {3, 4}}
	Normalize(block)

	var sum, sq float64
	for _, row := range block {
		for _, v := range row {
			sum += v
			sq += v * v
		}
	}
	assert.InDelta(t, 0.0, sum/4, 1e-12)
	assert.InDelta(t, 1.0, sq/4, 1e-12)
	assert.InDelta(t, -3/math.Sqrt(5), block[0][0], 1e-12)
}

func TestNormalize_Constant(t *testing.T) {
	t.Parallel()

	block := [][]float64{{0.1, 0.1, 0.1}, {0.1, 0.1, 0.1}}
	Normalize(block)

	for _, row := range block {
		for _, v := range row {
			require.Zero(t, v)
			require.False(t, math.IsNaN(v))
		}
	}

	Normalize(nil)
	Normalize([][]float64{{}})
}

func TestDerivatives_ConstantColumns(t *testing.T) {
	t.Parallel()

	rows := 20
	block := make([][]float64, rows)
	for i := range block {
		block[i] = []float64{-10, 1, 1}
	}

	out := Derivatives{}.Augment(block)
	require.Len(t, out, rows)
	require.Len(t, out[0], 9)
	assert.Equal(t, 9, Derivatives{}.Width(3))

	// Inner rows see no change over time, so both derivatives are flat.
	mid := out[rows/2]
	assert.InDelta(t, -math.Sqrt2, mid[0], 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, mid[1], 1e-9)
	assert.InDelta(t, 0.0, mid[4], 1e-9)

	// Input is untouched.
	assert.Equal(t, []float64{-10, 1, 1}, block[0])
}

func TestDerivatives_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Derivatives{}.Augment(nil))
}
