// SPDX-License-Identifier: EPL-2.0

package mfcc

import "math"

const (
	htkMelFactor = 1127.0
	htkBreakHz   = 700.0

	// Slaney: linear below minLogHz, logarithmic above, continuous at the knee.
	freqStep  = 200.0 / 3
	minLogHz  = 1000.0
	minLogMel = minLogHz / freqStep
	logStep   = 1.8562979903656 / 27.0 // ln(6.4) / 27
)

// MelScale converts a frequency in Hz to mels.
func MelScale(freq float64, useHTK bool) float64 {
	if useHTK {
		return htkMelFactor * math.Log(1.0+freq/htkBreakHz)
	}

	if freq >= minLogHz {
		return minLogMel + math.Log(freq/minLogHz)/logStep
	}

	return freq / freqStep
}

// InvMelScale converts mels back to Hz.
func InvMelScale(mel float64, useHTK bool) float64 {
	if useHTK {
		return htkBreakHz * (math.Exp(mel/htkMelFactor) - 1.0)
	}

	if mel >= minLogMel {
		return minLogHz * math.Exp(logStep*(mel-minLogMel))
	}

	return freqStep * mel
}
