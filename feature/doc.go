// SPDX-License-Identifier: EPL-2.0

// Package feature assembles per-frame MFCCs into model input tensors.
//
// An Assembler slices one audio window into ModelInputSize frames spaced
// Stride samples apart, runs an mfcc.Extractor on each, then hands the
// block to an Augmenter:
//
//	as, err := feature.NewAssembler(ex, 296, 160, feature.WithWorkers(4))
//	if err != nil {
//	    // Handle error
//	}
//	tensor, err := as.Extract(window) // len(window) >= as.MinSamples()
//
// The default augmenter follows the extractor family: Identity for keyword
// spotting, Derivatives for wav2letter. Derivatives appends Savitzky-Golay
// delta and delta-delta coefficients and normalizes each of the three
// blocks to zero mean and unit variance, so each row becomes
// [raw | delta | delta2].
package feature
