// SPDX-License-Identifier: EPL-2.0

// Package mfcc computes mel-frequency cepstral coefficients of single
// audio frames.
//
// The pipeline for one frame is:
//
//	frame -> periodic Hann -> zero pad to NFFT -> real FFT
//	      -> filter bank -> log -> DCT -> NumMFCCFeats coefficients
//
// The filter bank and DCT matrices are built once by New and never change,
// so one Extractor can serve many goroutines.
//
// # Model Families
//
// Keyword spotting and speech recognition models were trained on slightly
// different front-ends. A Strategy captures the differences:
//
//	Family            Spectrum   MelNorm  LogMel       DCT
//	FamilyDefault     magnitude  raw      ln(x+1e-10)  plain
//	FamilyWav2Letter  power      energy   dB, -80 clip orthonormal
//
// Build an extractor for a family:
//
//	ex, err := mfcc.NewForFamily(params, mfcc.FamilyWav2Letter)
//	if err != nil {
//	    // Handle error
//	}
//	coeffs, err := ex.Compute(frame)
//
// Compute takes a pooled Scratch. Hot loops can own theirs:
//
//	sc := ex.NewScratch()
//	dst := make([]float64, ex.NumFeatures())
//	for _, frame := range frames {
//	    dst, err = ex.ComputeWith(sc, dst, frame)
//	}
//
// # Mel Scales
//
// MelScale and InvMelScale implement the HTK formula (1127 ln(1+f/700)) and
// the Slaney scale, linear below 1 kHz and logarithmic above.
//
// # Errors
//
// Invalid parameters wrap audio.ErrConfiguration. A frame whose length is
// not FrameLen returns ErrFrameLength, which wraps audio.ErrInputLength.
package mfcc
