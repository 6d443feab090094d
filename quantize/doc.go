// SPDX-License-Identifier: EPL-2.0

// Package quantize converts float feature tensors to the integer inputs of
// quantized models, and converts PCM samples between int16 and float32.
//
// A quantized tensor stores q = clip(round(v/Scale) + Offset), clipped to
// the range of its element type:
//
//	q, err := quantize.Tensor[int8](tensor, quantize.Params{Scale: 0.5, Offset: -10})
//
// Scale and Offset come from the model; this package only applies them.
package quantize
