// SPDX-License-Identifier: EPL-2.0

// Package audfeat turns audio into fixed-size MFCC feature tensors for
// speech and keyword spotting models.
//
// The root package ties the building blocks together. A Pipeline is built
// from a config.Profile and runs either over a file or over a live capture
// stream, handing each tensor to an Inference callback:
//
//	pipe, err := audfeat.New(config.KWS())
//	if err != nil {
//	    // Handle error
//	}
//
//	err = pipe.RunFile(ctx, "yes.wav", func(ctx context.Context, t *feature.Tensor) error {
//	    return model.Invoke(t.Data)
//	})
//
// # Subpackages
//
//   - mfcc: mel scale, filter bank, DCT, spectrum and the per-frame extractor
//   - feature: sliding-window assembly into tensors, derivative features
//   - capture: windowing with overlap, bounded live queue, file windows
//   - quantize: float to integer model input conversion
//   - config: YAML profiles and the KWS / ASR presets
//   - formats/*: WAV, MP3, Ogg Vorbis, AIFF and FLAC decoders
//
// # Live Capture
//
// For microphone input, create a stream from the pipeline so the profile's
// queue and duration settings apply, feed it from the backend callback and
// run the pipeline on the consumer side:
//
//	stream, _ := pipe.NewStream()
//	backend.OnBlock(func(raw []byte) { _ = stream.DeliverPCM(raw) })
//	err := pipe.Run(ctx, stream, infer)
//
// Sources are never resampled. A file whose sample rate differs from the
// profile fails with capture.ErrSampleRate.
package audfeat
