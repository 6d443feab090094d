// SPDX-License-Identifier: EPL-2.0

// Package capture cuts audio into fixed-size, optionally overlapping
// windows for inference.
//
// # Buffer
//
// A Buffer turns equal-length blocks into windows of MinSamples samples.
// The first block fills a whole window. With Overlap > 0 every later block
// is written after the last Overlap samples of the previous window, and the
// window takes its first Hop = MinSamples-Overlap samples. Live backends
// deliver MinSamples every time; file mode delivers only the hop:
//
//	MinSamples=6, Overlap=2
//	push [0 1 2 3 4 5]       -> [0 1 2 3 4 5]
//	push [6 7 8 9]           -> [4 5 6 7 8 9]
//	push [10 11 12 13 14 15] -> [8 9 10 11 12 13]
//
// # File Mode
//
// Windows reads an audio.Source synchronously and yields windows through
// a range-over-func iterator:
//
//	for window, err := range capture.Windows(src, params) {
//	    if err != nil {
//	        // Handle error
//	    }
//	    tensor, err := assembler.Extract(window)
//	}
//
// # Live Mode
//
// A Stream connects a capture backend callback to a consumer through a
// bounded queue (two windows by default). The backend calls Deliver or
// DeliverPCM; the consumer calls Next or ranges over Windows. When the
// queue is full, Put either blocks (Block) or discards the oldest window
// (DropOldest).
//
//	stream, _ := capture.NewStream(params, capture.WithDuration(10*time.Second))
//	backend.OnBlock(func(raw []byte) { _ = stream.DeliverPCM(raw) })
//	for window, err := range stream.Windows(ctx) {
//	    // ...
//	}
package capture
