// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"

	"github.com/ik5/audfeat/audio"
)

var (
	ErrModelInputSize = fmt.Errorf("model input size must be positive: %w", audio.ErrConfiguration)
	ErrStride         = fmt.Errorf("stride must be positive: %w", audio.ErrConfiguration)
	ErrWorkers        = fmt.Errorf("worker count must be positive: %w", audio.ErrConfiguration)
	ErrNilExtractor   = fmt.Errorf("extractor is nil: %w", audio.ErrConfiguration)

	ErrInsufficientSamples = fmt.Errorf("not enough samples for the model input: %w", audio.ErrInputLength)
)
