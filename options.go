package calldata

import (
	"runtime"

	"go.uber.org/zap"
)

// DefaultMaxDepth is the default number of nesting levels walked.
const DefaultMaxDepth = 8

// Option configures a Decoder.
type Option func(*decoderConfig)

// decoderConfig holds configuration for Decode.
type decoderConfig struct {
	logger        *zap.Logger
	strict        bool
	maxDepth      int
	regionProbes  bool
	topLevelTypes bool
	concurrency   int
}

// defaultConfig returns the default decoder configuration.
func defaultConfig() *decoderConfig {
	return &decoderConfig{
		logger:      zap.NewNop(),
		maxDepth:    DefaultMaxDepth,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *decoderConfig) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// WithStrict makes heuristic failures (out-of-range walks, unsupported
// extraction layouts) abort the decode instead of being recorded as
// diagnostics.
func WithStrict(enabled bool) Option {
	return func(c *decoderConfig) {
		c.strict = enabled
	}
}

// WithMaxDepth limits how many levels of nested calls are walked.
// Calls found at the limit are still recorded but not searched.
// Default is DefaultMaxDepth; values below zero are treated as zero.
func WithMaxDepth(depth int) Option {
	return func(c *decoderConfig) {
		if depth < 0 {
			depth = 0
		}
		c.maxDepth = depth
	}
}

// WithRegionProbes enables the dynamic-region resolution stage, which
// probes every offset candidate and stores the outcome in CallRecord.Regions.
func WithRegionProbes(enabled bool) Option {
	return func(c *decoderConfig) {
		c.regionProbes = enabled
	}
}

// WithTopLevelTypes annotates the top-level call's words as well as the
// nested ones.
func WithTopLevelTypes(enabled bool) Option {
	return func(c *decoderConfig) {
		c.topLevelTypes = enabled
	}
}

// WithConcurrency sets how many records are classified in parallel.
// Default is GOMAXPROCS; values below one are treated as one.
func WithConcurrency(n int) Option {
	return func(c *decoderConfig) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}
