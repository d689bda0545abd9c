package calldata

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaultConfig(t *testing.T) {
	config := defaultConfig()

	t.Run("logger is a no-op", func(t *testing.T) {
		assert.NotNil(t, config.logger)
	})

	t.Run("lenient by default", func(t *testing.T) {
		assert.False(t, config.strict)
	})

	t.Run("max depth is DefaultMaxDepth", func(t *testing.T) {
		assert.Equal(t, DefaultMaxDepth, config.maxDepth)
	})

	t.Run("optional stages are off", func(t *testing.T) {
		assert.False(t, config.regionProbes)
		assert.False(t, config.topLevelTypes)
	})

	t.Run("concurrency is GOMAXPROCS", func(t *testing.T) {
		assert.Equal(t, runtime.GOMAXPROCS(0), config.concurrency)
	})
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(t *testing.T, c *decoderConfig)
	}{
		{"strict", WithStrict(true), func(t *testing.T, c *decoderConfig) {
			assert.True(t, c.strict)
		}},
		{"max depth", WithMaxDepth(2), func(t *testing.T, c *decoderConfig) {
			assert.Equal(t, 2, c.maxDepth)
		}},
		{"negative max depth", WithMaxDepth(-3), func(t *testing.T, c *decoderConfig) {
			assert.Equal(t, 0, c.maxDepth)
		}},
		{"region probes", WithRegionProbes(true), func(t *testing.T, c *decoderConfig) {
			assert.True(t, c.regionProbes)
		}},
		{"top-level types", WithTopLevelTypes(true), func(t *testing.T, c *decoderConfig) {
			assert.True(t, c.topLevelTypes)
		}},
		{"concurrency", WithConcurrency(4), func(t *testing.T, c *decoderConfig) {
			assert.Equal(t, 4, c.concurrency)
		}},
		{"zero concurrency", WithConcurrency(0), func(t *testing.T, c *decoderConfig) {
			assert.Equal(t, 1, c.concurrency)
		}},
		{"nil logger", WithLogger(nil), func(t *testing.T, c *decoderConfig) {
			assert.NotNil(t, c.logger)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultConfig()
			tt.opt(config)
			tt.check(t, config)
		})
	}

	t.Run("logger", func(t *testing.T) {
		l := zap.NewExample()
		config := defaultConfig()
		WithLogger(l)(config)
		assert.Same(t, l, config.logger)
	})

	t.Run("later options win", func(t *testing.T) {
		d := New(WithMaxDepth(1), WithMaxDepth(5))
		assert.Equal(t, 5, d.config.maxDepth)
	})
}
