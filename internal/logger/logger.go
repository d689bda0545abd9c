// Package logger builds the zap loggers used by the calldecode command.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Debug bool

	// Console selects the human-readable encoder instead of JSON.
	Console bool
}

// NewLogger returns a production logger at info level, or at debug level
// when cfg.Debug is set. Logs go to stderr so they never mix with decoded output.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	return NewWith(func(zc *zap.Config) {
		if cfg == nil {
			return
		}
		if cfg.Debug {
			zc.Level.SetLevel(zapcore.DebugLevel)
		}
		if cfg.Console {
			zc.Development = true
			zc.DisableStacktrace = true
			zc.Encoding = "console"
			zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	})
}

// NewWith returns a logger built from a modified production zap.Config.
func NewWith(cfgFn func(*zap.Config)) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	cfgFn(&zc)
	return zc.Build()
}
