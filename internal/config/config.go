package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/branched-services/go-calldata"
)

const ENV_PREFIX = "CALLDECODE"

// Flag names. Viper keys are the snake_case form.
const (
	Debug         = "debug"
	LogFormat     = "log-format"
	Output        = "output"
	Strict        = "strict"
	MaxDepth      = "max-depth"
	RegionProbes  = "region-probes"
	TopLevelTypes = "top-level-types"
	Concurrency   = "concurrency"
	AbiFile       = "abi"
	RpcUrl        = "rpc-url"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputText, nil
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", errors.Errorf("unsupported output format %q", s)
	}
}

type Config struct {
	Debug   bool
	Console bool
	Output  OutputFormat
	AbiFile string
	RpcUrl  string
	Decoder DecoderConfig
}

type DecoderConfig struct {
	Strict        bool
	MaxDepth      int
	RegionProbes  bool
	TopLevelTypes bool

	// Concurrency of zero keeps the decoder default.
	Concurrency int
}

// NewConfig reads the configuration from viper, which merges flags and
// CALLDECODE_* environment variables.
func NewConfig() (*Config, error) {
	output, err := ParseOutputFormat(viper.GetString(KebabToSnakeCase(Output)))
	if err != nil {
		return nil, err
	}

	logFormat := strings.ToLower(viper.GetString(KebabToSnakeCase(LogFormat)))

	cfg := &Config{
		Debug:   viper.GetBool(KebabToSnakeCase(Debug)),
		Console: logFormat == "console" || logFormat == "human",
		Output:  output,
		AbiFile: viper.GetString(KebabToSnakeCase(AbiFile)),
		RpcUrl:  viper.GetString(KebabToSnakeCase(RpcUrl)),
		Decoder: DecoderConfig{
			Strict:        viper.GetBool(KebabToSnakeCase(Strict)),
			MaxDepth:      calldata.DefaultMaxDepth,
			RegionProbes:  viper.GetBool(KebabToSnakeCase(RegionProbes)),
			TopLevelTypes: viper.GetBool(KebabToSnakeCase(TopLevelTypes)),
			Concurrency:   viper.GetInt(KebabToSnakeCase(Concurrency)),
		},
	}
	if viper.IsSet(KebabToSnakeCase(MaxDepth)) {
		cfg.Decoder.MaxDepth = viper.GetInt(KebabToSnakeCase(MaxDepth))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Decoder.MaxDepth < 0 {
		return errors.Errorf("max depth must not be negative, got %d", c.Decoder.MaxDepth)
	}
	if c.Decoder.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", c.Decoder.Concurrency)
	}
	return nil
}

// Options converts the decoder settings into calldata options.
func (c *DecoderConfig) Options() []calldata.Option {
	opts := []calldata.Option{
		calldata.WithStrict(c.Strict),
		calldata.WithMaxDepth(c.MaxDepth),
		calldata.WithRegionProbes(c.RegionProbes),
		calldata.WithTopLevelTypes(c.TopLevelTypes),
	}
	if c.Concurrency > 0 {
		opts = append(opts, calldata.WithConcurrency(c.Concurrency))
	}
	return opts
}

func KebabToSnakeCase(str string) string {
	return strings.ReplaceAll(str, "-", "_")
}
