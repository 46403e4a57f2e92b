package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anoideaopen/commandline/core/command"
	"github.com/anoideaopen/commandline/core/telemetry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. COMMANDLINE_LOG_LEVEL.
const EnvPrefix = "COMMANDLINE"

// Configuration keys.
const (
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyTraceEndpoint    = "trace.endpoint"
	KeyTraceCACerts     = "trace.ca_certs"
	KeyTraceServiceName = "trace.service_name"
	KeySyntaxPrefixes   = "syntax.prefixes"
	KeySyntaxSeparators = "syntax.separators"
	KeyOutput           = "output"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidConfig is returned when a configuration value is rejected.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the configuration of the commandline binary.
type Config struct {
	Log    Log    `mapstructure:"log"`
	Trace  Trace  `mapstructure:"trace"`
	Syntax Syntax `mapstructure:"syntax"`
	Output string `mapstructure:"output"`
}

// Log configures the process logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Trace configures span export.
type Trace struct {
	Endpoint    string `mapstructure:"endpoint"`
	CACerts     string `mapstructure:"ca_certs"`
	ServiceName string `mapstructure:"service_name"`
}

// Syntax configures the option token syntax.
type Syntax struct {
	Prefixes   []string `mapstructure:"prefixes"`
	Separators []string `mapstructure:"separators"`
}

// SetDefaults registers the default of every key on v, so that environment
// overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "warning")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyTraceEndpoint, "")
	v.SetDefault(KeyTraceCACerts, "")
	v.SetDefault(KeyTraceServiceName, "commandline")
	v.SetDefault(KeySyntaxPrefixes, command.DefaultSyntax.Prefixes)
	v.SetDefault(KeySyntaxSeparators, command.DefaultSyntax.Separators)
	v.SetDefault(KeyOutput, OutputJSON)
}

// Load reads the configuration from defaults, the optional YAML file and
// COMMANDLINE_* environment variables, in increasing priority. Flags bound to v
// take precedence over all of them. The file is checked against the embedded
// schema before it is merged.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err = ValidateFile(data); err != nil {
			return nil, fmt.Errorf("config file %s: %w", file, err)
		}

		v.SetConfigType("yaml")
		if err = v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Output = strings.ToLower(cfg.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}

	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %s: unknown format '%s'", ErrInvalidConfig, KeyOutput, c.Output)
	}

	for _, prefix := range c.Syntax.Prefixes {
		if strings.TrimSpace(prefix) == "" {
			return fmt.Errorf("%w: %s: empty prefix", ErrInvalidConfig, KeySyntaxPrefixes)
		}
	}

	return nil
}

// CommandSyntax returns the option syntax of the configuration.
func (c *Config) CommandSyntax() command.Syntax {
	return command.Syntax{
		Prefixes:   c.Syntax.Prefixes,
		Separators: c.Syntax.Separators,
	}
}

// CollectorEndpoint returns the span export settings of the configuration.
func (c *Config) CollectorEndpoint() telemetry.CollectorEndpoint {
	return telemetry.CollectorEndpoint{
		Endpoint:      c.Trace.Endpoint,
		CACertsBase64: c.Trace.CACerts,
	}
}
