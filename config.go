package safeinput

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the externally configurable parts of a Policy plus the
// logger settings used by the CLI.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	URL     URLConfig     `mapstructure:"url"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn warning error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// URLConfig holds the URL prefix lists
type URLConfig struct {
	DangerousPrefixes []string `mapstructure:"dangerous_prefixes" validate:"dive,scheme_prefix"`
	SafePrefixes      []string `mapstructure:"safe_prefixes" validate:"min=1,dive,scheme_prefix"`
	AllowBareRelative bool     `mapstructure:"allow_bare_relative"`
}

// EnvPrefix is prepended to every environment override, e.g.
// SAFEINPUT_URL_ALLOW_BARE_RELATIVE=false.
const EnvPrefix = "SAFEINPUT"

// LoadConfig reads configuration from defaults, the optional YAML file at
// configPath and SAFEINPUT_* environment variables, in increasing order of
// precedence.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("url.dangerous_prefixes", DefaultDangerousPrefixes)
	v.SetDefault("url.safe_prefixes", DefaultSafePrefixes)
	v.SetDefault("url.allow_bare_relative", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Policy builds a Policy from c that logs through logger.
func (c *Config) Policy(logger logrus.FieldLogger) *Policy {
	return &Policy{
		DangerousPrefixes: clone(c.URL.DangerousPrefixes),
		SafePrefixes:      clone(c.URL.SafePrefixes),
		AllowBareRelative: c.URL.AllowBareRelative,
		Entities:          append([]Entity(nil), DefaultEntities...),
		Logger:            logger,
	}
}

// NewLogger returns a logrus logger writing to w (stderr if nil) at the
// configured level and format.
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if c.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}

func validateConfig(config *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("scheme_prefix", validateSchemePrefix); err != nil {
		return err
	}
	return v.Struct(config)
}

// validateSchemePrefix requires a non-empty, lower-case prefix without
// whitespace. Matching lower-cases the candidate URL only.
func validateSchemePrefix(fl validator.FieldLevel) bool {
	prefix := fl.Field().String()
	if prefix == "" || prefix != strings.ToLower(prefix) {
		return false
	}
	return strings.IndexFunc(prefix, unicode.IsSpace) < 0
}
