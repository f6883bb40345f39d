// Package config loads collegelist settings from defaults, a YAML file and
// COLLEGELIST_* environment variables, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/collegelist/internal/listing"
)

// Output formats for the list command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Defaults.
const (
	DefaultScrollThreshold = 3
	DefaultOutputFormat    = OutputTable
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
	configFileName         = "config.yaml"
)

// Environment variable names.
const (
	EnvConfig          = "COLLEGELIST_CONFIG"
	EnvHome            = "COLLEGELIST_HOME"
	EnvBatchSize       = "COLLEGELIST_BATCH_SIZE"
	EnvSortPolicy      = "COLLEGELIST_SORT_POLICY"
	EnvNumericText     = "COLLEGELIST_NUMERIC_TEXT"
	EnvScrollThreshold = "COLLEGELIST_SCROLL_THRESHOLD"
	EnvOutputFormat    = "COLLEGELIST_OUTPUT"
	EnvLogLevel        = "COLLEGELIST_LOG_LEVEL"
	EnvLogFormat       = "COLLEGELIST_LOG_FORMAT"
	EnvLogFile         = "COLLEGELIST_LOG_FILE"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete collegelist configuration.
type Config struct {
	Listing ListingConfig `yaml:"listing"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ListingConfig controls the listing pipeline and the browser.
type ListingConfig struct {
	BatchSize       int      `yaml:"batch_size"`
	SortPolicy      string   `yaml:"sort_policy"`
	NumericText     string   `yaml:"numeric_text"`
	ScrollThreshold int      `yaml:"scroll_threshold"`
	Datasets        []string `yaml:"datasets,omitempty"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Listing: ListingConfig{
			BatchSize:       listing.DefaultBatchSize,
			SortPolicy:      string(listing.PolicyReference),
			NumericText:     string(listing.NumericTextLexical),
			ScrollThreshold: DefaultScrollThreshold,
		},
		Output: OutputConfig{DefaultFormat: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads the configuration at path (or DefaultPath when empty), applies
// environment overrides from the process environment and validates it.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment lookup.
func LoadWithEnv(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPathWithEnv(lookupEnv); err != nil {
			return nil, err
		}
	}

	cfg := New()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = cfg.applyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// Empty or comment-only file: nothing to decode.
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvBatchSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvBatchSize, err)
		}
		c.Listing.BatchSize = n
	}
	if v, ok := lookupEnv(EnvScrollThreshold); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvScrollThreshold, err)
		}
		c.Listing.ScrollThreshold = n
	}

	strOverrides := []struct {
		env    string
		target *string
	}{
		{EnvSortPolicy, &c.Listing.SortPolicy},
		{EnvNumericText, &c.Listing.NumericText},
		{EnvOutputFormat, &c.Output.DefaultFormat},
		{EnvLogLevel, &c.Logging.Level},
		{EnvLogFormat, &c.Logging.Format},
		{EnvLogFile, &c.Logging.File},
	}
	for _, o := range strOverrides {
		if v, ok := lookupEnv(o.env); ok && v != "" {
			*o.target = v
		}
	}
	return nil
}

// Validate checks every setting and reports the first offending key.
func (c *Config) Validate() error {
	if c.Listing.BatchSize < 1 {
		return fmt.Errorf("%w: listing.batch_size must be >= 1, got %d", ErrInvalidConfig, c.Listing.BatchSize)
	}
	if _, err := listing.ParseSortPolicy(c.Listing.SortPolicy); err != nil {
		return fmt.Errorf("%w: listing.sort_policy: %w", ErrInvalidConfig, err)
	}
	if _, err := listing.ParseNumericTextMode(c.Listing.NumericText); err != nil {
		return fmt.Errorf("%w: listing.numeric_text: %w", ErrInvalidConfig, err)
	}
	if c.Listing.ScrollThreshold < 0 {
		return fmt.Errorf("%w: listing.scroll_threshold must be >= 0, got %d",
			ErrInvalidConfig, c.Listing.ScrollThreshold)
	}
	switch c.Output.DefaultFormat {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output.default_format must be table, json or yaml, got %q",
			ErrInvalidConfig, c.Output.DefaultFormat)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// PipelineOptions converts the listing section into pipeline options.
// Call Validate first; invalid values are passed through unchanged.
func (c *Config) PipelineOptions(logger *zerolog.Logger) listing.Options {
	return listing.Options{
		BatchSize:   c.Listing.BatchSize,
		Policy:      listing.SortPolicy(strings.ToLower(c.Listing.SortPolicy)),
		NumericText: listing.NumericTextMode(strings.ToLower(c.Listing.NumericText)),
		Logger:      logger,
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
