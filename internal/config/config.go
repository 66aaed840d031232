// Package config loads twsort settings from defaults, an optional YAML file,
// TWSORT_ environment variables and command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grindlemire/twsort/internal/extract"
	"github.com/grindlemire/twsort/internal/order"
	"github.com/grindlemire/twsort/internal/sorter"
)

// DefaultFile is read when present and no config file is named explicitly.
const DefaultFile = ".twsort.yaml"

// EnvPrefix prefixes environment variable overrides, e.g. TWSORT_WORKERS.
const EnvPrefix = "TWSORT"

// Config holds the sorting settings shared by every file in a run.
type Config struct {
	AllowDuplicates bool     `mapstructure:"allow_duplicates"`
	CustomRegex     string   `mapstructure:"custom_regex"`
	OrderFile       string   `mapstructure:"order_file"`
	SortOrder       []string `mapstructure:"sort_order"`
	IgnoredFiles    []string `mapstructure:"ignored_files"`
	Workers         int      `mapstructure:"workers"`
	WarnUnknown     bool     `mapstructure:"warn_unknown"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"allow-duplicates": "allow_duplicates",
	"custom-regex":     "custom_regex",
	"order-file":       "order_file",
	"ignored-files":    "ignored_files",
	"workers":          "workers",
	"warn-unknown":     "warn_unknown",
}

// New returns a viper instance with twsort defaults and environment
// overrides configured.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("allow_duplicates", false)
	v.SetDefault("custom_regex", "")
	v.SetDefault("order_file", "")
	v.SetDefault("sort_order", []string{})
	v.SetDefault("ignored_files", []string{})
	v.SetDefault("workers", 0)
	v.SetDefault("warn_unknown", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds the sorting flags present in fs to their config keys.
// Flags that are absent from fs are ignored.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// ReadFile reads the YAML config file at path into v. An empty path reads
// DefaultFile if it exists. A path given explicitly must exist.
func ReadFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return &Error{Field: "workers", Message: "must not be negative"}
	}

	if c.OrderFile != "" && len(c.SortOrder) > 0 {
		return &Error{Field: "sort_order", Message: "cannot be combined with order_file"}
	}

	if c.CustomRegex != "" {
		if _, err := extract.NewRegex(c.CustomRegex); err != nil {
			return &Error{Field: "custom_regex", Message: err.Error()}
		}
	}

	if len(c.SortOrder) > 0 {
		if _, err := order.NewTable(c.SortOrder); err != nil {
			return &Error{Field: "sort_order", Message: err.Error()}
		}
	}

	return nil
}

// Table returns the order table the configuration selects: the order file,
// the inline sort order, or the built-in table.
func (c *Config) Table() (*order.Table, error) {
	switch {
	case c.OrderFile != "":
		t, err := order.LoadFile(c.OrderFile)
		if err != nil {
			return nil, &Error{Field: "order_file", Message: err.Error()}
		}
		return t, nil
	case len(c.SortOrder) > 0:
		t, err := order.NewTable(c.SortOrder)
		if err != nil {
			return nil, &Error{Field: "sort_order", Message: err.Error()}
		}
		return t, nil
	default:
		return order.Default(), nil
	}
}

// Extractor returns the custom regex extractor, or the default one.
func (c *Config) Extractor() (extract.Extractor, error) {
	if c.CustomRegex == "" {
		return extract.Default(), nil
	}
	re, err := extract.NewRegex(c.CustomRegex)
	if err != nil {
		return nil, &Error{Field: "custom_regex", Message: err.Error()}
	}
	return re, nil
}

// Sorter builds a sorter from the configuration.
func (c *Config) Sorter() (*sorter.Sorter, error) {
	table, err := c.Table()
	if err != nil {
		return nil, err
	}
	ex, err := c.Extractor()
	if err != nil {
		return nil, err
	}

	return &sorter.Sorter{
		Table:           table,
		Extractor:       ex,
		AllowDuplicates: c.AllowDuplicates,
	}, nil
}

// Error represents a configuration error.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
