// Package config loads the configuration of a conversion tool built on the
// convargs library: the program identity, the flag registry, and the
// accepted-extension policy. Values come from a YAML file merged with
// environment variables; the raw file is validated against an embedded JSON
// schema before unmarshalling so malformed configs fail with a pointed
// message instead of a half-populated parser.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/convargs/pkg/convargs"
)

const (
	// EnvPrefix namespaces the environment variables consulted by Load,
	// e.g. FILECONV_VERBOSE=true.
	EnvPrefix = "FILECONV"
	// DefaultConfigName is the base name of the config file searched for in
	// the working directory and under $HOME/.config/fileconv.
	DefaultConfigName = "fileconv"
)

// FlagConfig declares one boolean switch of the tool's flag registry.
type FlagConfig struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Usage   string `mapstructure:"usage" yaml:"usage,omitempty"`
	Default bool   `mapstructure:"default" yaml:"default"`
}

// ExtensionsConfig declares the accepted source and target extension lists.
// The first entry of each list is the default for that role.
type ExtensionsConfig struct {
	Source []string `mapstructure:"source" yaml:"source"`
	Target []string `mapstructure:"target" yaml:"target"`
}

// Config describes a conversion tool built on the convargs library.
type Config struct {
	Program          string           `mapstructure:"program" yaml:"program"`
	Version          string           `mapstructure:"version" yaml:"version"`
	Verbose          bool             `mapstructure:"verbose" yaml:"verbose"`
	Flags            []FlagConfig     `mapstructure:"flags" yaml:"flags"`
	Extensions       ExtensionsConfig `mapstructure:"extensions" yaml:"extensions"`
	StrictExtensions bool             `mapstructure:"strictExtensions" yaml:"strictExtensions"`
}

// Default returns the built-in configuration: the convert/translate flag set
// and the txt/csv/json extension policy.
func Default() Config {
	return Config{
		Program: "fileconv",
		Version: "1.0.0",
		Flags: []FlagConfig{
			{Name: "convert", Usage: "Convert the source file to the target format (default)", Default: true},
			{Name: "translate", Usage: "Enable translation (default)", Default: true},
			{Name: convargs.FlagHelp, Usage: "Show this help message"},
			{Name: convargs.FlagVersion, Usage: "Show version information"},
		},
		Extensions: ExtensionsConfig{
			Source: []string{"txt", "csv", "json"},
			Target: []string{"csv", "json", "txt"},
		},
	}
}

// Load reads the configuration from cfgFile, or from the standard search
// locations when cfgFile is empty. A missing file is fine when none was
// explicitly requested; every loaded file is schema-validated first.
// Environment variables prefixed with EnvPrefix override file values.
func Load(cfgFile string, logger *slog.Logger) (Config, error) {
	cfg := Default()
	v := viper.New()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			logger.Debug("no configuration file found, using defaults")
		} else {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		used := v.ConfigFileUsed()
		logger.Debug("using configuration file", slog.String("path", used))
		if err := validateFile(used); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", used, err)
		}
	}

	// Boolean values from the environment arrive as strings; decode them
	// weakly so FILECONV_VERBOSE=true works.
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return Config{}, fmt.Errorf("unmarshalling configuration: %w", err)
	}
	return cfg, nil
}

// setDefaults seeds the viper instance so environment-only overrides of
// scalar keys survive Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("program", cfg.Program)
	v.SetDefault("version", cfg.Version)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("strictExtensions", cfg.StrictExtensions)
	v.SetDefault("extensions.source", cfg.Extensions.Source)
	v.SetDefault("extensions.target", cfg.Extensions.Target)
}

// validateFile checks the raw YAML document against the embedded schema.
func validateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	return validateSchema(doc)
}

// BuildParser turns the configuration into a ready convargs.Parser. Registry
// and policy violations surface as convargs.ErrConfigValidation.
func (c Config) BuildParser(logger *slog.Logger) (*convargs.Parser, error) {
	flags := make([]convargs.Flag, len(c.Flags))
	for i, f := range c.Flags {
		flags[i] = convargs.Flag{Name: f.Name, Usage: f.Usage, Default: f.Default}
	}
	registry, err := convargs.NewRegistry(flags...)
	if err != nil {
		return nil, err
	}
	policy, err := convargs.NewExtensionPolicy(c.Extensions.Source, c.Extensions.Target)
	if err != nil {
		return nil, err
	}
	policy.RequireDisjoint = c.StrictExtensions
	return convargs.New(convargs.Options{
		Registry:    registry,
		Policy:      policy,
		ProgramName: c.Program,
		Version:     c.Version,
		Logger:      logger,
	}), nil
}

// YAML renders the configuration as a YAML document, used by the
// "config init" subcommand to emit a starting point.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
