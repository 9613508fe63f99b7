package exporter

import (
	"fmt"
	"io"

	"github.com/diwise/chinook-rdf/pkg/rdf/encoding"
	yaml "gopkg.in/yaml.v2"
)

const (
	OnErrorAbort string = "abort"
	OnErrorSkip  string = "skip"
)

type OutputConfig struct {
	Format   string            `yaml:"format"`
	Path     string            `yaml:"path"`
	Graph    string            `yaml:"graph"`
	Prefixes map[string]string `yaml:"prefixes"`
}

type Config struct {
	Output  OutputConfig `yaml:"output"`
	OnError string       `yaml:"onError"`
	Workers int          `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: string(encoding.FormatTurtle),
		},
		OnError: OnErrorAbort,
		Workers: 1,
	}
}

// LoadConfiguration reads a YAML configuration on top of the defaults
func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.OnError == "" {
		cfg.OnError = OnErrorAbort
	}

	if cfg.OnError != OnErrorAbort && cfg.OnError != OnErrorSkip {
		return fmt.Errorf("onError must be %q or %q, not %q", OnErrorAbort, OnErrorSkip, cfg.OnError)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = string(encoding.FormatTurtle)
	}

	_, err := encoding.ParseFormat(cfg.Output.Format)
	return err
}

// OutputFormat returns the configured serialization format
func (cfg *Config) OutputFormat() encoding.Format {
	f, err := encoding.ParseFormat(cfg.Output.Format)
	if err != nil {
		return encoding.FormatTurtle
	}
	return f
}
