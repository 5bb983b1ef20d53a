package config

import (
	"os"

	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Sat      sat.ParseOptions `mapstructure:"sat"`
	LogLevel string           `mapstructure:"logLevel"`
	Workers  int              `mapstructure:"workers"` // Concurrent reductions when reducing several inputs, 0 runs them all at once
}

func Default() Config {
	return Config{
		Sat:      sat.DefaultParseOptions(),
		LogLevel: log.InfoLevel.String(),
		Workers:  0,
	}
}

// Load reads a YAML (or JSON) configuration file on top of the defaults, an empty path yields the defaults
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot read config file %v", path)
	}
	return Decode(bytes, config)
}

// Decode overrides the fields of base with the ones present in the document
func Decode(document []byte, base Config) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(document, &raw); err != nil {
		return Config{}, errors.Wrap(err, "cannot parse config")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &base,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "cannot build config decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrap(err, "cannot decode config")
	}

	if _, err := log.ParseLevel(base.LogLevel); err != nil {
		return Config{}, errors.Wrapf(err, "invalid logLevel %q", base.LogLevel)
	}
	if base.Workers < 0 {
		return Config{}, errors.Errorf("workers must not be negative: %d", base.Workers)
	}
	return base, nil
}

// Level returns the configured logrus level, Decode guarantees it parses
func (config Config) Level() log.Level {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
