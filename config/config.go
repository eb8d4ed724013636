package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/a8m/envsubst"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/linedist/logging"
)

// Config is a set of labeled geometries plus the log level to query them at.
type Config struct {
	LogLevel   string           `json:"log_level,omitempty"`
	Geometries []GeometryConfig `json:"geometries"`
}

// Validate checks every geometry and reports all failures at once.
func (c *Config) Validate() error {
	var errs error
	if c.LogLevel != "" {
		if _, err := logging.LevelFromString(c.LogLevel); err != nil {
			errs = multierr.Append(errs, utils.NewConfigValidationError("log_level", err))
		}
	}
	seen := make(map[string]bool, len(c.Geometries))
	for idx := range c.Geometries {
		conf := &c.Geometries[idx]
		path := fmt.Sprintf("geometries.%d", idx)
		if err := conf.Validate(path); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if seen[conf.Label] {
			errs = multierr.Append(errs, utils.NewConfigValidationError(path, errors.Errorf("duplicate label %q", conf.Label)))
		}
		seen[conf.Label] = true
	}
	return errs
}

// String prints out a table of each configured geometry, with columns of label, type and shape.
func (c *Config) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Label", "Type", "Shape"})
	for idx, conf := range c.Geometries {
		shape := ""
		switch {
		case conf.Origin != nil && conf.Direction != nil:
			shape = fmt.Sprintf("origin: %v, direction: %v", *conf.Origin, *conf.Direction)
		case conf.Start != nil && conf.End != nil:
			shape = fmt.Sprintf("start: %v, end: %v", *conf.Start, *conf.End)
		}
		if conf.Type == CapsuleType {
			shape += fmt.Sprintf(", r: %.3f", conf.R)
		}
		t.AppendRow([]interface{}{fmt.Sprintf("%d", idx+1), conf.Label, string(conf.Type), shape})
	}
	return t.Render()
}

// Level returns the configured log level, INFO when unset.
func (c *Config) Level() logging.Level {
	if c.LogLevel == "" {
		return logging.INFO
	}
	level, err := logging.LevelFromString(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// ParseGeometries parses every geometry in the config, keyed by label.
func (c *Config) ParseGeometries() (map[string]Geometry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	geometries := make(map[string]Geometry, len(c.Geometries))
	for idx := range c.Geometries {
		g, err := c.Geometries[idx].ParseConfig()
		if err != nil {
			return nil, err
		}
		geometries[g.Label] = g
	}
	return geometries, nil
}

// Read reads a config from the given file, substituting environment variables first.
func Read(filePath string) (*Config, error) {
	//nolint:gosec
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(file.Close)

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	buf, err := envsubst.Bytes(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot substitute environment in %q", filePath)
	}
	cfg, err := FromBytes(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config %q", filePath)
	}
	return cfg, nil
}

// FromReader reads a config from the given reader.
func FromReader(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromBytes(raw)
}

// FromBytes decodes and validates a JSON config.
func FromBytes(raw []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
