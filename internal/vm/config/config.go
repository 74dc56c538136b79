// Package config loads the interpreter and counter configuration the
// cmd/opdump CLI and any embedding service need at startup: the call-depth
// limit, the maximum code size, VCM resource limits, and the ambient
// logging level, decoded from a YAML document via mapstructure tags. Gas
// costs are not configurable here; they are the constants in package vm.
package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/counters"
)

// Config is the root configuration document.
type Config struct {
	LogLevel       string         `mapstructure:"log-level" yaml:"log-level"`
	CallDepthLimit int            `mapstructure:"call-depth-limit" yaml:"call-depth-limit"`
	MaxCodeSize    int            `mapstructure:"max-code-size" yaml:"max-code-size"`
	Counters       CountersConfig `mapstructure:"counters" yaml:"counters"`
}

// CountersConfig lets an operator tighten or loosen the VCM's per-resource
// circuit limits without recompiling, overriding counters.DefaultLimits
// field by field; a zero value leaves the default in place.
type CountersConfig struct {
	Steps    int `mapstructure:"steps" yaml:"steps"`
	Binary   int `mapstructure:"binary" yaml:"binary"`
	Keccak   int `mapstructure:"keccak" yaml:"keccak"`
	Poseidon int `mapstructure:"poseidon" yaml:"poseidon"`
	Arith    int `mapstructure:"arith" yaml:"arith"`
	MemAlign int `mapstructure:"mem-align" yaml:"mem-align"`
	Padding  int `mapstructure:"padding" yaml:"padding"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		LogLevel:       "info",
		CallDepthLimit: 1024,
		MaxCodeSize:    24576,
	}
}

// Load reads and decodes a YAML configuration file at path, falling back
// to Default for any field the file leaves unset.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return cfg, fmt.Errorf("building config decoder: %w", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// Limits resolves the configured CountersConfig against
// counters.DefaultLimits, taking the configured value for any resource the
// operator set to a nonzero number.
func (c Config) Limits() counters.Limits {
	limits := counters.DefaultLimits()
	applyIfSet(&limits[counters.Steps], c.Counters.Steps)
	applyIfSet(&limits[counters.Binary], c.Counters.Binary)
	applyIfSet(&limits[counters.Keccak], c.Counters.Keccak)
	applyIfSet(&limits[counters.Poseidon], c.Counters.Poseidon)
	applyIfSet(&limits[counters.Arith], c.Counters.Arith)
	applyIfSet(&limits[counters.MemAlign], c.Counters.MemAlign)
	applyIfSet(&limits[counters.Padding], c.Counters.Padding)
	return limits
}

func applyIfSet(dst *int, override int) {
	if override > 0 {
		*dst = override
	}
}
