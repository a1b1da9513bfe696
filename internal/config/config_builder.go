package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// layer is one configuration source. Layers merge in insertion order and a
// non-zero field of a later layer overrides an earlier one.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}
	if err := merged.validate(); err != nil {
		return merged, fmt.Errorf("config from [%s]: %w", strings.Join(b.sources(), ", "), err)
	}
	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	if err := parseEnv(cfg); err != nil {
		return b.fail("env", err)
	}
	return b.add("env", cfg)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	if err != nil {
		return b.fail("flags", err)
	}
	return b.add("flags", cfg)
}

// withJSONPath adds a JSON path chosen by a caller that owns its own flags.
func (b *configBuilder) withJSONPath(path string) *configBuilder {
	if path == "" {
		return b
	}
	return b.add("cli", &StructuredConfig{JSONFilePath: path})
}

// withJSON loads the file named by the last layer that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		return b.fail("json", err)
	}
	return b.add("json:"+path, cfg)
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if p := b.layers[i].cfg.JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

func (b *configBuilder) sources() []string {
	names := make([]string, len(b.layers))
	for i, l := range b.layers {
		names[i] = l.source
	}
	return names
}
