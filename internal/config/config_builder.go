package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in insertion order. mergo only fills
// zero-valued fields, so the first source that sets a field wins.
//
// Production is resolved outside mergo: mergo dereferences non-nil pointers
// and would overwrite an explicit false with a later true.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	var production *bool
	for _, cfg := range b.configs {
		if production == nil && cfg.Production != nil {
			production = boolPtr(*cfg.Production)
		}

		src := *cfg
		src.Production = nil
		if err := mergo.Merge(config, &src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.Production = production

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// withPreset appends the deployment-target preset. The target is taken from
// the first source that names one.
func (b *configBuilder) withPreset() *configBuilder {
	var name string
	for _, cfg := range b.configs {
		if cfg.DeployTarget != "" {
			name = cfg.DeployTarget
			break
		}
	}

	target, err := ParseDeployTarget(name)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, target.preset())
	return b
}
