package config

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/shopspring/decimal"
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

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithTransformers(decimalTransformer{})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
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

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// decimalTransformer teaches mergo how to merge decimal.Decimal fields.
// The type carries only unexported fields, so without a transformer mergo
// recurses into it, can set nothing, and the source value is lost. The
// transformer copies the whole value when the destination is still zero,
// matching mergo's fill-if-empty semantics for scalar fields.
type decimalTransformer struct{}

func (decimalTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(decimal.Decimal{}) {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if !dst.CanSet() {
			return nil
		}

		dstDecimal := dst.Interface().(decimal.Decimal)
		srcDecimal := src.Interface().(decimal.Decimal)
		if dstDecimal.IsZero() && !srcDecimal.IsZero() {
			dst.Set(src)
		}

		return nil
	}
}

// applyDefaults fills optional fields that no source provided.
func (c *StructuredConfig) applyDefaults() {
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = DefaultTokenDuration
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = DefaultTokenIssuer
	}
	if c.App.MinimumBidIncrement.IsZero() {
		c.App.MinimumBidIncrement = DefaultMinimumBidIncrement
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
}
