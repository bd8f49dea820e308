package entity

import (
	_ "embed"
)

const defaultConfigName = "<built-in>"

//go:embed default.yml
var defaultConfig []byte

// DefaultConfig returns the built-in desktop configuration.
func DefaultConfig() (Config, error) {
	return decodeConfig(defaultConfig, defaultConfigName)
}

func (c Config) IsDefault() bool {
	return c.Filename == defaultConfigName
}

// DefaultConfigBytes returns the built-in config as YAML, comments included.
func DefaultConfigBytes() []byte {
	return append([]byte{}, defaultConfig...)
}
