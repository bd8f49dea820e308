package entity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FringeDweller/dots/settings"
)

type Backup struct {
	Dir   string   `yaml:"dir"`
	Paths []string `yaml:"paths"`
}

type Config struct {
	Filename      string            `yaml:"-"`
	AurHelper     AurHelper         `yaml:"aur"`
	Backup        Backup            `yaml:"backup"`
	Dirs          []string          `yaml:"dir"`
	Executables   []Executable      `yaml:"executable"`
	Files         []Copy            `yaml:"file"`
	Optional      []string          `yaml:"optional"`
	Packages      []string          `yaml:"package"`
	RemoteDesktop Service           `yaml:"remote_desktop"`
	Settings      settings.Settings `yaml:"settings"`
	SSH           Service           `yaml:"ssh"`
	Themes        []Theme           `yaml:"theme"`
	Trees         []Copy            `yaml:"tree"`
}

func (c Config) File() string {
	return c.Filename
}

func (c Config) Validate() error {
	for _, svc := range []Service{c.SSH, c.RemoteDesktop} {
		if err := svc.validate(); err != nil {
			return err
		}
	}

	for _, tree := range c.Trees {
		if err := tree.validate(); err != nil {
			return err
		}
	}

	for _, exe := range c.Executables {
		if _, err := exe.FileMode(); err != nil {
			return fmt.Errorf("invalid mode for executable %s: %v", exe.Path, err)
		}
	}

	return nil
}

func decodeConfig(data []byte, filename string) (Config, error) {
	var config Config
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("error deserializing config from %s: %v", filename, err)
	}

	if err = config.Validate(); err != nil {
		return config, fmt.Errorf("error validating config from %s: %v", filename, err)
	}

	config.Filename = filename
	return config, nil
}

func UnmarshalConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file %s: %v", filename, err)
	}

	return decodeConfig(data, filename)
}
