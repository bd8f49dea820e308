package base

import (
	"os"
	"path/filepath"

	"github.com/femnad/mare"

	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/internal"
)

// ReadConfig reads the config file, falling back to the built-in config when the file does not exist.
func ReadConfig(filename string) (entity.Config, error) {
	filename = mare.ExpandUser(filename)

	exists, err := internal.PathExists(filename)
	if err != nil {
		return entity.Config{}, err
	}
	if !exists {
		internal.Log.Infof("Config file %s not found, using built-in config", filename)
		return entity.DefaultConfig()
	}

	return entity.UnmarshalConfig(filename)
}

// WriteDefault writes the built-in config to filename unless a file is already there.
func WriteDefault(filename string) error {
	filename = mare.ExpandUser(filename)

	exists, err := internal.PathExists(filename)
	if err != nil {
		return err
	}
	if exists {
		internal.Log.Warningf("Config file %s already exists, not overwriting", filename)
		return nil
	}

	if err = mare.EnsureDir(filepath.Dir(filename)); err != nil {
		return err
	}

	return os.WriteFile(filename, entity.DefaultConfigBytes(), 0o644)
}
