package entity

import (
	"fmt"
	"io/fs"
	"strconv"
)

type ExistPolicy string

const (
	// ExistSkip leaves an existing destination untouched.
	ExistSkip ExistPolicy = "skip"
	// ExistMerge copies only entries missing from the destination.
	ExistMerge ExistPolicy = "merge"
	// ExistOverwrite replaces existing files in the destination.
	ExistOverwrite ExistPolicy = "overwrite"

	defaultExecutableMode = "0755"
)

type Copy struct {
	Dest      string      `yaml:"dest"`
	OnExist   ExistPolicy `yaml:"on_exist,omitempty"`
	Overwrite bool        `yaml:"overwrite,omitempty"`
	Src       string      `yaml:"src"`
}

func (c Copy) Policy() ExistPolicy {
	if c.OnExist == "" {
		return ExistSkip
	}
	return c.OnExist
}

func (c Copy) validate() error {
	switch c.Policy() {
	case ExistSkip, ExistMerge, ExistOverwrite:
		return nil
	default:
		return fmt.Errorf("unknown on_exist policy %q for %s", c.OnExist, c.Src)
	}
}

type Executable struct {
	Mode string `yaml:"mode,omitempty"`
	Path string `yaml:"path"`
}

func (e Executable) FileMode() (fs.FileMode, error) {
	mode := e.Mode
	if mode == "" {
		mode = defaultExecutableMode
	}

	parsed, err := strconv.ParseUint(mode, 8, 32)
	if err != nil {
		return 0, err
	}
	if parsed > uint64(fs.ModePerm) {
		return 0, fmt.Errorf("mode %s has bits outside permission range", mode)
	}

	return fs.FileMode(parsed), nil
}
