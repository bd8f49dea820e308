package entity

import (
	"fmt"

	"github.com/FringeDweller/dots/precheck/unless"
)

type AurHelper struct {
	BuildDir string        `yaml:"build_dir"`
	Name     string        `yaml:"name"`
	Repo     string        `yaml:"repo"`
	Unless   unless.Unless `yaml:"unless,omitempty"`
}

func (a AurHelper) GetUnless() unless.Unless {
	if a.Unless.Cmd != "" || a.Unless.Stat != "" {
		return a.Unless
	}

	return unless.Unless{Cmd: a.DefaultQueryCmd()}
}

func (a AurHelper) DefaultQueryCmd() string {
	return fmt.Sprintf("pacman -Q %s", a.Name)
}

func (a AurHelper) Configured() bool {
	return a.Name != ""
}
