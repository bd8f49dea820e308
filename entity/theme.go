package entity

import "github.com/FringeDweller/dots/precheck/unless"

const (
	defaultThemeDepth  = 1
	defaultThemeScript = "setup.sh"
)

type Theme struct {
	Depth  int           `yaml:"depth,omitempty"`
	Name   string        `yaml:"name"`
	Repo   string        `yaml:"repo"`
	Script string        `yaml:"script,omitempty"`
	Unless unless.Unless `yaml:"unless,omitempty"`
	When   string        `yaml:"when,omitempty"`
}

func (t Theme) RunWhen() string {
	return t.When
}

func (t Theme) GetUnless() unless.Unless {
	return t.Unless
}

func (t Theme) CloneDepth() int {
	if t.Depth == 0 {
		return defaultThemeDepth
	}
	// Negative depth asks for full history.
	if t.Depth < 0 {
		return 0
	}
	return t.Depth
}

func (t Theme) SetupScript() string {
	if t.Script == "" {
		return defaultThemeScript
	}
	return t.Script
}
