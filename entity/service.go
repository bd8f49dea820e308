package entity

import (
	"fmt"

	"github.com/FringeDweller/dots/precheck/unless"
)

type StartPolicy string

const (
	StartAlways     StartPolicy = "always"
	StartIfInactive StartPolicy = "if-inactive"
	StartNever      StartPolicy = "never"
)

type Service struct {
	Name    string        `yaml:"name"`
	Package string        `yaml:"package,omitempty"`
	Start   StartPolicy   `yaml:"start,omitempty"`
	Unit    string        `yaml:"unit"`
	Unless  unless.Unless `yaml:"unless,omitempty"`
	When    string        `yaml:"when,omitempty"`
}

func (s Service) RunWhen() string {
	return s.When
}

func (s Service) GetUnless() unless.Unless {
	return s.Unless
}

func (s Service) StartPolicy() StartPolicy {
	if s.Start == "" {
		return StartAlways
	}
	return s.Start
}

func (s Service) Configured() bool {
	return s.Unit != ""
}

func (s Service) validate() error {
	switch s.StartPolicy() {
	case StartAlways, StartIfInactive, StartNever:
		return nil
	default:
		return fmt.Errorf("unknown start policy %q for service %s", s.Start, s.Name)
	}
}
