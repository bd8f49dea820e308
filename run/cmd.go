package run

import (
	"fmt"
	"strings"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/FringeDweller/dots/internal"
)

// Runner executes a single external command. Working directory, sudo and environment travel in the input.
type Runner interface {
	Run(input marecmd.Input) (marecmd.Output, error)
}

type Mare struct {
	Env map[string]string
}

func amendEnv(env map[string]string, input marecmd.Input) marecmd.Input {
	if len(env) == 0 {
		return input
	}

	merged := map[string]string{}
	for k, v := range env {
		merged[k] = v
	}
	for k, v := range input.Env {
		merged[k] = v
	}
	input.Env = merged

	return input
}

func (m Mare) Run(input marecmd.Input) (marecmd.Output, error) {
	input = amendEnv(m.Env, input)
	internal.Log.Debugf("Running command: %s", describe(input))
	return marecmd.Run(input)
}

func describe(input marecmd.Input) string {
	var b strings.Builder
	if input.Sudo {
		b.WriteString("sudo ")
	}
	b.WriteString(input.Command)
	if input.Pwd != "" {
		b.WriteString(fmt.Sprintf(" (in %s)", input.Pwd))
	}
	return b.String()
}

// Succeeds runs the input and reports whether it exited with zero status.
func Succeeds(r Runner, input marecmd.Input) bool {
	out, err := r.Run(input)
	return err == nil && out.Code == 0
}

// Cmd runs the input and turns a failed run or a non-zero exit into an error.
func Cmd(r Runner, input marecmd.Input) (marecmd.Output, error) {
	out, err := r.Run(input)
	if err != nil {
		return out, fmt.Errorf("error running command %s: %v", describe(input), err)
	}

	if out.Code != 0 {
		stderr := strings.TrimSpace(out.Stderr)
		if stderr == "" {
			return out, fmt.Errorf("command %s exited with code %d", describe(input), out.Code)
		}
		return out, fmt.Errorf("command %s exited with code %d: %s", describe(input), out.Code, stderr)
	}

	return out, nil
}

// WarnIfPasswordRequired logs a warning when sudo will prompt for a password.
func WarnIfPasswordRequired(r Runner) {
	if Succeeds(r, marecmd.Input{Command: "sudo -Nnv"}) {
		return
	}

	internal.Log.Warning("Sudo authentication required for escalating privileges to install packages and manage services")
}
