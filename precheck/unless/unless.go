package unless

import (
	"fmt"
	"os"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/run"
)

// Unless describes a condition that, when met, marks an item as already provisioned.
type Unless struct {
	Cmd      string `yaml:"cmd,omitempty"`
	ExitCode int    `yaml:"exit_code,omitempty"`
	Pwd      string `yaml:"pwd,omitempty"`
	Shell    bool   `yaml:"shell,omitempty"`
	Stat     string `yaml:"stat,omitempty"`
}

func (u Unless) String() string {
	if u.Stat != "" {
		return fmt.Sprintf("ls %s", u.Stat)
	}

	return u.Cmd
}

func (u Unless) IsZero() bool {
	return u.Cmd == "" && u.Stat == ""
}

// GetUnless lets a bare condition be checked directly.
func (u Unless) GetUnless() Unless {
	return u
}

type Unlessable interface {
	GetUnless() Unless
}

func fileExists(target string) bool {
	internal.Log.Debugf("Checking existence of %s", target)

	_, err := os.Stat(target)
	return err == nil
}

func ShouldSkip(r run.Runner, unlessable Unlessable) bool {
	unless := unlessable.GetUnless()

	if unless.Stat != "" {
		return fileExists(unless.Stat)
	}

	if unless.Cmd == "" {
		// No stat or command checks, should not skip.
		return false
	}

	out, err := r.Run(marecmd.Input{Command: unless.Cmd, Pwd: unless.Pwd, Shell: unless.Shell})
	if err != nil && out.Code == 0 {
		internal.Log.Debugf("Command %s returned error: %v, output: %s", unless.Cmd, err, out.Stderr)
		// Command wasn't successfully run, should not skip.
		return false
	}

	internal.Log.Debugf("Command %s exited with code: %d, skip when: %d", unless.Cmd, out.Code, unless.ExitCode)
	return out.Code == unless.ExitCode
}
