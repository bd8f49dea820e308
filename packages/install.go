package packages

import (
	"fmt"
	"strings"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/run"
)

const (
	queryExec = "pacman"
	queryFlag = "-Q"
)

type PkgManager interface {
	InstallArgs() []string
	NeedsSudo() bool
	PkgExec() string
}

type Installer struct {
	IsRoot bool
	Pkg    PkgManager
	Runner run.Runner
}

// QueryCmd checks the local package database, which also tracks packages built by AUR helpers.
func QueryCmd(pkg string) string {
	return fmt.Sprintf("%s %s %s", queryExec, queryFlag, pkg)
}

func (i Installer) IsInstalled(pkg string) bool {
	return run.Succeeds(i.Runner, marecmd.Input{Command: QueryCmd(pkg)})
}

func (i Installer) InstallCmd(pkg string) string {
	cmd := []string{i.Pkg.PkgExec()}
	cmd = append(cmd, i.Pkg.InstallArgs()...)
	cmd = append(cmd, pkg)
	return strings.Join(cmd, " ")
}

func (i Installer) Install(pkg string) error {
	input := marecmd.Input{Command: i.InstallCmd(pkg), Sudo: i.Pkg.NeedsSudo() && !i.IsRoot}
	_, err := run.Cmd(i.Runner, input)
	if err != nil {
		return fmt.Errorf("error installing package %s: %v", pkg, err)
	}

	return nil
}

// Ensure installs pkg if the query for it fails and reports whether an install was attempted.
func (i Installer) Ensure(pkg string) (bool, error) {
	if i.IsInstalled(pkg) {
		internal.Log.Debugf("Package %s is already installed", pkg)
		return false, nil
	}

	internal.Log.Infof("%s is not installed. Installing with %s...", pkg, i.Pkg.PkgExec())
	return true, i.Install(pkg)
}
