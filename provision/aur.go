package provision

import (
	"errors"
	"fmt"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/precheck/unless"
	"github.com/FringeDweller/dots/report"
	"github.com/FringeDweller/dots/run"
)

const (
	makepkgCmd = "makepkg -si --noconfirm"
)

var errMakepkgAsRoot = errors.New("makepkg refuses to run as root, run as a regular user with sudo rights")

func (p Provisioner) bootstrapAurHelper(r *report.Report) {
	helper := p.Config.AurHelper
	if !helper.Configured() {
		return
	}

	internal.Log.Infof("Checking and installing %s...", helper.Name)
	if unless.ShouldSkip(p.Runner, helper) {
		internal.Log.Debugf("%s is already installed", helper.Name)
		r.Skipped(StepAur, helper.Name, "already installed")
		return
	}

	if p.IsRoot {
		r.Failed(StepAur, helper.Name, errMakepkgAsRoot)
		return
	}

	err := p.Cloner.Clone(helper.Repo, helper.BuildDir, 0)
	if err != nil {
		internal.Log.Errorf("Error cloning %s: %v", helper.Repo, err)
		r.Failed(StepAur, helper.Name, err)
		return
	}

	_, err = run.Cmd(p.Runner, marecmd.Input{Command: makepkgCmd, Pwd: helper.BuildDir})
	if err != nil {
		err = fmt.Errorf("error building %s: %v", helper.Name, err)
		internal.Log.Errorf("%v", err)
		r.Failed(StepAur, helper.Name, err)
		return
	}

	r.Succeeded(StepAur, helper.Name, fmt.Sprintf("built in %s", helper.BuildDir))
}
