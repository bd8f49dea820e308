package provision

import (
	marecmd "github.com/femnad/mare/cmd"

	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/packages"
	"github.com/FringeDweller/dots/report"
	"github.com/FringeDweller/dots/run"
)

func (p Provisioner) installer(pkg packages.PkgManager) packages.Installer {
	return packages.Installer{IsRoot: p.IsRoot, Pkg: pkg, Runner: p.Runner}
}

func ensurePackages(step string, installer packages.Installer, pkgs []string, r *report.Report) {
	for _, pkg := range internal.Unique(pkgs) {
		attempted, err := installer.Ensure(pkg)
		if err != nil {
			internal.Log.Errorf("%v", err)
			r.Failed(step, pkg, err)
		} else if attempted {
			r.Succeeded(step, pkg, "installed")
		} else {
			r.Skipped(step, pkg, "already installed")
		}
	}
}

func (p Provisioner) requiredPackages(r *report.Report) {
	internal.Log.Info("Checking and installing necessary packages...")
	ensurePackages(StepPackages, p.installer(packages.Pacman{}), p.Config.Packages, r)
}

func (p Provisioner) optionalPackages(r *report.Report) {
	internal.Log.Info("Checking and installing optional packages...")

	helper := p.Config.AurHelper
	if len(p.Config.Optional) == 0 {
		return
	}

	if !helper.Configured() {
		internal.Log.Warning("No AUR helper configured, skipping optional packages")
		r.Skipped(StepOptional, "", "no AUR helper configured")
		return
	}

	if !run.Succeeds(p.Runner, marecmd.Input{Command: packages.QueryCmd(helper.Name)}) {
		internal.Log.Warningf("AUR helper %s is not installed, skipping optional packages", helper.Name)
		r.Skipped(StepOptional, helper.Name, "AUR helper is not installed")
		return
	}

	ensurePackages(StepOptional, p.installer(packages.AurHelper{Name: helper.Name}), p.Config.Optional, r)
}
