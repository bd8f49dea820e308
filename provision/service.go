package provision

import (
	"fmt"

	marecmd "github.com/femnad/mare/cmd"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/precheck/unless"
	"github.com/FringeDweller/dots/precheck/when"
	"github.com/FringeDweller/dots/report"
	"github.com/FringeDweller/dots/run"
)

var (
	actions = map[string]string{
		"enable": "is-enabled",
		"start":  "is-active",
	}
	gerunds = map[string]string{
		"enable": "enabling",
		"start":  "starting",
	}
)

func systemctl(verb, unit string) string {
	return fmt.Sprintf("systemctl %s %s", verb, unit)
}

func (p Provisioner) check(s entity.Service, action string) (string, error) {
	checkVerb, ok := actions[action]
	if !ok {
		return "", fmt.Errorf("unknown action: %s", action)
	}

	return systemctl(checkVerb, s.Unit), nil
}

func (p Provisioner) actuate(s entity.Service, action string) error {
	_, ok := actions[action]
	if !ok {
		return fmt.Errorf("unknown action: %s", action)
	}

	caser := cases.Title(language.Und)
	verb := caser.String(gerunds[action])
	internal.Log.Infof("%s service %s", verb, s.Unit)

	_, err := run.Cmd(p.Runner, marecmd.Input{Command: systemctl(action, s.Unit), Sudo: !p.IsRoot})
	return err
}

// ensure actuates only when the matching check fails and reports whether it did.
func (p Provisioner) ensure(s entity.Service, action string) (bool, error) {
	checkCmd, err := p.check(s, action)
	if err != nil {
		return false, err
	}

	if run.Succeeds(p.Runner, marecmd.Input{Command: checkCmd}) {
		return false, nil
	}

	return true, p.actuate(s, action)
}

func (p Provisioner) ensureServicePackage(step string, s entity.Service, r *report.Report) {
	if s.Package == "" {
		return
	}

	cmd := fmt.Sprintf("pacman -S --needed --noconfirm %s", s.Package)
	_, err := run.Cmd(p.Runner, marecmd.Input{Command: cmd, Sudo: !p.IsRoot})
	if err != nil {
		err = fmt.Errorf("error installing package %s for service %s: %v", s.Package, s.Name, err)
		internal.Log.Errorf("%v", err)
		r.Failed(step, s.Package, err)
		return
	}

	r.Succeeded(step, s.Package, "present")
}

func (p Provisioner) startService(s entity.Service) (string, error) {
	switch s.StartPolicy() {
	case entity.StartNever:
		return "enabled", nil
	case entity.StartIfInactive:
		started, err := p.ensure(s, "start")
		if err != nil {
			return "", err
		}
		if !started {
			internal.Log.Infof("%s service is already active.", s.Name)
			return "enabled, already active", nil
		}
		return "enabled and started", nil
	default:
		if err := p.actuate(s, "start"); err != nil {
			return "", err
		}
		return "enabled and started", nil
	}
}

func (p Provisioner) initService(step string, s entity.Service, r *report.Report) {
	if !s.Configured() {
		return
	}

	internal.Log.Infof("Checking and enabling %s service...", s.Name)

	if !when.ShouldRun(s) {
		internal.Log.Debugf("Skipping service %s as when condition %s evaluated to false", s.Name, s.When)
		r.Skipped(step, s.Unit, "when condition is false")
		return
	}

	if unless.ShouldSkip(p.Runner, s) {
		internal.Log.Debugf("Skipping service %s as unless condition %s evaluated to true", s.Name, s.Unless)
		r.Skipped(step, s.Unit, "unless condition is true")
		return
	}

	p.ensureServicePackage(step, s, r)

	_, err := p.ensure(s, "enable")
	if err != nil {
		err = fmt.Errorf("error enabling service %s: %v", s.Unit, err)
		internal.Log.Errorf("%v", err)
		r.Failed(step, s.Unit, err)
		return
	}

	msg, err := p.startService(s)
	if err != nil {
		err = fmt.Errorf("error starting service %s: %v", s.Unit, err)
		internal.Log.Errorf("%v", err)
		r.Failed(step, s.Unit, err)
		return
	}

	r.Succeeded(step, s.Unit, msg)
}

func (p Provisioner) enableSSH(r *report.Report) {
	p.initService(StepSSH, p.Config.SSH, r)
}

func (p Provisioner) enableRemoteDesktop(r *report.Report) {
	p.initService(StepRemote, p.Config.RemoteDesktop, r)
}
