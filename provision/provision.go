package provision

import (
	"fmt"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/FringeDweller/dots/common"
	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/precheck"
	"github.com/FringeDweller/dots/report"
	"github.com/FringeDweller/dots/run"
)

const (
	StepBackup      = "backup"
	StepPackages    = "packages"
	StepAur         = "aur"
	StepOptional    = "optional"
	StepSSH         = "ssh"
	StepRemote      = "remote"
	StepThemes      = "themes"
	StepDirs        = "dirs"
	StepFiles       = "files"
	StepTrees       = "trees"
	StepExecutables = "executables"
)

type step struct {
	name  string
	apply func(Provisioner, *report.Report)
	sudo  bool
}

var steps = []step{
	{name: StepBackup, apply: Provisioner.backupConfig},
	{name: StepPackages, apply: Provisioner.requiredPackages, sudo: true},
	{name: StepAur, apply: Provisioner.bootstrapAurHelper, sudo: true},
	{name: StepOptional, apply: Provisioner.optionalPackages, sudo: true},
	{name: StepSSH, apply: Provisioner.enableSSH, sudo: true},
	{name: StepRemote, apply: Provisioner.enableRemoteDesktop, sudo: true},
	{name: StepThemes, apply: Provisioner.installThemes},
	{name: StepDirs, apply: Provisioner.ensureDirs},
	{name: StepFiles, apply: Provisioner.copyFiles},
	{name: StepTrees, apply: Provisioner.copyTrees},
	{name: StepExecutables, apply: Provisioner.makeExecutable},
}

// StepNames lists every step in the order a run applies them.
func StepNames() []string {
	var names []string
	for _, s := range steps {
		names = append(names, s.name)
	}
	return names
}

// SelectSteps resolves --only and --skip into the set of steps to run.
func SelectSteps(only, skip []string) (mapset.Set[string], error) {
	known := internal.SetFromList(StepNames())

	var unknown []string
	for _, name := range append(append([]string{}, only...), skip...) {
		if !known.Contains(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown steps: %s, valid steps are: %s", strings.Join(unknown, ", "),
			strings.Join(StepNames(), ", "))
	}

	selected := known
	if len(only) > 0 {
		selected = internal.SetFromList(only)
	}

	return selected.Difference(internal.SetFromList(skip)), nil
}

type Provisioner struct {
	Cloner common.Cloner
	Config entity.Config
	IsRoot bool
	Now    func() time.Time
	Runner run.Runner
	// Steps limits a run to the named steps, nil means all steps.
	Steps mapset.Set[string]

	checkHost bool
}

func NewProvisioner(config entity.Config, selected mapset.Set[string]) (Provisioner, error) {
	isRoot, err := internal.IsUserRoot()
	if err != nil {
		return Provisioner{}, fmt.Errorf("error determining current user: %v", err)
	}

	return Provisioner{
		Cloner:    common.GitCloner{},
		Config:    config.Expand(),
		IsRoot:    isRoot,
		Now:       time.Now,
		Runner:    run.Mare{},
		Steps:     selected,
		checkHost: true,
	}, nil
}

func (p Provisioner) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p Provisioner) selected(name string) bool {
	return p.Steps == nil || p.Steps.Contains(name)
}

func (p Provisioner) warnOutsideHome(path string) {
	if !p.Config.Settings.UnderHome(path) {
		internal.Log.Warningf("Path %s is outside of home directory %s", path, p.Config.Settings.HomeDir())
	}
}

func (p Provisioner) preflight() {
	arch, err := precheck.IsArchLike()
	if err != nil {
		internal.Log.Warningf("Unable to determine OS: %v", err)
	} else if !arch {
		internal.Log.Warning("Host does not look like Arch Linux, package steps will likely fail")
	}

	if p.IsRoot {
		return
	}

	for _, s := range steps {
		if s.sudo && p.selected(s.name) {
			run.WarnIfPasswordRequired(p.Runner)
			return
		}
	}
}

// Apply runs the selected steps in order. A failing step never stops the steps after it.
func (p Provisioner) Apply() *report.Report {
	r := report.New()

	if p.checkHost {
		p.preflight()
	}

	for _, s := range steps {
		if !p.selected(s.name) {
			internal.Log.Debugf("Skipping step %s as it was not selected", s.name)
			continue
		}

		s.apply(p, r)
	}

	return r
}
