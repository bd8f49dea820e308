package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	marecmd "github.com/femnad/mare/cmd"
	"github.com/gabriel-vasile/mimetype"

	"github.com/FringeDweller/dots/common"
	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/precheck/unless"
	"github.com/FringeDweller/dots/precheck/when"
	"github.com/FringeDweller/dots/report"
	"github.com/FringeDweller/dots/run"
)

const (
	scriptMode = 0o755
	textPlain  = "text/plain"
)

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(textPlain) {
			return true
		}
	}
	return false
}

// prepareScript refuses anything that doesn't sniff as text before marking it executable.
func prepareScript(script string) error {
	mtype, err := mimetype.DetectFile(script)
	if err != nil {
		return fmt.Errorf("error inspecting setup script %s: %v", script, err)
	}

	if !isText(mtype) {
		return fmt.Errorf("refusing to run setup script %s with content type %s", script, mtype.String())
	}

	return os.Chmod(script, scriptMode)
}

func scriptPath(cloneDir, script string) (string, error) {
	p := filepath.Join(cloneDir, script)
	rel, err := filepath.Rel(cloneDir, p)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("setup script %s is outside of clone %s", script, cloneDir)
	}
	return p, nil
}

func (p Provisioner) runTheme(t entity.Theme, cloneDir string) error {
	err := internal.EnsureDirAbsent(cloneDir)
	if err != nil {
		return fmt.Errorf("error removing stale clone %s: %v", cloneDir, err)
	}

	// A failed clone can leave a partial checkout behind.
	defer func() {
		if rmErr := internal.EnsureDirAbsent(cloneDir); rmErr != nil {
			internal.Log.Errorf("Error removing clone %s: %v", cloneDir, rmErr)
		}
	}()

	err = p.Cloner.Clone(t.Repo, cloneDir, t.CloneDepth())
	if err != nil {
		return err
	}

	script, err := scriptPath(cloneDir, t.SetupScript())
	if err != nil {
		return err
	}

	if err = prepareScript(script); err != nil {
		return err
	}

	_, err = run.Cmd(p.Runner, marecmd.Input{Command: script, Pwd: cloneDir})
	if err != nil {
		return fmt.Errorf("error running setup script for %s: %v", t.Name, err)
	}

	return nil
}

func (p Provisioner) installTheme(t entity.Theme, r *report.Report) {
	name := t.Name
	if name == "" {
		name = t.Repo
	}
	internal.Log.Infof("Installing %s themes...", name)

	if !when.ShouldRun(t) {
		internal.Log.Debugf("Skipping theme %s as when condition %s evaluated to false", name, t.When)
		r.Skipped(StepThemes, name, "when condition is false")
		return
	}

	if unless.ShouldSkip(p.Runner, t) {
		internal.Log.Debugf("Skipping theme %s as unless condition %s evaluated to true", name, t.Unless)
		r.Skipped(StepThemes, name, "unless condition is true")
		return
	}

	base, err := common.RepoBase(t.Repo)
	if err != nil {
		r.Failed(StepThemes, name, err)
		return
	}
	cloneDir := filepath.Join(p.Config.Settings.GetCloneDir(), base)

	if err = p.runTheme(t, cloneDir); err != nil {
		internal.Log.Errorf("Error installing theme %s: %v", name, err)
		r.Failed(StepThemes, name, err)
		return
	}

	r.Succeeded(StepThemes, name, "setup script completed")
}

func (p Provisioner) installThemes(r *report.Report) {
	for _, theme := range p.Config.Themes {
		p.installTheme(theme, r)
	}
}
