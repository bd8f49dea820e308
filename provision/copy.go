package provision

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FringeDweller/dots/common"
	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/report"
)

func copyFile(f entity.Copy) (report.Outcome, string, error) {
	srcInfo, err := os.Stat(f.Src)
	if os.IsNotExist(err) {
		internal.Log.Infof("Source file not found: %s", f.Src)
		return report.Skipped, "source not found", nil
	} else if err != nil {
		return report.Failed, "", err
	}
	if srcInfo.IsDir() {
		return report.Failed, "", fmt.Errorf("source %s is a directory", f.Src)
	}

	if _, err = internal.EnsureDirExists(f.Dest); err != nil {
		return report.Failed, "", fmt.Errorf("error creating destination %s: %v", f.Dest, err)
	}

	target := filepath.Join(f.Dest, filepath.Base(f.Src))
	exists, err := internal.PathExists(target)
	if err != nil {
		return report.Failed, "", err
	}
	if exists && !f.Overwrite {
		internal.Log.Infof("File already exists at destination: %s", target)
		return report.Skipped, "already exists at destination", nil
	}

	if err = common.CopyFile(f.Src, target, srcInfo.Mode()); err != nil {
		return report.Failed, "", err
	}

	internal.Log.Infof("File copied: %s to %s", f.Src, f.Dest)
	return report.Succeeded, fmt.Sprintf("copied to %s", f.Dest), nil
}

func copyTree(t entity.Copy) (report.Outcome, string, error) {
	srcInfo, err := os.Stat(t.Src)
	if os.IsNotExist(err) {
		internal.Log.Infof("Source folder not found: %s", t.Src)
		return report.Skipped, "source not found", nil
	} else if err != nil {
		return report.Failed, "", err
	}
	if !srcInfo.IsDir() {
		return report.Failed, "", fmt.Errorf("source %s is not a directory", t.Src)
	}

	exists, err := internal.PathExists(t.Dest)
	if err != nil {
		return report.Failed, "", err
	}

	policy := t.Policy()
	if exists && policy == entity.ExistSkip {
		internal.Log.Infof("Folder already exists at destination: %s", t.Dest)
		return report.Skipped, "already exists at destination", nil
	}

	if err = common.CopyTree(t.Src, t.Dest, policy == entity.ExistOverwrite); err != nil {
		return report.Failed, "", err
	}

	internal.Log.Infof("Folder copied: %s to %s", t.Src, t.Dest)
	if exists {
		return report.Succeeded, fmt.Sprintf("%s into %s", policy, t.Dest), nil
	}
	return report.Succeeded, fmt.Sprintf("copied to %s", t.Dest), nil
}

func (p Provisioner) copyEach(step string, copies []entity.Copy, fn func(entity.Copy) (report.Outcome, string, error),
	r *report.Report) {
	for _, c := range copies {
		p.warnOutsideHome(c.Dest)

		outcome, msg, err := fn(c)
		switch outcome {
		case report.Failed:
			err = fmt.Errorf("error copying %s to %s: %v", c.Src, c.Dest, err)
			internal.Log.Errorf("%v", err)
			r.Failed(step, c.Src, err)
		case report.Skipped:
			r.Skipped(step, c.Src, msg)
		default:
			r.Succeeded(step, c.Src, msg)
		}
	}
}

func (p Provisioner) copyFiles(r *report.Report) {
	internal.Log.Info("Copying files...")
	p.copyEach(StepFiles, p.Config.Files, copyFile, r)
}

func (p Provisioner) copyTrees(r *report.Report) {
	internal.Log.Info("Copying folders...")
	p.copyEach(StepTrees, p.Config.Trees, copyTree, r)
}
