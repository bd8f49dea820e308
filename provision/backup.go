package provision

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/FringeDweller/dots/common"
	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/report"
)

const (
	backupPrefix     = "backup_"
	backupTimeFormat = "02-01-2006_15-04-05"
)

func backupDirName(t time.Time) string {
	return backupPrefix + t.Format(backupTimeFormat)
}

func backupPath(path, backupDir string) error {
	exists, err := internal.PathExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return errNotFound
	}

	target := filepath.Join(backupDir, filepath.Base(path))
	targetExists, err := internal.PathExists(target)
	if err != nil {
		return err
	}
	if targetExists {
		return fmt.Errorf("backup target %s already exists", target)
	}

	return common.Move(path, target)
}

func (p Provisioner) backupConfig(r *report.Report) {
	internal.Log.Info("Backing up existing configuration...")

	backupDir := filepath.Join(p.Config.Backup.Dir, backupDirName(p.now()))
	if _, err := internal.EnsureDirExists(backupDir); err != nil {
		r.Failed(StepBackup, backupDir, fmt.Errorf("error creating backup directory %s: %v", backupDir, err))
		return
	}

	for _, path := range p.Config.Backup.Paths {
		p.warnOutsideHome(path)

		err := backupPath(path, backupDir)
		if err == errNotFound {
			internal.Log.Infof("%s does not exist. Skipping backup...", path)
			r.Skipped(StepBackup, path, "does not exist")
			continue
		} else if err != nil {
			internal.Log.Errorf("Error moving %s to %s: %v", path, backupDir, err)
			r.Failed(StepBackup, path, fmt.Errorf("error moving %s to %s: %v", path, backupDir, err))
			continue
		}

		internal.Log.Infof("Moved %s to %s", path, backupDir)
		r.Succeeded(StepBackup, path, fmt.Sprintf("moved to %s", backupDir))
	}
}
