package provision

import (
	"fmt"

	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/report"
)

func (p Provisioner) ensureDirs(r *report.Report) {
	internal.Log.Info("Creating folders...")

	for _, dir := range p.Config.Dirs {
		p.warnOutsideHome(dir)

		created, err := internal.EnsureDirExists(dir)
		if err != nil {
			err = fmt.Errorf("error creating directory %s: %v", dir, err)
			internal.Log.Errorf("%v", err)
			r.Failed(StepDirs, dir, err)
		} else if created {
			r.Succeeded(StepDirs, dir, "created")
		} else {
			r.Skipped(StepDirs, dir, "already exists")
		}
	}
}
