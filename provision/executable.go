package provision

import (
	"fmt"
	"os"

	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/report"
)

func (p Provisioner) makeExecutable(r *report.Report) {
	for _, exe := range p.Config.Executables {
		mode, err := exe.FileMode()
		if err != nil {
			r.Failed(StepExecutables, exe.Path, fmt.Errorf("invalid mode %s: %v", exe.Mode, err))
			continue
		}

		_, err = os.Stat(exe.Path)
		if err != nil && !os.IsNotExist(err) {
			r.Failed(StepExecutables, exe.Path, err)
			continue
		}
		if os.IsNotExist(err) {
			internal.Log.Infof("File %s not found. Skipping...", exe.Path)
			r.Skipped(StepExecutables, exe.Path, "not found")
			continue
		}

		if err = os.Chmod(exe.Path, mode); err != nil {
			err = fmt.Errorf("error changing mode of %s: %v", exe.Path, err)
			internal.Log.Errorf("%v", err)
			r.Failed(StepExecutables, exe.Path, err)
			continue
		}

		internal.Log.Infof("Made %s executable.", exe.Path)
		r.Succeeded(StepExecutables, exe.Path, fmt.Sprintf("mode set to %04o", mode))
	}
}
