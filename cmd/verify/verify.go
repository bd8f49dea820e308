package verify

import (
	"errors"
	"fmt"
	"os"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/FringeDweller/dots/common"
	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/packages"
	"github.com/FringeDweller/dots/run"
)

type entryType string

const (
	dirType  entryType = "dir"
	execType entryType = "exec"
	fileType entryType = "file"
)

func typeOf(info os.FileInfo) entryType {
	switch {
	case info.IsDir():
		return dirType
	case common.IsExecutableFile(info):
		return execType
	default:
		return fileType
	}
}

// matches treats an executable as a file too, so a copied script passes a file check.
func (t entryType) matches(info os.FileInfo) bool {
	switch t {
	case dirType:
		return info.IsDir()
	case execType:
		return info.Mode().IsRegular() && common.IsExecutableFile(info)
	case fileType:
		return info.Mode().IsRegular()
	default:
		return false
	}
}

func ensureCorrectDirEntry(entry DirEntry) error {
	info, err := os.Stat(entry.Path)
	if err != nil {
		return err
	}

	if !entry.Type.matches(info) {
		return fmt.Errorf("%s has incorrect type, expected: %s, actual: %s", entry.Path, entry.Type, typeOf(info))
	}

	if entry.Mode != 0 && info.Mode().Perm() != entry.Mode {
		return fmt.Errorf("%s has incorrect mode, expected: %04o, actual: %04o", entry.Path, entry.Mode,
			info.Mode().Perm())
	}

	return nil
}

func ensureUnitEnabled(r run.Runner, unit string) error {
	if !run.Succeeds(r, marecmd.Input{Command: fmt.Sprintf("systemctl is-enabled %s", unit)}) {
		return fmt.Errorf("service %s is not enabled", unit)
	}
	return nil
}

// Verify checks that the state a run of the expanded config produces is in place, without changing anything.
func Verify(r run.Runner, config entity.Config) error {
	e, err := expectFromConfig(config)
	if err != nil {
		return err
	}

	var errs []error
	for _, entry := range e.DirEntries {
		errs = append(errs, ensureCorrectDirEntry(entry))
	}

	i := packages.Installer{Runner: r}
	for _, pkg := range e.Packages {
		if !i.IsInstalled(pkg) {
			errs = append(errs, fmt.Errorf("package %s is not installed", pkg))
		}
	}

	for _, unit := range e.Units {
		errs = append(errs, ensureUnitEnabled(r, unit))
	}

	return errors.Join(errs...)
}
