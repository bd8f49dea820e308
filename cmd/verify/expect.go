package verify

import (
	"os"
	"path/filepath"

	"github.com/FringeDweller/dots/entity"
)

type DirEntry struct {
	Mode os.FileMode
	Path string
	Type entryType
}

type expect struct {
	DirEntries []DirEntry
	Packages   []string
	Units      []string
}

func sourceExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expectFromConfig derives the end state a run of the config leaves behind. Items whose sources are missing
// are never provisioned, so they are left out.
func expectFromConfig(config entity.Config) (expect, error) {
	var e expect

	for _, dir := range config.Dirs {
		e.DirEntries = append(e.DirEntries, DirEntry{Path: dir, Type: dirType})
	}

	for _, f := range config.Files {
		if !sourceExists(f.Src) {
			continue
		}
		e.DirEntries = append(e.DirEntries, DirEntry{Path: filepath.Join(f.Dest, filepath.Base(f.Src)), Type: fileType})
	}

	for _, t := range config.Trees {
		if !sourceExists(t.Src) {
			continue
		}
		e.DirEntries = append(e.DirEntries, DirEntry{Path: t.Dest, Type: dirType})
	}

	for _, exe := range config.Executables {
		if !sourceExists(exe.Path) {
			continue
		}
		mode, err := exe.FileMode()
		if err != nil {
			return e, err
		}
		typ := execType
		if mode&0o100 == 0 {
			typ = fileType
		}
		e.DirEntries = append(e.DirEntries, DirEntry{Mode: mode, Path: exe.Path, Type: typ})
	}

	e.Packages = config.Packages

	for _, s := range []entity.Service{config.SSH, config.RemoteDesktop} {
		if s.Configured() {
			e.Units = append(e.Units, s.Unit)
		}
	}

	return e, nil
}
