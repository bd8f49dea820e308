package internal

import (
	"os"
)

const (
	dirMode = 0o755
)

func EnsureDirAbsent(dir string) error {
	_, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

// EnsureDirExists reports whether the directory had to be created.
func EnsureDirExists(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, &os.PathError{Op: "mkdir", Path: dir, Err: os.ErrExist}
		}
		return false, nil
	}

	if !os.IsNotExist(err) {
		return false, err
	}

	if err = os.MkdirAll(dir, dirMode); err != nil {
		return false, err
	}

	return true, nil
}

func PathExists(p string) (bool, error) {
	_, err := os.Lstat(p)
	if err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}
