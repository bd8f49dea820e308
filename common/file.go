package common

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

func IsExecutableFile(info os.FileInfo) bool {
	return !info.IsDir() && info.Mode().Perm()&0100 != 0
}

// CopyFile copies a regular file, creating or truncating dst with the given mode.
func CopyFile(src, dst string, mode fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("error copying %s to %s: %v", src, dst, err)
	}
	if closeErr != nil {
		return closeErr
	}

	// Mode passed to OpenFile is subject to umask and ignored for existing files.
	return os.Chmod(dst, mode.Perm())
}

func copySymlink(src, dst string, overwrite bool) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}

	if _, err = os.Lstat(dst); err == nil {
		if !overwrite {
			return nil
		}
		if err = os.Remove(dst); err != nil {
			return err
		}
	}

	return os.Symlink(target, dst)
}

// CopyTree recursively copies src to dst. A symlinked src is followed, links below it are recreated as links.
// Existing files in dst are kept unless overwrite is set.
func CopyTree(src, dst string, overwrite bool) error {
	src, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	return filepath.WalkDir(src, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		case info.Mode()&fs.ModeSymlink != 0:
			return copySymlink(p, target, overwrite)
		case info.Mode().IsRegular():
			if !overwrite {
				if _, statErr := os.Lstat(target); statErr == nil {
					return nil
				}
			}
			return CopyFile(p, target, info.Mode())
		default:
			return fmt.Errorf("unsupported file type %s at %s", info.Mode().Type(), p)
		}
	})
}

func copyAny(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.IsDir():
		return CopyTree(src, dst, true)
	case info.Mode()&fs.ModeSymlink != 0:
		return copySymlink(src, dst, true)
	default:
		return CopyFile(src, dst, info.Mode())
	}
}

// Move renames src to dst, falling back to copy and remove across file systems.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err = copyAny(src, dst); err != nil {
		return fmt.Errorf("error copying %s across devices: %v", src, err)
	}

	return os.RemoveAll(src)
}
