package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckTargetFile verifies that path is an existing regular file that can be
// read and rewritten in place.
func CheckTargetFile(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.Mode().IsRegular() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not a regular file)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckJournalDirectory verifies that dir is writable, or that its nearest
// existing ancestor is so the directory can be created on first use.
func CheckJournalDirectory(name, dir string) Result {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", dir)}
		}
		if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dir, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", dir)}
	case errors.Is(err, fs.ErrNotExist):
		parent := existingAncestor(dir)
		if err := unix.Access(parent, unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", dir, parent, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", dir)}
	default:
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dir, err)}
	}
}

func existingAncestor(dir string) string {
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		if info, err := os.Stat(parent); err == nil && info.IsDir() {
			return parent
		}
		dir = parent
	}
}
